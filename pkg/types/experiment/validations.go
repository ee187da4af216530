/*
Copyright 2019 Cortex Labs, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package experiment

import (
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/cast"
	cr "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/configreader"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/files"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/pointer"
	s "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/strings"
)

var configValidation = &cr.StructValidation{
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField:      "DatasetReader",
			StructValidation: datasetReaderValidation,
		},
		{
			StructField: "TrainDataPath",
			StringValidation: &cr.StringValidation{
				Required: true,
			},
		},
		{
			StructField: "ValidationDataPath",
			StringValidation: &cr.StringValidation{
				Required: true,
			},
		},
		{
			StructField:               "Model",
			InterfaceStructValidation: modelValidation,
		},
		{
			StructField:      "Iterator",
			StructValidation: iteratorValidation,
		},
		{
			StructField:      "Trainer",
			StructValidation: trainerValidation,
		},
	},
}

var datasetReaderValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "Type",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: []string{DatasetReaderType},
			},
		},
		{
			StructField:    "Lazy",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField: "TablesDirectory",
			StringValidation: &cr.StringValidation{
				Required: true,
			},
		},
		{
			StructField: "OfflineLogicalFormsDirectory",
			StringValidation: &cr.StringValidation{
				AllowEmpty: true,
			},
		},
		{
			StructField: "MaxOfflineLogicalForms",
			IntValidation: &cr.IntValidation{
				Default:     100,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField:    "KeepIfNoLogicalForms",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField:    "OutputAgendas",
			BoolValidation: &cr.BoolValidation{},
		},
		{
			StructField: "EmbeddingFileForEntityExtraction",
			StringValidation: &cr.StringValidation{
				AllowEmpty: true,
			},
		},
		{
			StructField: "DistanceThresholdForEntityExtraction",
			Float64Validation: &cr.Float64Validation{
				Default:           0.3,
				GreaterThan:       pointer.Float64(0),
				LessThanOrEqualTo: pointer.Float64(1),
			},
		},
	},
}

var modelValidation = &cr.InterfaceStructValidation{
	TypeKey:         "type",
	TypeStructField: "Type",
	Required:        true,
	ParsedInterfaceStructTypes: map[interface{}]*cr.InterfaceStructType{
		MMLModelType: {
			Type:                   (*MMLModel)(nil),
			StructFieldValidations: modelFieldValidations(),
		},
		ERMModelType: {
			Type: (*ERMModel)(nil),
			StructFieldValidations: append(modelFieldValidations(),
				&cr.StructFieldValidation{
					StructField: "MMLModelFile",
					StringPtrValidation: &cr.StringPtrValidation{
						AllowExplicitNull: true,
					},
				},
				&cr.StructFieldValidation{
					StructField: "DecoderNumFinishedStates",
					IntPtrValidation: &cr.IntPtrValidation{
						AllowExplicitNull: true,
						GreaterThan:       pointer.Int(0),
					},
				},
				&cr.StructFieldValidation{
					StructField:    "NormalizeBeamScoreByLength",
					BoolValidation: &cr.BoolValidation{},
				},
			),
		},
	},
	Parser: func(str string) (interface{}, error) {
		parsed := ModelTypeFromString(str)
		if parsed == UnknownModelType {
			return nil, cr.ErrorInvalidStr(str, ModelTypeStrings()[0], ModelTypeStrings()[1:]...)
		}
		return parsed, nil
	},
}

func modelFieldValidations() []*cr.StructFieldValidation {
	return []*cr.StructFieldValidation{
		{
			StructField:      "QuestionEmbedder",
			StructValidation: questionEmbedderValidation,
		},
		{
			StructField: "ActionEmbeddingDim",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField:      "Encoder",
			StructValidation: encoderValidation,
		},
		{
			StructField:      "EntityEncoder",
			StructValidation: entityEncoderValidation,
		},
		{
			StructField:      "DecoderBeamSearch",
			StructValidation: beamSearchValidation,
		},
		{
			StructField: "MaxDecodingSteps",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField:               "Attention",
			InterfaceStructValidation: attentionValidation,
		},
		{
			StructField: "Dropout",
			Float64Validation: &cr.Float64Validation{
				GreaterThanOrEqualTo: pointer.Float64(0),
				LessThan:             pointer.Float64(1),
			},
		},
	}
}

var questionEmbedderValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField:      "Tokens",
			StructValidation: tokenEmbedderValidation,
		},
	},
}

var tokenEmbedderValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "Type",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: []string{TokenEmbedderType},
			},
		},
		{
			StructField: "EmbeddingDim",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "Trainable",
			BoolValidation: &cr.BoolValidation{
				Default: true,
			},
		},
	},
}

var encoderValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "Type",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: EncoderTypeStrings(),
			},
			Parser: func(str string) (interface{}, error) {
				return EncoderTypeFromString(str), nil
			},
		},
		{
			StructField: "InputSize",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "HiddenSize",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "NumLayers",
			IntValidation: &cr.IntValidation{
				Default:     1,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField:    "Bidirectional",
			BoolValidation: &cr.BoolValidation{},
		},
	},
}

var entityEncoderValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "Type",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: []string{EntityEncoderType},
			},
		},
		{
			StructField: "EmbeddingDim",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField:    "Averaged",
			BoolValidation: &cr.BoolValidation{},
		},
	},
}

var beamSearchValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "BeamSize",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
	},
}

var attentionValidation = &cr.InterfaceStructValidation{
	TypeKey:         "type",
	TypeStructField: "Type",
	Required:        true,
	ParsedInterfaceStructTypes: map[interface{}]*cr.InterfaceStructType{
		DotProductAttentionType: {
			Type:                   (*DotProductAttention)(nil),
			StructFieldValidations: []*cr.StructFieldValidation{},
		},
		BilinearAttentionType: {
			Type: (*BilinearAttention)(nil),
			StructFieldValidations: []*cr.StructFieldValidation{
				{
					StructField: "VectorDim",
					IntValidation: &cr.IntValidation{
						Required:    true,
						GreaterThan: pointer.Int(0),
					},
				},
				{
					StructField: "MatrixDim",
					IntValidation: &cr.IntValidation{
						Required:    true,
						GreaterThan: pointer.Int(0),
					},
				},
			},
		},
		AdditiveAttentionType: {
			Type: (*AdditiveAttention)(nil),
			StructFieldValidations: []*cr.StructFieldValidation{
				{
					StructField: "VectorDim",
					IntValidation: &cr.IntValidation{
						Required:    true,
						GreaterThan: pointer.Int(0),
					},
				},
				{
					StructField: "MatrixDim",
					IntValidation: &cr.IntValidation{
						Required:    true,
						GreaterThan: pointer.Int(0),
					},
				},
				{
					StructField: "Normalize",
					BoolValidation: &cr.BoolValidation{
						Default: true,
					},
				},
			},
		},
	},
	Parser: func(str string) (interface{}, error) {
		parsed := AttentionTypeFromString(str)
		if parsed == UnknownAttentionType {
			return nil, cr.ErrorInvalidStr(str, AttentionTypeStrings()[0], AttentionTypeStrings()[1:]...)
		}
		return parsed, nil
	},
}

var iteratorValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "Type",
			StringValidation: &cr.StringValidation{
				Required:      true,
				AllowedValues: IteratorTypeStrings(),
			},
			Parser: func(str string) (interface{}, error) {
				return IteratorTypeFromString(str), nil
			},
		},
		{
			StructField: "SortingKeys",
			InterfaceValidation: &cr.InterfaceValidation{
				AllowExplicitNull: true,
				Validator:         validateSortingKeys,
			},
		},
		{
			StructField: "PaddingNoise",
			Float64Validation: &cr.Float64Validation{
				Default:              0.1,
				GreaterThanOrEqualTo: pointer.Float64(0),
			},
		},
		{
			StructField: "BatchSize",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
	},
}

var trainerValidation = &cr.StructValidation{
	Required: true,
	StructFieldValidations: []*cr.StructFieldValidation{
		{
			StructField: "NumEpochs",
			IntValidation: &cr.IntValidation{
				Required:    true,
				GreaterThan: pointer.Int(0),
			},
		},
		{
			StructField: "Patience",
			IntPtrValidation: &cr.IntPtrValidation{
				AllowExplicitNull: true,
				GreaterThan:       pointer.Int(0),
			},
		},
		{
			StructField: "CudaDevice",
			IntValidation: &cr.IntValidation{
				Default:              -1,
				GreaterThanOrEqualTo: pointer.Int(-1),
			},
		},
		{
			StructField: "GradClipping",
			Float64PtrValidation: &cr.Float64PtrValidation{
				AllowExplicitNull: true,
				GreaterThan:       pointer.Float64(0),
			},
		},
		{
			StructField:               "Optimizer",
			InterfaceStructValidation: optimizerValidation,
		},
	},
}

var optimizerValidation = &cr.InterfaceStructValidation{
	TypeKey:         "type",
	TypeStructField: "Type",
	Required:        true,
	ParsedInterfaceStructTypes: map[interface{}]*cr.InterfaceStructType{
		SGDOptimizerType: {
			Type: (*SGDOptimizer)(nil),
			StructFieldValidations: []*cr.StructFieldValidation{
				{
					StructField: "LR",
					Float64Validation: &cr.Float64Validation{
						Required:    true,
						GreaterThan: pointer.Float64(0),
					},
				},
				{
					StructField: "Momentum",
					Float64Validation: &cr.Float64Validation{
						GreaterThanOrEqualTo: pointer.Float64(0),
					},
				},
			},
		},
		AdamOptimizerType: {
			Type: (*AdamOptimizer)(nil),
			StructFieldValidations: []*cr.StructFieldValidation{
				{
					StructField: "LR",
					Float64PtrValidation: &cr.Float64PtrValidation{
						AllowExplicitNull: true,
						GreaterThan:       pointer.Float64(0),
					},
				},
			},
		},
		AdagradOptimizerType: {
			Type: (*AdagradOptimizer)(nil),
			StructFieldValidations: []*cr.StructFieldValidation{
				{
					StructField: "LR",
					Float64PtrValidation: &cr.Float64PtrValidation{
						AllowExplicitNull: true,
						GreaterThan:       pointer.Float64(0),
					},
				},
			},
		},
		RMSPropOptimizerType: {
			Type: (*RMSPropOptimizer)(nil),
			StructFieldValidations: []*cr.StructFieldValidation{
				{
					StructField: "LR",
					Float64PtrValidation: &cr.Float64PtrValidation{
						AllowExplicitNull: true,
						GreaterThan:       pointer.Float64(0),
					},
				},
				{
					StructField: "Alpha",
					Float64PtrValidation: &cr.Float64PtrValidation{
						AllowExplicitNull: true,
						GreaterThan:       pointer.Float64(0),
					},
				},
			},
		},
	},
	Parser: func(str string) (interface{}, error) {
		parsed := OptimizerTypeFromString(str)
		if parsed == UnknownOptimizerType {
			return nil, cr.ErrorInvalidStr(str, OptimizerTypeStrings()[0], OptimizerTypeStrings()[1:]...)
		}
		return parsed, nil
	},
}

func validateSortingKeys(inter interface{}) (interface{}, error) {
	if inter == nil {
		return nil, nil
	}

	interSlice, ok := cast.InterfaceToInterfaceSlice(inter)
	if !ok {
		return nil, ErrorInvalidSortingKey(inter)
	}

	sortingKeys := make([][]string, len(interSlice))
	for i, pairInter := range interSlice {
		pair, ok := cast.InterfaceToStrSlice(pairInter)
		if !ok || len(pair) != 2 {
			return nil, errors.Wrap(ErrorInvalidSortingKey(pairInter), s.Index(i))
		}
		sortingKeys[i] = pair
	}

	return sortingKeys, nil
}

// FromFile reads, parses, and validates an experiment configuration file
func FromFile(filePath string) (*Config, []error) {
	configBytes, err := files.ReadFileBytes(filePath)
	if err != nil {
		return nil, []error{err}
	}

	config, errs := FromBytes(configBytes)
	if errors.HasError(errs) {
		return nil, errors.WrapAll(errs, filePath)
	}
	return config, nil
}

// FromBytes parses and validates an experiment configuration document
// (YAML or JSON, since JSON is a subset of YAML)
func FromBytes(configBytes []byte) (*Config, []error) {
	parsed, err := cr.ReadYAMLBytes(configBytes)
	if err != nil {
		return nil, []error{err}
	}
	if parsed == nil {
		return nil, []error{ErrorParseExperiment()}
	}
	return FromParsed(parsed)
}

func FromParsed(parsed interface{}) (*Config, []error) {
	config := &Config{}
	errs := cr.Struct(config, parsed, configValidation)
	if errors.HasError(errs) {
		return nil, errs
	}

	errs = config.Validate()
	if errors.HasError(errs) {
		return nil, errs
	}
	return config, nil
}

// Validate checks consistency constraints that span fields
func (config *Config) Validate() []error {
	errs := []error{}

	modelFields := config.Model.GetModelFields()
	embeddingDim := modelFields.QuestionEmbedder.Tokens.EmbeddingDim

	if modelFields.Encoder.InputSize != embeddingDim {
		errs = append(errs, errors.Wrap(
			ErrorEncoderInputSizeMismatch(modelFields.Encoder.InputSize, embeddingDim),
			ModelKey, EncoderKey, InputSizeKey))
	}

	if modelFields.EntityEncoder.EmbeddingDim != embeddingDim {
		errs = append(errs, errors.Wrap(
			ErrorEntityEncoderDimMismatch(modelFields.EntityEncoder.EmbeddingDim, embeddingDim),
			ModelKey, EntityEncoderKey, EmbeddingDimKey))
	}

	if config.Iterator.Type == BucketIteratorType && len(config.Iterator.SortingKeys) == 0 {
		errs = append(errs, errors.Wrap(
			ErrorSortingKeysRequired(config.Iterator.Type),
			IteratorKey, SortingKeysKey))
	}

	if config.Trainer.Patience != nil && *config.Trainer.Patience > config.Trainer.NumEpochs {
		errs = append(errs, errors.Wrap(
			ErrorPatienceExceedsNumEpochs(*config.Trainer.Patience, config.Trainer.NumEpochs),
			TrainerKey, PatienceKey))
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// CheckPaths verifies that the path-valued fields refer to files and
// directories that exist on disk
func (config *Config) CheckPaths() []error {
	errs := []error{}

	if err := files.CheckFile(config.TrainDataPath); err != nil {
		errs = append(errs, errors.Wrap(err, TrainDataPathKey))
	}
	if err := files.CheckFile(config.ValidationDataPath); err != nil {
		errs = append(errs, errors.Wrap(err, ValidationDataPathKey))
	}

	reader := config.DatasetReader
	if err := files.CheckDir(reader.TablesDirectory); err != nil {
		errs = append(errs, errors.Wrap(err, DatasetReaderKey, TablesDirectoryKey))
	}
	if reader.OfflineLogicalFormsDirectory != "" {
		if err := files.CheckDir(reader.OfflineLogicalFormsDirectory); err != nil {
			errs = append(errs, errors.Wrap(err, DatasetReaderKey, OfflineLogicalFormsDirectoryKey))
		}
	}
	if reader.EmbeddingFileForEntityExtraction != "" {
		if err := files.CheckFile(reader.EmbeddingFileForEntityExtraction); err != nil {
			errs = append(errs, errors.Wrap(err, DatasetReaderKey, EmbeddingFileForEntityExtractionKey))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
