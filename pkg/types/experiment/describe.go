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
	"strings"

	"github.com/xlab/treeprint"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/console"
	s "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/strings"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/table"
)

// Describe renders the validated configuration as per-section key/value tables
func (config *Config) Describe() string {
	var sections []string

	sections = append(sections, section("data", config.dataKVs()))
	sections = append(sections, section(DatasetReaderKey, config.datasetReaderKVs()))
	sections = append(sections, section(ModelKey, config.modelKVs()))
	sections = append(sections, section(IteratorKey, config.iteratorKVs()))
	sections = append(sections, section(TrainerKey, config.trainerKVs()))

	return strings.Join(sections, "\n")
}

func section(title string, kvs table.KeyValuePairs) string {
	return console.Bold(title) + "\n" + kvs.String()
}

func (config *Config) dataKVs() table.KeyValuePairs {
	var kvs table.KeyValuePairs
	kvs.Add(TrainDataPathKey, config.TrainDataPath)
	kvs.Add(ValidationDataPathKey, config.ValidationDataPath)
	return kvs
}

func (config *Config) datasetReaderKVs() table.KeyValuePairs {
	reader := config.DatasetReader
	var kvs table.KeyValuePairs
	kvs.Add(TypeKey, reader.Type)
	kvs.Add("lazy", reader.Lazy)
	kvs.Add(TablesDirectoryKey, reader.TablesDirectory)
	if reader.OfflineLogicalFormsDirectory != "" {
		kvs.Add(OfflineLogicalFormsDirectoryKey, reader.OfflineLogicalFormsDirectory)
		kvs.Add("max_offline_logical_forms", reader.MaxOfflineLogicalForms)
	}
	kvs.Add("keep_if_no_logical_forms", reader.KeepIfNoLogicalForms)
	kvs.Add("output_agendas", reader.OutputAgendas)
	if reader.EmbeddingFileForEntityExtraction != "" {
		kvs.Add(EmbeddingFileForEntityExtractionKey, reader.EmbeddingFileForEntityExtraction)
		kvs.Add("distance_threshold_for_entity_extraction", reader.DistanceThresholdForEntityExtraction)
	}
	return kvs
}

func (config *Config) modelKVs() table.KeyValuePairs {
	modelFields := config.Model.GetModelFields()
	var kvs table.KeyValuePairs
	kvs.Add(TypeKey, modelFields.Type.String())
	kvs.Add("question_embedder.tokens.type", modelFields.QuestionEmbedder.Tokens.Type)
	kvs.Add("question_embedder.tokens.embedding_dim", modelFields.QuestionEmbedder.Tokens.EmbeddingDim)
	kvs.Add("question_embedder.tokens.trainable", modelFields.QuestionEmbedder.Tokens.Trainable)
	kvs.Add("action_embedding_dim", modelFields.ActionEmbeddingDim)
	kvs.Add("encoder.type", modelFields.Encoder.Type.String())
	kvs.Add("encoder.input_size", modelFields.Encoder.InputSize)
	kvs.Add("encoder.hidden_size", modelFields.Encoder.HiddenSize)
	kvs.Add("encoder.num_layers", modelFields.Encoder.NumLayers)
	kvs.Add("encoder.bidirectional", modelFields.Encoder.Bidirectional)
	kvs.Add("entity_encoder.type", modelFields.EntityEncoder.Type)
	kvs.Add("entity_encoder.embedding_dim", modelFields.EntityEncoder.EmbeddingDim)
	kvs.Add("entity_encoder.averaged", modelFields.EntityEncoder.Averaged)
	kvs.Add("decoder_beam_search.beam_size", modelFields.DecoderBeamSearch.BeamSize)
	kvs.Add("max_decoding_steps", modelFields.MaxDecodingSteps)
	kvs.Add("attention.type", modelFields.Attention.AttentionType().String())
	kvs.Add("dropout", modelFields.Dropout)

	if ermModel, ok := config.Model.(*ERMModel); ok {
		if ermModel.MMLModelFile != nil {
			kvs.Add("mml_model_file", *ermModel.MMLModelFile)
		}
		if ermModel.DecoderNumFinishedStates != nil {
			kvs.Add("decoder_num_finished_states", *ermModel.DecoderNumFinishedStates)
		}
		kvs.Add("normalize_beam_score_by_length", ermModel.NormalizeBeamScoreByLength)
	}
	return kvs
}

func (config *Config) iteratorKVs() table.KeyValuePairs {
	var kvs table.KeyValuePairs
	kvs.Add(TypeKey, config.Iterator.Type.String())
	if len(config.Iterator.SortingKeys) > 0 {
		kvs.Add(SortingKeysKey, config.Iterator.SortingKeys)
		kvs.Add("padding_noise", config.Iterator.PaddingNoise)
	}
	kvs.Add("batch_size", config.Iterator.BatchSize)
	return kvs
}

func (config *Config) trainerKVs() table.KeyValuePairs {
	trainer := config.Trainer
	var kvs table.KeyValuePairs
	kvs.Add("num_epochs", trainer.NumEpochs)
	if trainer.Patience != nil {
		kvs.Add(PatienceKey, *trainer.Patience)
	}
	kvs.Add("cuda_device", trainer.CudaDevice)
	if trainer.GradClipping != nil {
		kvs.Add("grad_clipping", *trainer.GradClipping)
	}
	kvs.Add("optimizer.type", trainer.Optimizer.OptimizerType().String())
	if lr := trainer.Optimizer.LearningRate(); lr != nil {
		kvs.Add("optimizer.lr", *lr)
	}
	return kvs
}

// Tree renders the validated configuration as a tree
func (config *Config) Tree() string {
	tree := treeprint.New()
	tree.SetValue("experiment")

	dataBranch := tree.AddBranch("data")
	dataBranch.AddNode(TrainDataPathKey + ": " + config.TrainDataPath)
	dataBranch.AddNode(ValidationDataPathKey + ": " + config.ValidationDataPath)

	readerBranch := tree.AddBranch(DatasetReaderKey + ": " + config.DatasetReader.Type)
	readerBranch.AddNode(TablesDirectoryKey + ": " + config.DatasetReader.TablesDirectory)
	if config.DatasetReader.OfflineLogicalFormsDirectory != "" {
		readerBranch.AddNode(OfflineLogicalFormsDirectoryKey + ": " + config.DatasetReader.OfflineLogicalFormsDirectory)
	}
	if config.DatasetReader.EmbeddingFileForEntityExtraction != "" {
		readerBranch.AddNode(EmbeddingFileForEntityExtractionKey + ": " + config.DatasetReader.EmbeddingFileForEntityExtraction)
	}

	modelFields := config.Model.GetModelFields()
	modelBranch := tree.AddBranch(ModelKey + ": " + modelFields.Type.String())
	embedderBranch := modelBranch.AddBranch(QuestionEmbedderKey)
	embedderBranch.AddNode("tokens: " + modelFields.QuestionEmbedder.Tokens.Type +
		" (embedding_dim " + s.Int(modelFields.QuestionEmbedder.Tokens.EmbeddingDim) + ")")
	encoderBranch := modelBranch.AddBranch(EncoderKey + ": " + modelFields.Encoder.Type.String())
	encoderBranch.AddNode("input_size: " + s.Int(modelFields.Encoder.InputSize))
	encoderBranch.AddNode("hidden_size: " + s.Int(modelFields.Encoder.HiddenSize))
	encoderBranch.AddNode("num_layers: " + s.Int(modelFields.Encoder.NumLayers))
	entityBranch := modelBranch.AddBranch(EntityEncoderKey + ": " + modelFields.EntityEncoder.Type)
	entityBranch.AddNode("embedding_dim: " + s.Int(modelFields.EntityEncoder.EmbeddingDim))
	modelBranch.AddNode("decoder_beam_search.beam_size: " + s.Int(modelFields.DecoderBeamSearch.BeamSize))
	modelBranch.AddNode("max_decoding_steps: " + s.Int(modelFields.MaxDecodingSteps))
	modelBranch.AddNode("attention: " + modelFields.Attention.AttentionType().String())

	iteratorBranch := tree.AddBranch(IteratorKey + ": " + config.Iterator.Type.String())
	iteratorBranch.AddNode("batch_size: " + s.Int(config.Iterator.BatchSize))

	trainerBranch := tree.AddBranch(TrainerKey)
	trainerBranch.AddNode("num_epochs: " + s.Int(config.Trainer.NumEpochs))
	if config.Trainer.Patience != nil {
		trainerBranch.AddNode("patience: " + s.Int(*config.Trainer.Patience))
	}
	trainerBranch.AddNode("cuda_device: " + s.Int(config.Trainer.CudaDevice))
	trainerBranch.AddNode("optimizer: " + config.Trainer.Optimizer.OptimizerType().String())

	return tree.String()
}
