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
	"testing"

	"github.com/stretchr/testify/require"

	cr "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/configreader"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/json"
)

const validConfigJSON = `
{
  "dataset_reader": {
    "type": "drop-semantic-parser",
    "tables_directory": "data/drop/tables",
    "offline_logical_forms_directory": "data/drop/offline_logical_forms",
    "keep_if_no_logical_forms": false,
    "embedding_file_for_entity_extraction": "data/glove.6B.50d.txt"
  },
  "train_data_path": "data/drop/drop_dataset_train.json",
  "validation_data_path": "data/drop/drop_dataset_dev.json",
  "model": {
    "type": "drop-parser-mml",
    "question_embedder": {
      "tokens": {
        "type": "embedding",
        "embedding_dim": 100
      }
    },
    "action_embedding_dim": 100,
    "encoder": {
      "type": "lstm",
      "input_size": 100,
      "hidden_size": 100,
      "bidirectional": true
    },
    "entity_encoder": {
      "type": "bag_of_embeddings",
      "embedding_dim": 100,
      "averaged": true
    },
    "decoder_beam_search": {
      "beam_size": 10
    },
    "max_decoding_steps": 40,
    "attention": {
      "type": "dot_product"
    },
    "dropout": 0.2
  },
  "iterator": {
    "type": "bucket",
    "sorting_keys": [["question", "num_tokens"]],
    "padding_noise": 0.0,
    "batch_size": 32
  },
  "trainer": {
    "num_epochs": 50,
    "patience": 10,
    "cuda_device": -1,
    "optimizer": {
      "type": "sgd",
      "lr": 0.01
    }
  }
}
`

// the JSON reader keeps nested objects as map[string]interface{}, so tests
// can reach into the document to mutate it
func parsedValidConfig(t *testing.T) map[string]interface{} {
	doc, ok := cr.MustReadJSONStr(validConfigJSON).(map[string]interface{})
	require.True(t, ok)
	return doc
}

func TestValidConfig(t *testing.T) {
	config, errs := FromBytes([]byte(validConfigJSON))
	if errors.HasError(errs) {
		for _, err := range errs {
			t.Log("ERROR: " + err.Error())
		}
	}
	require.False(t, errors.HasError(errs))
	require.NotNil(t, config)

	require.Equal(t, DatasetReaderType, config.DatasetReader.Type)
	require.Equal(t, 100, config.DatasetReader.MaxOfflineLogicalForms) // default
	require.Equal(t, 0.3, config.DatasetReader.DistanceThresholdForEntityExtraction)

	mmlModel, ok := config.Model.(*MMLModel)
	require.True(t, ok)
	require.Equal(t, MMLModelType, mmlModel.Type)
	require.True(t, mmlModel.QuestionEmbedder.Tokens.Trainable) // default
	require.Equal(t, LSTMEncoderType, mmlModel.Encoder.Type)
	require.Equal(t, 1, mmlModel.Encoder.NumLayers) // default
	require.Equal(t, 10, mmlModel.DecoderBeamSearch.BeamSize)

	attention, ok := mmlModel.Attention.(*DotProductAttention)
	require.True(t, ok)
	require.Equal(t, DotProductAttentionType, attention.Type)

	require.Equal(t, BucketIteratorType, config.Iterator.Type)
	require.Equal(t, [][]string{{"question", "num_tokens"}}, config.Iterator.SortingKeys)

	require.Equal(t, 50, config.Trainer.NumEpochs)
	require.Equal(t, -1, config.Trainer.CudaDevice)

	sgd, ok := config.Trainer.Optimizer.(*SGDOptimizer)
	require.True(t, ok)
	require.Equal(t, 0.01, sgd.LR)
}

func TestEmptyDocument(t *testing.T) {
	_, errs := FromBytes(nil)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), ErrParseExperiment)
}

func TestNormalizedConfigRevalidates(t *testing.T) {
	doc := parsedValidConfig(t)
	delete(doc["trainer"].(map[string]interface{}), "patience")

	config, errs := FromParsed(doc)
	require.False(t, errors.HasError(errs))
	require.Nil(t, config.Trainer.Patience)
	require.Nil(t, config.Trainer.GradClipping)

	normalized, err := json.Marshal(config)
	require.NoError(t, err)

	_, errs = FromBytes(normalized)
	require.False(t, errors.HasError(errs))
}

func TestExplicitNullOptionals(t *testing.T) {
	doc := parsedValidConfig(t)
	trainer := doc["trainer"].(map[string]interface{})
	trainer["patience"] = nil
	trainer["grad_clipping"] = nil

	config, errs := FromParsed(doc)
	require.False(t, errors.HasError(errs))
	require.Nil(t, config.Trainer.Patience)
	require.Nil(t, config.Trainer.GradClipping)
}

func TestERMModel(t *testing.T) {
	doc := parsedValidConfig(t)
	model := doc["model"].(map[string]interface{})
	model["type"] = "drop-parser-erm"
	model["mml_model_file"] = "models/mml/model.tar.gz"
	model["decoder_num_finished_states"] = 100
	model["normalize_beam_score_by_length"] = true

	config, errs := FromParsed(doc)
	require.False(t, errors.HasError(errs))

	ermModel, ok := config.Model.(*ERMModel)
	require.True(t, ok)
	require.Equal(t, ERMModelType, ermModel.Type)
	require.Equal(t, "models/mml/model.tar.gz", *ermModel.MMLModelFile)
	require.Equal(t, 100, *ermModel.DecoderNumFinishedStates)
	require.True(t, ermModel.NormalizeBeamScoreByLength)
}

func TestMissingModelType(t *testing.T) {
	doc := parsedValidConfig(t)
	model := doc["model"].(map[string]interface{})
	delete(model, "type")

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), cr.ErrMustBeDefined)
}

func TestUnknownModelType(t *testing.T) {
	doc := parsedValidConfig(t)
	model := doc["model"].(map[string]interface{})
	model["type"] = "drop-parser-qba"

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), cr.ErrInvalidStr)
}

func TestEmptyTrainDataPath(t *testing.T) {
	doc := parsedValidConfig(t)
	doc["train_data_path"] = ""

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), cr.ErrCannotBeEmpty)
}

func TestNonPositiveInts(t *testing.T) {
	doc := parsedValidConfig(t)
	doc["iterator"].(map[string]interface{})["batch_size"] = 0
	doc["model"].(map[string]interface{})["max_decoding_steps"] = -5

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Len(t, errs, 2)
	for _, kind := range errorKinds(errs) {
		require.Equal(t, cr.ErrMustBeGreaterThan, kind)
	}
}

func TestDropoutOutOfRange(t *testing.T) {
	doc := parsedValidConfig(t)
	doc["model"].(map[string]interface{})["dropout"] = 1.0

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), cr.ErrMustBeLessThan)
}

func TestUnknownKeyRejected(t *testing.T) {
	doc := parsedValidConfig(t)
	doc["trainer"].(map[string]interface{})["grad_cliping"] = 5.0

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), cr.ErrUnsupportedKey)
}

func TestEncoderInputSizeMismatch(t *testing.T) {
	doc := parsedValidConfig(t)
	encoder := doc["model"].(map[string]interface{})["encoder"].(map[string]interface{})
	encoder["input_size"] = 200

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), ErrEncoderInputSizeMismatch)
}

func TestEntityEncoderDimMismatch(t *testing.T) {
	doc := parsedValidConfig(t)
	entityEncoder := doc["model"].(map[string]interface{})["entity_encoder"].(map[string]interface{})
	entityEncoder["embedding_dim"] = 50

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), ErrEntityEncoderDimMismatch)
}

func TestMalformedSortingKey(t *testing.T) {
	doc := parsedValidConfig(t)
	doc["iterator"].(map[string]interface{})["sorting_keys"] = []interface{}{
		[]interface{}{"question"},
	}

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), ErrInvalidSortingKey)
}

func TestBucketIteratorRequiresSortingKeys(t *testing.T) {
	doc := parsedValidConfig(t)
	delete(doc["iterator"].(map[string]interface{}), "sorting_keys")

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), ErrSortingKeysRequired)
}

func TestBasicIteratorAllowsMissingSortingKeys(t *testing.T) {
	doc := parsedValidConfig(t)
	iterator := doc["iterator"].(map[string]interface{})
	iterator["type"] = "basic"
	delete(iterator, "sorting_keys")

	config, errs := FromParsed(doc)
	require.False(t, errors.HasError(errs))
	require.Equal(t, BasicIteratorType, config.Iterator.Type)
	require.Empty(t, config.Iterator.SortingKeys)
}

func TestPatienceExceedsNumEpochs(t *testing.T) {
	doc := parsedValidConfig(t)
	doc["trainer"].(map[string]interface{})["patience"] = 100

	_, errs := FromParsed(doc)
	require.True(t, errors.HasError(errs))
	require.Contains(t, errorKinds(errs), ErrPatienceExceedsNumEpochs)
}

func TestAdditiveAttention(t *testing.T) {
	doc := parsedValidConfig(t)
	model := doc["model"].(map[string]interface{})
	model["attention"] = map[string]interface{}{
		"type":       "additive",
		"vector_dim": 200,
		"matrix_dim": 200,
	}

	config, errs := FromParsed(doc)
	require.False(t, errors.HasError(errs))

	attention, ok := config.Model.GetModelFields().Attention.(*AdditiveAttention)
	require.True(t, ok)
	require.Equal(t, AdditiveAttentionType, attention.Type)
	require.Equal(t, 200, attention.VectorDim)
	require.True(t, attention.Normalize) // default
}

func TestAdamOptimizer(t *testing.T) {
	doc := parsedValidConfig(t)
	doc["trainer"].(map[string]interface{})["optimizer"] = map[string]interface{}{
		"type": "adam",
		"lr":   0.001,
	}

	config, errs := FromParsed(doc)
	require.False(t, errors.HasError(errs))

	adam, ok := config.Trainer.Optimizer.(*AdamOptimizer)
	require.True(t, ok)
	require.Equal(t, 0.001, *adam.LR)
}

func errorKinds(errs []error) []string {
	kinds := make([]string, len(errs))
	for i, err := range errs {
		kinds[i] = errors.GetKind(err)
	}
	return kinds
}
