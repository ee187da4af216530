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

package spec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	libjson "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/json"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/types/experiment"
)

const testConfigJSON = `
{
  "dataset_reader": {
    "type": "drop-semantic-parser",
    "tables_directory": "data/drop/tables"
  },
  "train_data_path": "data/drop/drop_dataset_train.json",
  "validation_data_path": "data/drop/drop_dataset_dev.json",
  "model": {
    "type": "drop-parser-mml",
    "question_embedder": {
      "tokens": {"type": "embedding", "embedding_dim": 100}
    },
    "action_embedding_dim": 100,
    "encoder": {"type": "lstm", "input_size": 100, "hidden_size": 100},
    "entity_encoder": {"type": "bag_of_embeddings", "embedding_dim": 100},
    "decoder_beam_search": {"beam_size": 10},
    "max_decoding_steps": 40,
    "attention": {"type": "dot_product"}
  },
  "iterator": {
    "type": "bucket",
    "sorting_keys": [["question", "num_tokens"]],
    "batch_size": 32
  },
  "trainer": {
    "num_epochs": 50,
    "optimizer": {"type": "sgd", "lr": 0.01}
  }
}
`

func testConfig(t *testing.T) *experiment.Config {
	config, errs := experiment.FromBytes([]byte(testConfigJSON))
	require.False(t, errors.HasError(errs))
	return config
}

func TestNewSpec(t *testing.T) {
	config := testConfig(t)

	experimentSpec, err := New(config, "/experiments/drop_parser_mml.json")
	require.NoError(t, err)

	require.Len(t, experimentSpec.ID, 64)
	require.Equal(t, "drop_parser_mml.json", experimentSpec.FileName)
	require.NotEmpty(t, experimentSpec.RawConfig)
	require.Equal(t, config, experimentSpec.Config)
}

func TestSpecIDDeterministic(t *testing.T) {
	spec1, err := New(testConfig(t), "a.json")
	require.NoError(t, err)
	spec2, err := New(testConfig(t), "b.json")
	require.NoError(t, err)

	require.Equal(t, spec1.ID, spec2.ID)
}

func TestSpecIDChangesWithConfig(t *testing.T) {
	spec1, err := New(testConfig(t), "a.json")
	require.NoError(t, err)

	config := testConfig(t)
	config.Iterator.BatchSize = 64
	spec2, err := New(config, "a.json")
	require.NoError(t, err)

	require.NotEqual(t, spec1.ID, spec2.ID)
}

func TestMsgpackRoundTrip(t *testing.T) {
	experimentSpec, err := New(testConfig(t), "drop_parser_mml.json")
	require.NoError(t, err)

	specBytes, err := experimentSpec.Msgpack()
	require.NoError(t, err)

	loaded, err := FromMsgpack(specBytes)
	require.NoError(t, err)

	require.Equal(t, experimentSpec.ID, loaded.ID)
	require.Equal(t, experimentSpec.FileName, loaded.FileName)
	require.Equal(t, experimentSpec.RawConfig, loaded.RawConfig)
	require.NotNil(t, loaded.Config)
	require.Equal(t, experimentSpec.Config.Iterator.BatchSize, loaded.Config.Iterator.BatchSize)
}

func TestExportedJSONRevalidates(t *testing.T) {
	experimentSpec, err := New(testConfig(t), "drop_parser_mml.json")
	require.NoError(t, err)

	jsonBytes, err := experimentSpec.JSON()
	require.NoError(t, err)

	// the normalized document must be accepted by the validator again,
	// even though the optional trainer fields were never set
	_, errs := experiment.FromBytes(jsonBytes)
	require.False(t, errors.HasError(errs))
}

func TestJSONExport(t *testing.T) {
	experimentSpec, err := New(testConfig(t), "drop_parser_mml.json")
	require.NoError(t, err)

	jsonBytes, err := experimentSpec.JSON()
	require.NoError(t, err)

	var exported map[string]interface{}
	require.NoError(t, libjson.Unmarshal(jsonBytes, &exported))
	require.Equal(t, "drop-parser-mml", exported["model"].(map[string]interface{})["type"])
}