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

const (
	DatasetReaderKey      = "dataset_reader"
	TrainDataPathKey      = "train_data_path"
	ValidationDataPathKey = "validation_data_path"
	ModelKey              = "model"
	IteratorKey           = "iterator"
	TrainerKey            = "trainer"

	TypeKey                             = "type"
	TablesDirectoryKey                  = "tables_directory"
	OfflineLogicalFormsDirectoryKey     = "offline_logical_forms_directory"
	EmbeddingFileForEntityExtractionKey = "embedding_file_for_entity_extraction"

	QuestionEmbedderKey = "question_embedder"
	EncoderKey          = "encoder"
	EntityEncoderKey    = "entity_encoder"
	InputSizeKey        = "input_size"
	EmbeddingDimKey     = "embedding_dim"

	SortingKeysKey = "sorting_keys"
	PatienceKey    = "patience"
)
