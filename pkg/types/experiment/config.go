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

// Component tags with a single known implementation
const (
	DatasetReaderType = "drop-semantic-parser"
	TokenEmbedderType = "embedding"
	EntityEncoderType = "bag_of_embeddings"
)

type Config struct {
	DatasetReader      *DatasetReader `json:"dataset_reader" yaml:"dataset_reader"`
	TrainDataPath      string         `json:"train_data_path" yaml:"train_data_path"`
	ValidationDataPath string         `json:"validation_data_path" yaml:"validation_data_path"`
	Model              Model          `json:"model" yaml:"model"`
	Iterator           *Iterator      `json:"iterator" yaml:"iterator"`
	Trainer            *Trainer       `json:"trainer" yaml:"trainer"`
}

type DatasetReader struct {
	Type                                 string  `json:"type" yaml:"type"`
	Lazy                                 bool    `json:"lazy" yaml:"lazy"`
	TablesDirectory                      string  `json:"tables_directory" yaml:"tables_directory"`
	OfflineLogicalFormsDirectory         string  `json:"offline_logical_forms_directory" yaml:"offline_logical_forms_directory"`
	MaxOfflineLogicalForms               int     `json:"max_offline_logical_forms" yaml:"max_offline_logical_forms"`
	KeepIfNoLogicalForms                 bool    `json:"keep_if_no_logical_forms" yaml:"keep_if_no_logical_forms"`
	OutputAgendas                        bool    `json:"output_agendas" yaml:"output_agendas"`
	EmbeddingFileForEntityExtraction     string  `json:"embedding_file_for_entity_extraction" yaml:"embedding_file_for_entity_extraction"`
	DistanceThresholdForEntityExtraction float64 `json:"distance_threshold_for_entity_extraction" yaml:"distance_threshold_for_entity_extraction"`
}

type Model interface {
	GetModelFields() *ModelFields
	ModelType() ModelType
}

// ModelFields are shared by all parser variants
type ModelFields struct {
	Type               ModelType         `json:"type" yaml:"type"`
	QuestionEmbedder   *QuestionEmbedder `json:"question_embedder" yaml:"question_embedder"`
	ActionEmbeddingDim int               `json:"action_embedding_dim" yaml:"action_embedding_dim"`
	Encoder            *Encoder          `json:"encoder" yaml:"encoder"`
	EntityEncoder      *EntityEncoder    `json:"entity_encoder" yaml:"entity_encoder"`
	DecoderBeamSearch  *BeamSearch       `json:"decoder_beam_search" yaml:"decoder_beam_search"`
	MaxDecodingSteps   int               `json:"max_decoding_steps" yaml:"max_decoding_steps"`
	Attention          Attention         `json:"attention" yaml:"attention"`
	Dropout            float64           `json:"dropout" yaml:"dropout"`
}

func (m *ModelFields) GetModelFields() *ModelFields {
	return m
}

func (m *ModelFields) ModelType() ModelType {
	return m.Type
}

// MMLModel trains on offline logical forms with maximum marginal likelihood
type MMLModel struct {
	ModelFields
}

// ERMModel searches for logical forms during training, guided by agendas
type ERMModel struct {
	ModelFields
	MMLModelFile               *string `json:"mml_model_file,omitempty" yaml:"mml_model_file,omitempty"`
	DecoderNumFinishedStates   *int    `json:"decoder_num_finished_states,omitempty" yaml:"decoder_num_finished_states,omitempty"`
	NormalizeBeamScoreByLength bool    `json:"normalize_beam_score_by_length" yaml:"normalize_beam_score_by_length"`
}

type QuestionEmbedder struct {
	Tokens *TokenEmbedder `json:"tokens" yaml:"tokens"`
}

type TokenEmbedder struct {
	Type         string `json:"type" yaml:"type"`
	EmbeddingDim int    `json:"embedding_dim" yaml:"embedding_dim"`
	Trainable    bool   `json:"trainable" yaml:"trainable"`
}

type Encoder struct {
	Type          EncoderType `json:"type" yaml:"type"`
	InputSize     int         `json:"input_size" yaml:"input_size"`
	HiddenSize    int         `json:"hidden_size" yaml:"hidden_size"`
	NumLayers     int         `json:"num_layers" yaml:"num_layers"`
	Bidirectional bool        `json:"bidirectional" yaml:"bidirectional"`
}

type EntityEncoder struct {
	Type         string `json:"type" yaml:"type"`
	EmbeddingDim int    `json:"embedding_dim" yaml:"embedding_dim"`
	Averaged     bool   `json:"averaged" yaml:"averaged"`
}

type BeamSearch struct {
	BeamSize int `json:"beam_size" yaml:"beam_size"`
}

type Attention interface {
	AttentionType() AttentionType
}

type DotProductAttention struct {
	Type AttentionType `json:"type" yaml:"type"`
}

func (a *DotProductAttention) AttentionType() AttentionType {
	return a.Type
}

type BilinearAttention struct {
	Type      AttentionType `json:"type" yaml:"type"`
	VectorDim int           `json:"vector_dim" yaml:"vector_dim"`
	MatrixDim int           `json:"matrix_dim" yaml:"matrix_dim"`
}

func (a *BilinearAttention) AttentionType() AttentionType {
	return a.Type
}

type AdditiveAttention struct {
	Type      AttentionType `json:"type" yaml:"type"`
	VectorDim int           `json:"vector_dim" yaml:"vector_dim"`
	MatrixDim int           `json:"matrix_dim" yaml:"matrix_dim"`
	Normalize bool          `json:"normalize" yaml:"normalize"`
}

func (a *AdditiveAttention) AttentionType() AttentionType {
	return a.Type
}

type Iterator struct {
	Type         IteratorType `json:"type" yaml:"type"`
	SortingKeys  [][]string   `json:"sorting_keys" yaml:"sorting_keys"`
	PaddingNoise float64      `json:"padding_noise" yaml:"padding_noise"`
	BatchSize    int          `json:"batch_size" yaml:"batch_size"`
}

type Trainer struct {
	NumEpochs    int       `json:"num_epochs" yaml:"num_epochs"`
	Patience     *int      `json:"patience,omitempty" yaml:"patience,omitempty"`
	CudaDevice   int       `json:"cuda_device" yaml:"cuda_device"`
	GradClipping *float64  `json:"grad_clipping,omitempty" yaml:"grad_clipping,omitempty"`
	Optimizer    Optimizer `json:"optimizer" yaml:"optimizer"`
}

type Optimizer interface {
	OptimizerType() OptimizerType
	LearningRate() *float64
}

type SGDOptimizer struct {
	Type     OptimizerType `json:"type" yaml:"type"`
	LR       float64       `json:"lr" yaml:"lr"`
	Momentum float64       `json:"momentum" yaml:"momentum"`
}

func (o *SGDOptimizer) OptimizerType() OptimizerType {
	return o.Type
}

func (o *SGDOptimizer) LearningRate() *float64 {
	return &o.LR
}

type AdamOptimizer struct {
	Type OptimizerType `json:"type" yaml:"type"`
	LR   *float64      `json:"lr,omitempty" yaml:"lr,omitempty"`
}

func (o *AdamOptimizer) OptimizerType() OptimizerType {
	return o.Type
}

func (o *AdamOptimizer) LearningRate() *float64 {
	return o.LR
}

type AdagradOptimizer struct {
	Type OptimizerType `json:"type" yaml:"type"`
	LR   *float64      `json:"lr,omitempty" yaml:"lr,omitempty"`
}

func (o *AdagradOptimizer) OptimizerType() OptimizerType {
	return o.Type
}

func (o *AdagradOptimizer) LearningRate() *float64 {
	return o.LR
}

type RMSPropOptimizer struct {
	Type  OptimizerType `json:"type" yaml:"type"`
	LR    *float64      `json:"lr,omitempty" yaml:"lr,omitempty"`
	Alpha *float64      `json:"alpha,omitempty" yaml:"alpha,omitempty"`
}

func (o *RMSPropOptimizer) OptimizerType() OptimizerType {
	return o.Type
}

func (o *RMSPropOptimizer) LearningRate() *float64 {
	return o.LR
}
