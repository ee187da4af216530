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
	"fmt"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	s "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/strings"
)

const (
	ErrParseExperiment          = "experiment.parse_experiment"
	ErrInvalidSortingKey        = "experiment.invalid_sorting_key"
	ErrSortingKeysRequired      = "experiment.sorting_keys_required"
	ErrEncoderInputSizeMismatch = "experiment.encoder_input_size_mismatch"
	ErrEntityEncoderDimMismatch = "experiment.entity_encoder_dim_mismatch"
	ErrPatienceExceedsNumEpochs = "experiment.patience_exceeds_num_epochs"
)

func ErrorParseExperiment() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrParseExperiment,
		Message: "unable to parse experiment configuration",
	})
}

func ErrorInvalidSortingKey(provided interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidSortingKey,
		Message: fmt.Sprintf("%s: sorting keys must be [field, padding_key] pairs", s.UserStr(provided)),
	})
}

func ErrorSortingKeysRequired(iteratorType IteratorType) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrSortingKeysRequired,
		Message: fmt.Sprintf("sorting_keys must be specified when using the %s iterator", s.UserStr(iteratorType.String())),
	})
}

func ErrorEncoderInputSizeMismatch(inputSize int, embeddingDim int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrEncoderInputSizeMismatch,
		Message: fmt.Sprintf("encoder input_size (%d) must match question_embedder embedding_dim (%d)", inputSize, embeddingDim),
	})
}

func ErrorEntityEncoderDimMismatch(entityEncoderDim int, embeddingDim int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrEntityEncoderDimMismatch,
		Message: fmt.Sprintf("entity_encoder embedding_dim (%d) must match question_embedder embedding_dim (%d)", entityEncoderDim, embeddingDim),
	})
}

func ErrorPatienceExceedsNumEpochs(patience int, numEpochs int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrPatienceExceedsNumEpochs,
		Message: fmt.Sprintf("patience (%d) must not exceed num_epochs (%d)", patience, numEpochs),
	})
}
