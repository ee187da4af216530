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

package logging

import (
	"fmt"
	"strings"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
)

const (
	ErrInvalidLogLevel = "logging.invalid_log_level"
)

func ErrorInvalidLogLevel(provided string, allowed []string) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidLogLevel,
		Message: fmt.Sprintf("invalid log level %s; must be one of %s", provided, strings.Join(allowed, ", ")),
	})
}
