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

package configreader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	s "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/strings"
)

const (
	ErrParseConfig                = "configreader.parse_config"
	ErrUnsupportedFieldValidation = "configreader.unsupported_field_validation"
	ErrUnsupportedKey             = "configreader.unsupported_key"
	ErrInvalidYAML                = "configreader.invalid_yaml"
	ErrInvalidInterface           = "configreader.invalid_interface"
	ErrInvalidFloat64             = "configreader.invalid_float64"
	ErrInvalidInt                 = "configreader.invalid_int"
	ErrInvalidStr                 = "configreader.invalid_str"
	ErrMustBeLessThanOrEqualTo    = "configreader.must_be_less_than_or_equal_to"
	ErrMustBeLessThan             = "configreader.must_be_less_than"
	ErrMustBeGreaterThanOrEqualTo = "configreader.must_be_greater_than_or_equal_to"
	ErrMustBeGreaterThan          = "configreader.must_be_greater_than"
	ErrInvalidPrimitiveType       = "configreader.invalid_primitive_type"
	ErrDisallowedValue            = "configreader.disallowed_value"
	ErrDuplicatedValue            = "configreader.duplicated_value"
	ErrCannotSetStructField       = "configreader.cannot_set_struct_field"
	ErrCannotBeNull               = "configreader.cannot_be_null"
	ErrCannotBeEmpty              = "configreader.cannot_be_empty"
	ErrMustBeDefined              = "configreader.must_be_defined"
	ErrFieldCantBeSpecified       = "configreader.field_cant_be_specified"
	ErrTooFewElements             = "configreader.too_few_elements"
	ErrTooManyElements            = "configreader.too_many_elements"
)

func ErrorParseConfig() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrParseConfig,
		Message: "failed to parse config file",
	})
}

func ErrorUnsupportedFieldValidation() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnsupportedFieldValidation,
		Message: "undefined or unsupported field validation",
	})
}

func ErrorUnsupportedKey(key interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnsupportedKey,
		Message: fmt.Sprintf("key %s is not supported", s.UserStr(key)),
	})
}

func ErrorInvalidYAML(err error) error {
	str := strings.TrimPrefix(err.Error(), "yaml: ")
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidYAML,
		Message: fmt.Sprintf("invalid yaml: %s", str),
	})
}

func ErrorInvalidInterface(provided interface{}, allowed interface{}, allowedVals ...interface{}) error {
	allAllowedVals := append([]interface{}{allowed}, allowedVals...)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidInterface,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.UserStrsOr(allAllowedVals)),
	})
}

func ErrorInvalidFloat64(provided float64, allowed float64, allowedVals ...float64) error {
	allAllowedVals := append([]float64{allowed}, allowedVals...)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidFloat64,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.UserStrsOr(allAllowedVals)),
	})
}

func ErrorInvalidInt(provided int, allowed int, allowedVals ...int) error {
	allAllowedVals := append([]int{allowed}, allowedVals...)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidInt,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.UserStrsOr(allAllowedVals)),
	})
}

func ErrorInvalidStr(provided string, allowed string, allowedVals ...string) error {
	allAllowedVals := append([]string{allowed}, allowedVals...)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidStr,
		Message: fmt.Sprintf("invalid value (got %s, must be %s)", s.UserStr(provided), s.UserStrsOr(allAllowedVals)),
	})
}

func ErrorMustBeLessThanOrEqualTo(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeLessThanOrEqualTo,
		Message: fmt.Sprintf("%s must be less than or equal to %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeLessThan(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeLessThan,
		Message: fmt.Sprintf("%s must be less than %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeGreaterThanOrEqualTo(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeGreaterThanOrEqualTo,
		Message: fmt.Sprintf("%s must be greater than or equal to %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorMustBeGreaterThan(provided interface{}, boundary interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeGreaterThan,
		Message: fmt.Sprintf("%s must be greater than %s", s.UserStr(provided), s.UserStr(boundary)),
	})
}

func ErrorInvalidPrimitiveType(provided interface{}, allowedType PrimitiveType, allowedTypes ...PrimitiveType) error {
	allAllowedTypes := append([]PrimitiveType{allowedType}, allowedTypes...)
	return errors.WithStack(&errors.Error{
		Kind:    ErrInvalidPrimitiveType,
		Message: fmt.Sprintf("%s: invalid type (expected %s)", s.UserStr(provided), s.StrsOr(PrimitiveTypes(allAllowedTypes).StringList())),
	})
}

func ErrorDisallowedValue(provided interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrDisallowedValue,
		Message: fmt.Sprintf("%s is not allowed", s.UserStr(provided)),
	})
}

func ErrorDuplicatedValue(provided interface{}) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrDuplicatedValue,
		Message: fmt.Sprintf("%s is duplicated", s.UserStr(provided)),
	})
}

func ErrorCannotSetStructField() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotSetStructField,
		Message: "unable to set struct field",
	})
}

func ErrorCannotBeNull(isRequired bool) error {
	message := "cannot be null"
	if isRequired {
		message = "cannot be null (and must be defined)"
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeNull,
		Message: message,
	})
}

func ErrorCannotBeEmptyOrNull(isRequired bool) error {
	message := "cannot be empty or null"
	if isRequired {
		message = "cannot be empty or null (and must be defined)"
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeEmpty,
		Message: message,
	})
}

func ErrorCannotBeEmpty() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrCannotBeEmpty,
		Message: "cannot be empty",
	})
}

func ErrorMustBeDefined(allowedValues ...interface{}) error {
	message := "must be defined"
	if len(allowedValues) == 1 {
		if interSlice, ok := allowedValues[0].([]interface{}); ok {
			allowedValues = interSlice
		} else if reflect.TypeOf(allowedValues[0]).Kind() == reflect.Slice {
			v := reflect.ValueOf(allowedValues[0])
			allowedValues = make([]interface{}, v.Len())
			for i := 0; i < v.Len(); i++ {
				allowedValues[i] = v.Index(i).Interface()
			}
		}
	}
	if len(allowedValues) > 0 {
		message = fmt.Sprintf("must be defined, and set to one of the following: %s", s.UserStrsOr(allowedValues))
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrMustBeDefined,
		Message: message,
	})
}

func ErrorFieldCantBeSpecified(errMsg string) error {
	message := errMsg
	if message == "" {
		message = "cannot be specified"
	}
	return errors.WithStack(&errors.Error{
		Kind:    ErrFieldCantBeSpecified,
		Message: message,
	})
}

func ErrorTooFewElements(minLength int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooFewElements,
		Message: fmt.Sprintf("must contain at least %d element%s", minLength, s.SIfPlural(minLength)),
	})
}

func ErrorTooManyElements(maxLength int) error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrTooManyElements,
		Message: fmt.Sprintf("must contain at most %d element%s", maxLength, s.SIfPlural(maxLength)),
	})
}
