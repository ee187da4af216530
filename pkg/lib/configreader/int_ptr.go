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
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/cast"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
)

type IntPtrValidation struct {
	Required              bool
	Default               *int
	AllowExplicitNull     bool
	AllowedValues         []int
	DisallowedValues      []int
	CantBeSpecifiedErrStr *string
	GreaterThan           *int
	GreaterThanOrEqualTo  *int
	LessThan              *int
	LessThanOrEqualTo     *int
	Validator             func(int) (int, error)
}

func makeIntValValidation(v *IntPtrValidation) *IntValidation {
	return &IntValidation{
		AllowedValues:        v.AllowedValues,
		DisallowedValues:     v.DisallowedValues,
		GreaterThan:          v.GreaterThan,
		GreaterThanOrEqualTo: v.GreaterThanOrEqualTo,
		LessThan:             v.LessThan,
		LessThanOrEqualTo:    v.LessThanOrEqualTo,
	}
}

func IntPtr(inter interface{}, v *IntPtrValidation) (*int, error) {
	if inter == nil {
		return ValidateIntPtrProvided(nil, v)
	}
	casted, castOk := cast.InterfaceToInt(inter)
	if !castOk {
		return nil, ErrorInvalidPrimitiveType(inter, PrimTypeInt)
	}
	return ValidateIntPtrProvided(&casted, v)
}

func IntPtrFromInterfaceMap(key string, iMap map[string]interface{}, v *IntPtrValidation) (*int, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateIntPtrMissing(v)
		if err != nil {
			return nil, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := IntPtr(inter, v)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateIntPtrMissing(v *IntPtrValidation) (*int, error) {
	if v.Required {
		return nil, ErrorMustBeDefined(v.AllowedValues)
	}
	return validateIntPtr(v.Default, v)
}

func ValidateIntPtrProvided(val *int, v *IntPtrValidation) (*int, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return nil, ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}

	if !v.AllowExplicitNull && val == nil {
		return nil, ErrorCannotBeNull(v.Required)
	}
	return validateIntPtr(val, v)
}

func validateIntPtr(val *int, v *IntPtrValidation) (*int, error) {
	if val != nil {
		err := ValidateIntVal(*val, makeIntValValidation(v))
		if err != nil {
			return nil, err
		}
	}

	if val != nil && v.Validator != nil {
		validated, err := v.Validator(*val)
		if err != nil {
			return nil, err
		}
		return &validated, nil
	}
	return val, nil
}
