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
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
)

type BoolValidation struct {
	Required              bool
	Default               bool
	TreatNullAsFalse      bool
	CantBeSpecifiedErrStr *string
}

func Bool(inter interface{}, v *BoolValidation) (bool, error) {
	if inter == nil {
		if v.TreatNullAsFalse {
			return ValidateBoolProvided(false, v)
		}
		return false, ErrorCannotBeNull(v.Required)
	}
	casted, castOk := inter.(bool)
	if !castOk {
		return false, ErrorInvalidPrimitiveType(inter, PrimTypeBool)
	}
	return ValidateBoolProvided(casted, v)
}

func BoolFromInterfaceMap(key string, iMap map[string]interface{}, v *BoolValidation) (bool, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateBoolMissing(v)
		if err != nil {
			return false, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Bool(inter, v)
	if err != nil {
		return false, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateBoolMissing(v *BoolValidation) (bool, error) {
	if v.Required {
		return false, ErrorMustBeDefined()
	}
	return v.Default, nil
}

func ValidateBoolProvided(val bool, v *BoolValidation) (bool, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return false, ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}
	return val, nil
}
