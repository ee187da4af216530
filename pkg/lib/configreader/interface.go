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

type InterfaceValidation struct {
	Required              bool
	Default               interface{}
	AllowExplicitNull     bool
	CantBeSpecifiedErrStr *string
	Validator             func(interface{}) (interface{}, error)
}

func Interface(inter interface{}, v *InterfaceValidation) (interface{}, error) {
	if inter == nil && !v.AllowExplicitNull {
		return nil, ErrorCannotBeNull(v.Required)
	}
	return ValidateInterfaceProvided(inter, v)
}

func InterfaceFromInterfaceMap(key string, iMap map[string]interface{}, v *InterfaceValidation) (interface{}, error) {
	inter, ok := ReadInterfaceMapValue(key, iMap)
	if !ok {
		val, err := ValidateInterfaceMissing(v)
		if err != nil {
			return nil, errors.Wrap(err, key)
		}
		return val, nil
	}
	val, err := Interface(inter, v)
	if err != nil {
		return nil, errors.Wrap(err, key)
	}
	return val, nil
}

func ValidateInterfaceMissing(v *InterfaceValidation) (interface{}, error) {
	if v.Required {
		return nil, ErrorMustBeDefined()
	}
	return validateInterface(v.Default, v)
}

func ValidateInterfaceProvided(val interface{}, v *InterfaceValidation) (interface{}, error) {
	if v.CantBeSpecifiedErrStr != nil {
		return nil, ErrorFieldCantBeSpecified(*v.CantBeSpecifiedErrStr)
	}
	return validateInterface(val, v)
}

func validateInterface(val interface{}, v *InterfaceValidation) (interface{}, error) {
	if v.Validator != nil {
		return v.Validator(val)
	}
	return val, nil
}
