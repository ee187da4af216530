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

package cast

import (
	"encoding/json"
	"reflect"
)

func InterfaceToInt(in interface{}) (int, bool) {
	var ok bool
	if in, ok = JSONNumberToInt(in); !ok {
		return 0, false
	}

	switch casted := in.(type) {
	case int8:
		return int(casted), true
	case int16:
		return int(casted), true
	case int32:
		return int(casted), true
	case int:
		return casted, true
	case int64:
		if val := int(casted); int64(val) == casted {
			return val, true
		}
	}
	return 0, false
}

func InterfaceToFloat64(in interface{}) (float64, bool) {
	var ok bool
	if in, ok = JSONNumberToIntOrFloat(in); !ok {
		return 0, false
	}

	switch casted := in.(type) {
	case int8:
		return float64(casted), true
	case int16:
		return float64(casted), true
	case int32:
		return float64(casted), true
	case int:
		return float64(casted), true
	case int64:
		return float64(casted), true
	case float32:
		return float64(casted), true
	case float64:
		return casted, true
	}
	return 0, false
}

func JSONNumberToInt(in interface{}) (interface{}, bool) {
	if number, ok := in.(json.Number); ok {
		casted, err := number.Int64()
		if err != nil {
			return nil, false
		}
		return casted, true
	}
	return in, true
}

func JSONNumberToIntOrFloat(in interface{}) (interface{}, bool) {
	if number, ok := in.(json.Number); ok {
		if casted, err := number.Int64(); err == nil {
			return casted, true
		}
		casted, err := number.Float64()
		if err != nil {
			return nil, false
		}
		return casted, true
	}
	return in, true
}

func InterfaceToInterfaceSlice(in interface{}) ([]interface{}, bool) {
	if in == nil {
		return nil, true
	}

	if inSlice, ok := in.([]interface{}); ok {
		return inSlice, true
	}

	if reflect.TypeOf(in).Kind() != reflect.Slice {
		return nil, false
	}

	inVal := reflect.ValueOf(in)
	if inVal.IsNil() {
		return nil, true
	}

	out := make([]interface{}, inVal.Len())
	for i := 0; i < inVal.Len(); i++ {
		out[i] = inVal.Index(i).Interface()
	}
	return out, true
}

func InterfaceToStrSlice(in interface{}) ([]string, bool) {
	if in == nil {
		return nil, true
	}

	if strSlice, ok := in.([]string); ok {
		return strSlice, true
	}

	inSlice, ok := InterfaceToInterfaceSlice(in)
	if !ok {
		return nil, false
	}

	out := make([]string, len(inSlice))

	for i, elem := range inSlice {
		casted, ok := elem.(string)
		if !ok {
			return nil, false
		}
		out[i] = casted
	}
	return out, true
}

func InterfaceToInterfaceInterfaceMap(in interface{}) (map[interface{}]interface{}, bool) {
	if in == nil {
		return nil, true
	}

	if inMap, ok := in.(map[interface{}]interface{}); ok {
		return inMap, true
	}

	if reflect.TypeOf(in).Kind() != reflect.Map {
		return nil, false
	}

	inVal := reflect.ValueOf(in)
	if inVal.IsNil() {
		return nil, true
	}

	out := make(map[interface{}]interface{}, inVal.Len())
	for _, key := range inVal.MapKeys() {
		out[key.Interface()] = inVal.MapIndex(key).Interface()
	}
	return out, true
}

func InterfaceToStrInterfaceMap(in interface{}) (map[string]interface{}, bool) {
	if in == nil {
		return nil, true
	}

	if strMap, ok := in.(map[string]interface{}); ok {
		return strMap, true
	}

	inMap, ok := InterfaceToInterfaceInterfaceMap(in)
	if !ok {
		return nil, false
	}

	out := map[string]interface{}{}

	for key, value := range inMap {
		casted, ok := key.(string)
		if !ok {
			return nil, false
		}
		out[casted] = value
	}
	return out, true
}

func IsIntType(in interface{}) bool {
	switch in.(type) {
	case int8, int16, int32, int64, int:
		return true
	case json.Number:
		_, ok := InterfaceToInt(in)
		return ok
	}
	return false
}

func IsFloatType(in interface{}) bool {
	switch in.(type) {
	case float32, float64:
		return true
	}
	return false
}

func IsNumericType(in interface{}) bool {
	return IsIntType(in) || IsFloatType(in)
}
