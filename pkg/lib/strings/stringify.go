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

package strings

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

func Bool(val bool) string {
	return strconv.FormatBool(val)
}

func Int(val int) string {
	return strconv.Itoa(val)
}

func Int64(val int64) string {
	return strconv.FormatInt(val, 10)
}

func Float64(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// UserStr formats a value the way it would appear in a config document,
// quoting strings and rendering nils as "null"
func UserStr(val interface{}) string {
	if val == nil {
		return "null"
	}

	v := reflect.ValueOf(val)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return "null"
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.String:
		return `"` + v.String() + `"`
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return Float64(v.Float())
	case reflect.Slice, reflect.Array:
		items := make([]string, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = UserStr(v.Index(i).Interface())
		}
		return "[" + strings.Join(items, ", ") + "]"
	case reflect.Map:
		items := make([]string, 0, v.Len())
		for _, key := range v.MapKeys() {
			items = append(items, UserStrStripped(key.Interface())+": "+UserStr(v.MapIndex(key).Interface()))
		}
		return "{" + strings.Join(items, ", ") + "}"
	default:
		if stringer, ok := val.(fmt.Stringer); ok {
			return `"` + stringer.String() + `"`
		}
		return fmt.Sprintf("%v", val)
	}
}

// UserStrStripped is UserStr with leading and trailing quotes trimmed if it's just a string
func UserStrStripped(val interface{}) string {
	return TrimPrefixAndSuffix(UserStr(val), `"`)
}

func UserStrs(val interface{}) []string {
	if val == nil {
		return nil
	}

	if reflect.TypeOf(val).Kind() != reflect.Slice {
		val = []interface{}{val}
	}

	inVal := reflect.ValueOf(val)
	if inVal.IsNil() {
		return nil
	}

	out := make([]string, inVal.Len())
	for i := 0; i < inVal.Len(); i++ {
		out[i] = UserStr(inVal.Index(i).Interface())
	}
	return out
}

func Obj(val interface{}) string {
	return UserStr(val)
}

func Index(index int) string {
	return fmt.Sprintf("index %d", index)
}

func Indent(str string, indent string) string {
	if str == "" {
		return indent
	}

	out := ""
	for _, line := range strings.Split(strings.TrimRight(str, "\n"), "\n") {
		out += indent + line + "\n"
	}
	return out[:len(out)-1]
}

func TruncateEllipses(str string, maxLength int) string {
	ellipses := " ..."
	if len(str) > maxLength {
		str = str[:maxLength-len(ellipses)]
		str += ellipses
	}
	return str
}
