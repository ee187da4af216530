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
	"strconv"
	"strings"
)

func ParseInt(valStr string) (int, bool) {
	parsed, err := strconv.ParseInt(valStr, 10, 64)
	if err != nil {
		return 0, false
	}
	casted := int(parsed)
	if int64(casted) != parsed {
		return 0, false
	}
	return casted, true
}

func ParseFloat64(valStr string) (float64, bool) {
	parsed, err := strconv.ParseFloat(valStr, 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func ParseBool(valStr string) (bool, bool) {
	parsed, err := strconv.ParseBool(valStr)
	if err != nil {
		return false, false
	}
	return parsed, true
}

func HasPrefixAndSuffix(str string, substr string) bool {
	return strings.HasPrefix(str, substr) && strings.HasSuffix(str, substr)
}

func TrimPrefixAndSuffix(str string, substr string) string {
	if HasPrefixAndSuffix(str, substr) {
		return strings.TrimSuffix(strings.TrimPrefix(str, substr), substr)
	}
	return str
}

func EnsureSuffix(str string, suffix string) string {
	if !strings.HasSuffix(str, suffix) {
		return str + suffix
	}
	return str
}

func StrsOr(strs []string) string {
	return StrsSentence(strs, "or")
}

func StrsAnd(strs []string) string {
	return StrsSentence(strs, "and")
}

func UserStrsOr(vals interface{}) string {
	return StrsSentence(UserStrs(vals), "or")
}

func UserStrsAnd(vals interface{}) string {
	return StrsSentence(UserStrs(vals), "and")
}

func StrsSentence(strs []string, lastJoinWord string) string {
	switch len(strs) {
	case 0:
		return ""
	case 1:
		return strs[0]
	case 2:
		return strs[0] + " " + lastJoinWord + " " + strs[1]
	default:
		return strings.Join(strs[:len(strs)-1], ", ") + ", " + lastJoinWord + " " + strs[len(strs)-1]
	}
}

func SIfPlural(count interface{}) string {
	return StrIfPlural("s", count)
}

func StrIfPlural(str string, count interface{}) string {
	var n int64
	switch casted := count.(type) {
	case int:
		n = int64(casted)
	case int64:
		n = casted
	}
	if n != 1 {
		return str
	}
	return ""
}

func PluralS(str string, count interface{}) string {
	return str + SIfPlural(count)
}
