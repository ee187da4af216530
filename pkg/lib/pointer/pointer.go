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

package pointer

func Bool(val bool) *bool {
	return &val
}

func Int(val int) *int {
	return &val
}

func Int64(val int64) *int64 {
	return &val
}

func Float64(val float64) *float64 {
	return &val
}

func String(val string) *string {
	return &val
}

func IntFirst(vals ...*int) *int {
	for _, val := range vals {
		if val != nil {
			return val
		}
	}
	return nil
}

func StringFirst(vals ...*string) *string {
	for _, val := range vals {
		if val != nil {
			return val
		}
	}
	return nil
}
