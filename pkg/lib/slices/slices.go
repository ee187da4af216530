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

package slices

func HasString(list []string, query string) bool {
	for _, elem := range list {
		if elem == query {
			return true
		}
	}
	return false
}

func HasInt(list []int, query int) bool {
	for _, elem := range list {
		if elem == query {
			return true
		}
	}
	return false
}

func HasFloat64(list []float64, query float64) bool {
	for _, elem := range list {
		if elem == query {
			return true
		}
	}
	return false
}

func UniqueStrings(strs []string) []string {
	keys := make(map[string]bool)
	out := []string{}
	for _, elem := range strs {
		if !keys[elem] {
			keys[elem] = true
			out = append(out, elem)
		}
	}
	return out
}

func FindDuplicateStrs(strs []string) []string {
	seen := make(map[string]bool)
	dups := []string{}
	for _, elem := range strs {
		if seen[elem] {
			dups = append(dups, elem)
		}
		seen[elem] = true
	}
	return dups
}

func SubtractStrSlice(slice1 []string, slice2 []string) []string {
	result := []string{}
	for _, elem := range slice1 {
		if !HasString(slice2, elem) {
			result = append(result, elem)
		}
	}
	return result
}

func CopyStrs(strs []string) []string {
	out := make([]string, len(strs))
	copy(out, strs)
	return out
}
