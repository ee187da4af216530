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

package strset

import (
	"fmt"
	"sort"
	"strings"
)

type Set map[string]struct{}

var keyExists = struct{}{}

func New(items ...string) Set {
	s := make(Set, len(items))
	s.Add(items...)
	return s
}

func FromSlice(items []string) Set {
	return New(items...)
}

func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = keyExists
	}
}

func (s Set) Remove(items ...string) {
	for _, item := range items {
		delete(s, item)
	}
}

func (s Set) Has(items ...string) bool {
	for _, item := range items {
		if _, ok := s[item]; !ok {
			return false
		}
	}
	return true
}

func (s Set) HasAny(items ...string) bool {
	for _, item := range items {
		if _, ok := s[item]; ok {
			return true
		}
	}
	return false
}

func (s Set) Copy() Set {
	copied := make(Set, len(s))
	for item := range s {
		copied[item] = keyExists
	}
	return copied
}

func (s Set) String() string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, fmt.Sprintf("%v", item))
	}
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}

func (s Set) Slice() []string {
	items := make([]string, 0, len(s))
	for item := range s {
		items = append(items, item)
	}
	return items
}

func (s Set) SliceSorted() []string {
	items := s.Slice()
	sort.Strings(items)
	return items
}

func (s Set) Merge(sets ...Set) {
	for _, set := range sets {
		for item := range set {
			s[item] = keyExists
		}
	}
}

func (s Set) Subtract(sets ...Set) {
	for _, set := range sets {
		for item := range set {
			delete(s, item)
		}
	}
}

func Union(sets ...Set) Set {
	union := New()
	union.Merge(sets...)
	return union
}

func Difference(set1 Set, sets ...Set) Set {
	difference := set1.Copy()
	difference.Subtract(sets...)
	return difference
}
