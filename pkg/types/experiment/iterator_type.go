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

package experiment

type IteratorType int

const (
	UnknownIteratorType IteratorType = iota
	BucketIteratorType
	BasicIteratorType
)

var iteratorTypes = []string{
	"unknown",
	"bucket",
	"basic",
}

func IteratorTypeFromString(s string) IteratorType {
	for i := 0; i < len(iteratorTypes); i++ {
		if s == iteratorTypes[i] {
			return IteratorType(i)
		}
	}
	return UnknownIteratorType
}

func IteratorTypeStrings() []string {
	return iteratorTypes[1:]
}

func (t IteratorType) String() string {
	return iteratorTypes[t]
}

// MarshalText satisfies TextMarshaler
func (t IteratorType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *IteratorType) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(iteratorTypes); i++ {
		if enum == iteratorTypes[i] {
			*t = IteratorType(i)
			return nil
		}
	}

	*t = UnknownIteratorType
	return nil
}

// UnmarshalBinary satisfies BinaryUnmarshaler
// Needed for msgpack
func (t *IteratorType) UnmarshalBinary(data []byte) error {
	return t.UnmarshalText(data)
}

// MarshalBinary satisfies BinaryMarshaler
func (t IteratorType) MarshalBinary() ([]byte, error) {
	return []byte(t.String()), nil
}
