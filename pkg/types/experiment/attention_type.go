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

type AttentionType int

const (
	UnknownAttentionType AttentionType = iota
	DotProductAttentionType
	BilinearAttentionType
	AdditiveAttentionType
)

var attentionTypes = []string{
	"unknown",
	"dot_product",
	"bilinear",
	"additive",
}

func AttentionTypeFromString(s string) AttentionType {
	for i := 0; i < len(attentionTypes); i++ {
		if s == attentionTypes[i] {
			return AttentionType(i)
		}
	}
	return UnknownAttentionType
}

func AttentionTypeStrings() []string {
	return attentionTypes[1:]
}

func (t AttentionType) String() string {
	return attentionTypes[t]
}

// MarshalText satisfies TextMarshaler
func (t AttentionType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *AttentionType) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(attentionTypes); i++ {
		if enum == attentionTypes[i] {
			*t = AttentionType(i)
			return nil
		}
	}

	*t = UnknownAttentionType
	return nil
}

// UnmarshalBinary satisfies BinaryUnmarshaler
// Needed for msgpack
func (t *AttentionType) UnmarshalBinary(data []byte) error {
	return t.UnmarshalText(data)
}

// MarshalBinary satisfies BinaryMarshaler
func (t AttentionType) MarshalBinary() ([]byte, error) {
	return []byte(t.String()), nil
}
