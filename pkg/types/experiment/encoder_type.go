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

type EncoderType int

const (
	UnknownEncoderType EncoderType = iota
	LSTMEncoderType
	GRUEncoderType
	RNNEncoderType
)

var encoderTypes = []string{
	"unknown",
	"lstm",
	"gru",
	"rnn",
}

func EncoderTypeFromString(s string) EncoderType {
	for i := 0; i < len(encoderTypes); i++ {
		if s == encoderTypes[i] {
			return EncoderType(i)
		}
	}
	return UnknownEncoderType
}

func EncoderTypeStrings() []string {
	return encoderTypes[1:]
}

func (t EncoderType) String() string {
	return encoderTypes[t]
}

// MarshalText satisfies TextMarshaler
func (t EncoderType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *EncoderType) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(encoderTypes); i++ {
		if enum == encoderTypes[i] {
			*t = EncoderType(i)
			return nil
		}
	}

	*t = UnknownEncoderType
	return nil
}

// UnmarshalBinary satisfies BinaryUnmarshaler
// Needed for msgpack
func (t *EncoderType) UnmarshalBinary(data []byte) error {
	return t.UnmarshalText(data)
}

// MarshalBinary satisfies BinaryMarshaler
func (t EncoderType) MarshalBinary() ([]byte, error) {
	return []byte(t.String()), nil
}
