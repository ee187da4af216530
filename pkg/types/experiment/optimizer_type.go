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

type OptimizerType int

const (
	UnknownOptimizerType OptimizerType = iota
	SGDOptimizerType
	AdamOptimizerType
	AdagradOptimizerType
	RMSPropOptimizerType
)

var optimizerTypes = []string{
	"unknown",
	"sgd",
	"adam",
	"adagrad",
	"rmsprop",
}

func OptimizerTypeFromString(s string) OptimizerType {
	for i := 0; i < len(optimizerTypes); i++ {
		if s == optimizerTypes[i] {
			return OptimizerType(i)
		}
	}
	return UnknownOptimizerType
}

func OptimizerTypeStrings() []string {
	return optimizerTypes[1:]
}

func (t OptimizerType) String() string {
	return optimizerTypes[t]
}

// MarshalText satisfies TextMarshaler
func (t OptimizerType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText satisfies TextUnmarshaler
func (t *OptimizerType) UnmarshalText(text []byte) error {
	enum := string(text)
	for i := 0; i < len(optimizerTypes); i++ {
		if enum == optimizerTypes[i] {
			*t = OptimizerType(i)
			return nil
		}
	}

	*t = UnknownOptimizerType
	return nil
}

// UnmarshalBinary satisfies BinaryUnmarshaler
// Needed for msgpack
func (t *OptimizerType) UnmarshalBinary(data []byte) error {
	return t.UnmarshalText(data)
}

// MarshalBinary satisfies BinaryMarshaler
func (t OptimizerType) MarshalBinary() ([]byte, error) {
	return []byte(t.String()), nil
}
