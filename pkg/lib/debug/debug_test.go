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

package debug

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSppg(t *testing.T) {
	type encoder struct {
		Type      string
		InputSize int
	}

	out := Sppg(encoder{Type: "lstm", InputSize: 100})
	require.Contains(t, out, "Type")
	require.Contains(t, out, "lstm")
	require.Contains(t, out, "InputSize")
}
