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

package files

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
)

func TestWriteAndReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.msgpack")

	require.NoError(t, WriteFile([]byte("payload"), path))

	fileBytes, err := ReadFileBytes(path)
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), fileBytes)
}

func TestCreateDirIfMissing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "specs")

	created, err := CreateDirIfMissing(dir)
	require.NoError(t, err)
	require.True(t, created)
	require.NoError(t, CheckDir(dir))

	created, err = CreateDirIfMissing(dir)
	require.NoError(t, err)
	require.False(t, created)
}

func TestCheckFileMissing(t *testing.T) {
	err := CheckFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.Equal(t, ErrFileDoesNotExist, errors.GetKind(err))
}
