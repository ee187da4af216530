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
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	homedir "github.com/mitchellh/go-homedir"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
)

func ReadFile(path string) (string, error) {
	fileBytes, err := ReadFileBytes(path)
	if err != nil {
		return "", err
	}
	return string(fileBytes), nil
}

func ReadFileBytes(path string) ([]byte, error) {
	if err := CheckFile(path); err != nil {
		return nil, err
	}
	fileBytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(ErrorReadFile(path), err.Error())
	}
	return fileBytes, nil
}

func WriteFile(data []byte, path string) error {
	if err := ioutil.WriteFile(path, data, 0664); err != nil {
		return errors.Wrap(ErrorCreateFile(path), err.Error())
	}
	return nil
}

func IsFileOrDir(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func IsFile(path string) bool {
	if fileInfo, err := os.Stat(path); err == nil {
		return !fileInfo.IsDir()
	}
	return false
}

func IsDir(path string) bool {
	if fileInfo, err := os.Stat(path); err == nil {
		return fileInfo.IsDir()
	}
	return false
}

func CheckFile(path string) error {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return ErrorFileDoesNotExist(path)
	}
	if fileInfo.IsDir() {
		return ErrorNotAFile(path)
	}
	return nil
}

func CheckDir(dirPath string) error {
	fileInfo, err := os.Stat(dirPath)
	if err != nil {
		return ErrorDirDoesNotExist(dirPath)
	}
	if !fileInfo.IsDir() {
		return ErrorNotADir(dirPath)
	}
	return nil
}

func CreateDirIfMissing(path string) (bool, error) {
	if IsDir(path) {
		return false, nil
	}
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return false, errors.Wrap(ErrorCreateDir(path), err.Error())
	}
	return true, nil
}

func EscapeTilde(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return expanded, nil
}

// UserRelToAbsPath converts a user-provided path to an absolute path,
// relative to the current working directory
func UserRelToAbsPath(relativePath string) string {
	if escaped, err := EscapeTilde(relativePath); err == nil {
		relativePath = escaped
	}
	absPath, err := filepath.Abs(relativePath)
	if err != nil {
		return relativePath
	}
	return absPath
}
