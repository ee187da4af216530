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

package console

import (
	"github.com/fatih/color"
)

var _bold = color.New(color.Bold)
var _red = color.New(color.FgRed)
var _green = color.New(color.FgGreen)

func Bold(str string, args ...interface{}) string {
	return _bold.Sprintf(str, args...)
}

func Red(str string, args ...interface{}) string {
	return _red.Sprintf(str, args...)
}

func Green(str string, args ...interface{}) string {
	return _green.Sprintf(str, args...)
}
