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

package errors

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

const ErrUnclassified = "error"

type Error struct {
	Kind     string
	Message  string
	Metadata interface{} // won't be printed
	NoPrint  bool
	Cause    error
	stack    *stack
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) StackTrace() pkgerrors.StackTrace {
	stackTrace := make([]pkgerrors.Frame, len(*err.stack))
	for i := 0; i < len(stackTrace); i++ {
		stackTrace[i] = pkgerrors.Frame((*err.stack)[i])
	}
	return stackTrace
}

func WithStack(err error) error {
	if err == nil {
		return nil
	}

	kindedError := getError(err)

	if kindedError == nil {
		kindedError = &Error{
			Kind:    ErrUnclassified,
			Message: strings.TrimSpace(err.Error()),
			Cause:   err,
		}
	}

	if kindedError.stack == nil {
		kindedError.stack = callers()
	}

	return kindedError
}

func Wrap(err error, strs ...string) error {
	if err == nil {
		return nil
	}

	kindedError := WithStack(err).(*Error)

	strs = removeEmptyStrs(strs)
	strs = append(strs, kindedError.Message)
	kindedError.Message = strings.Join(strs, ": ")

	return kindedError
}

// Append adds to the end of the error message (without adding any whitespace or punctuation)
func Append(err error, str string) error {
	if err == nil {
		return nil
	}

	kindedError := WithStack(err).(*Error)
	kindedError.Message = kindedError.Message + str
	return kindedError
}

func getError(err error) *Error {
	if kindedError, ok := err.(*Error); ok {
		return kindedError
	}
	return nil
}

func GetKind(err error) string {
	if kindedError, ok := err.(*Error); ok {
		return kindedError.Kind
	}
	return ErrUnclassified
}

func GetMetadata(err error) interface{} {
	if kindedError, ok := err.(*Error); ok {
		return kindedError.Metadata
	}
	return nil
}

func IsNoPrint(err error) bool {
	if kindedError, ok := err.(*Error); ok {
		return kindedError.NoPrint
	}
	return false
}

func SetNoPrint(err error) error {
	kindedError := WithStack(err).(*Error)
	kindedError.NoPrint = true
	return kindedError
}

// Cause returns nil if there is no cause
func Cause(err error) error {
	if kindedError, ok := err.(*Error); ok {
		return kindedError.Cause
	}
	return nil
}

func CauseOrSelf(err error) error {
	if kindedError, ok := err.(*Error); ok {
		cause := kindedError.Cause
		if cause != nil {
			return cause
		}
	}
	return err
}

func (err *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			io.WriteString(s, err.Message)
			err.stack.Format(s, verb)
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, err.Message)
	case 'q':
		fmt.Fprintf(s, "%q", err.Message)
	}
}

func CastRecoverError(errInterface interface{}, strs ...string) error {
	var err error
	var ok bool
	err, ok = errInterface.(error)
	if !ok {
		err = &Error{
			Kind:    ErrUnclassified,
			Message: fmt.Sprint(errInterface),
		}
	}
	return Wrap(err, strs...)
}

func removeEmptyStrs(strs []string) []string {
	var cleanStrs []string
	for _, str := range strs {
		if str != "" {
			cleanStrs = append(cleanStrs, str)
		}
	}
	return cleanStrs
}

type stack []uintptr

func callers() *stack {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(4, pcs[:])
	var st stack = pcs[0:n]
	return &st
}

func (s *stack) Format(st fmt.State, verb rune) {
	if verb == 'v' && st.Flag('+') {
		for _, pc := range *s {
			f := pkgerrors.Frame(pc)
			fmt.Fprintf(st, "\n%+v", f)
		}
	}
}
