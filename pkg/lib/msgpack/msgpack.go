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

package msgpack

import (
	"github.com/ugorji/go/codec"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
)

const (
	ErrMarshalMsgpack   = "msgpack.marshal_msgpack"
	ErrUnmarshalMsgpack = "msgpack.unmarshal_msgpack"
)

var _mh codec.MsgpackHandle

func init() {
	_mh.RawToString = true
}

func ErrorMarshalMsgpack() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrMarshalMsgpack,
		Message: "unable to marshal msgpack",
	})
}

func ErrorUnmarshalMsgpack() error {
	return errors.WithStack(&errors.Error{
		Kind:    ErrUnmarshalMsgpack,
		Message: "unable to unmarshal msgpack",
	})
}

func Marshal(obj interface{}) ([]byte, error) {
	var bytes []byte
	enc := codec.NewEncoderBytes(&bytes, &_mh)
	if err := enc.Encode(obj); err != nil {
		return nil, errors.Wrap(ErrorMarshalMsgpack(), err.Error())
	}
	return bytes, nil
}

func MustMarshal(obj interface{}) []byte {
	msgpackBytes, err := Marshal(obj)
	if err != nil {
		panic(err)
	}
	return msgpackBytes
}

func Unmarshal(b []byte, obj interface{}) error {
	dec := codec.NewDecoderBytes(b, &_mh)
	if err := dec.Decode(&obj); err != nil {
		return errors.Wrap(ErrorUnmarshalMsgpack(), err.Error())
	}
	return nil
}

func UnmarshalToInterface(b []byte) (interface{}, error) {
	var obj interface{}
	if err := Unmarshal(b, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}
