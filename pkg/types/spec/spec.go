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

package spec

import (
	"path/filepath"
	"time"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/hash"
	libjson "github.com/GaiYu0/drop-semparse-baseline/pkg/lib/json"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/msgpack"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/types/experiment"
)

// Spec is a validated experiment configuration with a deterministic
// content ID. RawConfig is the canonical JSON rendering of the config
// (defaults filled in); the ID is its sha256.
type Spec struct {
	ID        string             `json:"id"`
	FileName  string             `json:"file_name"`
	CreatedAt time.Time          `json:"created_at"`
	RawConfig []byte             `json:"raw_config"`
	Config    *experiment.Config `json:"-"`
}

func New(config *experiment.Config, filePath string) (*Spec, error) {
	rawConfig, err := libjson.Marshal(config)
	if err != nil {
		return nil, err
	}

	return &Spec{
		ID:        hash.Bytes(rawConfig),
		FileName:  filepath.Base(filePath),
		CreatedAt: time.Now().UTC(),
		RawConfig: rawConfig,
		Config:    config,
	}, nil
}

func (spec *Spec) Msgpack() ([]byte, error) {
	return msgpack.Marshal(spec)
}

// FromMsgpack deserializes a cached spec and revalidates its config
func FromMsgpack(specBytes []byte) (*Spec, error) {
	var spec Spec
	if err := msgpack.Unmarshal(specBytes, &spec); err != nil {
		return nil, err
	}

	config, errs := experiment.FromBytes(spec.RawConfig)
	if errors.HasError(errs) {
		return nil, errors.FirstError(errs...)
	}
	spec.Config = config

	return &spec, nil
}

func (spec *Spec) JSON() ([]byte, error) {
	return libjson.MarshalIndent(spec.Config)
}
