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

package configreader

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/pointer"
)

type SimpleConfig struct {
	Key1 bool `json:"key1"`
	Key2 bool `json:"key2"`
}

func TestSimple(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Key1",
				BoolValidation: &BoolValidation{
					Required: true,
				},
			},
			{
				StructField: "Key2",
				BoolValidation: &BoolValidation{
					Default: true,
				},
			},
		},
		Required:     true,
		ShortCircuit: true,
	}

	configData := MustReadYAMLStr(
		`
    key1: true
    `)

	expected := &SimpleConfig{
		Key1: true,
		Key2: true,
	}

	testConfig(structValidation, configData, expected, t)
}

type NestedConfig struct {
	Key0 float64 `json:"key0"`
	Key1 *Nested `json:"key1"`
}

type Nested struct {
	Key11 int    `json:"key11"`
	Key12 string `json:"key12"`
}

func TestNested(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField:       "Key0",
				Float64Validation: &Float64Validation{},
			},
			{
				StructField: "Key1",
				StructValidation: &StructValidation{
					Required: true,
					StructFieldValidations: []*StructFieldValidation{
						{
							StructField: "Key11",
							IntValidation: &IntValidation{
								Default: 7,
							},
						},
						{
							StructField: "Key12",
							StringValidation: &StringValidation{
								Required: true,
							},
						},
					},
				},
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    key0: 1.5
    key1:
      key12: test
    `)

	expected := &NestedConfig{
		Key0: 1.5,
		Key1: &Nested{
			Key11: 7,
			Key12: "test",
		},
	}

	testConfig(structValidation, configData, expected, t)
}

func TestMissingRequired(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Key2",
				BoolValidation: &BoolValidation{
					Required: true,
				},
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    key1: true
    `)

	config := &SimpleConfig{}
	errs := Struct(config, configData, structValidation)
	require.NotEmpty(t, errs)

	kinds := errorKinds(errs)
	require.Contains(t, kinds, ErrMustBeDefined)
	require.Contains(t, kinds, ErrUnsupportedKey)
}

func TestBounds(t *testing.T) {
	type BoundsConfig struct {
		Key1 int     `json:"key1"`
		Key2 float64 `json:"key2"`
	}

	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Key1",
				IntValidation: &IntValidation{
					GreaterThan: pointer.Int(0),
				},
			},
			{
				StructField: "Key2",
				Float64Validation: &Float64Validation{
					GreaterThanOrEqualTo: pointer.Float64(0),
					LessThan:             pointer.Float64(1),
				},
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    key1: -3
    key2: 1.2
    `)

	config := &BoundsConfig{}
	errs := Struct(config, configData, structValidation)
	require.Len(t, errs, 2)

	kinds := errorKinds(errs)
	require.Contains(t, kinds, ErrMustBeGreaterThan)
	require.Contains(t, kinds, ErrMustBeLessThan)
}

type VariantHolder struct {
	Variant Shape `json:"variant"`
}

type Shape interface{}

type Circle struct {
	Type   string  `json:"type"`
	Radius float64 `json:"radius"`
}

type Square struct {
	Type string  `json:"type"`
	Side float64 `json:"side"`
}

var shapeValidation = &InterfaceStructValidation{
	TypeKey:         "type",
	TypeStructField: "Type",
	Required:        true,
	InterfaceStructTypes: map[string]*InterfaceStructType{
		"circle": {
			Type: (*Circle)(nil),
			StructFieldValidations: []*StructFieldValidation{
				{
					StructField: "Radius",
					Float64Validation: &Float64Validation{
						Required:    true,
						GreaterThan: pointer.Float64(0),
					},
				},
			},
		},
		"square": {
			Type: (*Square)(nil),
			StructFieldValidations: []*StructFieldValidation{
				{
					StructField: "Side",
					Float64Validation: &Float64Validation{
						Required:    true,
						GreaterThan: pointer.Float64(0),
					},
				},
			},
		},
	},
}

func TestInterfaceStruct(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField:               "Variant",
				InterfaceStructValidation: shapeValidation,
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    variant:
      type: circle
      radius: 2.5
    `)

	config := &VariantHolder{}
	errs := Struct(config, configData, structValidation)
	require.Empty(t, errs)

	circle, ok := config.Variant.(*Circle)
	require.True(t, ok)
	require.Equal(t, "circle", circle.Type)
	require.Equal(t, 2.5, circle.Radius)
}

func TestInterfaceStructUnknownType(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField:               "Variant",
				InterfaceStructValidation: shapeValidation,
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    variant:
      type: triangle
    `)

	config := &VariantHolder{}
	errs := Struct(config, configData, structValidation)
	require.NotEmpty(t, errs)
	require.Contains(t, errorKinds(errs), ErrInvalidStr)
}

func TestInterfaceStructMissingType(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField:               "Variant",
				InterfaceStructValidation: shapeValidation,
			},
		},
		Required: true,
	}

	configData := MustReadYAMLStr(
		`
    variant:
      radius: 2.5
    `)

	config := &VariantHolder{}
	errs := Struct(config, configData, structValidation)
	require.NotEmpty(t, errs)
	require.Contains(t, errorKinds(errs), ErrMustBeDefined)
}

func TestJSONInput(t *testing.T) {
	structValidation := &StructValidation{
		StructFieldValidations: []*StructFieldValidation{
			{
				StructField: "Key1",
				BoolValidation: &BoolValidation{
					Required: true,
				},
			},
			{
				StructField:    "Key2",
				BoolValidation: &BoolValidation{},
			},
		},
		Required: true,
	}

	configData := MustReadJSONStr(`{"key1": true, "key2": false}`)

	expected := &SimpleConfig{
		Key1: true,
		Key2: false,
	}

	testConfig(structValidation, configData, expected, t)
}

func testConfig(structValidation *StructValidation, configData interface{}, expected interface{}, t *testing.T) {
	config := reflect.New(reflect.TypeOf(expected).Elem()).Interface()

	errs := Struct(config, configData, structValidation)

	if errs != nil {
		for _, err := range errs {
			fmt.Println("ERROR: " + err.Error())
		}
	}
	require.Empty(t, errs)

	require.Equal(t, expected, config)
}

func errorKinds(errs []error) []string {
	kinds := make([]string, len(errs))
	for i, err := range errs {
		kinds[i] = errors.GetKind(err)
	}
	return kinds
}
