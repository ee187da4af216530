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

package cmd

import (
	"fmt"
	"os"

	"github.com/cortexlabs/yaml"
	"github.com/spf13/cobra"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/files"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/json"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/logging"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/types/spec"
)

var flagFormat string

func init() {
	exportCmd.Flags().StringVarP(&flagFormat, "format", "f", "json", "output format (json|yaml)")
}

var exportCmd = &cobra.Command{
	Use:   "export CONFIG_FILE",
	Short: "export a normalized experiment configuration",
	Long: `This command re-emits a validated experiment configuration with all
defaults filled in, along with its content ID`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if flagFormat != "json" && flagFormat != "yaml" {
			errors.Exit(ErrorInvalidOutputFormat(flagFormat))
		}

		configPath := files.UserRelToAbsPath(args[0])
		config, errs := readConfig(configPath)
		if errors.HasError(errs) {
			printErrors(errs)
			os.Exit(1)
		}

		experimentSpec, err := spec.New(config, configPath)
		if err != nil {
			errors.Exit(err)
		}

		var outputBytes []byte
		switch flagFormat {
		case "json":
			outputBytes, err = experimentSpec.JSON()
		case "yaml":
			// round-trip through the canonical JSON so enum types render as their tags
			var doc interface{}
			if err = json.Unmarshal(experimentSpec.RawConfig, &doc); err == nil {
				outputBytes, err = yaml.Marshal(doc)
			}
		}
		if err != nil {
			errors.Exit(err)
		}

		cachedPath, err := cacheSpec(experimentSpec)
		if err != nil {
			errors.Exit(err)
		}
		logging.GetLogger().Debugw("cached experiment spec", "path", cachedPath)

		fmt.Fprintln(os.Stderr, "id: "+experimentSpec.ID)
		fmt.Println(string(outputBytes))
	},
}
