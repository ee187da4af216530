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

	"github.com/spf13/cobra"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/console"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/debug"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/files"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/logging"
)

var flagCheckPaths bool

func init() {
	validateCmd.Flags().BoolVar(&flagCheckPaths, "check-paths", false, "verify that path-valued fields exist on disk")
}

var validateCmd = &cobra.Command{
	Use:   "validate CONFIG_FILE",
	Short: "validate an experiment configuration file",
	Long: `This command parses and validates an experiment configuration file,
printing every validation error found`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath := files.UserRelToAbsPath(args[0])
		log := logging.GetLogger()
		log.Debugw("validating experiment configuration", "path", configPath)

		config, errs := readConfig(configPath)
		if errors.HasError(errs) {
			printErrors(errs)
			os.Exit(1)
		}

		if flagVerbose {
			debug.Ppg(config)
		}

		if flagCheckPaths {
			if errs := config.CheckPaths(); errors.HasError(errs) {
				printErrors(errs)
				os.Exit(1)
			}
		}

		fmt.Println(console.Green("valid: " + args[0]))
	},
}
