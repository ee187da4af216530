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

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/files"
)

var flagTree bool

func init() {
	describeCmd.Flags().BoolVar(&flagTree, "tree", false, "render the configuration as a tree")
}

var describeCmd = &cobra.Command{
	Use:   "describe CONFIG_FILE",
	Short: "describe an experiment configuration file",
	Long:  `This command renders a validated experiment configuration section by section`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configPath := files.UserRelToAbsPath(args[0])

		config, errs := readConfig(configPath)
		if errors.HasError(errs) {
			printErrors(errs)
			os.Exit(1)
		}

		if flagTree {
			fmt.Print(config.Tree())
			return
		}
		fmt.Print(config.Describe())
	},
}
