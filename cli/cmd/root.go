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
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/errors"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/lib/files"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/types/experiment"
	"github.com/GaiYu0/drop-semparse-baseline/pkg/types/spec"
)

var localDir string

var flagVerbose bool

func init() {
	homeDir, err := homedir.Dir()
	if err != nil {
		errors.Exit(err)
	}

	localDir = filepath.Join(homeDir, ".semparse")
	err = os.MkdirAll(localDir, os.ModePerm)
	if err != nil {
		errors.Exit(err)
	}

	cobra.EnablePrefixMatching = true

	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   "semparse",
	Short: "manage semantic parsing experiment configurations",
	Long:  `Validate, inspect, and export semantic parsing experiment configurations`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			os.Setenv("SEMPARSE_LOG_LEVEL", "debug")
		}
	},
}

func Execute() {
	defer errors.RecoverAndExit()

	cobra.EnableCommandSorting = false

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(exportCmd)

	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.Execute()
}

func readConfig(relativePath string) (*experiment.Config, []error) {
	return experiment.FromFile(relativePath)
}

// cacheSpec stores the serialized spec under the local state dir, keyed by
// its content ID
func cacheSpec(experimentSpec *spec.Spec) (string, error) {
	specsDir := filepath.Join(localDir, "specs")
	if _, err := files.CreateDirIfMissing(specsDir); err != nil {
		return "", err
	}

	specBytes, err := experimentSpec.Msgpack()
	if err != nil {
		return "", err
	}

	cachedPath := filepath.Join(specsDir, experimentSpec.ID+".msgpack")
	if err := files.WriteFile(specBytes, cachedPath); err != nil {
		return "", err
	}
	return cachedPath, nil
}

func printErrors(errs []error) {
	for _, err := range errs {
		errors.PrintError(err)
	}
}
