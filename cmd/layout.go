/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>

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

	"github.com/qetools/qetb/lib"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// layoutCmd represents the layout command
var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Manage block layout profiles.",
	Long: `Layout profiles store the geometry used by generate: head, union
and terminal sizes, conductor and hose lengths, fonts, and the split size.
Profiles live in the per-user store and are selected with generate -l.`,
}

var layoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the saved layout profiles.",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := lib.NewDefaultStore()
		if err != nil {
			fmt.Printf("failed to open store: %s\n", err)
			return
		}
		defer store.Close()

		names, err := store.ListLayouts()
		if err != nil {
			fmt.Printf("failed to list layouts: %s\n", err)
			return
		}

		if len(names) == 0 {
			fmt.Println("no layout profiles saved")
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var layoutShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a layout profile as YAML.",
	Long: `Print a layout profile, or the built-in defaults when no name is
given. The output is a valid --config file for generate.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		layout := lib.DefaultLayout()

		if len(args) == 1 {
			store, err := lib.NewDefaultStore()
			if err != nil {
				fmt.Printf("failed to open store: %s\n", err)
				return
			}
			defer store.Close()

			layout, err = store.GetLayout(args[0])
			if err != nil {
				fmt.Printf("failed to load layout: %s\n", err)
				return
			}
		}

		data, err := yaml.Marshal(layout)
		if err != nil {
			fmt.Printf("failed to marshal layout: %s\n", err)
			return
		}

		os.Stdout.Write(data)
	},
}

var layoutSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a layout profile.",
	Long: `Save stores a layout profile under the given name. The values
come from the --config YAML file, or the defaults when none is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		layout, err := lib.LoadLayout(configFile)
		if err != nil {
			fmt.Printf("failed to load layout: %s\n", err)
			return
		}

		store, err := lib.NewDefaultStore()
		if err != nil {
			fmt.Printf("failed to open store: %s\n", err)
			return
		}
		defer store.Close()

		if err := store.SaveLayout(args[0], layout); err != nil {
			fmt.Printf("failed to save layout: %s\n", err)
			return
		}

		fmt.Printf("saved layout profile %s\n", args[0])
	},
}

var layoutDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a layout profile.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := lib.NewDefaultStore()
		if err != nil {
			fmt.Printf("failed to open store: %s\n", err)
			return
		}
		defer store.Close()

		if err := store.DeleteLayout(args[0]); err != nil {
			fmt.Printf("failed to delete layout: %s\n", err)
			return
		}

		fmt.Printf("deleted layout profile %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.AddCommand(layoutListCmd)
	layoutCmd.AddCommand(layoutShowCmd)
	layoutCmd.AddCommand(layoutSaveCmd)
	layoutCmd.AddCommand(layoutDeleteCmd)

	layoutSaveCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML layout file to save")
}
