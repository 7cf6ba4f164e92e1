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

	"github.com/qetools/qetb/lib"
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <project.qet> <query>",
	Short: "Search the terminals of a project.",
	Long: `Search runs a full-text query over the extracted terminal
records. Field queries work too, e.g. 'Cable:L1' or 'Type:FUSE'.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := lib.Normalize(args[0])
		if err != nil {
			fmt.Printf("failed to normalize path: %s\n", args[0])
			return
		}

		project, err := lib.OpenProject(src, 0, 0)
		if err != nil {
			fmt.Printf("failed to open project: %s\n", err)
			return
		}

		index, err := lib.NewTerminalIndex(project.Terminals())
		if err != nil {
			fmt.Printf("failed to index terminals: %s\n", err)
			return
		}

		matched, err := index.Find(args[1])
		if err != nil {
			fmt.Printf("search failed: %s\n", err)
			return
		}

		for _, t := range matched {
			fmt.Printf("%s\txref=%s cable=%s hose=%s type=%s\n",
				t.Label(), t.XRef, t.Cable, t.Hose, t.Type)
		}

		fmt.Printf("%d terminals matched\n", len(matched))
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
