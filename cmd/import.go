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
	"strings"

	"github.com/qetools/qetb/lib"
	"github.com/spf13/cobra"
)

// importCmd represents the import command
var importCmd = &cobra.Command{
	Use:   "import <project.qet> <table.xlsx|table.csv>",
	Short: "Import an edited terminal table back into a project.",
	Long: `Import reads a terminal table previously written by export and
stores the edited metadata back into the matching terminal elements of
the project. Rows whose uuid no longer exists in the project are skipped.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := lib.Normalize(args[0])
		if err != nil {
			fmt.Printf("failed to normalize path: %s\n", args[0])
			return
		}
		table := args[1]

		project, err := lib.OpenProject(src, 0, 0)
		if err != nil {
			fmt.Printf("failed to open project: %s\n", err)
			return
		}

		var edits []*lib.Terminal
		switch {
		case strings.HasSuffix(strings.ToLower(table), ".csv"):
			edits, err = lib.ReadTerminalsCSV(table)
		case strings.HasSuffix(strings.ToLower(table), ".xlsx"),
			strings.HasSuffix(strings.ToLower(table), ".xls"):
			edits, err = lib.ReadTerminalsXLSX(table)
		default:
			fmt.Println("table file must be an excel spreadsheet or a csv file")
			return
		}
		if err != nil {
			fmt.Printf("failed to read table: %s\n", err)
			return
		}

		terminals := project.Terminals()
		applied := lib.ApplyEdits(terminals, edits)
		if applied == 0 {
			fmt.Println("no rows matched terminals in the project")
			return
		}

		project.UpdateTerminals(terminals)

		if outFile == "" && !noBackup {
			backup, err := lib.BackupProject(src)
			if err != nil {
				fmt.Printf("failed to back up project: %s\n", err)
				return
			}

			fmt.Printf("backed up project to %s\n", backup)
		}

		if err := project.Save(outFile); err != nil {
			fmt.Printf("failed to save project: %s\n", err)
			return
		}

		fmt.Printf("updated %d of %d terminals\n", applied, len(terminals))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&outFile, "output", "o", "", "write the result to another file")
	importCmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip the backup archive")
}
