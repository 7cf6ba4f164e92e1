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

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <project.qet> <table.xlsx|table.csv>",
	Short: "Export the terminal table for editing.",
	Long: `Export writes the extracted terminal table to a spreadsheet or
CSV file. Edit the position, type, hose, conductor, bridge and reserve
columns there, then write them back with import. The uuid column ties each
row to its diagram element and must be left alone.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := lib.Normalize(args[0])
		if err != nil {
			fmt.Printf("failed to normalize path: %s\n", args[0])
			return
		}
		dst := args[1]

		project, err := lib.OpenProject(src, fromPage, toPage)
		if err != nil {
			fmt.Printf("failed to open project: %s\n", err)
			return
		}

		terminals := project.Terminals()
		if len(terminals) == 0 {
			fmt.Println("no terminals found in project")
			return
		}

		switch {
		case strings.HasSuffix(strings.ToLower(dst), ".csv"):
			err = lib.WriteTerminalsCSV(dst, terminals)
		case strings.HasSuffix(strings.ToLower(dst), ".xlsx"),
			strings.HasSuffix(strings.ToLower(dst), ".xls"):
			err = lib.WriteTerminalsXLSX(dst, terminals)
		default:
			fmt.Println("export file must be an excel spreadsheet or a csv file")
			return
		}
		if err != nil {
			fmt.Printf("failed to export terminals: %s\n", err)
			return
		}

		fmt.Printf("exported %d terminals to %s\n", len(terminals), dst)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntVar(&fromPage, "from", 0, "first diagram page to scan")
	exportCmd.Flags().IntVar(&toPage, "to", 0, "last diagram page to scan")
}
