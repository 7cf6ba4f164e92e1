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
	"text/tabwriter"

	"github.com/qetools/qetb/lib"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list <project.qet>",
	Short: "List the terminals found in a project.",
	Long: `List the terminal elements found on the diagram pages of a
project, sorted and renumbered the way the generated blocks will use them.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src, err := lib.Normalize(args[0])
		if err != nil {
			fmt.Printf("failed to normalize path: %s\n", args[0])
			return
		}

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

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "BLOCK\tPOS\tTERMINAL\tXREF\tCABLE\tHOSE\tCONDUCTOR\tTYPE\tBRIDGE")
		for _, t := range terminals {
			bridge := ""
			if t.HasBridge() {
				bridge = "x"
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				t.Block, t.Pos, t.Name, t.XRef, t.Cable, t.Hose, t.Conductor, t.Type, bridge)
		}
		w.Flush()

		fmt.Printf("\n%d terminals in %d blocks, largest block has %d\n",
			len(terminals), len(lib.BlockNames(terminals)), lib.MaxBlockLength(terminals))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&fromPage, "from", 0, "first diagram page to scan")
	listCmd.Flags().IntVar(&toPage, "to", 0, "last diagram page to scan")
}
