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

	"github.com/c-bata/go-prompt"
	"github.com/qetools/qetb/lib"
	"github.com/spf13/cobra"
)

var editBlock string

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit <project.qet>",
	Short: "Edit terminal metadata interactively.",
	Long: `Edit walks through the terminals of a project and prompts for
the fields that drive block generation: type, hose, conductor and bridge.
An empty answer keeps the current value. --block limits the walk to one
terminal block.

	Example:
		- qetb edit project.qet            : edit every terminal
		- qetb edit project.qet -b X1      : edit only block X1
	`,
	Args: cobra.ExactArgs(1),
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

		terminals := project.Terminals()
		if editBlock != "" {
			terminals = lib.BlockTerminals(terminals, editBlock)
		}
		if len(terminals) == 0 {
			fmt.Println("no terminals to edit")
			return
		}

		hoses := []string{}
		seen := map[string]bool{}
		for _, t := range terminals {
			if t.Hose != "" && !seen[t.Hose] {
				hoses = append(hoses, t.Hose)
				seen[t.Hose] = true
			}
		}

		for _, t := range terminals {
			fmt.Printf("\n%s  xref=%s cable=%s\n", t.Label(), t.XRef, t.Cable)

			t.Type = promptField("type", t.Type,
				lib.TypeStandard, lib.TypeGround, lib.TypeFuse)
			t.Hose = promptField("hose", t.Hose, hoses...)
			t.Conductor = promptField("conductor", t.Conductor)

			bridge := "no"
			if t.HasBridge() {
				bridge = "yes"
			}
			if promptField("bridge to next", bridge, "yes", "no") == "yes" {
				t.Bridge = "x"
			} else {
				t.Bridge = ""
			}
		}

		project.UpdateTerminals(terminals)

		if !noBackup {
			backup, err := lib.BackupProject(src)
			if err != nil {
				fmt.Printf("failed to back up project: %s\n", err)
				return
			}

			fmt.Printf("backed up project to %s\n", backup)
		}

		if err := project.Save(""); err != nil {
			fmt.Printf("failed to save project: %s\n", err)
			return
		}

		fmt.Printf("updated %d terminals\n", len(terminals))
	},
}

func promptField(name, current string, choices ...string) string {
	suggestions := []prompt.Suggest{}
	for _, c := range choices {
		suggestions = append(suggestions, prompt.Suggest{Text: c})
	}

	answer := prompt.Input(
		fmt.Sprintf("%s [%s]> ", name, current),
		func(d prompt.Document) []prompt.Suggest {
			return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
		},
	)

	if answer == "" {
		return current
	}
	return answer
}

func init() {
	rootCmd.AddCommand(editCmd)

	editCmd.Flags().StringVarP(&editBlock, "block", "b", "", "edit only this terminal block")
	editCmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip the backup archive")
}
