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

var (
	fromPage   int
	toPage     int
	outFile    string
	configFile string
	profile    string
	noBackup   bool
	fillGaps   bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <project.qet>",
	Short: "Generate terminal block elements into a project.",
	Long: `Generate renders one element per terminal block found in the
project and inserts it into the project's element collection, replacing
previously generated TB_* elements. The project file is backed up and
rewritten in place unless -o names another file.

The block geometry comes from, in order: --config YAML file, the --layout
profile, the profile remembered for this project, built-in defaults.`,
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
			fmt.Println("no terminals found in project, nothing to generate")
			return
		}

		layout, err := resolveLayout(src)
		if err != nil {
			fmt.Printf("failed to resolve layout: %s\n", err)
			return
		}

		rendered, err := lib.RenderBlocks(terminals, layout, fillGaps)
		if err != nil {
			fmt.Printf("failed to render blocks: %s\n", err)
			return
		}

		/*
			Persist the renumbered positions so the next export shows
			the same ordering the blocks were generated with.
		*/
		project.UpdateTerminals(terminals)

		for _, block := range rendered {
			if err := project.InsertBlock(block.Name, block.Node); err != nil {
				fmt.Printf("failed to insert block %s: %s\n", block.Name, err)
				return
			}

			fmt.Printf("generated TB_%s\n", block.Name)
		}

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

		fmt.Printf("%d blocks written\n", len(rendered))
	},
}

/*
	resolveLayout picks the block geometry for a project and remembers
	an explicitly chosen profile for the next run.
*/
func resolveLayout(project string) (lib.Layout, error) {
	if configFile != "" {
		return lib.LoadLayout(configFile)
	}

	store, err := lib.NewDefaultStore()
	if err != nil {
		return lib.DefaultLayout(), err
	}
	defer store.Close()

	name := profile
	if name == "" {
		name = store.ProjectLayout(project)
	}
	if name == "" {
		return lib.DefaultLayout(), nil
	}

	layout, err := store.GetLayout(name)
	if err != nil {
		return lib.DefaultLayout(), err
	}

	if profile != "" {
		if err := store.RememberProjectLayout(project, profile); err != nil {
			return layout, err
		}
	}

	return layout, nil
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&fromPage, "from", 0, "first diagram page to scan")
	generateCmd.Flags().IntVar(&toPage, "to", 0, "last diagram page to scan")
	generateCmd.Flags().StringVarP(&outFile, "output", "o", "", "write the result to another file")
	generateCmd.Flags().StringVarP(&configFile, "config", "c", "", "YAML layout file")
	generateCmd.Flags().StringVarP(&profile, "layout", "l", "", "layout profile from the store")
	generateCmd.Flags().BoolVar(&noBackup, "no-backup", false, "skip the backup archive")
	generateCmd.Flags().BoolVar(&fillGaps, "fill-gaps", false, "insert reserve terminals for missing numeric names")
}
