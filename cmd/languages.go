/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

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

	"github.com/spf13/cobra"

	"github.com/valpere/chatlingo/internal/translator"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List detectable languages with a provisioned memory",
	Run: func(cmd *cobra.Command, args []string) {
		for _, lang := range translator.SupportedLanguages() {
			id, _ := translator.MemoryID(lang)
			fmt.Printf("%s\tmemory %d\n", lang, id)
		}
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
