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
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/valpere/chatlingo/internal/config"
	"github.com/valpere/chatlingo/internal/translator"
	"github.com/valpere/chatlingo/internal/workflow"
)

var (
	messageText string
	inputFile   string
	configFile  string
	verbose     bool
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate a message through the file-translation service",
	Long: `Upload text to the translation service, wait for language detection,
start a translation job against the matching memory, and print the result.

The API key is read from the config file or CHATLINGO_API_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if messageText == "" && inputFile == "" {
			return fmt.Errorf("either --text or --input is required")
		}
		if messageText != "" && inputFile != "" {
			return fmt.Errorf("--text and --input are mutually exclusive")
		}

		text := messageText
		if inputFile != "" {
			raw, err := os.ReadFile(inputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = string(raw)
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		if !verbose {
			logger = logger.Level(zerolog.WarnLevel)
		}

		client := translator.New(translator.Config{
			APIKey:  cfg.APIKey,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})

		w := workflow.New(client, workflow.Config{
			MaxAttempts:   cfg.MaxAttempts,
			RetryDelay:    cfg.RetryDelay,
			MaxRetryDelay: cfg.MaxRetryDelay,
			Logger:        &logger,
		})

		translated, err := w.Run(context.Background(), text)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}

		fmt.Println(translated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&messageText, "text", "t", "", "Message text to translate")
	translateCmd.Flags().StringVarP(&inputFile, "input", "i", "", "File containing the message text")
	translateCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to the YAML config file")
	translateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log each workflow step")
}
