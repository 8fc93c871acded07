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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/valpere/machinetranslation/internal/config"
	"github.com/valpere/machinetranslation/internal/detector"
	"github.com/valpere/machinetranslation/internal/translator"
	"github.com/valpere/machinetranslation/internal/validator"
)

var (
	inputFile  string
	outputFile string
	direction  string
	verify     bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate text between English and French",
	Long: `Translate text between English and French.

Text is taken from the arguments, from --input, or from stdin.

Directions:
  en-fr   English to French (default)
  fr-en   French to English
  auto    detect the source language`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		var dir translator.Direction
		switch direction {
		case "auto":
			dir, err = detector.New().Direction(text)
			if err != nil {
				return err
			}
			log.Debug().Str("direction", dir.String()).Msg("detected source language")
		default:
			dir, err = translator.ParseModelID(direction)
			if err != nil {
				return err
			}
		}

		return runTranslation(cmd, dir, text)
	},
}

var en2frCmd = &cobra.Command{
	Use:   "en2fr [text...]",
	Short: "Translate English text to French",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return runTranslation(cmd, translator.EnglishFrench, text)
	},
}

var fr2enCmd = &cobra.Command{
	Use:   "fr2en [text...]",
	Short: "Translate French text to English",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}
		return runTranslation(cmd, translator.FrenchEnglish, text)
	},
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if inputFile != "" && len(args) > 0 {
		return "", fmt.Errorf("pass text as arguments or --input, not both")
	}

	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

func runTranslation(cmd *cobra.Command, dir translator.Direction, text string) error {
	if inputFile != "" && inputFile == outputFile {
		return fmt.Errorf("input file and output file cannot be the same")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(viper.GetViper(), envFile)
	if err != nil {
		return err
	}
	log.Debug().Stringer("config", cfg).Msg("configuration loaded")

	provider, closeProvider, err := buildProvider(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeProvider()

	if cfg.Service.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Service.Timeout)
		defer cancel()
	}

	tr := translator.New(provider)

	log.Debug().
		Str("provider", provider.Name()).
		Str("model", dir.ModelID()).
		Int("chars", len(text)).
		Msg("translating")

	result, err := translateDirection(ctx, tr, dir, &text)
	if err != nil {
		return err
	}

	if verify {
		if ok, verr := validator.New().IsValid(*result, dir); !ok {
			log.Warn().Err(verr).Str("model", dir.ModelID()).Msg("translation may not be in the target language")
		}
	}

	if outputFile == "" {
		fmt.Fprintln(cmd.OutOrStdout(), *result)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(outputFile, []byte(*result), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	log.Info().Str("model", dir.ModelID()).Str("output", outputFile).Msg("translation written")
	return nil
}

func init() {
	for _, c := range []*cobra.Command{translateCmd, en2frCmd, fr2enCmd} {
		c.Flags().StringVarP(&inputFile, "input", "i", "", "Input file to translate")
		c.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default stdout)")
		c.Flags().BoolVar(&verify, "verify", false, "Warn when the result does not look like the target language")
		rootCmd.AddCommand(c)
	}

	translateCmd.Flags().StringVarP(&direction, "direction", "d", "en-fr", "Translation direction (en-fr, fr-en, auto)")
}
