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
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.1.0"

var (
	envFile string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "machinetranslation",
	Short: "English/French translator",
	Long: `A CLI application that translates text between English and French
using IBM Watson Language Translator (or Google Cloud Translation).

Credentials are read from the environment or a .env file:
  apikey   IBM Cloud API key
  url      Language Translator service URL

Use "machinetranslation translate --help" for translation options.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	},
}

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File to seed environment variables from")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("provider", "ibm", "Translation provider (ibm, google)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Per-request timeout (0 = none)")
	rootCmd.PersistentFlags().String("credentials", "", "Path to Google Cloud credentials (google provider)")

	_ = viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("google_credentials", rootCmd.PersistentFlags().Lookup("credentials"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("translation failed")
		os.Exit(1)
	}
}
