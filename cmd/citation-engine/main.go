// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the citation-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/citation-engine/internal/locale"
	"github.com/pdiddy/citation-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the citation-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "citation-engine",
	Short: "Format, parse, and detect bibliographic citations",
	Long: `citation-engine turns structured bibliographic data into formatted
citations (APA 7, MLA 9, Chicago, IEEE, GB/T 7714) and goes the other way:
it detects the style of freeform citation text and extracts its fields.

Resolved and formatted citations can be saved to a local library and
exported as CSL-YAML for Pandoc and reference managers.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./citation-engine.yaml or ~/.config/citation-engine/config.yaml)")
	rootCmd.PersistentFlags().String("locale", "", "YAML locale file overriding the built-in English labels")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("citation-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "citation-engine"))
		}
	}

	viper.SetEnvPrefix("CITATION_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// formatOptions loads locale labels from --locale, the config file, or the
// built-in English defaults.
func formatOptions(cmd *cobra.Command) (types.CitationFormatOptions, error) {
	path, _ := cmd.Flags().GetString("locale")
	if path == "" {
		path = viper.GetString("locale_file")
	}
	if path == "" {
		return locale.English(), nil
	}
	return locale.Load(path)
}

// defaultStyle resolves the style to use when a command's --style flag is
// empty. The config file's default_style wins over the built-in APA 7.
func defaultStyle(flag string) types.CitationStyle {
	if flag != "" {
		return types.CitationStyle(flag)
	}
	if s := viper.GetString("default_style"); s != "" {
		return types.CitationStyle(s)
	}
	return types.StyleAPA7
}

// libraryConfig builds the store configuration from flags and config.
func libraryConfig(cmd *cobra.Command) types.LibraryConfig {
	dir, _ := cmd.Flags().GetString("library-dir")
	if dir == "" {
		dir = viper.GetString("library_dir")
	}
	if dir == "" {
		dir = "library"
	}
	maxResults, _ := cmd.Flags().GetInt("max-results")
	return types.LibraryConfig{LibraryDir: dir, MaxResults: maxResults}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
