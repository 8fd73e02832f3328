// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mobile-advisor CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mobile-advisor/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when set, else the secret value for key.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// truncateName shortens a device name to at most max runes for table
// output, marking the cut with "...". Slicing by byte could split a
// multi-byte rune in a brand or model name.
func truncateName(name string, max int) string {
	if utf8.RuneCountInString(name) <= max {
		return name
	}
	return string([]rune(name)[:max-3]) + "..."
}

// rootCmd is the base command for the mobile-advisor CLI.
var rootCmd = &cobra.Command{
	Use:   "mobile-advisor",
	Short: "Hybrid mobile device recommendation engine",
	Long: `mobile-advisor recommends mobile devices from a local catalog. The expert
path blends attribute similarity, deterministic expert rules, and historical
brand popularity into one ranked list. The advise path asks a remote
text-generation service for suggestions and reconciles its free-text answers
back onto the catalog, degrading to a deterministic fallback when the
service is unusable.

Each path is a subcommand: recommend (expert scoring), advise (remote
recommender), catalog (seed and inspect the device catalog), and history
(the append-only choice log that feeds the popularity signal).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mobile-advisor.yaml or ~/.config/mobile-advisor/config.yaml)")
	rootCmd.PersistentFlags().String("db", "", "catalog database path (default: advisor.db)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mobile-advisor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mobile-advisor"))
		}
	}

	viper.SetEnvPrefix("MOBILE_ADVISOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
