// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pathway-engine CLI.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pathway-engine/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault resolves an API key: an explicit flag value wins, then the
// loaded key file, then the key's environment variable
// (e.g. PATHWAY_ENGINE_BIOGRID_ACCESS_KEY).
func secretDefault(key, fallback string) string {
	envVar := "PATHWAY_ENGINE_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
	return secrets.Lookup(loadedSecrets, key, envVar, fallback)
}

// rootCmd is the base command for the pathway-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "pathway-engine",
	Short: "Query protein-interaction and pathway services",
	Long: `pathway-engine is a client for public pathway and protein-interaction
services. It fetches interacting partners from STRING and BioGrid, maps
identifiers to Reactome pathways, lists pathway members, overlays expression
data on pathway diagrams, and answers local lookups against the bundled
BioPlex and WikiPathways tables.

Each operation is a subcommand: interact, bioplex, wikipathways, reactome,
and evidence. Results print as fixed-width tables, plain lists, or JSON.`,
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

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pathway-engine.yaml or ~/.config/pathway-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pathway-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pathway-engine"))
		}
	}

	viper.SetEnvPrefix("PATHWAY_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configString resolves a setting with flag-over-config precedence: the
// flag value when given on the command line, else the config-file value,
// else the flag default.
func configString(cmd *cobra.Command, flag, key string) string {
	v, _ := cmd.Flags().GetString(flag)
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		return v
	}
	return viper.GetString(key)
}

// configInt is configString for integer settings.
func configInt(cmd *cobra.Command, flag, key string) int {
	v, _ := cmd.Flags().GetInt(flag)
	if cmd.Flags().Changed(flag) || !viper.IsSet(key) {
		return v
	}
	return viper.GetInt(key)
}

// configBool returns the config-file value for key when present, else def.
func configBool(key string, def bool) bool {
	if viper.IsSet(key) {
		return viper.GetBool(key)
	}
	return def
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
