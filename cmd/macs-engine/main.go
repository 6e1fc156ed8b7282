// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the macs-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the macs-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "macs-engine",
	Short: "Maxwellian-averaged cross sections from the IAEA EXFOR archive",
	Long: `macs-engine fetches neutron-induced cross-section data from the IAEA EXFOR
web service and computes the Maxwellian-Averaged Cross Section (MACS) at one
or more thermal temperatures, for nuclear-astrophysics reaction-rate work.

Each operation is a subcommand: compute resolves a dataset and runs the
thermal average, sections lists the archive's candidate records, and history
shows previously recorded results.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./macs-engine.yaml or ~/.config/macs-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("macs-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "macs-engine"))
		}
	}

	viper.SetEnvPrefix("MACS_ENGINE")
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
