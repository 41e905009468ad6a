// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pincode-tools CLI.
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

// rootCmd is the base command for the pincode-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "pincode-tools",
	Short: "Offline utilities for pincode lookup data",
	Long: `pincode-tools prepares the flat-file datasets behind the pincode lookup
frontend. The convert subcommand turns government postal-code tables into JSON
lookup artifacts; the decrypt subcommand removes password encryption from PDF
documents supplied by partner banks.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pincode-tools.yaml or ~/.config/pincode-tools/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pincode-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pincode-tools"))
		}
	}

	viper.SetEnvPrefix("PINCODE_TOOLS")
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
