// Package cmd defines the command-line interface for kdstats.
package cmd

import (
	"github.com/huangsam/kdstats/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)

	// Report settings come from the config file or KDSTATS_* env; only the file location is a flag.
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
