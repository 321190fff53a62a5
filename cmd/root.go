package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/kdstats/core"
	"github.com/huangsam/kdstats/internal/contract"
	"github.com/huangsam/kdstats/internal/outwriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kdstats [csv-file]",
	Short: "Chart and tabulate game statistics from a CSV export.",
	Long: `kdstats reads game sessions (UTC Timestamp, Skill, Kills, Deaths) from a CSV file,
derives the K/D ratio of every session and writes two PDF reports:
a dual-axis chart of K/D ratio and skill, and a paginated data table.

The input path is prompted for unless it is given as an argument.`,
	Version:            version,
	Args:               cobra.MaximumNArgs(1),
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	PreRunE:            sharedSetupWrapper,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(rootCtx, cmd.InOrStdin(), cmd.OutOrStdout(), args)
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".kdstats") // Name of config file (without extension)
		viper.SetConfigType("yaml")     // We'll use YAML format
		viper.AddConfigPath(".")        // Look in the current directory
		viper.AddConfigPath("$HOME")    // Look in the home directory
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("KDSTATS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // Read in environment variables that match

	// Set defaults in Viper
	defaults := contract.DefaultRawInput()
	viper.SetDefault("output-dir", defaults.OutputDir)
	viper.SetDefault("chart-file", defaults.ChartFile)
	viper.SetDefault("table-file", defaults.TableFile)
	viper.SetDefault("rows-per-page", defaults.RowsPerPage)
	viper.SetDefault("xtick-step", defaults.XTickStep)
	viper.SetDefault("skip-malformed", defaults.SkipMalformed)
	viper.SetDefault("color", defaults.Color)
	viper.SetDefault("summary", defaults.Summary)
	viper.SetDefault("width", 0)
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(_ context.Context, _ *cobra.Command, _ []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, which is fine; we'll use defaults/env.
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Run all validation and complex parsing.
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}
	cfg.Version = version
	if !cfg.UseColors {
		color.NoColor = true
	}
	return nil
}

// sharedSetupWrapper adapts sharedSetup to cobra's PreRunE signature.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// runReport resolves the input path and runs one report.
func runReport(ctx context.Context, in io.Reader, out io.Writer, args []string) error {
	var path string
	if len(args) == 1 {
		path = contract.CleanInputPath(args[0])
	} else {
		var err error
		if path, err = contract.ReadInputPath(in, out); err != nil {
			return err
		}
	}

	_, err := core.ExecuteReport(ctx, cfg, path, outwriter.NewOutWriter(cfg, out))
	return reportOutcome(out, path, err)
}

// reportOutcome prints the expected end-of-run messages.
// A missing input or an empty dataset ends the run cleanly.
func reportOutcome(out io.Writer, path string, err error) error {
	switch {
	case err == nil:
		_, _ = fmt.Fprintf(out, "📄 Reports written: %s and %s\n",
			contract.Paint(contract.SuccessColor, cfg.ChartPath(), cfg.UseColors),
			contract.Paint(contract.SuccessColor, cfg.TablePath(), cfg.UseColors))
		return nil
	case errors.Is(err, core.ErrInputNotFound):
		_, _ = fmt.Fprintf(out, "Error: File '%s' does not exist.\n", path)
		return nil
	case errors.Is(err, core.ErrEmptyDataset):
		_, _ = fmt.Fprintln(out, "No valid data found in the CSV.")
		return nil
	default:
		return err
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
