// Package cmd implements the CLI commands for headlink using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/headlink/config"
	"github.com/gaurav-prasanna/headlink/internal"
)

var log = internal.GetLogger()

var (
	flagConfig   string
	flagLogLevel string

	// cfg is loaded before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "headlink",
	Short: "headlink — turn article URLs into linked newsletter sentences",
	Long: `headlink fetches the title of each article URL and renders it as a short
HTML sentence: a bold lead, a plain middle and a linked tail.

Usage:
  headlink generate <url>... [flags]
  headlink segment <title> --url <url>
  headlink serve`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default: ./headlink.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(viper.GetViper(), flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		loaded.Log.Level = flagLogLevel
	}
	level := internal.SetLogLevel(loaded.Log.Level)
	log.Debugf("Log level set to %s", level)

	cfg = loaded
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
