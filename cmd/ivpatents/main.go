// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ivpatents CLI. It fetches Google
// Patents metadata for a patent dataset and summarizes university assignees.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ivpatents/internal/logging"
	"github.com/pdiddy/ivpatents/internal/paths"
	"github.com/pdiddy/ivpatents/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// Resolved at startup by PersistentPreRunE and handed to each stage.
var (
	pipeline types.PipelineConfig
	logger   *logging.Logger
)

// rootCmd is the base command for the ivpatents CLI.
var rootCmd = &cobra.Command{
	Use:   "ivpatents",
	Short: "Fetch patent assignees and summarize university patents",
	Long: `ivpatents reads a patent dataset, fetches each US patent's Google Patents
page, and records the original assignee and key dates in a tab-separated
table. The analyze stage restricts that table to university assignees and
renders a summary table and a bar chart of the top assignees.

Stages are subcommands: fetch, analyze, and index. "run" executes fetch then
analyze. Once the patent table exists, fetch does nothing, so re-running is
safe and issues no network requests.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadPipelineConfig()
		if err != nil {
			return err
		}
		if err := paths.Ensure(cfg.Layout); err != nil {
			return err
		}
		pipeline = cfg
		logger = logging.New(cfg.Log)
		logger.Debug("resolved layout", "root", cfg.Layout.RootDir,
			"data", cfg.Layout.DataDir, "plots", cfg.Layout.PlotsDir)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return logger.Close()
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./ivpatents.yaml or ~/.config/ivpatents/config.yaml)")
	pf.String("root", "", "project root holding data/ and plots/ (default: parent of the binary's directory)")
	pf.String("data-dir", "", "data directory (default: <root>/data)")
	pf.String("plots-dir", "", "plots directory (default: <root>/plots)")
	pf.String("input", defaultInput, "input dataset, relative to the data directory")
	pf.String("output", defaultOutput, "patent table, relative to the data directory")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-file", "", "also write logs to this file, rotated")

	bindFlags(pf, map[string]string{
		keyRootDir:  "root",
		keyDataDir:  "data-dir",
		keyPlotsDir: "plots-dir",
		keyInput:    "input",
		keyOutput:   "output",
		keyLogLevel: "log-level",
		keyLogFile:  "log-file",
	})
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ivpatents")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ivpatents"))
		}
	}

	viper.SetEnvPrefix("IVPATENTS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
