// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdiddy/ivpatents/internal/paths"
	"github.com/pdiddy/ivpatents/pkg/types"
)

// Config keys, shared by the config file, IVPATENTS_* env vars and flags.
const (
	keyRootDir      = "root_dir"
	keyDataDir      = "data_dir"
	keyPlotsDir     = "plots_dir"
	keyInput        = "input"
	keyOutput       = "output"
	keyUniversities = "universities"
	keyChart        = "chart"
	keySummary      = "summary"
	keyIndex        = "index"
	keyTimeout      = "timeout"
	keyUserAgent    = "user_agent"
	keyTopN         = "top_n"
	keyLogLevel     = "log_level"
	keyLogFile      = "log_file"
)

const (
	defaultInput        = "ivpatents_sept23_2016.csv"
	defaultOutput       = "ivpatents_sept23_2016.info.with_dates.txt"
	defaultUniversities = "ivpatents_universities.txt"
	defaultChart        = "ivpatents_univ.pdf"
	defaultSummary      = "ivpatents_univ.yaml"
	defaultIndex        = "ivpatents.db"
	defaultTimeout      = 60 * time.Second
	defaultUserAgent    = "ivpatents/0.1"
	defaultTopN         = 10
)

// bindFlags binds each config key to the named flag in fs.
func bindFlags(fs *pflag.FlagSet, keys map[string]string) {
	for key, flag := range keys {
		if err := viper.BindPFlag(key, fs.Lookup(flag)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", flag, err))
		}
	}
}

// loadPipelineConfig resolves every stage configuration from viper.
func loadPipelineConfig() (types.PipelineConfig, error) {
	viper.SetDefault(keyTimeout, defaultTimeout)
	viper.SetDefault(keyUserAgent, defaultUserAgent)
	viper.SetDefault(keyTopN, defaultTopN)
	viper.SetDefault(keyUniversities, defaultUniversities)
	viper.SetDefault(keyChart, defaultChart)
	viper.SetDefault(keySummary, defaultSummary)
	viper.SetDefault(keyIndex, defaultIndex)

	layout, err := paths.Resolve(
		viper.GetString(keyRootDir),
		viper.GetString(keyDataDir),
		viper.GetString(keyPlotsDir),
	)
	if err != nil {
		return types.PipelineConfig{}, err
	}

	timeout := viper.GetDuration(keyTimeout)
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	table := paths.InData(layout, viper.GetString(keyOutput))

	return types.PipelineConfig{
		Layout: layout,
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: viper.GetString(keyUserAgent),
			},
			InputPath:  paths.InData(layout, viper.GetString(keyInput)),
			OutputPath: table,
		},
		Analysis: types.AnalysisConfig{
			TablePath:        table,
			UniversitiesPath: paths.InData(layout, viper.GetString(keyUniversities)),
			ChartPath:        paths.InPlots(layout, viper.GetString(keyChart)),
			SummaryPath:      paths.InPlots(layout, viper.GetString(keySummary)),
			TopN:             viper.GetInt(keyTopN),
		},
		Index: types.IndexConfig{
			Path:      paths.InData(layout, viper.GetString(keyIndex)),
			TablePath: table,
		},
		Log: types.LogConfig{
			Level: viper.GetString(keyLogLevel),
			File:  viper.GetString(keyLogFile),
		},
	}, nil
}
