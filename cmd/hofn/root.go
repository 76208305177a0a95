package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/KasperOmsK/hofn"
	"github.com/KasperOmsK/hofn/internal/dataset"
)

// config is resolved from flags, HOFN_* environment variables and an
// optional config file, in that order of precedence.
type config struct {
	File        string
	Op          string
	SkipMissing bool
	LogLevel    string
}

var operators = map[string]func() hofn.Monoid[float64]{
	"add": hofn.Addition[float64],
	"mul": hofn.Multiplication[float64],
	"max": hofn.Maximum,
	"min": hofn.Minimum,
}

func (c config) monoid() (hofn.Monoid[float64], error) {
	mk, ok := operators[c.Op]
	if !ok {
		return hofn.Monoid[float64]{}, fmt.Errorf("unknown operator %q", c.Op)
	}
	return mk(), nil
}

func loadConfig(v *viper.Viper) (config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("hofn")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := config{
		File:        v.GetString("file"),
		Op:          v.GetString("op"),
		SkipMissing: v.GetBool("skip-missing"),
		LogLevel:    v.GetString("log-level"),
	}
	if cfg.File == "" {
		return config{}, errors.New("no dataset: set --file or HOFN_FILE")
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}

// env is what every subcommand runs with.
type env struct {
	cfg  config
	log  *slog.Logger
	op   hofn.Monoid[float64]
	data *dataset.Dataset
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("HOFN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var e env

	root := &cobra.Command{
		Use:           "hofn",
		Short:         "Apply lifted binary operators to YAML datasets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd, cfg.LogLevel)
			if err != nil {
				return err
			}
			op, err := cfg.monoid()
			if err != nil {
				return err
			}
			data, err := dataset.Load(cfg.File)
			if err != nil {
				return err
			}
			logger.Debug("dataset loaded",
				"file", cfg.File,
				"values", len(data.Values),
				"other", len(data.Other),
				"groups", len(data.Groups),
				"matrix", fmt.Sprintf("%dx%d", data.Matrix.Rows(), data.Matrix.Cols()),
			)
			e = env{cfg: cfg, log: logger, op: op, data: data}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringP("file", "f", "", "dataset to read")
	flags.String("op", "add", "operator: add, mul, max or min")
	flags.Bool("skip-missing", false, "skip missing values instead of propagating them")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("config", "", "config file (default ./hofn.yaml if present)")
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}

	root.AddCommand(
		newReduceCommand(&e),
		newCumulativeCommand(&e),
		newZipCommand(&e),
		newAxisCommand(&e),
		newGroupCommand(&e),
	)
	return root
}
