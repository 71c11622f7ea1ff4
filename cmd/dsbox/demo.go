package main

import (
	"context"
	"fmt"
	"io"

	"github.com/KilimcininKorOglu/dsbox/internal/config"
	"github.com/KilimcininKorOglu/dsbox/internal/demo"
	"github.com/KilimcininKorOglu/dsbox/internal/logging"
	"github.com/urfave/cli/v3"
)

func demoCommand(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "run the trie, heap and hash table demonstration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      "config",
				Aliases:   []string{"c"},
				Usage:     "path to a YAML or TOML configuration file",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level: debug, info, warn, error (overrides config)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format: text, json (overrides config)",
			},
			&cli.BoolFlag{
				Name:  "no-summary",
				Usage: "skip the summary table",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg, err := loadDemoConfig(cmd)
			if err != nil {
				return err
			}

			logger, closeLog := newLogger(cfg.Logging, stderr)
			defer closeLog()

			report, err := demo.Run(stdout, cfg, logger)
			if err != nil {
				return err
			}

			if !cmd.Bool("no-summary") {
				fmt.Fprintln(stdout)
				demo.RenderSummary(stdout, report, terminalWidth(stdout))
			}
			return nil
		},
	}
}

// loadDemoConfig reads --config when given and applies flag overrides.
// Validation happens in demo.Run.
func loadDemoConfig(cmd *cli.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if level := cmd.String("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format := cmd.String("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	return cfg, nil
}

// newLogger builds the logger for a command. Console destinations go to
// stderr so log lines never interleave with the demo echo on stdout.
func newLogger(lc config.LogConfig, stderr io.Writer) (logging.Logger, func() error) {
	switch lc.Output {
	case "", "stderr", "stdout":
		l := logging.NewWriter(stderr, logging.ParseLevel(lc.Level), logging.ParseFormat(lc.Format))
		return l, func() error { return nil }
	default:
		return logging.New(logging.Config{Level: lc.Level, Format: lc.Format, Output: lc.Output})
	}
}
