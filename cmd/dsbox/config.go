package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/KilimcininKorOglu/dsbox/internal/config"
	"github.com/urfave/cli/v3"
)

var errConfigPathRequired = errors.New("config file path is required")

func configCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "configuration management",
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "validate a configuration file",
				ArgsUsage: "FILE",
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := cmd.Args().First()
					if path == "" {
						return errConfigPathRequired
					}

					cfg, err := config.LoadConfig(path)
					if err != nil {
						return err
					}
					if errs := config.ValidateConfig(cfg); len(errs) > 0 {
						for _, e := range errs {
							fmt.Fprintf(stdout, "  - %v\n", e)
						}
						return fmt.Errorf("%s: %d validation error(s)", path, len(errs))
					}

					fmt.Fprintf(stdout, "%s: configuration is valid\n", path)
					return nil
				},
			},
			{
				Name:  "defaults",
				Usage: "print the default configuration",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: yaml, toml",
						Value: string(config.FormatYAML),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					data, err := config.Marshal(config.DefaultConfig(), config.Format(cmd.String("format")))
					if err != nil {
						return err
					}
					_, err = stdout.Write(data)
					return err
				},
			},
		},
	}
}
