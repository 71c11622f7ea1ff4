// Package main provides the entry point for the dsbox CLI.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	exitCode := run(os.Args, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string, stdout, stderr io.Writer) int {
	app := &cli.Command{
		Name:      "dsbox",
		Version:   version,
		Usage:     "trie, min-heap and hash table demonstrations",
		Suggest:   true,
		Writer:    stdout,
		ErrWriter: stderr,
		Commands: []*cli.Command{
			demoCommand(stdout, stderr),
			trieCommand(stdout),
			heapCommand(stdout),
			tableCommand(stdout),
			configCommand(stdout),
			versionCommand(stdout),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Present() {
				return fmt.Errorf("unknown command: %s", cmd.Args().First())
			}
			return cli.ShowAppHelp(cmd)
		},
	}

	// The default handler calls os.Exit for errors that carry an exit code.
	app.ExitErrHandler = func(_ context.Context, _ *cli.Command, _ error) {}

	if err := app.Run(context.Background(), args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
