package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/KilimcininKorOglu/dsbox/internal/config"
	"github.com/KilimcininKorOglu/dsbox/internal/demo"
	"github.com/KilimcininKorOglu/dsbox/internal/hashtable"
	"github.com/KilimcininKorOglu/dsbox/internal/heap"
	"github.com/KilimcininKorOglu/dsbox/internal/trie"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

var errMalformedPair = errors.New("expected key=value")

func trieCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "trie",
		Usage: "insert words into a trie and query it",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "word",
				Aliases: []string{"w"},
				Usage:   "word to insert (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "word or prefix to look up (repeatable)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			t := trie.New()
			for _, w := range cmd.StringSlice("word") {
				t.Insert(w)
			}

			out := demo.NewTable(stdout, terminalWidth(stdout))
			out.AppendHeader(table.Row{"Query", "Search", "Starts With", "Completions"})
			for _, q := range cmd.StringSlice("query") {
				out.AppendRow(table.Row{q, t.Search(q), t.StartsWith(q), strings.Join(t.WordsWithPrefix(q), " ")})
			}
			out.AppendFooter(table.Row{"words", t.Len()})
			out.Render()
			return nil
		},
	}
}

func heapCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "heap",
		Usage: "insert values into a min-heap and drain it in order",
		Flags: []cli.Flag{
			&cli.IntSliceFlag{
				Name:  "value",
				Usage: "value to insert (repeatable)",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			h := heap.New[int]()
			for _, v := range cmd.IntSlice("value") {
				h.Insert(v)
			}
			fmt.Fprintf(stdout, "Heap: %v\n", h.Values())

			if m, ok := h.GetMin(); ok {
				fmt.Fprintf(stdout, "Min: %d\n", m)
			} else {
				fmt.Fprintln(stdout, "Min: none")
			}

			sorted := make([]int, 0, h.Len())
			for {
				v, ok := h.ExtractMin()
				if !ok {
					break
				}
				sorted = append(sorted, v)
			}
			fmt.Fprintf(stdout, "Sorted: %v\n", sorted)
			return nil
		},
	}
}

func tableCommand(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "table",
		Usage: "run insert, search and delete against a chained hash table",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "set",
				Usage: "insert or update an entry, as key=value (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "get",
				Usage: "key to search for (repeatable)",
			},
			&cli.StringSliceFlag{
				Name:  "delete",
				Usage: "key to delete (repeatable)",
			},
			&cli.IntFlag{
				Name:  "buckets",
				Usage: "number of buckets",
				Value: hashtable.DefaultSize,
			},
			&cli.StringFlag{
				Name:  "hasher",
				Usage: "key hash: fnv or seeded",
				Value: config.HasherFNV,
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					if s != config.HasherFNV && s != config.HasherSeeded {
						return fmt.Errorf("unsupported hasher %q - must be one of: fnv, seeded", s)
					}
					return nil
				},
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			var opts []hashtable.Option[string]
			if cmd.String("hasher") == config.HasherFNV {
				opts = append(opts, hashtable.WithHasher[string](hashtable.StringHasher))
			}
			t, err := hashtable.New[string, string](cmd.Int("buckets"), opts...)
			if err != nil {
				return err
			}

			for _, pair := range cmd.StringSlice("set") {
				k, v, ok := strings.Cut(pair, "=")
				if !ok || k == "" {
					return fmt.Errorf("%w: %q", errMalformedPair, pair)
				}
				t.Insert(k, v)
			}
			for _, k := range cmd.StringSlice("get") {
				if v, ok := t.Search(k); ok {
					fmt.Fprintf(stdout, "Search %q: %s\n", k, v)
				} else {
					fmt.Fprintf(stdout, "Search %q: not found\n", k)
				}
			}
			for _, k := range cmd.StringSlice("delete") {
				fmt.Fprintf(stdout, "Delete %q: %t\n", k, t.Delete(k))
			}

			return t.Display(stdout)
		},
	}
}
