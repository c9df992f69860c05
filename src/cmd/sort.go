package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"

	"bubblesort/src/dataset"
	"bubblesort/src/store"
	"bubblesort/src/utils"
)

var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func CmdSort() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Action:    sortAction,
		Category:  "TOOL",
		Usage:     "sort value sequences read from files or stdin",
		ArgsUsage: "[PATH ...]",
		Description: `
Every PATH is a file, a directory or a tar archive of value sequences; values
are separated by white space or commas. Without PATH the values are read from
stdin.

Examples:
$ echo 5 3 8 4 2 | bubblesort sort
$ bubblesort sort --tree --stats numbers.txt
$ bubblesort sort -m "mysql://root:@(127.0.0.1:3306)/bubblesort" ./data
# A safer alternative
$ export META_PASSWORD=mypassword
$ bubblesort sort -m "mysql://root:@(127.0.0.1:3306)/bubblesort" ./data`,

		Flags: []cli.Flag{
			typeFlag(),
			&cli.BoolFlag{
				Name:  "tree",
				Usage: "display every pass and exchange as a tree",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Value:   true,
				Usage:   "display the sorted values in list format",
			},
			&cli.BoolFlag{
				Name:    "stats",
				Aliases: []string{"s"},
				Usage:   "display passes, comparisons and exchanges",
			},
			&cli.StringFlag{
				Name:    "meta-url",
				Aliases: []string{"m"},
				Usage:   "META-URL of the database recording the runs (MySQL)",
			},
		},
	}
}

func sortAction(ctx *cli.Context) error {
	setup(ctx, 0)

	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	kind, err := parseKind(stringOpt(ctx, "type", conf.Type))
	if err != nil {
		return err
	}

	seqs, err := readInput(ctx)
	if err != nil {
		return err
	}

	var db *store.Store
	if metaURL := stringOpt(ctx, "meta-url", conf.MetaURL); metaURL != "" {
		if db, err = store.Open(metaURL); err != nil {
			return err
		}
		defer db.Close()
	}

	w := ctx.App.Writer
	root := &utils.Node{}
	for _, seq := range seqs {
		var tree *utils.Node
		if ctx.Bool("tree") {
			tree = root.Path(seq.Name)
		}
		res, err := sortSequence(kind, seq, tree)
		if err != nil {
			return err
		}
		logger.Debugf("%s: %d values, %d passes, %d comparisons, %d exchanges",
			seq.Name, len(res.Output), res.Stats.Passes, res.Stats.Comparisons, res.Stats.Exchanges)

		if ctx.Bool("list") && !ctx.Bool("tree") {
			line := strings.Join(res.Output, " ")
			if len(seqs) > 1 {
				line = seq.Name + ": " + line
			}
			fmt.Fprintln(w, line)
		}
		if ctx.Bool("stats") {
			fmt.Fprintf(w, "%s: passes=%d comparisons=%d exchanges=%d early-exit=%t\n",
				seq.Name, res.Stats.Passes, res.Stats.Comparisons, res.Stats.Exchanges, res.Stats.EarlyExit)
		}
		if db != nil {
			if err := db.Save(store.NewRun(seq.Name, string(kind), seq.Fields, res.Output, res.Stats)); err != nil {
				logger.Errorf("record run: %s", err)
			}
		}
	}

	if ctx.Bool("tree") {
		root.ShowTree(w, "")
	}
	return nil
}

func readInput(ctx *cli.Context) ([]dataset.Sequence, error) {
	if ctx.NArg() == 0 {
		if stdinIsTerminal() {
			return nil, errors.New("no input: pass a PATH or pipe values to stdin")
		}
		seq, err := dataset.Parse("stdin", ctx.App.Reader)
		if err != nil {
			return nil, err
		}
		return []dataset.Sequence{seq}, nil
	}

	var seqs []dataset.Sequence
	for _, path := range ctx.Args().Slice() {
		if path == "-" {
			seq, err := dataset.Parse("stdin", ctx.App.Reader)
			if err != nil {
				return nil, err
			}
			seqs = append(seqs, seq)
			continue
		}
		loaded, err := dataset.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		seqs = append(seqs, loaded...)
	}
	return seqs, nil
}
