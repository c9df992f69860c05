package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"bubblesort/src/store"
)

func CmdHistory() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Action:    history,
		Category:  "TOOL",
		Usage:     "list the sort runs recorded in the database",
		ArgsUsage: "",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "meta-url",
				Aliases: []string{"m"},
				Usage:   "META-URL of the database recording the runs (MySQL)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Value: 20,
				Usage: "maximum number of runs to list, 0 for all",
			},
		},
	}
}

func history(ctx *cli.Context) error {
	setup(ctx, 0)
	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	metaURL := stringOpt(ctx, "meta-url", conf.MetaURL)
	if metaURL == "" {
		return errors.New("--meta-url is required")
	}

	db, err := store.Open(metaURL)
	if err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.Recent(ctx.Int("limit"))
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Fprintln(ctx.App.Writer, formatRun(r))
	}
	return nil
}

func formatRun(r store.Run) string {
	return fmt.Sprintf("%d\t%s\t%s\t%s\tpasses=%d comparisons=%d exchanges=%d\t%s",
		r.Id, r.Created.Format("2006-01-02 15:04:05"), r.Kind, r.Name,
		r.Passes, r.Comparisons, r.Exchanges, strings.Join(r.Output, " "))
}
