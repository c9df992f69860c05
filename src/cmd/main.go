package cmd

import (
	"github.com/urfave/cli/v2"
)

const version = "0.2.0"

func NewApp() *cli.App {
	return &cli.App{
		Name:    "bubblesort",
		Usage:   "sort value sequences in place with an early exit bubble sort",
		Version: version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug", "v"},
				Usage:   "enable debug log",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only warning and errors",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "enable trace log",
			},
			&cli.BoolFlag{
				Name:  "no-agent",
				Usage: "disable pprof (:6060), metrics and gops (:6070) agent",
			},
			&cli.StringFlag{
				Name:  "pyroscope",
				Usage: "pyroscope address",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colors",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML file with default options",
				EnvVars: []string{"BUBBLESORT_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			CmdSort(),
			CmdPack(),
			CmdHistory(),
		},
	}
}

func Main(args []string) error {
	return NewApp().Run(args)
}
