package cmd

import (
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strconv"
	"strings"

	"github.com/google/gops/agent"
	"github.com/pyroscope-io/client/pyroscope"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"bubblesort/src/dataset"
	"bubblesort/src/utils"
)

var logger = utils.GetLogger("bubblesort")

func setup(c *cli.Context, n int) {
	if c.NArg() < n {
		fmt.Printf("ERROR: This command requires at least %d arguments\n", n)
		fmt.Printf("USAGE:\n   bubblesort %s [command options] %s\n", c.Command.Name, c.Command.ArgsUsage)
		os.Exit(1)
	}

	conf, err := loadConfig(c)
	if err != nil {
		logger.Warnf("load config: %s", err)
		conf = &Config{}
	}

	if c.Bool("trace") {
		utils.SetLogLevel(logrus.TraceLevel)
	} else if c.Bool("verbose") {
		utils.SetLogLevel(logrus.DebugLevel)
	} else if c.Bool("quiet") {
		utils.SetLogLevel(logrus.WarnLevel)
	} else if lvl, err := logrus.ParseLevel(conf.LogLevel); conf.LogLevel != "" && err == nil {
		utils.SetLogLevel(lvl)
	} else {
		utils.SetLogLevel(logrus.InfoLevel)
	}
	if c.Bool("no-color") {
		utils.DisableLogColor()
	}

	if !c.Bool("no-agent") {
		go func() {
			for port := 6060; port < 6100; port++ {
				_ = http.ListenAndServe(fmt.Sprintf("127.0.0.1:%d", port), nil)
			}
		}()
		go func() {
			for port := 6070; port < 6100; port++ {
				_ = agent.Listen(agent.Options{Addr: fmt.Sprintf("127.0.0.1:%d", port)})
			}
		}()
	}

	if c.IsSet("pyroscope") {
		tags := make(map[string]string)
		appName := fmt.Sprintf("bubblesort.%s", c.Command.Name)
		if hostname, err := os.Hostname(); err == nil {
			tags["hostname"] = hostname
		}
		tags["pid"] = strconv.Itoa(os.Getpid())
		tags["version"] = version

		if _, err := pyroscope.Start(pyroscope.Config{
			ApplicationName: appName,
			ServerAddress:   c.String("pyroscope"),
			Logger:          logger,
			Tags:            tags,
			AuthToken:       os.Getenv("PYROSCOPE_AUTH_TOKEN"),
			ProfileTypes:    pyroscope.DefaultProfileTypes,
		}); err != nil {
			logger.Errorf("start pyroscope agent: %v", err)
		}
	}
}

func CmdPack() *cli.Command {
	return &cli.Command{
		Name:      "pack",
		Action:    pack,
		Category:  "TOOL",
		Usage:     "sort every sequence of a data set and pack the results into tar volumes",
		ArgsUsage: "SOURCE DEST.tar",
		Description: `
SOURCE is a file, a directory or a tar archive of value sequences. Each
sequence is sorted and written as one entry of DEST.tar; once a volume
exceeds --pack-size the next one is named DEST_1.tar, DEST_2.tar and so on.

Examples:
$ bubblesort pack ./numbers sorted.tar
$ bubblesort pack --type string names.tar sorted.tar`,
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "pack-size",
				Aliases: []string{"s"},
				Value:   4,
				Usage:   "size of each pack in MiB(max size 4MB)",
			},
			typeFlag(),
		},
	}
}

func pack(ctx *cli.Context) error {
	setup(ctx, 2)
	if ctx.Uint("pack-size") == 0 || ctx.Uint("pack-size") > 4 {
		return os.ErrInvalid
	}

	src := ctx.Args().Get(0)
	dst := ctx.Args().Get(1)
	if src == dst || !strings.HasSuffix(dst, ".tar") {
		return os.ErrInvalid
	}

	conf, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	kind, err := parseKind(stringOpt(ctx, "type", conf.Type))
	if err != nil {
		return err
	}

	seqs, err := dataset.Load(src)
	if err != nil {
		return fmt.Errorf("load %s: %w", src, err)
	}
	for i := range seqs {
		res, err := sortSequence(kind, seqs[i], nil)
		if err != nil {
			return err
		}
		seqs[i].Fields = res.Output
		logger.Debugf("sorted %s: %d passes, %d exchanges", seqs[i].Name, res.Stats.Passes, res.Stats.Exchanges)
	}

	paths, err := dataset.Pack(dst, seqs, int64(ctx.Uint("pack-size"))<<20)
	if err != nil {
		return fmt.Errorf("pack %s: %w", dst, err)
	}
	logger.Infof("packed %d sequences into %d archives", len(seqs), len(paths))
	for _, p := range paths {
		fmt.Fprintln(ctx.App.Writer, p)
	}
	return nil
}
