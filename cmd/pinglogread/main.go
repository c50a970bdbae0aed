// Command pinglogread decodes probe telemetry logs and prints one line per
// record, or a per-file summary with --stats.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/probeops/pinglog"
	"github.com/probeops/pinglog/stats"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	app := &cli.App{
		Name:      "pinglogread",
		Usage:     "decode probe telemetry logs into per-record lines",
		ArgsUsage: "LOGFILE [LOGFILE...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print one summary line per file instead of individual records",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return cli.Exit("missing log file argument", 2)
			}

			var failures error
			for _, path := range c.Args().Slice() {
				if err := readLog(path, c.Bool("stats")); err != nil {
					logger.Error("decode failed",
						zap.String("path", path),
						zap.Error(err),
					)
					failures = multierr.Append(failures, err)
				}
			}
			if failures != nil {
				return cli.Exit("", 1)
			}

			return nil
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// readLog decodes one file with fresh carried-timestamp state.
func readLog(path string, summarize bool) error {
	f, err := pinglog.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if summarize {
		return printSummary(path, f)
	}

	for rec, err := range f.All() {
		if err != nil {
			return err
		}
		fmt.Println(rec)
	}

	return nil
}

func printSummary(path string, f *pinglog.File) error {
	s, err := stats.Collect(f.Reader)
	if err != nil {
		return err
	}

	span := "span=unknown"
	if first, last, ok := s.Span(); ok {
		span = fmt.Sprintf("span=%s..%s",
			first.Format("2006-01-02T15:04:05.000000"),
			last.Format("2006-01-02T15:04:05.000000"))
	}

	fmt.Printf("%s id=%016x records=%d packets=%d lost=%d loss=%.3f%% max_inflight=%d avg_recv=%s %s\n",
		path, pinglog.LogID(path), s.Records, s.Packets, s.Lost,
		s.LossRatio()*100, s.MaxInflight, s.AvgRecv(), span)

	return nil
}
