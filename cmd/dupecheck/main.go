// Command dupecheck moves byte-identical files of a folder into its holding
// directory and reports the files that only share a name.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/actions"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/logging"
	"github.com/llehouerou/reel/internal/msgqueue"
)

const pollEvery = 50 * time.Millisecond

func main() {
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-v] <folder>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, flag.Arg(0), *verbose, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpDuplicateCheck, err))
		os.Exit(1)
	}
}

func run(ctx context.Context, folder string, verbose bool, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := cfg.GetLogConfig()
	logOut := io.Discard
	if verbose {
		logCfg.Level = "debug"
		logOut = os.Stderr
	}
	logger := logging.New(logOut, logCfg)

	info, err := os.Stat(folder)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", folder)
	}

	q := msgqueue.New(msgqueue.DefaultCapacity)
	defer q.Close()

	req := actions.Request{
		Base:       folder,
		Ignored:    cfg.IgnoredExtensions,
		DeletedDir: cfg.GetDeletedDir(),
	}
	if _, err := actions.Default(logger).Start(ctx, q, actions.CheckDuplicates, req); err != nil {
		return err
	}

	return report(ctx, q, out)
}

// report prints results as they arrive until the check ends.
func report(ctx context.Context, q *msgqueue.Queue, out io.Writer) error {
	ticker := time.NewTicker(pollEvery)
	defer ticker.Stop()

	var done bool
	var failure error
	handle := func(m msgqueue.Message) {
		switch p := m.Payload.(type) {
		case actions.DupesRemoved:
			fmt.Fprintf(out, "removed  %s (same as %s, %s)\n", p.Path, p.Original, humanize.Bytes(uint64(p.Size))) //nolint:gosec // sizes are non-negative
		case actions.DupesNames:
			fmt.Fprintf(out, "name     %s: %d files differ\n", p.Name, len(p.Paths))
			for _, path := range p.Paths {
				fmt.Fprintf(out, "         %s\n", path)
			}
		case actions.DupesEnd:
			fmt.Fprintf(out, "\n%s files checked, %s removed, %s reclaimed\n",
				humanize.Comma(int64(p.Processed)),
				humanize.Comma(int64(p.Removed)),
				humanize.Bytes(uint64(p.Reclaimed))) //nolint:gosec // sizes are non-negative
			done = true
		case actions.ActionError:
			failure = p.Err
			done = true
		}
	}

	for !done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			q.Drain(pollEvery, handle)
		}
	}
	if failure != nil && !errors.Is(failure, context.Canceled) {
		return failure
	}
	return nil
}
