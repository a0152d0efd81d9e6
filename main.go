package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/reel/internal/app"
	"github.com/llehouerou/reel/internal/config"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/logging"
	"github.com/llehouerou/reel/internal/mpris"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/session"
	"github.com/llehouerou/reel/internal/state"
	"github.com/llehouerou/reel/internal/stderr"
	"github.com/llehouerou/reel/internal/ui/styles"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, errmsg.Format(errmsg.OpInitialize, err))
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("reel", flag.ContinueOnError)
	top := fs.Int("top", 0, "print the `n` most played files and exit")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: reel [-top n] [folder]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	args = fs.Args()

	if *top > 0 {
		return printMostPlayed(*top, os.Stdout)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logCfg := cfg.GetLogConfig()
	w, closeLog, err := logging.Open(logCfg)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // best effort on exit
	logger := logging.New(w, logCfg)
	slog.SetDefault(logger)

	// Capture C library output before libmpv or ALSA initialize.
	capture, err := stderr.Start(func(line string) {
		logger.Debug("native output", "line", line)
	})
	if err != nil {
		logger.Warn("stderr capture unavailable", "err", err)
	}
	defer capture.Stop()

	stateMgr, err := state.Open()
	if err != nil {
		return err
	}
	defer stateMgr.Close()

	saved, err := stateMgr.GetSession()
	if err != nil {
		logger.Warn("load saved session", "err", err)
	}

	p, err := player.New(cfg.GetBackend())
	if err != nil {
		return err
	}

	sess := session.New(context.Background(), sessionConfig(cfg, saved), session.Deps{
		Player: p,
		Store:  stateMgr,
		Logger: logger,
	})
	defer sess.Close()

	adapter, err := mpris.New(sess)
	if err != nil {
		logger.Warn("mpris unavailable", "err", err)
	} else {
		defer adapter.Close()
	}

	folder, err := startFolder(args, cfg, saved)
	if err != nil {
		return err
	}
	if err := sess.OpenFolder(folder); err != nil {
		return err
	}

	styles.Apply(styles.Palette(cfg.Theme))

	ui := cfg.GetUIConfig()
	seek := cfg.GetSeekConfig()
	opts := app.Options{
		Tick:      ui.Tick(),
		SeekSmall: seek.Small(),
		SeekLong:  seek.Long(),
		Logger:    logger,
	}
	if cfg.GetNotifications() {
		opts.Notifier = notify.NewNowPlaying(notify.New())
	}
	model := app.New(sess, opts)

	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func printMostPlayed(n int, out io.Writer) error {
	stateMgr, err := state.Open()
	if err != nil {
		return err
	}
	defer stateMgr.Close()
	return writeMostPlayed(context.Background(), stateMgr, n, out)
}

func writeMostPlayed(ctx context.Context, stateMgr *state.Manager, n int, out io.Writer) error {
	top, err := stateMgr.MostPlayed(ctx, n)
	if err != nil {
		return err
	}
	if len(top) == 0 {
		_, err := fmt.Fprintln(out, "nothing played yet")
		return err
	}
	for _, f := range top {
		if _, err := fmt.Fprintf(out, "%5d  %-14s  %s\n",
			f.AccessCount, humanize.Time(f.LastAccessed), f.Path); err != nil {
			return err
		}
	}
	return nil
}

func sessionConfig(cfg *config.Config, saved state.SessionState) session.Config {
	ap := cfg.GetAutoPlayConfig()
	sc := session.Config{
		Loop:            ap.Loop,
		Shuffle:         ap.Shuffle,
		WithReplacement: ap.WithReplacement,
		Seed:            ap.Seed,
		AutostartAfter:  ap.AutostartAfter,
		DrainBudget:     cfg.GetUIConfig().DrainBudget(),
		Volume:          cfg.GetVolume(),
		Ignored:         cfg.IgnoredExtensions,
		DeletedDir:      cfg.GetDeletedDir(),
	}
	// The last volume set in the player wins over the configured one.
	if saved.Volume != nil {
		sc.Volume = *saved.Volume
	}
	return sc
}

// startFolder picks the folder to open: argument > config default > last
// opened folder > working directory.
func startFolder(args []string, cfg *config.Config, saved state.SessionState) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	for _, dir := range []string{cfg.DefaultFolder, saved.Folder} {
		if dir == "" {
			continue
		}
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", errors.Join(errors.New("no folder to open"), err)
	}
	return dir, nil
}
