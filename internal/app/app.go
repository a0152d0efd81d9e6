// Package app is the bubbletea model of the player: playlist panel, filter
// input, player bar and status line around a session.
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/reel/internal/keymap"
	"github.com/llehouerou/reel/internal/notify"
	"github.com/llehouerou/reel/internal/session"
	"github.com/llehouerou/reel/internal/ui/filterbar"
	"github.com/llehouerou/reel/internal/ui/helpbindings"
	"github.com/llehouerou/reel/internal/ui/playlistpanel"
)

// Options configure the TUI.
type Options struct {
	Tick      time.Duration // session tick and redraw period
	SeekSmall time.Duration
	SeekLong  time.Duration
	Logger    *slog.Logger
	Notifier  *notify.NowPlaying // nil disables desktop notifications
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		Tick:      250 * time.Millisecond,
		SeekSmall: 500 * time.Millisecond,
		SeekLong:  10 * time.Second,
	}
}

// Model is the root application model.
//
// Update runs on the bubbletea goroutine, which is the only goroutine
// allowed to call Session methods other than Snapshot and Post.
type Model struct {
	Session *session.Session
	sub     *session.Subscription
	keys    *keymap.Resolver
	opts    Options
	logger  *slog.Logger

	Panel    playlistpanel.Model
	Filter   filterbar.Model
	Help     helpbindings.Model
	ShowHelp bool

	snap     session.Snapshot
	ErrorMsg string
	Width    int
	Height   int
}

// New creates the model over an already configured session.
func New(sess *session.Session, opts Options) Model {
	def := DefaultOptions()
	if opts.Tick <= 0 {
		opts.Tick = def.Tick
	}
	if opts.SeekSmall <= 0 {
		opts.SeekSmall = def.SeekSmall
	}
	if opts.SeekLong <= 0 {
		opts.SeekLong = def.SeekLong
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		Session: sess,
		sub:     sess.Subscribe(),
		keys:    keymap.Default(),
		opts:    opts,
		logger:  logger.With("component", "app"),
		Panel:   playlistpanel.New(),
		Filter:  filterbar.New(),
		Help:    helpbindings.New(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(windowTitle("")),
		TickCmd(m.opts.Tick),
		m.WatchSessionEvents(),
	)
}

// refresh pulls the session view into the components.
func (m *Model) refresh() {
	m.snap = m.Session.Snapshot()
	m.Panel.SetContents(playlistpanel.Contents{
		Keys:    m.Session.Visible(),
		Current: m.snap.Key,
		History: m.Session.History(),
		Total:   m.snap.Count,
		Filter:  m.snap.Filter,
	})
}

func windowTitle(title string) string {
	if title == "" {
		return "reel"
	}
	return title + " - reel"
}
