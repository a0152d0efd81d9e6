// Package session is the owning context of the player: it holds the
// playlist and the auto-play engine, drains background results, and hands
// locators to the playback backend.
//
// All methods except Post, Snapshot and Subscribe must be called from a
// single goroutine (the UI loop).
package session

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"path/filepath"
	"sync"
	"time"

	"github.com/llehouerou/reel/internal/actions"
	"github.com/llehouerou/reel/internal/autoplay"
	"github.com/llehouerou/reel/internal/errmsg"
	"github.com/llehouerou/reel/internal/msgqueue"
	"github.com/llehouerou/reel/internal/player"
	"github.com/llehouerou/reel/internal/playlist"
)

// statusTTL is how long a status line stays visible.
const statusTTL = 5 * time.Second

// Config holds the session settings.
type Config struct {
	Loop            bool
	Shuffle         bool
	WithReplacement bool
	Seed            uint64
	AutostartAfter  int // playlist size that starts playback during a scan
	DrainBudget     time.Duration
	Volume          int
	Ignored         []string
	DeletedDir      string
}

// DefaultConfig returns the default session settings.
func DefaultConfig() Config {
	return Config{
		Loop:           true,
		Shuffle:        true,
		AutostartAfter: 1000,
		DrainBudget:    100 * time.Millisecond,
		Volume:         100,
		DeletedDir:     actions.DefaultDeletedDir,
	}
}

// Store persists play statistics and the settings restored on next start.
type Store interface {
	RecordPlay(ctx context.Context, path string) (plays int, err error)
	SaveFolder(folder string) error
	SaveVolume(percent int)
}

// Deps are the collaborators of a session. Only Player is required.
type Deps struct {
	Player   player.Interface
	Registry *actions.Registry
	Queue    *msgqueue.Queue
	Store    Store
	Logger   *slog.Logger
	Rand     *rand.Rand               // overrides Config.Seed
	Title    func(path string) string // defaults to player.ReadTitle
}

// Session owns the playlist, the engine and the playback backend.
type Session struct {
	cfg      Config
	player   player.Interface
	registry *actions.Registry
	queue    *msgqueue.Queue
	store    Store
	logger   *slog.Logger
	title    func(string) string

	ctx    context.Context
	cancel context.CancelFunc

	playlist *playlist.Playlist
	engine   *autoplay.AutoPlay

	folder       string
	folderCancel context.CancelFunc
	scanRun      string
	watchRun     string
	dupesRun     string
	deletes      map[string]string // run ID -> key
	scanning     bool
	dupeNames    int

	filter  string
	played  bool
	current string
	path    string
	heading string
	plays   int // play count of the current item, 0 when unknown

	now      time.Time
	status   string
	statusAt time.Time

	snapMu sync.Mutex
	snap   Snapshot

	subs   []*Subscription
	subsMu sync.Mutex
}

// New creates a session. The context bounds every background action.
func New(ctx context.Context, cfg Config, deps Deps) *Session {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := deps.Registry
	if registry == nil {
		registry = actions.Default(logger)
	}
	queue := deps.Queue
	if queue == nil {
		queue = msgqueue.New(msgqueue.DefaultCapacity)
	}
	title := deps.Title
	if title == nil {
		title = player.ReadTitle
	}
	if cfg.DrainBudget <= 0 {
		cfg.DrainBudget = DefaultConfig().DrainBudget
	}

	ctx, cancel := context.WithCancel(ctx)
	s := &Session{
		cfg:      cfg,
		player:   deps.Player,
		registry: registry,
		queue:    queue,
		store:    deps.Store,
		logger:   logger.With("component", "session"),
		title:    title,
		ctx:      ctx,
		cancel:   cancel,
		playlist: playlist.New(),
		deletes:  make(map[string]string),
		now:      time.Now(),
	}

	opts := []autoplay.Option{
		autoplay.WithLoop(cfg.Loop),
		autoplay.WithShuffle(cfg.Shuffle),
		autoplay.WithReplacement(cfg.WithReplacement),
		autoplay.WithSeed(cfg.Seed),
	}
	if deps.Rand != nil {
		opts = append(opts, autoplay.WithRand(deps.Rand))
	}
	s.engine = autoplay.New(s.playlist, opts...)

	s.player.SetVolume(cfg.Volume)
	s.publish()
	return s
}

// OpenFolder replaces the playlist with the contents of dir.
// Results of any previous scan are ignored from now on.
func (s *Session) OpenFolder(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		s.setStatus(errmsg.FormatWith(errmsg.OpFolderOpen, dir, err))
		return err
	}

	if s.folderCancel != nil {
		s.folderCancel()
	}
	s.player.Stop()
	s.playlist.Clear()
	s.filter = ""
	s.engine.SetSelectionSet(nil)
	s.engine.Reset()
	s.played = false
	s.current, s.path, s.heading, s.plays = "", "", "", 0
	s.dupeNames = 0
	s.folder = abs

	ctx, cancel := context.WithCancel(s.ctx)
	s.folderCancel = cancel
	req := s.request("")

	s.scanRun, err = s.registry.Start(ctx, s.queue, actions.OpenFolder, req)
	if err != nil {
		s.setStatus(errmsg.FormatWith(errmsg.OpFolderOpen, abs, err))
		return err
	}
	s.scanning = true
	s.watchRun, err = s.registry.Start(ctx, s.queue, actions.Watch, req)
	if err != nil {
		// Playback works without live updates.
		s.logger.Warn("folder watch unavailable", "folder", abs, "err", err)
		s.watchRun = ""
	}

	if s.store != nil {
		if err := s.store.SaveFolder(abs); err != nil {
			s.logger.Warn("save folder", "folder", abs, "err", err)
		}
	}
	s.logger.Info("opening folder", "folder", abs, "run", s.scanRun)
	s.setStatus("Scanning " + abs)
	s.publish()
	return nil
}

func (s *Session) request(path string) actions.Request {
	return actions.Request{
		Base:       s.folder,
		Path:       path,
		Ignored:    s.cfg.Ignored,
		DeletedDir: s.cfg.DeletedDir,
	}
}

// Tick drains pending results within the drain budget, then advances if
// the player reached the end of the current item.
func (s *Session) Tick(now time.Time) {
	s.now = now
	s.queue.Drain(s.cfg.DrainBudget, s.handle)

	select {
	case <-s.player.FinishedChan():
		s.logger.Debug("end of media", "key", s.current)
		s.Next()
	default:
	}

	if s.status != "" && now.Sub(s.statusAt) > statusTTL {
		s.status = ""
	}
	s.publish()
}

// Close stops background actions and releases the player.
func (s *Session) Close() error {
	s.cancel()
	s.queue.Close()

	s.subsMu.Lock()
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	s.subsMu.Unlock()

	return s.player.Close()
}

// Folder returns the opened folder, or "" before OpenFolder.
func (s *Session) Folder() string { return s.folder }

// Visible returns the keys shown in the playlist panel: the active
// selection, or every key when no filter is set.
func (s *Session) Visible() []string { return s.engine.SelectionSet() }

// History returns the played keys, oldest first.
func (s *Session) History() []string { return s.engine.History() }

// Path returns the locator of key.
func (s *Session) Path(key string) (string, bool) { return s.playlist.Path(key) }

// Subscribe creates a new event subscription. Safe for concurrent use.
func (s *Session) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	s.subs = append(s.subs, sub)
	return sub
}

func (s *Session) emit(fn func(*Subscription)) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, sub := range s.subs {
		fn(sub)
	}
}

func (s *Session) setStatus(msg string) {
	s.status = msg
	s.statusAt = s.now
}
