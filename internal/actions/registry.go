// Package actions runs background work off the owning context: folder
// scanning, duplicate detection, staged deletes and folder watching.
//
// Actions never touch playlist state. They report through a msgqueue.Queue,
// tagging every message with the run ID handed out when they were started so
// the consumer can ignore results from runs it no longer cares about.
package actions

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/llehouerou/reel/internal/msgqueue"
)

// Action names registered by Default.
const (
	OpenFolder      = "open_folder"
	CheckDuplicates = "check_duplicates"
	Delete          = "delete"
	Watch           = "watch"
)

var (
	// ErrDuplicateAction is returned when registering a name twice.
	ErrDuplicateAction = errors.New("action already registered")
	// ErrUnknownAction is returned when starting an unregistered name.
	ErrUnknownAction = errors.New("unknown action")
)

// Request carries the arguments of an action run.
type Request struct {
	Base       string   // opened folder
	Path       string   // target file, for delete
	Ignored    []string // extensions skipped by folder scans, without dot
	DeletedDir string   // holding directory name under Base
}

// Func is the body of an action.
type Func func(ctx context.Context, run *Run, req Request) error

// Run is handed to an action to report its results.
type Run struct {
	ID     string
	Action string
	Log    *slog.Logger
	queue  *msgqueue.Queue
}

// Emit sends a message tagged with this run's ID.
// Returns false once the queue is closed.
func (r *Run) Emit(tag string, payload any) bool {
	return r.queue.Put(msgqueue.Message{Tag: tag, Run: r.ID, Payload: payload})
}

// Registry maps action names to their implementation.
type Registry struct {
	actions map[string]Func
	logger  *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		actions: make(map[string]Func),
		logger:  logger,
	}
}

// Default builds the registry of built-in actions.
func Default(logger *slog.Logger) *Registry {
	r := NewRegistry(logger)
	r.MustRegister(OpenFolder, ScanFolder)
	r.MustRegister(CheckDuplicates, FindDuplicates)
	r.MustRegister(Delete, StageDelete)
	r.MustRegister(Watch, WatchFolder)
	return r
}

// Register adds an action. Names are unique.
func (r *Registry) Register(name string, fn Func) error {
	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, name)
	}
	r.actions[name] = fn
	return nil
}

// MustRegister is Register for static tables; it panics on a duplicate name.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Lookup returns the action registered under name.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.actions[name]
	return fn, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Start runs an action in its own goroutine and returns the run ID.
// A failing action reports an ActionError message.
func (r *Registry) Start(ctx context.Context, q *msgqueue.Queue, name string, req Request) (string, error) {
	fn, ok := r.actions[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	run := &Run{
		ID:     uuid.NewString(),
		Action: name,
		Log:    r.logger.With("action", name),
		queue:  q,
	}

	go func() {
		run.Log.Debug("action started", "run", run.ID, "base", req.Base, "path", req.Path)
		if err := fn(ctx, run, req); err != nil {
			if !errors.Is(err, context.Canceled) {
				run.Log.Error("action failed", "run", run.ID, "err", err)
			}
			run.Emit(TagActionError, ActionError{Action: name, Err: err})
			return
		}
		run.Log.Debug("action finished", "run", run.ID)
	}()

	return run.ID, nil
}
