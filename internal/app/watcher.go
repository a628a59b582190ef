package app

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/countryreport/internal/ports"
)

// DefaultDebounce is the quiet period after an input change before re-running.
const DefaultDebounce = 200 * time.Millisecond

// Runner executes one report run.
type Runner interface {
	Run(ctx context.Context) (Result, error)
}

// Watcher re-runs the pipeline whenever the input file changes.
// Every run regenerates the whole report. Runs never overlap: the debounce
// timer only signals the watch loop, which performs the run itself.
type Watcher struct {
	runner    Runner
	inputPath string
	debounce  time.Duration
	logger    ports.Logger
	onResult  func(Result, error)

	mu      sync.Mutex
	timer   *time.Timer
	trigger chan struct{}
}

// NewWatcher creates a watcher for inputPath. onResult may be nil.
func NewWatcher(runner Runner, inputPath string, debounce time.Duration, logger ports.Logger, onResult func(Result, error)) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		runner:    runner,
		inputPath: inputPath,
		debounce:  debounce,
		logger:    logger,
		onResult:  onResult,
		trigger:   make(chan struct{}, 1),
	}
}

// Run performs an initial run, then watches the input file's directory until
// ctx is canceled. Watching the directory keeps working when editors replace
// the file instead of writing it in place.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.inputPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	defer w.stopTimer()

	w.runOnce(ctx)
	w.logger.Info("watching input for changes", ports.String("path", w.inputPath))

	name := filepath.Base(w.inputPath)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			w.logger.Debug("input changed", ports.String("op", event.Op.String()))
			w.schedule()

		case <-w.trigger:
			w.runOnce(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", ports.Err(err))
		}
	}
}

func (w *Watcher) runOnce(ctx context.Context) {
	res, err := w.runner.Run(ctx)
	if err != nil {
		w.logger.Error("run failed", ports.Err(err))
	}
	if w.onResult != nil {
		w.onResult(res, err)
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		select {
		case w.trigger <- struct{}{}:
		default:
		}
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}
