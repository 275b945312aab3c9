// Package watcher converts files as they appear in or change inside the
// source directories.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"datefmt/internal/config"
)

const logModule = "watcher"

// WatchConfig contains watcher settings.
type WatchConfig struct {
	Debounce        time.Duration // quiet period before a path is handled
	StableThreshold time.Duration // 0 skips the size stability wait
	IgnorePatterns  []string      // glob patterns matched against base names
}

// DefaultWatchConfig returns a WatchConfig with sensible defaults.
func DefaultWatchConfig() *WatchConfig {
	return &WatchConfig{
		Debounce:        time.Duration(config.DefaultDebounceSeconds) * time.Second,
		StableThreshold: time.Second,
		IgnorePatterns:  DefaultIgnorePatterns(),
	}
}

// FromConfig builds watcher settings from the watch section of a configuration file.
func FromConfig(cfg *config.WatchConfig) *WatchConfig {
	wc := DefaultWatchConfig()
	if cfg == nil {
		return wc
	}
	if cfg.DebounceSeconds > 0 {
		wc.Debounce = time.Duration(cfg.DebounceSeconds) * time.Second
	}
	if len(cfg.IgnorePatterns) > 0 {
		wc.IgnorePatterns = cfg.IgnorePatterns
	}
	return wc
}

// WatchSummary contains stats from the watch session.
type WatchSummary struct {
	FilesConverted int
	FilesSkipped   int
	FilesFailed    int
	Duration       time.Duration
}

// FileHandler processes one settled file. converted is false when the
// handler chose to leave the file alone.
type FileHandler func(path string) (converted bool, err error)

// Watcher monitors directories for file changes.
type Watcher struct {
	fileHandler FileHandler
	fileFilter  *FileFilter
	debouncer   *Debouncer
	stability   *StabilityChecker
	fsWatcher   *fsnotify.Watcher
	ctx         context.Context
	cancel      context.CancelFunc
	done        chan struct{}
	wg          sync.WaitGroup
	startTime   time.Time

	mu             sync.Mutex
	stopped        bool
	summary        *WatchSummary
	filesConverted int
	filesSkipped   int
	filesFailed    int
}

// New creates a new Watcher. A nil config selects DefaultWatchConfig.
func New(cfg *WatchConfig, fileHandler FileHandler) *Watcher {
	if cfg == nil {
		cfg = DefaultWatchConfig()
	}
	w := &Watcher{
		fileHandler: fileHandler,
		fileFilter:  NewFileFilter(cfg.IgnorePatterns),
		done:        make(chan struct{}),
	}
	w.debouncer = NewDebouncer(cfg.Debounce, w.handleFile)
	if cfg.StableThreshold > 0 {
		w.stability = NewStabilityChecker(cfg.StableThreshold)
	}
	return w
}

// Start begins watching dirs. The watcher runs until Stop is called.
func (w *Watcher) Start(dirs []string) error {
	var err error
	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	for _, dir := range dirs {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			w.fsWatcher.Close()
			return err
		}
		if err := w.fsWatcher.Add(absDir); err != nil {
			w.fsWatcher.Close()
			return err
		}
		logrus.WithFields(logrus.Fields{"module": logModule, "dir": absDir}).Debug("watching directory")
	}

	w.startTime = time.Now()
	w.done = make(chan struct{})
	w.ctx, w.cancel = context.WithCancel(context.Background())

	w.wg.Add(1)
	go w.processEvents()

	return nil
}

// Stop shuts the watcher down, waits for files being handled and returns
// a summary of the session. Paths still inside their debounce delay are dropped.
// Later calls return the same summary.
func (w *Watcher) Stop() *WatchSummary {
	w.mu.Lock()
	if w.stopped {
		summary := w.summary
		w.mu.Unlock()
		return summary
	}
	w.stopped = true
	w.mu.Unlock()

	w.debouncer.CancelAll()
	if w.cancel != nil {
		w.cancel()
	}
	close(w.done)
	w.wg.Wait()

	if w.fsWatcher != nil {
		w.fsWatcher.Close()
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	w.summary = &WatchSummary{
		FilesConverted: w.filesConverted,
		FilesSkipped:   w.filesSkipped,
		FilesFailed:    w.filesFailed,
		Duration:       time.Since(w.startTime),
	}
	return w.summary
}

func (w *Watcher) processEvents() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if w.fileFilter.ShouldIgnore(event.Name) {
				logrus.WithFields(logrus.Fields{"module": logModule, "path": event.Name}).Debug("ignoring file")
				w.count(&w.filesSkipped)
				continue
			}
			w.debouncer.Add(event.Name)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			logrus.WithFields(logrus.Fields{"module": logModule, "err": err}).Error("watch error")
		}
	}
}

// handleFile runs on the debouncer's timer goroutine.
func (w *Watcher) handleFile(path string) {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.wg.Add(1)
	w.mu.Unlock()
	defer w.wg.Done()

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return
	}

	if w.stability != nil {
		if err := w.stability.WaitForStable(w.ctx, path); err != nil {
			if err != context.Canceled {
				logrus.WithFields(logrus.Fields{"module": logModule, "path": path, "err": err}).Warning("file never settled")
				w.count(&w.filesFailed)
			}
			return
		}
	}

	if w.fileHandler == nil {
		w.count(&w.filesSkipped)
		return
	}

	converted, err := w.fileHandler(path)
	switch {
	case err != nil:
		logrus.WithFields(logrus.Fields{"module": logModule, "path": path, "err": err}).Error("failed to handle file")
		w.count(&w.filesFailed)
	case converted:
		w.count(&w.filesConverted)
	default:
		w.count(&w.filesSkipped)
	}
}

func (w *Watcher) count(counter *int) {
	w.mu.Lock()
	*counter++
	w.mu.Unlock()
}
