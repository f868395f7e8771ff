package cliconfig

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the config file via fsnotify and hands reloaded
// configurations to a callback. It lets a long-running shipper retune
// priority and extra fields without a restart.
type Watcher struct {
	path     string
	base     Config
	changed  map[string]bool
	onChange func(Config)

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for the config file at path. base and
// changed mirror the flag state at startup so a reload keeps the same
// flag precedence as the initial load.
func NewWatcher(path string, base Config, changed map[string]bool, onChange func(Config)) *Watcher {
	return &Watcher{
		path:     path,
		base:     base,
		changed:  changed,
		onChange: onChange,
	}
}

// Run watches the config file's directory until ctx is cancelled.
// Editors replace files instead of rewriting them, so the watch is on
// the directory and events are filtered by name.
func (w *Watcher) Run(ctx context.Context) {
	if w.path == "" {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config watcher: failed to create watcher: %v\n", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		fmt.Fprintf(os.Stderr, "config watcher: failed to watch %s: %v\n", filepath.Dir(w.path), err)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "config watcher: error: %v\n", err)
		}
	}
}

func (w *Watcher) debounceReload(delay time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}

	w.debounce = time.AfterFunc(delay, w.reload)
}

// reload re-reads the config file over the base config and reports the
// result. A broken file keeps the previous configuration in effect.
func (w *Watcher) reload() {
	fc, err := LoadFileConfig(w.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config watcher: reload %s: %v\n", w.path, err)
		return
	}
	cfg := w.base
	if err := ApplyFileConfig(&cfg, fc, w.changed); err != nil {
		fmt.Fprintf(os.Stderr, "config watcher: apply %s: %v\n", w.path, err)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config watcher: invalid config %s: %v\n", w.path, err)
		return
	}
	w.onChange(cfg)
}
