package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/tracecase/trace/internal/metrics"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// ErrNoCatalogFile is returned by Watch when the loader serves the embedded
// default catalog and there is nothing on disk to watch.
var ErrNoCatalogFile = errors.New("no catalog file configured")

// Loader reads a YAML case catalog and watches it for changes.
// An empty path selects the embedded default catalog.
type Loader struct {
	path     string
	mu       sync.RWMutex
	current  *CatalogConfig
	onChange []func(*CatalogConfig)
}

// NewLoader creates a Loader and performs the initial load.
func NewLoader(path string) (*Loader, error) {
	l := &Loader{path: path}
	cfg, err := l.load()
	if err != nil {
		return nil, err
	}
	l.current = cfg
	return l, nil
}

// Path returns the catalog file path, or "" for the embedded catalog.
func (l *Loader) Path() string { return l.path }

// Config returns the current (latest) catalog.
func (l *Loader) Config() *CatalogConfig {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.current
}

// OnChange registers a callback invoked whenever the catalog reloads.
func (l *Loader) OnChange(fn func(*CatalogConfig)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.onChange = append(l.onChange, fn)
}

// Watch starts a background goroutine that hot-reloads the catalog on file
// changes. Call the returned stop function to clean up.
func (l *Loader) Watch() (stop func(), err error) {
	if l.path == "" {
		return nil, ErrNoCatalogFile
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog watcher: %w", err)
	}
	if err := w.Add(l.path); err != nil {
		w.Close()
		return nil, fmt.Errorf("catalog watcher add %s: %w", l.path, err)
	}

	done := make(chan struct{})
	go func() {
		defer w.Close()
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) {
					if _, err := l.Reload(); err != nil {
						slog.Warn("catalog reload failed, keeping previous catalog", "path", l.path, "err", err)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Warn("catalog watcher error", "path", l.path, "err", err)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }, nil
}

// Reload forces an immediate re-read of the catalog and notifies listeners.
// On error the current catalog is left untouched.
func (l *Loader) Reload() (*CatalogConfig, error) {
	cfg, err := l.load()
	if err != nil {
		metrics.CatalogReloads.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.CatalogReloads.WithLabelValues("ok").Inc()
	l.mu.Lock()
	l.current = cfg
	callbacks := make([]func(*CatalogConfig), len(l.onChange))
	copy(callbacks, l.onChange)
	l.mu.Unlock()
	for _, fn := range callbacks {
		fn(cfg)
	}
	return cfg, nil
}

func (l *Loader) load() (*CatalogConfig, error) {
	data := defaultCatalog
	name := "embedded catalog"
	if l.path != "" {
		var err error
		data, err = os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", l.path, err)
		}
		name = l.path
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes and validates a YAML catalog document.
func Parse(data []byte) (*CatalogConfig, error) {
	var cfg CatalogConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
