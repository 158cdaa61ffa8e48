package sensors

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/fsnotify/fsnotify"

	"linkpanel/internal/logging"
)

const (
	rearmDelay    = 500 * time.Millisecond
	rearmMaxDelay = 30 * time.Second
)

// Watcher reloads the sensor catalog whenever its file changes on disk and
// publishes the new specs. Catalog edits re-bake the static true values;
// they are not a live data feed.
type Watcher struct {
	path    string
	logger  *logging.Logger
	updates chan []Spec
}

func NewWatcher(path string, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		panic("sensors.NewWatcher: logger must not be nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("catalog path is empty")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	return &Watcher{
		path:    abs,
		logger:  logger,
		updates: make(chan []Spec, 1),
	}, nil
}

// Updates delivers each successfully reloaded catalog. Only the newest
// pending snapshot is kept when the consumer lags.
func (w *Watcher) Updates() <-chan []Spec {
	return w.updates
}

// Run blocks until ctx is canceled. Watch failures re-arm the watcher with
// exponential backoff; reload failures keep the last good catalog in place.
func (w *Watcher) Run(ctx context.Context) error {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = rearmDelay
	retry.MaxInterval = rearmMaxDelay
	retry.Reset()

	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		watchErr := w.watchOnce(ctx)
		if watchErr == nil || errors.Is(watchErr, context.Canceled) || errors.Is(watchErr, context.DeadlineExceeded) {
			return struct{}{}, watchErr
		}
		w.logger.Warn("catalog watch interrupted", logging.Field("error", watchErr))
		return struct{}{}, watchErr
	},
		backoff.WithBackOff(retry),
		backoff.WithNotify(func(err error, next time.Duration) {
			w.logger.Debug("re-arming catalog watch",
				logging.Field("error", err),
				logging.Field("next_attempt", next.String()))
		}),
	)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

func (w *Watcher) watchOnce(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create catalog watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	// Watch the parent directory: editors commonly replace the file via
	// rename, which drops a watch placed on the file itself.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch catalog directory %s: %w", dir, err)
	}
	w.logger.Debug("catalog watch armed", logging.Field("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("catalog watch event stream closed")
			}
			if !w.isCatalogEvent(event) {
				continue
			}
			w.reload()
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("catalog watch error stream closed")
			}
			return fmt.Errorf("catalog watch: %w", watchErr)
		}
	}
}

func (w *Watcher) isCatalogEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	specs, err := LoadCatalog(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous sensors",
			logging.Field("path", w.path),
			logging.Field("error", err))
		return
	}
	w.logger.Info("sensor catalog reloaded", logging.Field("count", len(specs)))
	select {
	case w.updates <- specs:
	default:
		select {
		case <-w.updates:
		default:
		}
		w.updates <- specs
	}
}
