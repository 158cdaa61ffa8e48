package sensors

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"linkpanel/internal/logging"
)

func TestNewWatcher_RejectsEmptyPath(t *testing.T) {
	logger := logging.New(false)
	logger.SetTerminalOutputEnabled(false)
	for _, path := range []string{"", "   "} {
		if _, err := NewWatcher(path, logger); err == nil {
			t.Fatalf("NewWatcher(%q) error = nil, want empty-path rejection", path)
		}
	}
}

func TestWatcher_DeliversReloadedCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sensors.json")
	initial := `{"sensors": [{"id": "temperature", "value": "23.5"}]}`
	if err := os.WriteFile(path, []byte(initial), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	logger := logging.New(false)
	logger.SetTerminalOutputEnabled(false)

	watcher, err := NewWatcher(path, logger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- watcher.Run(ctx)
	}()

	// Give the watch time to arm before mutating the file.
	time.Sleep(200 * time.Millisecond)

	updated := `{"sensors": [{"id": "temperature", "value": "24.1"}, {"id": "humidity", "value": "51"}]}`
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	select {
	case specs := <-watcher.Updates():
		if len(specs) != 2 {
			t.Fatalf("len(specs) = %d, want 2", len(specs))
		}
		if specs[0].Value != "24.1" {
			t.Fatalf("specs[0].Value = %q, want 24.1", specs[0].Value)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for catalog update")
	}

	cancel()
	select {
	case runErr := <-done:
		if runErr != nil {
			t.Fatalf("Run() error = %v, want nil after cancel", runErr)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatcher_KeepsLastGoodCatalogOnBadReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sensors.json")
	if err := os.WriteFile(path, []byte(`{"sensors": [{"id": "x", "value": "1"}]}`), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	logger := logging.New(false)
	logger.SetTerminalOutputEnabled(false)
	watcher, err := NewWatcher(path, logger)
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		_ = watcher.Run(ctx)
	}()
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(path, []byte(`{"sensors": [`), 0o644); err != nil {
		t.Fatalf("rewrite catalog: %v", err)
	}

	select {
	case specs := <-watcher.Updates():
		t.Fatalf("unexpected update from invalid catalog: %v", specs)
	case <-time.After(700 * time.Millisecond):
		// No update published, as intended.
	}
}
