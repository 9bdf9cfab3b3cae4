package watch

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tessro/dialogcoach/internal/roster"
)

// replaceFile writes content next to path and renames it into place, so the
// watcher never observes a half-written file.
func replaceFile(t *testing.T, path string, content []byte) {
	t.Helper()
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename: %v", err)
	}
}

func encodeBuiltin(t *testing.T, mutate func(*roster.Dataset)) []byte {
	t.Helper()
	d := roster.Builtin()
	if mutate != nil {
		mutate(d)
	}
	var buf bytes.Buffer
	if err := roster.Encode(&buf, roster.FileFrom(d, "coach-1"), "toml"); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestNew_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := New(filepath.Join(dir, "missing.toml"), nil, nil); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("New(missing) error = %v, want not-exist", err)
	}
	if _, err := New(dir, nil, nil); !errors.Is(err, ErrNotAFile) {
		t.Errorf("New(dir) error = %v, want ErrNotAFile", err)
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.toml")
	replaceFile(t, path, encodeBuiltin(t, nil))

	w, err := New(path, nil, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.Start()
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	_ = w.Close()

	select {
	case <-w.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watch loop did not exit after Close")
	}
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.toml")
	replaceFile(t, path, encodeBuiltin(t, nil))

	changed := make(chan *roster.Dataset, 4)
	w, err := New(path, func(d *roster.Dataset) { changed <- d }, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	w.SetDebounce(10 * time.Millisecond)
	w.Start()

	replaceFile(t, path, encodeBuiltin(t, func(d *roster.Dataset) {
		d.Rosters["coach-4"] = d.Rosters["coach-4"][:1]
	}))

	select {
	case d := <-changed:
		if got := len(d.Rosters["coach-4"]); got != 1 {
			t.Errorf("reloaded coach-4 roster has %d employees, want 1", got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after file change")
	}
}

func TestWatcher_ReportsInvalidRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.toml")
	replaceFile(t, path, encodeBuiltin(t, nil))

	errs := make(chan error, 4)
	w, err := New(path, func(*roster.Dataset) { t.Error("onChange called for invalid roster") }, func(err error) { errs <- err })
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	w.SetDebounce(10 * time.Millisecond)
	w.Start()

	replaceFile(t, path, []byte("coaches = []\n"))

	select {
	case err := <-errs:
		if !errors.Is(err, roster.ErrNoCoaches) {
			t.Errorf("onError(%v), want ErrNoCoaches", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no error reported for invalid roster")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.toml")
	replaceFile(t, path, encodeBuiltin(t, nil))

	changed := make(chan *roster.Dataset, 1)
	w, err := New(path, func(d *roster.Dataset) { changed <- d }, nil)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()
	w.SetDebounce(10 * time.Millisecond)
	w.Start()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-changed:
		t.Error("reload triggered by unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}
