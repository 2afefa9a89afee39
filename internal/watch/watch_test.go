package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherSeesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`{"camera":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case got := <-w.Events:
		if filepath.Clean(got) != filepath.Clean(path) {
			t.Fatalf("event path = %q, want %q", got, path)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no event after write")
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	other := filepath.Join(dir, "other.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(other, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case got := <-w.Events:
		t.Fatalf("unexpected event for %q", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherSeesAtomicRename(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	tmp := filepath.Join(dir, ".scene.json.tmp")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(tmp, []byte(`{"camera":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
	select {
	case <-w.Events:
	case <-time.After(3 * time.Second):
		t.Fatal("no event after atomic rename")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
