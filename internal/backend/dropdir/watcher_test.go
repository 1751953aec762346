package dropdir

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

// drainUntil drains batches until want paths arrived or the deadline passes.
func drainUntil(t *testing.T, w *Watcher, want int) [][]string {
	t.Helper()

	var batches [][]string
	total := 0
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) && total < want {
		w.Drain(func(paths []string) {
			batches = append(batches, paths)
			total += len(paths)
		})
		time.Sleep(10 * time.Millisecond)
	}
	if total < want {
		t.Fatalf("got %d paths, want %d", total, want)
	}
	return batches
}

func TestNew_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := New(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing dir")
	}

	file := filepath.Join(dir, "file")
	touch(t, file)
	if _, err := New(file); !errors.Is(err, ErrNotDirectory) {
		t.Errorf("err = %v, want ErrNotDirectory", err)
	}
}

func TestWatcher_BatchesCreatedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, WithDebounce(100*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if w.Dir() == "" {
		t.Error("Dir() is empty")
	}

	a := filepath.Join(w.Dir(), "a.png")
	b := filepath.Join(w.Dir(), "b.jpg")
	touch(t, a)
	touch(t, b)

	batches := drainUntil(t, w, 2)
	if len(batches) != 1 {
		t.Fatalf("got %d batches, want 1: %v", len(batches), batches)
	}
	if batches[0][0] != a || batches[0][1] != b {
		t.Errorf("batch = %v, want [%s %s]", batches[0], a, b)
	}

	stats := w.Stats()
	if stats.Batches != 1 || stats.Paths != 2 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestWatcher_IgnoresHidden(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	touch(t, filepath.Join(w.Dir(), ".hidden"))
	touch(t, filepath.Join(w.Dir(), "shown.txt"))

	batches := drainUntil(t, w, 1)
	for _, batch := range batches {
		for _, p := range batch {
			if filepath.Base(p) == ".hidden" {
				t.Errorf("hidden file reported: %s", p)
			}
		}
	}
}

func TestWatcher_Flush(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir, WithDebounce(time.Hour))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	touch(t, filepath.Join(w.Dir(), "a"))

	deadline := time.Now().Add(3 * time.Second)
	for w.Stats().Pending == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	w.Flush()

	if n := w.Drain(func([]string) {}); n != 1 {
		t.Errorf("Drain delivered %d batches after Flush, want 1", n)
	}
}

func TestWatcher_DrainEmpty(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if n := w.Drain(func([]string) { t.Error("unexpected batch") }); n != 0 {
		t.Errorf("Drain = %d", n)
	}
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("first Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
}
