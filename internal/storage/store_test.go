package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/watchfire-io/dbot/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "data", "dbot.txt"))
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	store := newTestStore(t)
	result, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.Tasks) != 0 {
		t.Errorf("expected no tasks, got %d", len(result.Tasks))
	}
}

func TestSaveThenLoad(t *testing.T) {
	store := newTestStore(t)

	deadline := models.NewDeadline("return book", models.Date(2019, time.December, 2))
	deadline.MarkDone()
	tasks := []*models.Task{
		models.NewTodo("read book"),
		deadline,
		models.NewEvent("trip", models.Date(2024, time.September, 1), models.Date(2024, time.September, 3)),
	}

	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "T | NOT DONE | read book\n" +
		"D | DONE | return book | 02-12-2019\n" +
		"E | NOT DONE | trip | 01-09-2024 | 03-09-2024\n"
	if string(data) != want {
		t.Errorf("file content = %q, want %q", data, want)
	}

	result, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.Tasks) != len(tasks) {
		t.Fatalf("loaded %d tasks, want %d", len(result.Tasks), len(tasks))
	}
	for i := range tasks {
		if !result.Tasks[i].Equal(tasks[i]) {
			t.Errorf("task %d = %q, want %q", i, result.Tasks[i].Render(), tasks[i].Render())
		}
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := newTestStore(t)
	if err := store.Save([]*models.Task{models.NewTodo("a"), models.NewTodo("b")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := store.Save([]*models.Task{models.NewTodo("c")}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, _ := os.ReadFile(store.Path())
	if string(data) != "T | NOT DONE | c\n" {
		t.Errorf("file content = %q", data)
	}

	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the store file, found %d entries", len(entries))
	}
}

func TestLoadSkipsUnknownType(t *testing.T) {
	store := newTestStore(t)
	writeFile(t, store.Path(), "T | NOT DONE | read book\nX | NOT DONE | mystery\n\n")

	result, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.Tasks) != 1 {
		t.Fatalf("loaded %d tasks, want 1", len(result.Tasks))
	}
	if result.Ignored != 1 || len(result.Skipped) != 0 {
		t.Errorf("ignored=%d skipped=%d, want 1 and 0", result.Ignored, len(result.Skipped))
	}
}

func TestLoadIsolatesMalformedLines(t *testing.T) {
	store := newTestStore(t)
	content := strings.Join([]string{
		"T | DONE | read book",
		"D | NOT DONE | return book | 2019-12-02",
		"E | NOT DONE | trip | 01-09-2024",
		"D | NOT DONE | return book | 02-12-2019",
	}, "\r\n")
	writeFile(t, store.Path(), content)

	result, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("loaded %d tasks, want 2", len(result.Tasks))
	}
	if len(result.Skipped) != 2 {
		t.Fatalf("skipped %d lines, want 2", len(result.Skipped))
	}
	if result.Skipped[0].Line != 2 || result.Skipped[1].Line != 3 {
		t.Errorf("skipped lines %d and %d, want 2 and 3", result.Skipped[0].Line, result.Skipped[1].Line)
	}
	for _, skipped := range result.Skipped {
		if !models.IsKind(skipped, models.ErrMalformedRecord) {
			t.Errorf("skipped error kind = %s", models.KindOfError(skipped))
		}
	}
}

func TestLoadSurvivesOversizedLines(t *testing.T) {
	store := newTestStore(t)
	long := strings.Repeat("a", 2<<20)
	content := strings.Join([]string{
		"T | NOT DONE | keep me",
		"X " + long,
		"D | NOT DONE | also keep | 01-01-2025",
		"T | DONE | " + long,
	}, "\n")
	writeFile(t, store.Path(), content)

	result, err := store.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(result.Tasks) != 3 {
		t.Fatalf("loaded %d tasks, want 3", len(result.Tasks))
	}
	if result.Ignored != 1 {
		t.Errorf("ignored = %d, want 1", result.Ignored)
	}
	if got := result.Tasks[1].Description; got != "also keep" {
		t.Errorf("second task = %q", got)
	}
	if got := len(result.Tasks[2].Description); got != len(long) {
		t.Errorf("long description has %d bytes, want %d", got, len(long))
	}
}

func TestDecodeWithoutTrailingNewline(t *testing.T) {
	result, err := Decode(strings.NewReader("T | NOT DONE | a\nT | DONE | b"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(result.Tasks) != 2 || !result.Tasks[1].Done {
		t.Errorf("tasks = %v", result.Tasks)
	}
}

func TestLoadIOFailure(t *testing.T) {
	// A directory can be opened but not read as a file.
	store := NewStore(t.TempDir())
	_, err := store.Load()
	if !models.IsKind(err, models.ErrIOFailure) {
		t.Errorf("Load error = %v, want %s", err, models.ErrIOFailure)
	}
}

func TestSaveIOFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "data")
	writeFile(t, blocker, "not a directory")

	store := NewStore(filepath.Join(blocker, "dbot.txt"))
	err := store.Save([]*models.Task{models.NewTodo("a")})
	if !models.IsKind(err, models.ErrIOFailure) {
		t.Errorf("Save error = %v, want %s", err, models.ErrIOFailure)
	}
}

func TestReadRaw(t *testing.T) {
	store := newTestStore(t)
	data, err := store.ReadRaw()
	if err != nil || data != nil {
		t.Fatalf("ReadRaw on missing file = %q, %v", data, err)
	}
	tasks := []*models.Task{models.NewTodo("a")}
	if err := store.Save(tasks); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	data, err = store.ReadRaw()
	if err != nil {
		t.Fatalf("ReadRaw failed: %v", err)
	}
	if string(data) != string(Encode(tasks)) {
		t.Errorf("ReadRaw = %q, want %q", data, Encode(tasks))
	}
}
