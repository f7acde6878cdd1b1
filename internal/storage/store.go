// Package storage reads and writes the task file: one pipe-separated record
// per line.
package storage

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/watchfire-io/dbot/internal/models"
)

// Store persists tasks to a single text file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path. Nothing is touched on
// disk until Load or Save is called.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LineError describes a stored line that could not be decoded.
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// LoadResult is the outcome of a load.
type LoadResult struct {
	Tasks []*models.Task
	// Skipped holds T/D/E lines that failed to decode.
	Skipped []*LineError
	// Ignored counts non-blank lines with an unrecognised type letter.
	Ignored int
}

// Load reads all tasks from the file. A missing file yields an empty result.
// Malformed lines are skipped and reported in the result rather than failing
// the whole load.
func (s *Store) Load() (*LoadResult, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadResult{Tasks: []*models.Task{}}, nil
		}
		return nil, models.Wrapf(models.ErrIOFailure, err, "failed to open %s: %v", s.path, err)
	}
	defer f.Close()

	result, err := Decode(f)
	if err != nil {
		return nil, models.Wrapf(models.ErrIOFailure, err, "failed to read %s: %v", s.path, err)
	}
	for _, skipped := range result.Skipped {
		log.Printf("[storage] Skipping %s %v", s.path, skipped)
	}
	return result, nil
}

// Decode reads records from r. Records have no length limit, so one
// oversized line never costs the records around it.
func Decode(r io.Reader) (*LoadResult, error) {
	result := &LoadResult{Tasks: []*models.Task{}}

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			break
		}
		lineNo++
		decodeLine(result, lineNo, strings.TrimRight(raw, "\r\n"))
		if err == io.EOF {
			break
		}
	}
	return result, nil
}

func decodeLine(result *LoadResult, lineNo int, line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if _, ok := models.KindOf(line); !ok {
		result.Ignored++
		return
	}

	task, err := models.DecodeTask(line)
	if err != nil {
		result.Skipped = append(result.Skipped, &LineError{Line: lineNo, Text: line, Err: err})
		return
	}
	result.Tasks = append(result.Tasks, task)
}

// Encode returns the exact file image for tasks.
func Encode(tasks []*models.Task) []byte {
	var buf bytes.Buffer
	for _, t := range tasks {
		buf.WriteString(t.Encode())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save replaces the file with one record per task, creating the parent
// directory if needed. The new content is written to a temp file and renamed
// into place.
func (s *Store) Save(tasks []*models.Task) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return models.Wrapf(models.ErrIOFailure, err, "failed to create directory %s: %v", dir, err)
	}
	if err := writeFileAtomic(s.path, Encode(tasks), 0o644); err != nil {
		return models.Wrapf(models.ErrIOFailure, err, "failed to write %s: %v", s.path, err)
	}
	return nil
}

// ReadRaw returns the current file content, or nil when the file is absent.
func (s *Store) ReadRaw() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
