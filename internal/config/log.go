package config

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/watchfire-io/dbot/internal/models"
)

const headerDelim = "---"

// OpenLogFile points the standard logger at ~/.dbot/logs/dbot.log and
// returns the file so the caller can close it on exit.
func OpenLogFile() (io.Closer, error) {
	if err := EnsureGlobalLogsDir(); err != nil {
		return nil, fmt.Errorf("failed to ensure logs dir: %w", err)
	}
	dir, err := GlobalLogsDir()
	if err != nil {
		return nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, LogFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// WriteTranscript writes a session transcript to disk: a YAML header
// followed by each command and its reply.
func WriteTranscript(entry models.TranscriptEntry, startedAt time.Time, exchanges []models.Exchange) (*models.TranscriptEntry, string, error) {
	dir, err := TranscriptsDir()
	if err != nil {
		return nil, "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create transcripts dir: %w", err)
	}

	entry.StartedAt = startedAt.UTC().Format(time.RFC3339)
	entry.EndedAt = time.Now().UTC().Format(time.RFC3339)
	entry.Commands = len(exchanges)

	id := transcriptID(entry.SessionID, startedAt)
	filePath := filepath.Join(dir, id+".log")
	f, err := os.Create(filePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create transcript file: %w", err)
	}
	defer f.Close()

	header, err := yaml.Marshal(&entry)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal transcript header: %w", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, headerDelim)
	w.Write(header)
	fmt.Fprintln(w, headerDelim)
	for _, ex := range exchanges {
		fmt.Fprintf(w, "> %s\n", ex.Input)
		fmt.Fprintln(w, ex.Output)
	}

	return &entry, id, w.Flush()
}

// ListTranscripts returns transcript ids and metadata, newest first.
func ListTranscripts() ([]string, []*models.TranscriptEntry, error) {
	dir, err := TranscriptsDir()
	if err != nil {
		return nil, nil, err
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	type item struct {
		id    string
		entry *models.TranscriptEntry
	}
	var items []item
	for _, e := range dirEntries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".log") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		entry, _ := parseTranscript(string(data))
		if entry == nil {
			continue
		}
		items = append(items, item{id: strings.TrimSuffix(e.Name(), ".log"), entry: entry})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].entry.StartedAt > items[j].entry.StartedAt
	})

	ids := make([]string, len(items))
	entries := make([]*models.TranscriptEntry, len(items))
	for i, it := range items {
		ids[i] = it.id
		entries[i] = it.entry
	}
	return ids, entries, nil
}

// ReadTranscript reads a transcript and returns metadata + body.
func ReadTranscript(id string) (*models.TranscriptEntry, string, error) {
	dir, err := TranscriptsDir()
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(filepath.Join(dir, id+".log"))
	if err != nil {
		return nil, "", fmt.Errorf("transcript not found: %w", err)
	}

	entry, body := parseTranscript(string(data))
	if entry == nil {
		return nil, "", fmt.Errorf("invalid transcript format")
	}
	return entry, body, nil
}

func transcriptID(sessionID string, startedAt time.Time) string {
	short := sessionID
	if len(short) > 8 {
		short = short[:8]
	}
	return startedAt.UTC().Format("2006-01-02T15-04-05") + "-" + short
}

func parseTranscript(content string) (*models.TranscriptEntry, string) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || lines[0] != headerDelim {
		return nil, ""
	}

	headerEnd := -1
	for i := 1; i < len(lines); i++ {
		if lines[i] == headerDelim {
			headerEnd = i
			break
		}
	}
	if headerEnd < 0 {
		return nil, ""
	}

	var entry models.TranscriptEntry
	if err := yaml.Unmarshal([]byte(strings.Join(lines[1:headerEnd], "\n")), &entry); err != nil {
		return nil, ""
	}
	return &entry, strings.Join(lines[headerEnd+1:], "\n")
}
