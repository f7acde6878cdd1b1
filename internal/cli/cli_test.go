package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/watchfire-io/dbot/internal/session"
	"github.com/watchfire-io/dbot/internal/storage"
)

// execute runs the root command with a private DBOT_HOME.
func execute(t *testing.T, input string, args ...string) string {
	t.Helper()
	t.Setenv("DBOT_HOME", t.TempDir())
	dataFileFlag = ""

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("dbot %v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestChatLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbot.txt")
	ctrl := session.New(storage.NewStore(path))

	input := "todo read book\nlist\nbye\ntodo never\n"
	var out bytes.Buffer
	if err := chatLoop(ctrl, strings.NewReader(input), &out, false); err != nil {
		t.Fatalf("chatLoop failed: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Hello! I'm Dbot",
		"Got it. I've added this task:",
		"1.[T][ ] read book",
		"Bye. Hope to see you again soon!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "never") {
		t.Error("input after bye was processed")
	}
	if strings.Contains(got, "> ") {
		t.Error("prompt shown for non-interactive input")
	}
}

func TestChatLoopEndOfInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dbot.txt")
	ctrl := session.New(storage.NewStore(path))

	var out bytes.Buffer
	if err := chatLoop(ctrl, strings.NewReader("todo a\n"), &out, true); err != nil {
		t.Fatalf("chatLoop failed: %v", err)
	}
	if ctrl.State() != session.StateRunning {
		t.Error("end of input should not terminate the session")
	}
	if !strings.Contains(out.String(), "> ") {
		t.Error("interactive loop should print a prompt")
	}
}

func TestRootRunsChatWithFileFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	out := execute(t, "deadline return book /by 02-12-2019\nbye\n", "--file", path)

	if !strings.Contains(out, "[D][ ] return book (by: Dec 02 2019)") {
		t.Errorf("unexpected output:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("task file not written: %v", err)
	}
	if string(data) != "D | NOT DONE | return book | 02-12-2019\n" {
		t.Errorf("task file = %q", data)
	}
}

func TestSettingsSetAndShow(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DBOT_HOME", home)
	dataFileFlag = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"settings", "set", "tui.alt_screen", "false"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("settings set failed: %v", err)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"settings"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("settings failed: %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "tui.alt_screen") || !strings.Contains(got, "false") {
		t.Errorf("settings output:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(home, "settings.yaml")); err != nil {
		t.Errorf("settings not saved: %v", err)
	}

	rootCmd.SetArgs([]string{"settings", "set", "no.such.key", "1"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected error for unknown key")
	}
}

func TestLogsWithTranscripts(t *testing.T) {
	home := t.TempDir()
	t.Setenv("DBOT_HOME", home)
	dataFileFlag = ""
	path := filepath.Join(t.TempDir(), "dbot.txt")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"settings", "set", "transcripts.enabled", "true"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	rootCmd.SetIn(strings.NewReader("todo read book\nbye\n"))
	rootCmd.SetArgs([]string{"chat", "--file", path})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	out.Reset()
	rootCmd.SetArgs([]string{"logs"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	listing := out.String()
	if !strings.Contains(listing, "console") || !strings.Contains(listing, "2 commands") {
		t.Fatalf("logs listing:\n%s", listing)
	}

	id := strings.Fields(listing)[0]
	out.Reset()
	rootCmd.SetArgs([]string{"logs", id})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "> todo read book") {
		t.Errorf("transcript:\n%s", out.String())
	}
}

func TestVersion(t *testing.T) {
	out := execute(t, "", "version")
	if !strings.HasPrefix(out, "Dbot dev") {
		t.Errorf("version output = %q", out)
	}
}
