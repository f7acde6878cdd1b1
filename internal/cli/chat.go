package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/watchfire-io/dbot/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the console chat (default)",
	RunE:  runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	ctrl, path, err := openSession()
	if err != nil {
		return err
	}
	defer closeSession(ctrl, "console", path)

	in := cmd.InOrStdin()
	return chatLoop(ctrl, in, cmd.OutOrStdout(), isInteractive(in))
}

// isInteractive reports whether in is a terminal, in which case a prompt is
// shown before each line.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// chatLoop reads one command per line until bye or end of input.
func chatLoop(ctrl *session.Controller, in io.Reader, out io.Writer, interactive bool) error {
	printReply(out, session.Response{Text: ctrl.Welcome()})
	for _, w := range ctrl.Warnings() {
		fmt.Fprintln(out, styleWarning.Render(w))
	}

	scanner := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(out, stylePrompt.Render("> "))
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(ansi.Strip(scanner.Text()))
		resp := ctrl.Submit(line)
		printReply(out, resp)
		if resp.Exit {
			return nil
		}
	}
	return scanner.Err()
}

func printReply(out io.Writer, resp session.Response) {
	fmt.Fprintln(out, divider)
	switch {
	case resp.Err != nil:
		fmt.Fprintln(out, styleError.Render(resp.Text))
	case resp.Warning != nil:
		fmt.Fprintln(out, styleWarning.Render(resp.Text))
	default:
		fmt.Fprintln(out, resp.Text)
	}
	fmt.Fprintln(out, divider)
}
