package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/dbot/internal/config"
)

var logsCmd = &cobra.Command{
	Use:   "logs [id]",
	Short: "List recorded session transcripts, or show one",
	Long: `Without an id, list recorded session transcripts, newest first.
With an id, print that transcript.

Transcripts are only recorded when transcripts.enabled is true.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return showTranscript(cmd.OutOrStdout(), args[0])
		}
		return listTranscripts(cmd.OutOrStdout())
	},
}

func listTranscripts(out io.Writer) error {
	ids, entries, err := config.ListTranscripts()
	if err != nil {
		return fmt.Errorf("failed to list transcripts: %w", err)
	}
	if len(ids) == 0 {
		fmt.Fprintln(out, styleHint.Render("No transcripts recorded."))
		if !settings.Transcripts.Enabled {
			fmt.Fprintln(out, styleHint.Render("Enable them with: dbot settings set transcripts.enabled true"))
		}
		return nil
	}

	for i, id := range ids {
		e := entries[i]
		fmt.Fprintf(out, "%s  %s  %s\n",
			styleValue.Render(id),
			styleLabel.Render(fmt.Sprintf("%-7s %3d commands", e.Shell, e.Commands)),
			styleHint.Render(e.DataFile))
	}
	return nil
}

func showTranscript(out io.Writer, id string) error {
	entry, body, err := config.ReadTranscript(id)
	if err != nil {
		return fmt.Errorf("failed to read transcript %s: %w", id, err)
	}
	fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Session:"), styleValue.Render(entry.SessionID))
	fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Started:"), styleValue.Render(entry.StartedAt))
	fmt.Fprintf(out, "%s %s\n", styleLabel.Render("Ended:  "), styleValue.Render(entry.EndedAt))
	fmt.Fprintf(out, "%s %s\n\n", styleLabel.Render("File:   "), styleValue.Render(entry.DataFile))
	fmt.Fprint(out, body)
	return nil
}
