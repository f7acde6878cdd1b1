package cli

import (
	"github.com/spf13/cobra"

	"github.com/watchfire-io/dbot/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the full-screen terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, path, err := openSession()
		if err != nil {
			return err
		}
		defer closeSession(ctrl, "tui", path)

		return tui.Run(ctrl, path, tui.Options{
			AltScreen:  settings.TUI.AltScreen,
			WatchStore: settings.TUI.WatchStore,
		})
	},
}
