package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/watchfire-io/dbot/internal/config"
	"github.com/watchfire-io/dbot/internal/models"
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show global settings",
	Long: `Show the global settings stored in ~/.dbot/settings.yaml.

Use "dbot settings set <key> <value>" to change one.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GlobalSettingsFile()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), styleLabel.Render("# "+path))
		return printSettings(cmd.OutOrStdout(), settings)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change a setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.SettingKeys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.SetSetting(settings, key, value); err != nil {
			return err
		}
		if err := config.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, styleValue.Render(value))
		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsSetCmd)
}

func printSettings(out io.Writer, s *models.Settings) error {
	for _, key := range config.SettingKeys() {
		value, err := config.GetSetting(s, key)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s %s\n", styleLabel.Render(fmt.Sprintf("%-20s", key)), styleValue.Render(value))
	}
	return nil
}
