package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mcdash/playerstats/tui/component/playerstats"
	"github.com/spf13/cobra"
)

// NewDashCmd creates the interactive dashboard command.
func NewDashCmd() *cobra.Command {
	var presetID string

	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Interactive concurrent players chart",
		Long: `Launch a fullscreen chart of concurrent players.

The chart reloads every dashboard.refresh_interval and immediately whenever
another preset is selected. Use the number keys or arrows to switch presets,
r to reload and q to quit.`,
		Example: `  playerstats dash
  playerstats dash --preset 1d
  playerstats dash --utc --lang fr`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			if presetID == "" {
				presetID = app.Config.Dashboard.DefaultPreset
			}
			if _, err := resolvePresetFlag(presetID); err != nil {
				return err
			}

			opts := playerstats.Options{
				Context:         cmd.Context(),
				Loader:          app.Loader,
				Translator:      app.Translator,
				Location:        app.Config.Location(),
				PresetID:        presetID,
				RefreshInterval: app.Config.Dashboard.RefreshInterval,
			}

			prog := tea.NewProgram(playerstats.New(opts), tea.WithAltScreen())
			_, err = prog.Run()

			return err
		},
	}

	cmd.Flags().StringVarP(&presetID, "preset", "p", "", "initial preset id (default: dashboard.default_preset)")

	return cmd
}
