package cli

import (
	"github.com/mcdash/playerstats/tui"
	"github.com/spf13/cobra"
)

// NewPresetsCmd creates the presets command.
func NewPresetsCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the selectable time windows",
		Long: `List the selectable time windows.

Each preset shows its window length, the bucket size requested from the
stats endpoint and the axis label format. The configured default is marked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors(),
			})

			return presenter.RenderPresets(presetViews(app.Config.Dashboard.DefaultPreset))
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}
