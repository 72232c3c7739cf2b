package cli

import (
	"context"
	"time"

	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/internal/version"
	"github.com/mcdash/playerstats/statsclient"
	"github.com/mcdash/playerstats/tui"
	"github.com/spf13/cobra"
)

// probePreset is the smallest window, so a status probe stays cheap.
const probePreset = "6h"

// NewStatusCmd creates the status command.
func NewStatusCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show stats endpoint reachability and configuration",
		Long: `Show stats endpoint reachability and configuration.

Performs one request for the shortest preset window and reports whether the
endpoint answered with a valid sample array, how long it took, and which
config file, language and timezone are in effect.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: app.Config.ShouldUseColors(),
			})

			view := probe(cmd.Context(), app)
			return presenter.RenderStatus(view)
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}

func probe(ctx context.Context, app *App) *tui.StatusView {
	view := &tui.StatusView{
		Version:        version.Version,
		ServerURL:      app.Client.BaseURL(),
		ConfigLocation: configFilePath(),
		Language:       app.Translator.Language(),
		Timezone:       string(app.Config.Display.Timezone),
	}

	p := preset.Resolve(probePreset)
	start := time.Now()
	samples, err := app.Client.FetchConcurrency(ctx, statsclient.QueryFor(p, start))
	view.Latency = time.Since(start)

	if err != nil {
		view.Error = err.Error()
		return view
	}

	view.Reachable = true
	view.Samples = len(samples)
	return view
}
