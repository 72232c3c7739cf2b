package cli

import (
	"context"
	"os"
	"time"

	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/loader"
	"github.com/mcdash/playerstats/tui"
	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"
)

type fetchParams struct {
	preset   string
	format   string
	watch    bool
	interval time.Duration
}

// NewFetchCmd creates the fetch command.
func NewFetchCmd() *cobra.Command {
	var p fetchParams

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Print the concurrent players series of a preset",
		Long: `Print the concurrent players series of a preset.

Without --watch a single load is performed and a failed request exits with
status 3. With --watch the series is printed again on every refresh until
interrupted; failed refreshes print an empty series.`,
		Example: `  playerstats fetch
  playerstats fetch --preset 1d --format csv
  playerstats fetch --preset 6h --watch --format jsonl`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, p)
		},
	}

	cmd.Flags().StringVarP(&p.preset, "preset", "p", "", "preset id (default: dashboard.default_preset)")
	cmd.Flags().StringVar(&p.format, "format", "table", "output format: table, json, jsonl, csv")
	cmd.Flags().BoolVarP(&p.watch, "watch", "w", false, "keep refreshing until interrupted")
	cmd.Flags().DurationVar(&p.interval, "interval", 0, "refresh interval for --watch (default: dashboard.refresh_interval)")

	return cmd
}

func runFetch(cmd *cobra.Command, p fetchParams) error {
	app, err := loadApp()
	if err != nil {
		return err
	}

	id := p.preset
	if id == "" {
		id = app.Config.Dashboard.DefaultPreset
	}
	selected, err := resolvePresetFlag(id)
	if err != nil {
		return err
	}

	presenter := tui.NewPresenter(getFormat(p.format), tui.PresenterOptions{
		Writer:    cmd.OutOrStdout(),
		UseColors: app.Config.ShouldUseColors(),
		Verbose:   globalFlags.Verbose,
	})

	if p.watch {
		interval := p.interval
		if interval <= 0 {
			interval = app.Config.Dashboard.RefreshInterval
		}
		return watchSeries(cmd.Context(), app, selected, presenter, interval)
	}

	load := func(ctx context.Context) (loader.Result, error) {
		res := app.Loader.Load(ctx, selected)
		return res, res.Err
	}

	var res loader.Result
	if globalFlags.Quiet {
		res, err = load(cmd.Context())
	} else {
		res, err = tui.RunWithSpinner(cmd.Context(), "Loading "+selected.Label+"…", load)
	}
	if err != nil {
		return ErrUpstream("failed to load concurrency samples", err)
	}

	return presenter.RenderSeries(seriesView(res, app.Translator, app.Config.Location()))
}

// watchSeries prints the series on every refresh until ctx is done or the
// presenter fails to write.
func watchSeries(ctx context.Context, app *App, p preset.Preset, presenter tui.Presenter, interval time.Duration) error {
	progress := tui.NewProgressWriter(os.Stderr, app.Config.ShouldUseColors())
	loc := app.Config.Location()
	errCh := make(chan error, 1)

	refresh := loader.StartRefresh(ctx, interval, func(ctx context.Context) {
		progress.Update("refreshing %s…", p.Label)
		res := app.Loader.Load(ctx, p)
		progress.Clear()

		if ctx.Err() != nil {
			return
		}
		if res.Err != nil {
			log.Warnf("refresh of %s failed: %v", p.ID, res.Err)
		}

		if err := presenter.RenderSeries(seriesView(res, app.Translator, loc)); err != nil {
			select {
			case errCh <- err:
			default:
			}
			return
		}

		progress.Waiting(time.Now().Add(interval))
	})
	defer refresh.Stop()

	select {
	case <-ctx.Done():
		progress.Clear()
		return nil
	case err := <-errCh:
		return err
	}
}
