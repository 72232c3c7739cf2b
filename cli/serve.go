package cli

import (
	"fmt"

	"github.com/mcdash/playerstats/web"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the web server command.
func NewServeCmd() *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the concurrent players chart over HTTP",
		Long: `Serve the concurrent players chart over HTTP.

Routes:
  /                          page with the preset selector
  /chart?preset=ID           rendered chart
  /api/players/concurrency   JSON chart descriptor
  /healthz                   liveness probe

The server shuts down gracefully on SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp()
			if err != nil {
				return err
			}

			if listen == "" {
				listen = app.Config.Serve.Listen
			}

			srv := web.NewServer(app.Loader,
				web.WithTranslator(app.Translator),
				web.WithLocation(app.Config.Location()),
				web.WithRefreshInterval(app.Config.Dashboard.RefreshInterval),
				web.WithDefaultPreset(app.Config.Dashboard.DefaultPreset),
			)

			if !globalFlags.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Serving player statistics on http://%s (stats from %s)\n",
					listen, app.Client.BaseURL())
			}

			return srv.ListenAndServe(cmd.Context(), listen)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default: serve.listen)")

	return cmd
}
