// Package cli provides the command-line interface for playerstats.
package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mcdash/playerstats/config"
	"github.com/mcdash/playerstats/core/preset"
	"github.com/mcdash/playerstats/i18n"
	"github.com/mcdash/playerstats/internal/version"
	"github.com/mcdash/playerstats/loader"
	"github.com/mcdash/playerstats/statsclient"
	"github.com/mcdash/playerstats/tui"
	"github.com/safedep/dry/log"
	"github.com/spf13/cobra"
)

// App holds the application dependencies.
type App struct {
	Config     *config.Config
	Client     *statsclient.Client
	Loader     *loader.Loader
	Translator *i18n.Translator
	Presenter  tui.Presenter
	Paths      *config.Paths
}

// NewApp creates a new App with the given configuration.
func NewApp(cfg *config.Config) (*App, error) {
	paths := config.ResolvePaths()

	translator, err := i18n.New(cfg.Display.Language)
	if err != nil {
		return nil, ErrConfig("failed to load translations", err)
	}

	client := newStatsClient(cfg)

	presenter := tui.NewPresenter(tui.FormatTable, tui.PresenterOptions{
		Writer:    os.Stdout,
		UseColors: cfg.ShouldUseColors(),
		Verbose:   globalFlags.Verbose,
	})

	return &App{
		Config:     cfg,
		Client:     client,
		Loader:     loader.New(client),
		Translator: translator,
		Presenter:  presenter,
		Paths:      paths,
	}, nil
}

func newStatsClient(cfg *config.Config) *statsclient.Client {
	opts := []statsclient.Option{
		statsclient.WithTimeout(cfg.Server.Timeout),
	}

	if cfg.Server.Username != "" || cfg.Server.Password != "" {
		opts = append(opts, statsclient.WithBasicAuth(cfg.Server.Username, cfg.Server.Password))
	}

	if cfg.Server.Breaker.Enabled {
		opts = append(opts, statsclient.WithBreaker(statsclient.NewBreaker(statsclient.BreakerConfig{
			MaxFailures: cfg.Server.Breaker.MaxFailures,
			OpenTimeout: cfg.Server.Breaker.OpenTimeout,
		})))
	}

	return statsclient.New(cfg.Server.URL, opts...)
}

// GlobalFlags holds the global command flags.
type GlobalFlags struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool
	ServerURL  string
	Language   string
	UTC        bool
}

var globalFlags GlobalFlags

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "playerstats",
		Short: "Concurrent players chart for game server dashboards",
		Long: `playerstats charts how many players were online over a chosen time window.

It reads bucketed samples from the dashboard stats endpoint and renders them
as an interactive terminal chart, a web page, or plain table/JSON/CSV output.`,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			if os.Getenv(config.EnvPrefix+"_NO_COLOR") != "" {
				globalFlags.NoColor = true
			}

			setupInternalLogger(cmd.Name() != "serve")

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalFlags.ConfigPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "increase output verbosity")
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Quiet, "quiet", "q", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&globalFlags.ServerURL, "server", "", "stats API base URL (overrides server.url)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.Language, "lang", "", "display language (overrides display.language)")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.UTC, "utc", false, "render times in UTC")

	rootCmd.AddCommand(
		NewDashCmd(),
		NewServeCmd(),
		NewFetchCmd(),
		NewPresetsCmd(),
		NewStatusCmd(),
		NewConfigCmd(),
		NewVersionCmd(),
	)

	return rootCmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewRootCmd().ExecuteContext(ctx)
}

// setupInternalLogger sets up the DRY logger. Interactive and one-shot
// commands own the terminal, so only serve keeps the stdout logger.
func setupInternalLogger(skipStdout bool) {
	if skipStdout {
		_ = os.Setenv("APP_LOG_SKIP_STDOUT_LOGGER", "true")
	}

	log.Init("playerstats", "cli")
}

// loadApp loads the application with configuration.
func loadApp() (*App, error) {
	cfg, err := config.Load(globalFlags.ConfigPath)
	if err != nil {
		return nil, ErrConfig("failed to load config", err)
	}

	applyFlagOverrides(cfg)

	return NewApp(cfg)
}

func applyFlagOverrides(cfg *config.Config) {
	if globalFlags.NoColor {
		cfg.Display.Colors = config.ColorNever
	}
	if globalFlags.ServerURL != "" {
		cfg.Server.URL = globalFlags.ServerURL
	}
	if globalFlags.Language != "" {
		cfg.Display.Language = globalFlags.Language
	}
	if globalFlags.UTC {
		cfg.Display.Timezone = config.TimezoneUTC
	}
}

// getFormat returns the output format from flags or default.
func getFormat(format string) tui.Format {
	switch format {
	case "json":
		return tui.FormatJSON
	case "jsonl":
		return tui.FormatJSONL
	case "csv":
		return tui.FormatCSV
	default:
		return tui.FormatTable
	}
}

// resolvePresetFlag validates a preset id given on the command line. The
// dashboard default id is accepted and resolves through the fallback preset.
func resolvePresetFlag(id string) (preset.Preset, error) {
	if id == preset.DefaultID {
		return preset.Resolve(id), nil
	}
	p, ok := preset.Find(id)
	if !ok {
		return preset.Preset{}, ErrInvalidPreset(id)
	}
	return p, nil
}
