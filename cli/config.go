package cli

import (
	"fmt"

	"github.com/mcdash/playerstats/config"
	"github.com/mcdash/playerstats/tui"
	"github.com/spf13/cobra"
)

const maskedSecret = "********"

// NewConfigCmd creates the config command.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or modify configuration",
		Long: `View or modify configuration.

Values are validated before they are written, so an invalid setting never
reaches the config file. Durations accept Go syntax such as 30s or 2m.`,
	}

	cmd.AddCommand(
		newConfigShowCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigResetCmd(),
	)

	return cmd
}

// configFilePath returns the --config path or the platform default.
func configFilePath() string {
	if globalFlags.ConfigPath != "" {
		return globalFlags.ConfigPath
	}
	return config.ResolvePaths().ConfigFile
}

func openManager() (*config.Manager, error) {
	mgr, err := config.NewManager(configFilePath())
	if err != nil {
		return nil, ErrConfig("failed to open config", err)
	}
	return mgr, nil
}

func newConfigShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if globalFlags.NoColor {
				cfg.Display.Colors = config.ColorNever
			}

			presenter := tui.NewPresenter(getFormat(format), tui.PresenterOptions{
				Writer:    cmd.OutOrStdout(),
				UseColors: cfg.ShouldUseColors(),
			})

			values := mgr.AllSettings()
			maskSecrets(values)

			return presenter.RenderConfig(&tui.ConfigView{
				Location: mgr.ConfigPath(),
				Values:   values,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "table", "output format: table, json, jsonl, csv")

	return cmd
}

// maskSecrets hides server.password in displayed settings.
func maskSecrets(values map[string]interface{}) {
	server, ok := values["server"].(map[string]interface{})
	if !ok {
		return
	}
	if pw, ok := server["password"].(string); ok && pw != "" {
		server["password"] = maskedSecret
	}
}

func newConfigGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Get specific config value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			mgr, err := openManager()
			if err != nil {
				return err
			}

			if !mgr.HasKey(key) {
				return ErrConfig("key not found", fmt.Errorf("%s", key))
			}

			fmt.Fprintln(cmd.OutOrStdout(), mgr.Get(key))
			return nil
		},
	}

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set config value",
		Example: `  playerstats config set server.url https://mc.example.org/api/
  playerstats config set dashboard.default_preset 1d
  playerstats config set dashboard.refresh_interval 2m`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := config.ParseValue(args[1])

			mgr, err := openManager()
			if err != nil {
				return err
			}

			if !mgr.HasKey(key) {
				return ErrConfig("unknown config key", fmt.Errorf("%s", key))
			}

			if err := mgr.Set(key, value); err != nil {
				return ErrConfig("failed to set "+key, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, value)
			return nil
		},
	}

	return cmd
}

func newConfigResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset to default configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr, err := openManager()
			if err != nil {
				return err
			}

			if err := mgr.Reset(); err != nil {
				return ErrConfig("failed to reset config", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")
			return nil
		},
	}

	return cmd
}
