package cli

import (
	"fmt"

	"github.com/mcdash/playerstats/internal/updatecheck"
	"github.com/mcdash/playerstats/internal/version"
	"github.com/spf13/cobra"
)

func NewVersionCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "playerstats %s\n", version.Version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", version.Date)

			if !check {
				return nil
			}

			result, err := updatecheck.NewChecker().Check(cmd.Context(), version.Version)
			if err != nil {
				return ErrUpstream("failed to check for updates", err)
			}

			if result.UpdateAvailable {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nA newer version is available: %s -> %s\n%s\n",
					result.CurrentVersion, result.LatestVersion, result.ReleaseURL)
			} else {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nUp to date (latest release %s)\n", result.LatestVersion)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "check for a newer release")

	return cmd
}
