package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"roster/internal/config"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
)

// Version holds the build-time version string.
var Version = "unknown" // nolint:gochecknoglobals

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var conf *config.Config

	root := &cobra.Command{
		Use:   "roster",
		Short: "Manage a roster of game characters",
		Long: `roster stores game characters and serves them over a REST API
with filtering, ordering, and pagination.

Configuration is read from ROSTER_* environment variables, and from a .env
file in the working directory if present.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
			if cmd.Name() == "version" {
				return nil
			}

			conf, err = config.Load()
			return err
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Serve the REST API until interrupted",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				return serve(conf)
			},
		},
		&cobra.Command{
			Use:       "migrate [up|down]",
			Short:     "Apply or revert all database migrations",
			Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
			ValidArgs: []string{"up", "down"},
			RunE: func(_ *cobra.Command, args []string) error {
				direction := "up"
				if len(args) > 0 {
					direction = args[0]
				}

				return runMigrations(conf, direction)
			},
		},
		&cobra.Command{
			Use:   "dev:fixtures",
			Short: "Create default data for quick testing during development",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return loadFixtures(cmd.Context(), conf)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Display the current version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "roster %s\n", Version)
			},
		},
	)

	return root
}

// closeLogged closes c and logs a failure, for use in defer.
func closeLogged(name string, c io.Closer) {
	if err := c.Close(); err != nil {
		log.Printf("warning: unable to close %s: %s", name, err)
	}
}
