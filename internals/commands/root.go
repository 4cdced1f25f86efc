// file: internals/commands/root.go
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hostelku_backend/internals/configs"
)

// NewRootCmd: running the binary without a subcommand starts the API server.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hostelku",
		Short:         "Hostel management backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configs.LoadEnv()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	root.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		SeedCmd(),
		RentCmd(),
		ReaperCmd(),
	)
	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
