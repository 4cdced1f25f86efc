// file: internals/commands/migrate.go
package commands

import (
	"github.com/spf13/cobra"

	database "hostelku_backend/internals/databases"
)

func MigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			database.ConnectDB()
			defer database.Close()
			return database.Migrate(database.DB)
		},
	}
}
