// file: internals/commands/seed.go
package commands

import (
	"github.com/spf13/cobra"

	database "hostelku_backend/internals/databases"
	"hostelku_backend/internals/seeds"
)

func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert demo data (hostels with existing slugs are skipped)",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			database.ConnectDB()
			defer database.Close()
			return seeds.RunAllSeeds(database.DB, file)
		},
	}
	cmd.Flags().String("file", seeds.DefaultDemoFile, "Path to the demo JSON file")
	return cmd
}
