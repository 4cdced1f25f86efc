// file: internals/commands/reaper.go
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"hostelku_backend/internals/configs"
	database "hostelku_backend/internals/databases"
	"hostelku_backend/internals/scheduler"
)

func ReaperCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reap",
		Short: "Hard-delete soft-deleted rows older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			if days <= 0 {
				days = configs.TrashRetentionDays
			}

			database.ConnectDB()
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 4*time.Minute)
			defer cancel()
			n, err := scheduler.RunTrashReaper(ctx, database.DB, time.Now().AddDate(0, 0, -days))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged=%d retention=%dd\n", n, days)
			return nil
		},
	}
	cmd.Flags().Int("days", 0, "Retention in days (defaults to RETENTION_DAYS)")
	return cmd
}
