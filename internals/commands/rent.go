// file: internals/commands/rent.go
package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	database "hostelku_backend/internals/databases"
	rentService "hostelku_backend/internals/features/finance/rent_payments/service"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	"hostelku_backend/internals/scheduler"
)

func RentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rent",
		Short: "Rent payment maintenance",
	}
	cmd.AddCommand(rentRefreshCmd())
	return cmd
}

func rentRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Generate the current and next month's payments now",
		Long:  "Without --block every block with automatic generation on is refreshed, like the nightly job.",
		RunE: func(cmd *cobra.Command, args []string) error {
			blockID, _ := cmd.Flags().GetString("block")

			database.ConnectDB()
			defer database.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
			defer cancel()

			svc := rentService.New(database.DB)
			svc.Loc = configs.Location()
			return runRentRefresh(ctx, cmd, svc, blockID)
		},
	}
	cmd.Flags().String("block", "", "Only refresh this block id")
	return cmd
}

func runRentRefresh(ctx context.Context, cmd *cobra.Command, svc *rentService.Service, blockID string) error {
	out := cmd.OutOrStdout()
	if blockID == "" {
		sum, err := scheduler.RunRentGeneration(ctx, svc)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "blocks=%d failed=%d generated=%d skipped=%d\n", sum.Blocks, sum.Failed, sum.Generated, sum.Skipped)
		return nil
	}

	id, err := uuid.Parse(blockID)
	if err != nil {
		return fmt.Errorf("--block must be a UUID: %w", err)
	}
	var b blockModel.BlockModel
	if err := svc.DB.WithContext(ctx).Where("block_id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("block %s not found", id)
		}
		return err
	}
	res, err := svc.RefreshBlock(ctx, &b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "block=%s tenants=%d generated=%d skipped=%d months=%v\n", id, res.Tenants, res.Generated, res.Skipped, res.Months)
	return nil
}
