package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	rentPaymentModel "hostelku_backend/internals/features/finance/rent_payments/model"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	hostelModel "hostelku_backend/internals/features/hostels/hostels/model"
	componentModel "hostelku_backend/internals/features/rooms/room_components/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	tenantModel "hostelku_backend/internals/features/tenants/tenants/model"
)

// Models in dependency order.
func Models() []any {
	return []any{
		&hostelModel.HostelModel{},
		&blockModel.BlockModel{},
		&componentModel.RoomComponentModel{},
		&roomTypeModel.RoomTypeModel{},
		&roomTypeModel.RoomTypeComponentModel{},
		&tenantModel.TenantModel{},
		&rentPaymentModel.RentPaymentModel{},
		&rentPaymentModel.RentPaymentOrderModel{},
	}
}

// Partial indexes AutoMigrate can't express. Plain SQL shared by postgres and sqlite.
var extraIndexes = []string{
	// one monthly row per tenant per month; additional charges are unconstrained
	`CREATE UNIQUE INDEX IF NOT EXISTS ` + rentPaymentModel.MonthlyUniqueIndex + `
		ON rent_payments (rent_payment_tenant_id, rent_payment_year, rent_payment_month_number)
		WHERE rent_payment_type = 'monthly'`,
	`CREATE INDEX IF NOT EXISTS idx_rent_payments_owner_due
		ON rent_payments (rent_payment_owner_user_id, rent_payment_due_date)`,
}

// Migrate brings the schema up to date. Safe to run repeatedly.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	for _, stmt := range extraIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("index: %w", err)
		}
	}
	log.Println("[INFO] schema migrated")
	return nil
}
