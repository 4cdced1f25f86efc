package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hostelku_backend/internals/databases/dbtest"
	rentModel "hostelku_backend/internals/features/finance/rent_payments/model"
	rentService "hostelku_backend/internals/features/finance/rent_payments/service"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	componentModel "hostelku_backend/internals/features/rooms/room_components/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	tenantModel "hostelku_backend/internals/features/tenants/tenants/model"
	"hostelku_backend/internals/helpers/dbtime"
)

func seedBlock(t *testing.T, db *gorm.DB, owner string, enabled bool) blockModel.BlockModel {
	t.Helper()
	b := blockModel.BlockModel{
		BlockOwnerUserID:           owner,
		BlockName:                  "Block " + owner,
		BlockPaymentVisibilityDays: 5,
		BlockRentGenerationDay:     1,
		BlockRentGenerationEnabled: enabled,
	}
	require.NoError(t, db.Create(&b).Error)

	rt := roomTypeModel.RoomTypeModel{
		RoomTypeBlockID:     b.BlockID,
		RoomTypeOwnerUserID: owner,
		RoomTypeName:        "Single",
		RoomTypeRent:        decimal.NewFromInt(8000),
		RoomTypeCapacity:    1,
	}
	require.NoError(t, db.Create(&rt).Error)

	tn := tenantModel.TenantModel{
		TenantOwnerUserID:  owner,
		TenantBlockID:      b.BlockID,
		TenantRoomTypeID:   &rt.RoomTypeID,
		TenantName:         "Tenant " + owner,
		TenantPhone:        "9876501234",
		TenantRoomNumber:   "1",
		TenantRoomTypeName: rt.RoomTypeName,
		TenantJoinDate:     dbtime.NewDate(2026, 1, 15),
		TenantStatus:       tenantModel.TenantActive,
	}
	require.NoError(t, db.Create(&tn).Error)
	return b
}

func TestRunRentGenerationSkipsDisabledBlocksAndIsIdempotent(t *testing.T) {
	db := dbtest.Open(t)
	seedBlock(t, db, "owner_a", true)
	seedBlock(t, db, "owner_b", true)
	off := seedBlock(t, db, "owner_c", false)

	svc := rentService.New(db)
	svc.Loc = time.UTC
	svc.Now = func() time.Time { return time.Date(2026, 10, 17, 1, 0, 0, 0, time.UTC) }

	sum, err := RunRentGeneration(context.Background(), svc)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Blocks)
	assert.Zero(t, sum.Failed)
	assert.Equal(t, 4, sum.Generated)

	sum, err = RunRentGeneration(context.Background(), svc)
	require.NoError(t, err)
	assert.Zero(t, sum.Generated)
	assert.Equal(t, 4, sum.Skipped)

	var n int64
	require.NoError(t, db.Model(&rentModel.RentPaymentModel{}).Where("rent_payment_block_id = ?", off.BlockID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestStartRejectsBadSchedule(t *testing.T) {
	db := dbtest.Open(t)
	_, err := Start(db, Config{RentEnabled: true, RentSchedule: "not a cron", Location: time.UTC})
	assert.Error(t, err)

	c, err := Start(db, Config{RentEnabled: true, RentSchedule: "0 1 * * *", ReaperEnabled: true, ReaperSpec: "15 2 * * *", RetentionDays: 30})
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 2)
	<-c.Stop().Done()
}

func TestStartSchedulesEachJobBehindItsOwnFlag(t *testing.T) {
	db := dbtest.Open(t)

	c, err := Start(db, Config{RentEnabled: false, RentSchedule: "0 1 * * *", ReaperEnabled: true, ReaperSpec: "15 2 * * *", RetentionDays: 30})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	c, err = Start(db, Config{RentEnabled: true, RentSchedule: "0 1 * * *"})
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Len(t, c.Entries(), 1)
	<-c.Stop().Done()

	c, err = Start(db, Config{RentSchedule: "0 1 * * *", ReaperSpec: "15 2 * * *"})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestRunTrashReaper(t *testing.T) {
	db := dbtest.Open(t)
	b := seedBlock(t, db, "owner_a", true)

	oldComp := componentModel.RoomComponentModel{RoomComponentBlockID: b.BlockID, RoomComponentOwnerUserID: "owner_a", RoomComponentName: "Old desk"}
	freshComp := componentModel.RoomComponentModel{RoomComponentBlockID: b.BlockID, RoomComponentOwnerUserID: "owner_a", RoomComponentName: "Wardrobe"}
	liveComp := componentModel.RoomComponentModel{RoomComponentBlockID: b.BlockID, RoomComponentOwnerUserID: "owner_a", RoomComponentName: "Fan"}
	require.NoError(t, db.Create(&oldComp).Error)
	require.NoError(t, db.Create(&freshComp).Error)
	require.NoError(t, db.Create(&liveComp).Error)

	var rt roomTypeModel.RoomTypeModel
	require.NoError(t, db.Where("room_type_block_id = ?", b.BlockID).First(&rt).Error)
	require.NoError(t, db.Create(&[]roomTypeModel.RoomTypeComponentModel{
		{RoomTypeComponentRoomTypeID: rt.RoomTypeID, RoomTypeComponentComponentID: oldComp.RoomComponentID, RoomTypeComponentPosition: 0},
		{RoomTypeComponentRoomTypeID: rt.RoomTypeID, RoomTypeComponentComponentID: liveComp.RoomComponentID, RoomTypeComponentPosition: 1},
	}).Error)

	now := time.Now().UTC()
	require.NoError(t, db.Model(&componentModel.RoomComponentModel{}).
		Where("room_component_id = ?", oldComp.RoomComponentID).
		Update("room_component_deleted_at", now.AddDate(0, 0, -40)).Error)
	require.NoError(t, db.Model(&componentModel.RoomComponentModel{}).
		Where("room_component_id = ?", freshComp.RoomComponentID).
		Update("room_component_deleted_at", now.AddDate(0, 0, -2)).Error)

	n, err := RunTrashReaper(context.Background(), db, now.AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n, "one component row plus its dangling link")

	var left int64
	require.NoError(t, db.Unscoped().Model(&componentModel.RoomComponentModel{}).Count(&left).Error)
	assert.EqualValues(t, 2, left)

	var links []roomTypeModel.RoomTypeComponentModel
	require.NoError(t, db.Find(&links).Error)
	require.Len(t, links, 1)
	assert.Equal(t, liveComp.RoomComponentID, links[0].RoomTypeComponentComponentID)
}
