package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelku_backend/internals/databases/dbtest"
	rpModel "hostelku_backend/internals/features/finance/rent_payments/model"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	"hostelku_backend/internals/features/tenants/tenants/model"
	"hostelku_backend/internals/helpers/dbtime"
)

func TestAssignRoomTypeSnapshotsName(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	blockID := uuid.New()

	rt := roomTypeModel.RoomTypeModel{RoomTypeBlockID: blockID, RoomTypeOwnerUserID: "owner_1", RoomTypeName: "Triple Sharing", RoomTypeRent: decimal.NewFromInt(4800), RoomTypeCapacity: 3}
	elsewhere := roomTypeModel.RoomTypeModel{RoomTypeBlockID: uuid.New(), RoomTypeOwnerUserID: "owner_1", RoomTypeName: "Suite", RoomTypeRent: decimal.NewFromInt(15000), RoomTypeCapacity: 1}
	require.NoError(t, db.Create(&rt).Error)
	require.NoError(t, db.Create(&elsewhere).Error)

	tn := model.TenantModel{TenantBlockID: blockID, TenantRoomTypeName: "typed by hand"}
	require.NoError(t, AssignRoomType(ctx, db, &tn, rt.RoomTypeID))
	assert.Equal(t, "Triple Sharing", tn.TenantRoomTypeName)
	assert.Equal(t, rt.RoomTypeID, *tn.TenantRoomTypeID)

	assert.ErrorIs(t, AssignRoomType(ctx, db, &tn, elsewhere.RoomTypeID), ErrRoomTypeNotFound)
}

func TestPublicLookupHidesFutureAndCancelledPayments(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()

	b := blockModel.BlockModel{BlockOwnerUserID: "owner_1", BlockName: "Block A", BlockPaymentVisibilityDays: 3, BlockRentGenerationDay: 1, BlockRentGenerationEnabled: true}
	require.NoError(t, db.Create(&b).Error)
	tn := model.TenantModel{
		TenantOwnerUserID: "owner_1", TenantBlockID: b.BlockID, TenantName: "Anita Rao", TenantPhone: "9876501234",
		TenantRoomNumber: "A-1", TenantRoomTypeName: "Single", TenantJoinDate: dbtime.NewDate(2026, 1, 1), TenantStatus: model.TenantActive,
	}
	require.NoError(t, db.Create(&tn).Error)

	today := dbtime.DateOf(dbtime.NowInApp())
	cancelled := time.Now()
	rows := []rpModel.RentPaymentModel{
		{RentPaymentDueDate: dbtime.DateOf(today.AddDate(0, 0, -10)), RentPaymentLabel: strPtr("past")},
		{RentPaymentDueDate: dbtime.DateOf(today.AddDate(0, 0, 2)), RentPaymentLabel: strPtr("soon")},
		{RentPaymentDueDate: dbtime.DateOf(today.AddDate(0, 0, 20)), RentPaymentLabel: strPtr("later")},
		{RentPaymentDueDate: dbtime.DateOf(today.AddDate(0, 0, -3)), RentPaymentLabel: strPtr("cancelled"), RentPaymentCancelledAt: &cancelled},
	}
	for i := range rows {
		r := &rows[i]
		r.RentPaymentOwnerUserID = "owner_1"
		r.RentPaymentTenantID = tn.TenantID
		r.RentPaymentBlockID = b.BlockID
		r.RentPaymentAmount = decimal.NewFromInt(500)
		r.RentPaymentMonth = r.RentPaymentDueDate.Month().String()
		r.RentPaymentMonthNumber = int(r.RentPaymentDueDate.Month())
		r.RentPaymentYear = r.RentPaymentDueDate.Year()
		r.RentPaymentType = rpModel.TypeAdditional
		require.NoError(t, db.Create(r).Error)
	}

	res, err := PublicLookup(ctx, db, "owner_1", "9876501234")
	require.NoError(t, err)
	require.Len(t, res, 1)
	got := res[0]
	assert.Equal(t, "Block A", got.BlockName)
	require.Len(t, got.Payments, 2)
	assert.Equal(t, "past", *got.Payments[0].Label)
	assert.Equal(t, "soon", *got.Payments[1].Label)
	assert.Equal(t, 2, got.DueSummary.Count)
	assert.True(t, decimal.NewFromInt(1000).Equal(got.DueSummary.TotalDue))
	assert.Equal(t, 1, got.DueSummary.OverdueCount)

	// block removed later: the tenant still finds their history
	require.NoError(t, db.Delete(&b).Error)
	res, err = PublicLookup(ctx, db, "owner_1", "9876501234")
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "Block A", res[0].BlockName)

	res, err = PublicLookup(ctx, db, "owner_2", "9876501234")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func strPtr(s string) *string { return &s }
