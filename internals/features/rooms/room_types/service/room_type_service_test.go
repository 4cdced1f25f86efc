package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hostelku_backend/internals/databases/dbtest"
	componentModel "hostelku_backend/internals/features/rooms/room_components/model"
	"hostelku_backend/internals/features/rooms/room_types/model"
)

func component(t *testing.T, db *gorm.DB, blockID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	m := componentModel.RoomComponentModel{RoomComponentBlockID: blockID, RoomComponentOwnerUserID: "owner_1", RoomComponentName: name}
	require.NoError(t, db.Create(&m).Error)
	return m.RoomComponentID
}

func names(refs []model.ComponentRef) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, r.Name)
	}
	return out
}

func TestReplaceComponentsKeepsOrder(t *testing.T) {
	db := dbtest.Open(t)
	ctx := context.Background()
	blockID, otherBlock := uuid.New(), uuid.New()

	fan := component(t, db, blockID, "Fan")
	desk := component(t, db, blockID, "Desk")
	bed := component(t, db, blockID, "Bed")
	foreign := component(t, db, otherBlock, "Locker")

	rt := model.RoomTypeModel{RoomTypeBlockID: blockID, RoomTypeOwnerUserID: "owner_1", RoomTypeName: "Single", RoomTypeRent: decimal.NewFromInt(9000), RoomTypeCapacity: 1}
	require.NoError(t, db.Create(&rt).Error)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return ReplaceComponents(tx, rt.RoomTypeID, blockID, []uuid.UUID{bed, fan, bed, desk})
	}))
	got, err := OrderedComponents(ctx, db, []uuid.UUID{rt.RoomTypeID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Bed", "Fan", "Desk"}, names(got[rt.RoomTypeID]))

	err = db.Transaction(func(tx *gorm.DB) error {
		return ReplaceComponents(tx, rt.RoomTypeID, blockID, []uuid.UUID{desk, foreign})
	})
	assert.ErrorIs(t, err, ErrComponentNotInBlock)
	got, err = OrderedComponents(ctx, db, []uuid.UUID{rt.RoomTypeID})
	require.NoError(t, err)
	assert.Len(t, got[rt.RoomTypeID], 3, "rejected replace leaves the old list")

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return ReplaceComponents(tx, rt.RoomTypeID, blockID, []uuid.UUID{desk, fan})
	}))

	// soft-deleted components drop out of the view
	require.NoError(t, db.Delete(&componentModel.RoomComponentModel{}, "room_component_id = ?", fan).Error)
	got, err = OrderedComponents(ctx, db, []uuid.UUID{rt.RoomTypeID})
	require.NoError(t, err)
	assert.Equal(t, []string{"Desk"}, names(got[rt.RoomTypeID]))

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return ReplaceComponents(tx, rt.RoomTypeID, blockID, nil)
	}))
	got, err = OrderedComponents(ctx, db, []uuid.UUID{rt.RoomTypeID})
	require.NoError(t, err)
	assert.Empty(t, got[rt.RoomTypeID])
}

func TestFindOwnedRoomType(t *testing.T) {
	db := dbtest.Open(t)
	rt := model.RoomTypeModel{RoomTypeBlockID: uuid.New(), RoomTypeOwnerUserID: "owner_1", RoomTypeName: "Dorm", RoomTypeRent: decimal.NewFromInt(3000), RoomTypeCapacity: 6}
	require.NoError(t, db.Create(&rt).Error)

	got, err := FindOwnedRoomType(context.Background(), db, rt.RoomTypeID, "owner_1")
	require.NoError(t, err)
	assert.Equal(t, "Dorm", got.RoomTypeName)

	_, err = FindOwnedRoomType(context.Background(), db, rt.RoomTypeID, "owner_2")
	assert.ErrorIs(t, err, ErrRoomTypeNotFound)
}
