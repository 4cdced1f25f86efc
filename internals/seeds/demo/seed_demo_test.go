package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelku_backend/internals/databases/dbtest"
	hostelModel "hostelku_backend/internals/features/hostels/hostels/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	tenantModel "hostelku_backend/internals/features/tenants/tenants/model"
)

func TestSeedDemoFromJSONIsRepeatable(t *testing.T) {
	db := dbtest.Open(t)

	require.NoError(t, SeedDemoFromJSON(db, "data_demo.json"))
	require.NoError(t, SeedDemoFromJSON(db, "data_demo.json"))

	var hostels, links, tenants int64
	require.NoError(t, db.Model(&hostelModel.HostelModel{}).Count(&hostels).Error)
	require.NoError(t, db.Model(&roomTypeModel.RoomTypeComponentModel{}).Count(&links).Error)
	require.NoError(t, db.Model(&tenantModel.TenantModel{}).Count(&tenants).Error)
	assert.EqualValues(t, 1, hostels)
	assert.EqualValues(t, 6, links)
	assert.EqualValues(t, 3, tenants)

	var rahul tenantModel.TenantModel
	require.NoError(t, db.Where("tenant_name = ?", "Rahul Mehta").First(&rahul).Error)
	assert.Equal(t, "9123456789", rahul.TenantPhone)
	assert.NotNil(t, rahul.TenantRoomTypeID)
}

func TestSeedRejectsUnknownComponent(t *testing.T) {
	db := dbtest.Open(t)
	f := File{
		OwnerUserID: "owner_1",
		Hostels: []HostelSeed{{
			Name: "Broken",
			Blocks: []BlockSeed{{
				Name:      "A",
				RoomTypes: []RoomTypeSeed{{Name: "Single", Components: []string{"Jacuzzi"}}},
			}},
		}},
	}
	assert.Error(t, Seed(db, f))

	var n int64
	require.NoError(t, db.Model(&hostelModel.HostelModel{}).Count(&n).Error)
	assert.Zero(t, n, "the hostel transaction rolls back")

	assert.Error(t, Seed(db, File{}))
}
