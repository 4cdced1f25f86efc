// file: internals/features/rooms/room_components/model/room_component_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomComponentModel is an amenity ("Wi-Fi", "Attached bathroom") of one block.
type RoomComponentModel struct {
	RoomComponentID          uuid.UUID `gorm:"type:uuid;primaryKey;column:room_component_id" json:"room_component_id"`
	RoomComponentBlockID     uuid.UUID `gorm:"type:uuid;not null;index:idx_room_components_block;column:room_component_block_id" json:"room_component_block_id"`
	RoomComponentOwnerUserID string    `gorm:"type:varchar(100);not null;column:room_component_owner_user_id" json:"room_component_owner_user_id"`

	RoomComponentName        string  `gorm:"type:varchar(120);not null;column:room_component_name" json:"room_component_name"`
	RoomComponentDescription *string `gorm:"type:text;column:room_component_description" json:"room_component_description,omitempty"`

	RoomComponentCreatedAt time.Time      `gorm:"not null;column:room_component_created_at" json:"room_component_created_at"`
	RoomComponentUpdatedAt time.Time      `gorm:"not null;column:room_component_updated_at" json:"room_component_updated_at"`
	RoomComponentDeletedAt gorm.DeletedAt `gorm:"index;column:room_component_deleted_at" json:"room_component_deleted_at,omitempty"`
}

func (RoomComponentModel) TableName() string { return "room_components" }

func (m *RoomComponentModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomComponentID == uuid.Nil {
		m.RoomComponentID = uuid.New()
	}
	now := time.Now()
	if m.RoomComponentCreatedAt.IsZero() {
		m.RoomComponentCreatedAt = now
	}
	m.RoomComponentUpdatedAt = now
	return nil
}

func (m *RoomComponentModel) BeforeUpdate(tx *gorm.DB) error {
	m.RoomComponentUpdatedAt = time.Now()
	return nil
}
