// file: internals/features/rooms/room_types/model/room_type_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hostelku_backend/internals/helpers/dbtypes"
)

type RoomTypeModel struct {
	RoomTypeID          uuid.UUID `gorm:"type:uuid;primaryKey;column:room_type_id" json:"room_type_id"`
	RoomTypeBlockID     uuid.UUID `gorm:"type:uuid;not null;index:idx_room_types_block;column:room_type_block_id" json:"room_type_block_id"`
	RoomTypeOwnerUserID string    `gorm:"type:varchar(100);not null;column:room_type_owner_user_id" json:"room_type_owner_user_id"`

	RoomTypeName        string          `gorm:"type:varchar(120);not null;column:room_type_name" json:"room_type_name"`
	RoomTypeDescription *string         `gorm:"type:text;column:room_type_description" json:"room_type_description,omitempty"`
	RoomTypeRent        decimal.Decimal `gorm:"type:numeric(12,2);not null;column:room_type_rent" json:"room_type_rent"`
	RoomTypeCapacity    int             `gorm:"not null;column:room_type_capacity" json:"room_type_capacity"` // beds per room

	RoomTypeCoverImageURL *string             `gorm:"type:text;column:room_type_cover_image_url" json:"room_type_cover_image_url,omitempty"`
	RoomTypeGalleryURLs   dbtypes.StringArray `gorm:"column:room_type_gallery_urls" json:"room_type_gallery_urls"`

	RoomTypeCreatedAt time.Time      `gorm:"not null;column:room_type_created_at" json:"room_type_created_at"`
	RoomTypeUpdatedAt time.Time      `gorm:"not null;column:room_type_updated_at" json:"room_type_updated_at"`
	RoomTypeDeletedAt gorm.DeletedAt `gorm:"index;column:room_type_deleted_at" json:"room_type_deleted_at,omitempty"`
}

func (RoomTypeModel) TableName() string { return "room_types" }

func (m *RoomTypeModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomTypeID == uuid.Nil {
		m.RoomTypeID = uuid.New()
	}
	now := time.Now()
	if m.RoomTypeCreatedAt.IsZero() {
		m.RoomTypeCreatedAt = now
	}
	m.RoomTypeUpdatedAt = now
	return nil
}

func (m *RoomTypeModel) BeforeUpdate(tx *gorm.DB) error {
	m.RoomTypeUpdatedAt = time.Now()
	return nil
}

// RoomTypeComponentModel keeps the ordered component list of a room type.
type RoomTypeComponentModel struct {
	RoomTypeComponentRoomTypeID  uuid.UUID `gorm:"type:uuid;primaryKey;column:room_type_component_room_type_id"`
	RoomTypeComponentComponentID uuid.UUID `gorm:"type:uuid;primaryKey;index:idx_rtc_component;column:room_type_component_component_id"`
	RoomTypeComponentPosition    int       `gorm:"not null;column:room_type_component_position"`
}

func (RoomTypeComponentModel) TableName() string { return "room_type_components" }

// ComponentRef is a component as listed on a room type, in position order.
type ComponentRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
}
