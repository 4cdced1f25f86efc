// file: internals/features/hostels/hostels/model/hostel_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/helpers/dbtypes"
)

type HostelModel struct {
	HostelID          uuid.UUID `gorm:"type:uuid;primaryKey;column:hostel_id" json:"hostel_id"`
	HostelOwnerUserID string    `gorm:"type:varchar(100);not null;index:idx_hostels_owner;column:hostel_owner_user_id" json:"hostel_owner_user_id"`

	HostelName        string  `gorm:"type:varchar(150);not null;column:hostel_name" json:"hostel_name"`
	HostelSlug        string  `gorm:"type:varchar(120);not null;uniqueIndex:uq_hostels_slug;column:hostel_slug" json:"hostel_slug"`
	HostelDescription *string `gorm:"type:text;column:hostel_description" json:"hostel_description,omitempty"` // markdown, stored verbatim

	HostelAddress      *string `gorm:"type:text;column:hostel_address" json:"hostel_address,omitempty"`
	HostelCity         *string `gorm:"type:varchar(100);column:hostel_city" json:"hostel_city,omitempty"`
	HostelContactPhone *string `gorm:"type:varchar(20);column:hostel_contact_phone" json:"hostel_contact_phone,omitempty"`
	HostelContactEmail *string `gorm:"type:varchar(150);column:hostel_contact_email" json:"hostel_contact_email,omitempty"`

	HostelCoverImageURL *string             `gorm:"type:text;column:hostel_cover_image_url" json:"hostel_cover_image_url,omitempty"`
	HostelGalleryURLs   dbtypes.StringArray `gorm:"column:hostel_gallery_urls" json:"hostel_gallery_urls"`

	HostelIsOnlinePresenceEnabled bool `gorm:"not null;column:hostel_is_online_presence_enabled" json:"hostel_is_online_presence_enabled"`

	HostelCreatedAt time.Time      `gorm:"not null;column:hostel_created_at" json:"hostel_created_at"`
	HostelUpdatedAt time.Time      `gorm:"not null;column:hostel_updated_at" json:"hostel_updated_at"`
	HostelDeletedAt gorm.DeletedAt `gorm:"index;column:hostel_deleted_at" json:"hostel_deleted_at,omitempty"`
}

func (HostelModel) TableName() string { return "hostels" }

func (h *HostelModel) BeforeCreate(tx *gorm.DB) error {
	if h.HostelID == uuid.Nil {
		h.HostelID = uuid.New()
	}
	now := time.Now()
	if h.HostelCreatedAt.IsZero() {
		h.HostelCreatedAt = now
	}
	h.HostelUpdatedAt = now
	return nil
}

func (h *HostelModel) BeforeUpdate(tx *gorm.DB) error {
	h.HostelUpdatedAt = time.Now()
	return nil
}
