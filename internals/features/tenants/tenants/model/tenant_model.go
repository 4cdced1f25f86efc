// file: internals/features/tenants/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hostelku_backend/internals/helpers/dbtime"
)

type TenantStatus string

const (
	TenantActive      TenantStatus = "active"
	TenantLeft        TenantStatus = "left"
	TenantBlacklisted TenantStatus = "blacklisted"
	TenantPending     TenantStatus = "pending"
)

func (s TenantStatus) Valid() bool {
	switch s {
	case TenantActive, TenantLeft, TenantBlacklisted, TenantPending:
		return true
	}
	return false
}

// TenantDocument is an already-hosted file (id proof, agreement).
type TenantDocument struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type TenantModel struct {
	TenantID          uuid.UUID  `gorm:"type:uuid;primaryKey;column:tenant_id" json:"tenant_id"`
	TenantOwnerUserID string     `gorm:"type:varchar(100);not null;index:idx_tenants_owner_phone,priority:1;column:tenant_owner_user_id" json:"tenant_owner_user_id"`
	TenantBlockID     uuid.UUID  `gorm:"type:uuid;not null;index:idx_tenants_block_status,priority:1;column:tenant_block_id" json:"tenant_block_id"`
	TenantRoomTypeID  *uuid.UUID `gorm:"type:uuid;column:tenant_room_type_id" json:"tenant_room_type_id,omitempty"`

	TenantName          string  `gorm:"type:varchar(150);not null;column:tenant_name" json:"tenant_name"`
	TenantPhone         string  `gorm:"type:varchar(10);not null;index:idx_tenants_owner_phone,priority:2;column:tenant_phone" json:"tenant_phone"` // 10 digits, normalized
	TenantEmail         *string `gorm:"type:varchar(150);column:tenant_email" json:"tenant_email,omitempty"`
	TenantAddress       *string `gorm:"type:text;column:tenant_address" json:"tenant_address,omitempty"`
	TenantGuardianName  *string `gorm:"type:varchar(150);column:tenant_guardian_name" json:"tenant_guardian_name,omitempty"`
	TenantGuardianPhone *string `gorm:"type:varchar(20);column:tenant_guardian_phone" json:"tenant_guardian_phone,omitempty"`

	TenantRoomNumber   string `gorm:"type:varchar(30);not null;column:tenant_room_number" json:"tenant_room_number"`
	TenantRoomTypeName string `gorm:"type:varchar(120);not null;column:tenant_room_type_name" json:"tenant_room_type_name"` // snapshot at assignment

	TenantJoinDate     dbtime.Date                         `gorm:"not null;column:tenant_join_date" json:"tenant_join_date"`
	TenantLeaveDate    *dbtime.Date                        `gorm:"column:tenant_leave_date" json:"tenant_leave_date,omitempty"`
	TenantStatus       TenantStatus                        `gorm:"type:varchar(20);not null;index:idx_tenants_block_status,priority:2;column:tenant_status" json:"tenant_status"`
	TenantRentOverride *decimal.Decimal                    `gorm:"type:numeric(12,2);column:tenant_rent_override" json:"tenant_rent_override,omitempty"`
	TenantDocuments    datatypes.JSONSlice[TenantDocument] `gorm:"column:tenant_documents" json:"tenant_documents"`
	TenantNotes        *string                             `gorm:"type:text;column:tenant_notes" json:"tenant_notes,omitempty"`

	TenantCreatedAt time.Time      `gorm:"not null;column:tenant_created_at" json:"tenant_created_at"`
	TenantUpdatedAt time.Time      `gorm:"not null;column:tenant_updated_at" json:"tenant_updated_at"`
	TenantDeletedAt gorm.DeletedAt `gorm:"index;column:tenant_deleted_at" json:"tenant_deleted_at,omitempty"`
}

func (TenantModel) TableName() string { return "tenants" }

func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	if m.TenantID == uuid.Nil {
		m.TenantID = uuid.New()
	}
	if m.TenantStatus == "" {
		m.TenantStatus = TenantActive
	}
	if m.TenantDocuments == nil {
		m.TenantDocuments = datatypes.JSONSlice[TenantDocument]{}
	}
	now := time.Now()
	if m.TenantCreatedAt.IsZero() {
		m.TenantCreatedAt = now
	}
	m.TenantUpdatedAt = now
	return nil
}

func (m *TenantModel) BeforeUpdate(tx *gorm.DB) error {
	m.TenantUpdatedAt = time.Now()
	return nil
}
