// file: internals/features/hostels/blocks/model/block_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentGenerationType string

const (
	GenerationGlobal        PaymentGenerationType = "global"
	GenerationJoinDateBased PaymentGenerationType = "join_date_based"
)

const (
	DefaultRentGenerationDay     = 1
	DefaultPaymentVisibilityDays = 5
)

func (t PaymentGenerationType) Valid() bool {
	return t == GenerationGlobal || t == GenerationJoinDateBased
}

// BlockModel is a building. The payment settings live on the block row.
type BlockModel struct {
	BlockID          uuid.UUID  `gorm:"type:uuid;primaryKey;column:block_id" json:"block_id"`
	BlockOwnerUserID string     `gorm:"type:varchar(100);not null;index:idx_blocks_owner;column:block_owner_user_id" json:"block_owner_user_id"`
	BlockHostelID    *uuid.UUID `gorm:"type:uuid;index:idx_blocks_hostel;column:block_hostel_id" json:"block_hostel_id,omitempty"`

	BlockName        string  `gorm:"type:varchar(120);not null;column:block_name" json:"block_name"`
	BlockDescription *string `gorm:"type:text;column:block_description" json:"block_description,omitempty"`
	BlockAddress     *string `gorm:"type:text;column:block_address" json:"block_address,omitempty"`

	// payment settings
	BlockPaymentGenerationType PaymentGenerationType `gorm:"type:varchar(20);not null;default:'global';column:block_payment_generation_type" json:"block_payment_generation_type"`
	BlockPaymentVisibilityDays int                   `gorm:"not null;column:block_payment_visibility_days" json:"block_payment_visibility_days"`
	BlockRentGenerationDay     int                   `gorm:"not null;default:1;column:block_rent_generation_day" json:"block_rent_generation_day"`
	BlockRentGenerationEnabled bool                  `gorm:"not null;column:block_rent_generation_enabled" json:"block_rent_generation_enabled"`

	BlockCreatedAt time.Time      `gorm:"not null;column:block_created_at" json:"block_created_at"`
	BlockUpdatedAt time.Time      `gorm:"not null;column:block_updated_at" json:"block_updated_at"`
	BlockDeletedAt gorm.DeletedAt `gorm:"index;column:block_deleted_at" json:"block_deleted_at,omitempty"`
}

func (BlockModel) TableName() string { return "blocks" }

func (b *BlockModel) BeforeCreate(tx *gorm.DB) error {
	if b.BlockID == uuid.Nil {
		b.BlockID = uuid.New()
	}
	if b.BlockPaymentGenerationType == "" {
		b.BlockPaymentGenerationType = GenerationGlobal
	}
	if b.BlockRentGenerationDay == 0 {
		b.BlockRentGenerationDay = DefaultRentGenerationDay
	}
	now := time.Now()
	if b.BlockCreatedAt.IsZero() {
		b.BlockCreatedAt = now
	}
	b.BlockUpdatedAt = now
	return nil
}

func (b *BlockModel) BeforeUpdate(tx *gorm.DB) error {
	b.BlockUpdatedAt = time.Now()
	return nil
}
