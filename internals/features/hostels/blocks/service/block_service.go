// file: internals/features/hostels/blocks/service/block_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostels/blocks/model"
)

var ErrBlockNotFound = errors.New("block not found")

// FindOwnedBlock loads a live block of ownerID. Another owner's block is reported
// as not found so ids don't leak across owners.
func FindOwnedBlock(ctx context.Context, db *gorm.DB, blockID uuid.UUID, ownerID string) (*model.BlockModel, error) {
	var b model.BlockModel
	err := db.WithContext(ctx).
		Where("block_id = ? AND block_owner_user_id = ?", blockID, ownerID).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// ListGenerationEnabled returns every live block with automatic generation on, all owners.
func ListGenerationEnabled(ctx context.Context, db *gorm.DB) ([]model.BlockModel, error) {
	var out []model.BlockModel
	err := db.WithContext(ctx).
		Where("block_rent_generation_enabled = ?", true).
		Order("block_created_at ASC").
		Find(&out).Error
	return out, err
}
