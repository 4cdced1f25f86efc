// file: internals/features/tenants/tenants/service/tenant_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rpDto "hostelku_backend/internals/features/finance/rent_payments/dto"
	rpService "hostelku_backend/internals/features/finance/rent_payments/service"
	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	"hostelku_backend/internals/features/tenants/tenants/dto"
	"hostelku_backend/internals/features/tenants/tenants/model"
)

var (
	ErrTenantNotFound   = errors.New("tenant not found")
	ErrRoomTypeNotFound = errors.New("room type not found in this block")
)

// FindOwnedTenant loads a live tenant of ownerID.
func FindOwnedTenant(ctx context.Context, db *gorm.DB, id uuid.UUID, ownerID string) (*model.TenantModel, error) {
	var t model.TenantModel
	err := db.WithContext(ctx).
		Where("tenant_id = ? AND tenant_owner_user_id = ?", id, ownerID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// AssignRoomType links t to a room type of its block and snapshots the type name.
func AssignRoomType(ctx context.Context, db *gorm.DB, t *model.TenantModel, roomTypeID uuid.UUID) error {
	var rt roomTypeModel.RoomTypeModel
	err := db.WithContext(ctx).
		Where("room_type_id = ? AND room_type_block_id = ?", roomTypeID, t.TenantBlockID).
		First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoomTypeNotFound
	}
	if err != nil {
		return err
	}
	t.TenantRoomTypeID = &rt.RoomTypeID
	t.TenantRoomTypeName = rt.RoomTypeName
	return nil
}

/* =========================================================
   Public phone lookup
========================================================= */

// PublicLookup finds ownerID's tenants by normalized phone and returns what a tenant
// may see of each: visible, non-cancelled payments and the visible due summary.
func PublicLookup(ctx context.Context, db *gorm.DB, ownerID, phone string) ([]dto.PublicTenantResult, error) {
	var tenants []model.TenantModel
	if err := db.WithContext(ctx).
		Where("tenant_owner_user_id = ? AND tenant_phone = ?", ownerID, phone).
		Order("tenant_created_at ASC").
		Find(&tenants).Error; err != nil {
		return nil, fmt.Errorf("lookup tenants: %w", err)
	}
	out := make([]dto.PublicTenantResult, 0, len(tenants))
	if len(tenants) == 0 {
		return out, nil
	}

	blockIDs := make([]uuid.UUID, 0, len(tenants))
	for _, t := range tenants {
		blockIDs = append(blockIDs, t.TenantBlockID)
	}
	var blocks []blockModel.BlockModel
	if err := db.WithContext(ctx).
		Unscoped().
		Where("block_id IN ?", blockIDs).
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("lookup blocks: %w", err)
	}
	byID := make(map[uuid.UUID]*blockModel.BlockModel, len(blocks))
	for i := range blocks {
		byID[blocks[i].BlockID] = &blocks[i]
	}

	svc := rpService.New(db)
	now := svc.LocalNow()
	for i := range tenants {
		t := &tenants[i]
		visibility := blockModel.DefaultPaymentVisibilityDays
		blockName := ""
		if b, ok := byID[t.TenantBlockID]; ok {
			visibility = b.BlockPaymentVisibilityDays
			blockName = b.BlockName
		}

		payments, err := svc.TenantPayments(ctx, t.TenantID)
		if err != nil {
			return nil, fmt.Errorf("tenant payments: %w", err)
		}
		visible := rpService.VisiblePayments(payments, now, visibility)

		out = append(out, dto.PublicTenantResult{
			Name:       t.TenantName,
			BlockName:  blockName,
			RoomNumber: t.TenantRoomNumber,
			RoomType:   t.TenantRoomTypeName,
			Status:     string(t.TenantStatus),
			Payments:   rpDto.FromModels(visible, now, false),
			DueSummary: rpService.SummarizeDue(payments, now, visibility, true),
		})
	}
	return out, nil
}
