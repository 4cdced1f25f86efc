// file: internals/features/hostels/hostels/service/hostel_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	blockModel "hostelku_backend/internals/features/hostels/blocks/model"
	"hostelku_backend/internals/features/hostels/hostels/dto"
	"hostelku_backend/internals/features/hostels/hostels/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	roomTypeService "hostelku_backend/internals/features/rooms/room_types/service"
	helper "hostelku_backend/internals/helpers"
)

var ErrHostelNotFound = errors.New("hostel not found")

// FindOwnedHostel loads a live hostel of ownerID.
func FindOwnedHostel(ctx context.Context, db *gorm.DB, id uuid.UUID, ownerID string) (*model.HostelModel, error) {
	var h model.HostelModel
	err := db.WithContext(ctx).
		Where("hostel_id = ? AND hostel_owner_user_id = ?", id, ownerID).
		First(&h).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHostelNotFound
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// UniqueSlug slugifies raw and suffixes it until no other live hostel holds it.
func UniqueSlug(ctx context.Context, db *gorm.DB, raw string, exceptID *uuid.UUID) (string, error) {
	base := helper.Slugify(raw, helper.DefaultSlugMaxLen)
	return helper.EnsureUniqueSlug(ctx, db, "hostels", "hostel_slug", "hostel_deleted_at", base,
		func(q *gorm.DB) *gorm.DB {
			if exceptID != nil {
				return q.Where("hostel_id <> ?", *exceptID)
			}
			return q
		})
}

/* =========================================================
   Public profile
========================================================= */

// LoadProfile resolves idOrSlug to a hostel with online presence on and assembles
// its blocks, room types and ordered components. Hidden hostels are not found.
func LoadProfile(ctx context.Context, db *gorm.DB, idOrSlug string) (*dto.HostelProfileResponse, error) {
	db = db.WithContext(ctx)
	key := strings.TrimSpace(idOrSlug)

	q := db.Model(&model.HostelModel{}).Where("hostel_is_online_presence_enabled = ?", true)
	if id, err := uuid.Parse(key); err == nil {
		q = q.Where("hostel_id = ?", id)
	} else {
		q = q.Where("LOWER(hostel_slug) = ?", strings.ToLower(key))
	}
	var h model.HostelModel
	if err := q.First(&h).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHostelNotFound
		}
		return nil, err
	}

	out := &dto.HostelProfileResponse{
		HostelResponse: dto.FromModel(&h),
		Blocks:         []dto.ProfileBlock{},
	}

	var blocks []blockModel.BlockModel
	if err := db.
		Where("block_hostel_id = ? AND block_owner_user_id = ?", h.HostelID, h.HostelOwnerUserID).
		Order("block_name ASC").
		Find(&blocks).Error; err != nil {
		return nil, fmt.Errorf("load blocks: %w", err)
	}
	if len(blocks) == 0 {
		return out, nil
	}

	blockIDs := make([]uuid.UUID, 0, len(blocks))
	for _, b := range blocks {
		blockIDs = append(blockIDs, b.BlockID)
	}

	var roomTypes []roomTypeModel.RoomTypeModel
	if err := db.
		Where("room_type_block_id IN ?", blockIDs).
		Order("room_type_rent ASC").
		Order("room_type_name ASC").
		Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("load room types: %w", err)
	}

	rtIDs := make([]uuid.UUID, 0, len(roomTypes))
	for _, rt := range roomTypes {
		rtIDs = append(rtIDs, rt.RoomTypeID)
	}
	componentsByType, err := roomTypeService.OrderedComponents(ctx, db, rtIDs)
	if err != nil {
		return nil, err
	}

	typesByBlock := make(map[uuid.UUID][]dto.ProfileRoomType, len(blocks))
	for _, rt := range roomTypes {
		gallery := []string(rt.RoomTypeGalleryURLs)
		if gallery == nil {
			gallery = []string{}
		}
		comps := componentsByType[rt.RoomTypeID]
		if comps == nil {
			comps = []roomTypeModel.ComponentRef{}
		}
		typesByBlock[rt.RoomTypeBlockID] = append(typesByBlock[rt.RoomTypeBlockID], dto.ProfileRoomType{
			ID:            rt.RoomTypeID,
			Name:          rt.RoomTypeName,
			Description:   rt.RoomTypeDescription,
			Rent:          rt.RoomTypeRent,
			Capacity:      rt.RoomTypeCapacity,
			CoverImageURL: rt.RoomTypeCoverImageURL,
			GalleryURLs:   gallery,
			Components:    comps,
		})

		rent := rt.RoomTypeRent
		if out.MinRent == nil || rent.LessThan(*out.MinRent) {
			out.MinRent = decimalPtr(rent)
		}
		if out.MaxRent == nil || rent.GreaterThan(*out.MaxRent) {
			out.MaxRent = decimalPtr(rent)
		}
	}

	for _, b := range blocks {
		rts := typesByBlock[b.BlockID]
		if rts == nil {
			rts = []dto.ProfileRoomType{}
		}
		out.Blocks = append(out.Blocks, dto.ProfileBlock{
			ID:          b.BlockID,
			Name:        b.BlockName,
			Description: b.BlockDescription,
			Address:     b.BlockAddress,
			RoomTypes:   rts,
		})
	}
	return out, nil
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }
