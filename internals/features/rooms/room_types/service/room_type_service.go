// file: internals/features/rooms/room_types/service/room_type_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	componentModel "hostelku_backend/internals/features/rooms/room_components/model"
	"hostelku_backend/internals/features/rooms/room_types/model"
)

var (
	ErrRoomTypeNotFound    = errors.New("room type not found")
	ErrComponentNotInBlock = errors.New("component does not belong to this block")
)

// FindOwnedRoomType loads a live room type of ownerID.
func FindOwnedRoomType(ctx context.Context, db *gorm.DB, id uuid.UUID, ownerID string) (*model.RoomTypeModel, error) {
	var m model.RoomTypeModel
	err := db.WithContext(ctx).
		Where("room_type_id = ? AND room_type_owner_user_id = ?", id, ownerID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ReplaceComponents rewrites the ordered component list of a room type. The slice
// order is the display order; duplicates keep their first position. Must run in tx.
func ReplaceComponents(tx *gorm.DB, roomTypeID, blockID uuid.UUID, componentIDs []uuid.UUID) error {
	ids := make([]uuid.UUID, 0, len(componentIDs))
	seen := make(map[uuid.UUID]struct{}, len(componentIDs))
	for _, id := range componentIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		var n int64
		if err := tx.Model(&componentModel.RoomComponentModel{}).
			Where("room_component_id IN ? AND room_component_block_id = ?", ids, blockID).
			Count(&n).Error; err != nil {
			return err
		}
		if int(n) != len(ids) {
			return ErrComponentNotInBlock
		}
	}

	if err := tx.Where("room_type_component_room_type_id = ?", roomTypeID).
		Delete(&model.RoomTypeComponentModel{}).Error; err != nil {
		return fmt.Errorf("clear components: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	rows := make([]model.RoomTypeComponentModel, 0, len(ids))
	for i, id := range ids {
		rows = append(rows, model.RoomTypeComponentModel{
			RoomTypeComponentRoomTypeID:  roomTypeID,
			RoomTypeComponentComponentID: id,
			RoomTypeComponentPosition:    i,
		})
	}
	return tx.Create(&rows).Error
}

// OrderedComponents returns the live components of each room type in position order.
func OrderedComponents(ctx context.Context, db *gorm.DB, roomTypeIDs []uuid.UUID) (map[uuid.UUID][]model.ComponentRef, error) {
	out := make(map[uuid.UUID][]model.ComponentRef, len(roomTypeIDs))
	if len(roomTypeIDs) == 0 {
		return out, nil
	}

	type row struct {
		RoomTypeID  uuid.UUID
		ComponentID uuid.UUID
		Name        string
		Description *string
	}
	var rows []row
	err := db.WithContext(ctx).
		Table("room_type_components AS rtc").
		Select(`rtc.room_type_component_room_type_id AS room_type_id,
			rc.room_component_id AS component_id,
			rc.room_component_name AS name,
			rc.room_component_description AS description`).
		Joins("JOIN room_components rc ON rc.room_component_id = rtc.room_type_component_component_id AND rc.room_component_deleted_at IS NULL").
		Where("rtc.room_type_component_room_type_id IN ?", roomTypeIDs).
		Order("rtc.room_type_component_room_type_id").
		Order("rtc.room_type_component_position ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load components: %w", err)
	}
	for _, r := range rows {
		out[r.RoomTypeID] = append(out[r.RoomTypeID], model.ComponentRef{
			ID:          r.ComponentID,
			Name:        r.Name,
			Description: r.Description,
		})
	}
	return out, nil
}
