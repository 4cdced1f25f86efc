// file: internals/features/rooms/room_components/dto/room_component_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/rooms/room_components/model"
)

type CreateRoomComponentRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Description *string `json:"description"`
}

type UpdateRoomComponentRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=1,max=120"`
	Description *string `json:"description"`
}

func (r *UpdateRoomComponentRequest) Apply(m *model.RoomComponentModel) {
	if r.Name != nil {
		m.RoomComponentName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.RoomComponentDescription = r.Description
	}
}

type RoomComponentResponse struct {
	ID          uuid.UUID `json:"id"`
	BlockID     uuid.UUID `json:"blockId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromModel(m *model.RoomComponentModel) RoomComponentResponse {
	return RoomComponentResponse{
		ID:          m.RoomComponentID,
		BlockID:     m.RoomComponentBlockID,
		Name:        m.RoomComponentName,
		Description: m.RoomComponentDescription,
		CreatedAt:   m.RoomComponentCreatedAt,
		UpdatedAt:   m.RoomComponentUpdatedAt,
	}
}

func FromModels(rows []model.RoomComponentModel) []RoomComponentResponse {
	out := make([]RoomComponentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
