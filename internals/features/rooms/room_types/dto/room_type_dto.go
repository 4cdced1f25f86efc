// file: internals/features/rooms/room_types/dto/room_type_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hostelku_backend/internals/features/rooms/room_types/model"
	"hostelku_backend/internals/helpers/dbtypes"
)

type CreateRoomTypeRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=120"`
	Description   *string         `json:"description"`
	Rent          decimal.Decimal `json:"rent"`
	Capacity      int             `json:"capacity" validate:"omitempty,min=1,max=50"`
	CoverImageURL *string         `json:"coverImageUrl" validate:"omitempty,url"`
	GalleryURLs   []string        `json:"galleryUrls" validate:"omitempty,dive,url"`
	ComponentIDs  []string        `json:"componentIds" validate:"omitempty,dive,uuid"`
}

func (r *CreateRoomTypeRequest) ToModel(blockID uuid.UUID, ownerID string) *model.RoomTypeModel {
	capacity := r.Capacity
	if capacity == 0 {
		capacity = 1
	}
	return &model.RoomTypeModel{
		RoomTypeBlockID:       blockID,
		RoomTypeOwnerUserID:   ownerID,
		RoomTypeName:          strings.TrimSpace(r.Name),
		RoomTypeDescription:   r.Description,
		RoomTypeRent:          r.Rent,
		RoomTypeCapacity:      capacity,
		RoomTypeCoverImageURL: r.CoverImageURL,
		RoomTypeGalleryURLs:   dbtypes.Clean(r.GalleryURLs),
	}
}

// UpdateRoomTypeRequest: PATCH. ComponentIDs, when sent, replaces the whole ordered list.
type UpdateRoomTypeRequest struct {
	Name          *string          `json:"name" validate:"omitnil,min=1,max=120"`
	Description   *string          `json:"description"`
	Rent          *decimal.Decimal `json:"rent"`
	Capacity      *int             `json:"capacity" validate:"omitnil,min=1,max=50"`
	CoverImageURL *string          `json:"coverImageUrl" validate:"omitempty,url"`
	GalleryURLs   *[]string        `json:"galleryUrls" validate:"omitempty,dive,url"`
	ComponentIDs  *[]string        `json:"componentIds" validate:"omitempty,dive,uuid"`
}

func (r *UpdateRoomTypeRequest) Apply(m *model.RoomTypeModel) {
	if r.Name != nil {
		m.RoomTypeName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.RoomTypeDescription = r.Description
	}
	if r.Rent != nil {
		m.RoomTypeRent = *r.Rent
	}
	if r.Capacity != nil {
		m.RoomTypeCapacity = *r.Capacity
	}
	if r.CoverImageURL != nil {
		m.RoomTypeCoverImageURL = r.CoverImageURL
	}
	if r.GalleryURLs != nil {
		m.RoomTypeGalleryURLs = dbtypes.Clean(*r.GalleryURLs)
	}
}

// ParseIDs converts validated uuid strings.
func ParseIDs(in []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		out = append(out, uuid.MustParse(s))
	}
	return out
}

type RoomTypeResponse struct {
	ID            uuid.UUID            `json:"id"`
	BlockID       uuid.UUID            `json:"blockId"`
	Name          string               `json:"name"`
	Description   *string              `json:"description,omitempty"`
	Rent          decimal.Decimal      `json:"rent"`
	Capacity      int                  `json:"capacity"`
	CoverImageURL *string              `json:"coverImageUrl,omitempty"`
	GalleryURLs   []string             `json:"galleryUrls"`
	Components    []model.ComponentRef `json:"components"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

func FromModel(m *model.RoomTypeModel, comps []model.ComponentRef) RoomTypeResponse {
	gallery := []string(m.RoomTypeGalleryURLs)
	if gallery == nil {
		gallery = []string{}
	}
	if comps == nil {
		comps = []model.ComponentRef{}
	}
	return RoomTypeResponse{
		ID:            m.RoomTypeID,
		BlockID:       m.RoomTypeBlockID,
		Name:          m.RoomTypeName,
		Description:   m.RoomTypeDescription,
		Rent:          m.RoomTypeRent,
		Capacity:      m.RoomTypeCapacity,
		CoverImageURL: m.RoomTypeCoverImageURL,
		GalleryURLs:   gallery,
		Components:    comps,
		CreatedAt:     m.RoomTypeCreatedAt,
		UpdatedAt:     m.RoomTypeUpdatedAt,
	}
}
