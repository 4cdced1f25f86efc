// file: internals/features/hostels/hostels/dto/hostel_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hostelku_backend/internals/features/hostels/hostels/model"
	roomTypeModel "hostelku_backend/internals/features/rooms/room_types/model"
	"hostelku_backend/internals/helpers/dbtypes"
)

/* =========================
   Requests
========================= */

type CreateHostelRequest struct {
	Name                    string   `json:"name" validate:"required,min=2,max=150"`
	Slug                    *string  `json:"slug" validate:"omitempty,max=100"`
	Description             *string  `json:"description"`
	Address                 *string  `json:"address"`
	City                    *string  `json:"city" validate:"omitempty,max=100"`
	ContactPhone            *string  `json:"contactPhone" validate:"omitempty,max=20"`
	ContactEmail            *string  `json:"contactEmail" validate:"omitempty,email"`
	CoverImageURL           *string  `json:"coverImageUrl" validate:"omitempty,url"`
	GalleryURLs             []string `json:"galleryUrls" validate:"omitempty,dive,url"`
	IsOnlinePresenceEnabled bool     `json:"isOnlinePresenceEnabled"`
}

func (r *CreateHostelRequest) ToModel(ownerID string) *model.HostelModel {
	return &model.HostelModel{
		HostelOwnerUserID:             ownerID,
		HostelName:                    strings.TrimSpace(r.Name),
		HostelDescription:             r.Description,
		HostelAddress:                 trimPtr(r.Address),
		HostelCity:                    trimPtr(r.City),
		HostelContactPhone:            trimPtr(r.ContactPhone),
		HostelContactEmail:            trimPtr(r.ContactEmail),
		HostelCoverImageURL:           trimPtr(r.CoverImageURL),
		HostelGalleryURLs:             dbtypes.Clean(r.GalleryURLs),
		HostelIsOnlinePresenceEnabled: r.IsOnlinePresenceEnabled,
	}
}

// UpdateHostelRequest: PATCH, nil fields are left alone.
type UpdateHostelRequest struct {
	Name                    *string   `json:"name" validate:"omitnil,min=2,max=150"`
	Slug                    *string   `json:"slug" validate:"omitempty,max=100"`
	Description             *string   `json:"description"`
	Address                 *string   `json:"address"`
	City                    *string   `json:"city" validate:"omitempty,max=100"`
	ContactPhone            *string   `json:"contactPhone" validate:"omitempty,max=20"`
	ContactEmail            *string   `json:"contactEmail" validate:"omitempty,email"`
	CoverImageURL           *string   `json:"coverImageUrl" validate:"omitempty,url"`
	GalleryURLs             *[]string `json:"galleryUrls" validate:"omitempty,dive,url"`
	IsOnlinePresenceEnabled *bool     `json:"isOnlinePresenceEnabled"`
}

// Apply copies the set fields onto m. Slug is handled by the controller.
func (r *UpdateHostelRequest) Apply(m *model.HostelModel) {
	if r.Name != nil {
		m.HostelName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.HostelDescription = r.Description
	}
	if r.Address != nil {
		m.HostelAddress = trimPtr(r.Address)
	}
	if r.City != nil {
		m.HostelCity = trimPtr(r.City)
	}
	if r.ContactPhone != nil {
		m.HostelContactPhone = trimPtr(r.ContactPhone)
	}
	if r.ContactEmail != nil {
		m.HostelContactEmail = trimPtr(r.ContactEmail)
	}
	if r.CoverImageURL != nil {
		m.HostelCoverImageURL = trimPtr(r.CoverImageURL)
	}
	if r.GalleryURLs != nil {
		m.HostelGalleryURLs = dbtypes.Clean(*r.GalleryURLs)
	}
	if r.IsOnlinePresenceEnabled != nil {
		m.HostelIsOnlinePresenceEnabled = *r.IsOnlinePresenceEnabled
	}
}

/* =========================
   Responses
========================= */

type HostelResponse struct {
	ID                      uuid.UUID `json:"id"`
	Name                    string    `json:"name"`
	Slug                    string    `json:"slug"`
	Description             *string   `json:"description,omitempty"`
	Address                 *string   `json:"address,omitempty"`
	City                    *string   `json:"city,omitempty"`
	ContactPhone            *string   `json:"contactPhone,omitempty"`
	ContactEmail            *string   `json:"contactEmail,omitempty"`
	CoverImageURL           *string   `json:"coverImageUrl,omitempty"`
	GalleryURLs             []string  `json:"galleryUrls"`
	IsOnlinePresenceEnabled bool      `json:"isOnlinePresenceEnabled"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

func FromModel(m *model.HostelModel) HostelResponse {
	gallery := []string(m.HostelGalleryURLs)
	if gallery == nil {
		gallery = []string{}
	}
	return HostelResponse{
		ID:                      m.HostelID,
		Name:                    m.HostelName,
		Slug:                    m.HostelSlug,
		Description:             m.HostelDescription,
		Address:                 m.HostelAddress,
		City:                    m.HostelCity,
		ContactPhone:            m.HostelContactPhone,
		ContactEmail:            m.HostelContactEmail,
		CoverImageURL:           m.HostelCoverImageURL,
		GalleryURLs:             gallery,
		IsOnlinePresenceEnabled: m.HostelIsOnlinePresenceEnabled,
		CreatedAt:               m.HostelCreatedAt,
		UpdatedAt:               m.HostelUpdatedAt,
	}
}

func FromModels(rows []model.HostelModel) []HostelResponse {
	out := make([]HostelResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

/* =========================
   Public profile
========================= */

type ProfileRoomType struct {
	ID            uuid.UUID                    `json:"id"`
	Name          string                       `json:"name"`
	Description   *string                      `json:"description,omitempty"`
	Rent          decimal.Decimal              `json:"rent"`
	Capacity      int                          `json:"capacity"`
	CoverImageURL *string                      `json:"coverImageUrl,omitempty"`
	GalleryURLs   []string                     `json:"galleryUrls"`
	Components    []roomTypeModel.ComponentRef `json:"components"`
}

type ProfileBlock struct {
	ID          uuid.UUID         `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description,omitempty"`
	Address     *string           `json:"address,omitempty"`
	RoomTypes   []ProfileRoomType `json:"roomTypes"`
}

type HostelProfileResponse struct {
	HostelResponse
	Blocks  []ProfileBlock   `json:"blocks"`
	MinRent *decimal.Decimal `json:"minRent,omitempty"`
	MaxRent *decimal.Decimal `json:"maxRent,omitempty"`
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
