// file: internals/features/tenants/tenants/dto/tenant_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	rpDto "hostelku_backend/internals/features/finance/rent_payments/dto"
	rpService "hostelku_backend/internals/features/finance/rent_payments/service"
	"hostelku_backend/internals/features/tenants/tenants/model"
	"hostelku_backend/internals/helpers/dbtime"
)

/* =========================
   Requests
========================= */

type DocumentRequest struct {
	Name string `json:"name" validate:"required,max=150"`
	URL  string `json:"url" validate:"required,url"`
	Type string `json:"type" validate:"omitempty,max=50"`
}

func toDocuments(in []DocumentRequest) []model.TenantDocument {
	out := make([]model.TenantDocument, 0, len(in))
	for _, d := range in {
		out = append(out, model.TenantDocument{
			Name: strings.TrimSpace(d.Name),
			URL:  strings.TrimSpace(d.URL),
			Type: strings.TrimSpace(d.Type),
		})
	}
	return out
}

// CreateTenantRequest: POST /blocks/:blockId/tenants. Phone is normalized by the controller.
type CreateTenantRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=150"`
	Phone         string  `json:"phone" validate:"required"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address"`
	GuardianName  *string `json:"guardianName" validate:"omitempty,max=150"`
	GuardianPhone *string `json:"guardianPhone" validate:"omitempty,max=20"`

	RoomNumber   string  `json:"roomNumber" validate:"required,max=30"`
	RoomTypeID   *string `json:"roomTypeId" validate:"omitempty,uuid"`
	RoomTypeName string  `json:"roomType" validate:"omitempty,max=120"`

	JoinDate     dbtime.Date       `json:"joinDate"`
	Status       *string           `json:"status" validate:"omitnil,oneof=active left blacklisted pending"`
	RentOverride *decimal.Decimal  `json:"rentOverride"`
	Documents    []DocumentRequest `json:"documents" validate:"omitempty,dive"`
	Notes        *string           `json:"notes"`
}

func (r *CreateTenantRequest) ToModel(ownerID string, blockID uuid.UUID, phone string) *model.TenantModel {
	m := &model.TenantModel{
		TenantOwnerUserID:   ownerID,
		TenantBlockID:       blockID,
		TenantName:          strings.TrimSpace(r.Name),
		TenantPhone:         phone,
		TenantEmail:         r.Email,
		TenantAddress:       r.Address,
		TenantGuardianName:  r.GuardianName,
		TenantGuardianPhone: r.GuardianPhone,
		TenantRoomNumber:    strings.TrimSpace(r.RoomNumber),
		TenantRoomTypeName:  strings.TrimSpace(r.RoomTypeName),
		TenantJoinDate:      r.JoinDate,
		TenantStatus:        model.TenantActive,
		TenantRentOverride:  r.RentOverride,
		TenantDocuments:     toDocuments(r.Documents),
		TenantNotes:         r.Notes,
	}
	if r.RoomTypeID != nil && *r.RoomTypeID != "" {
		id := uuid.MustParse(*r.RoomTypeID)
		m.TenantRoomTypeID = &id
	}
	if r.Status != nil {
		m.TenantStatus = model.TenantStatus(*r.Status)
	}
	return m
}

// UpdateTenantRequest: PATCH /tenants/:id. RoomTypeID "" clears the link.
type UpdateTenantRequest struct {
	Name          *string `json:"name" validate:"omitnil,min=1,max=150"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email" validate:"omitempty,email"`
	Address       *string `json:"address"`
	GuardianName  *string `json:"guardianName" validate:"omitempty,max=150"`
	GuardianPhone *string `json:"guardianPhone" validate:"omitempty,max=20"`

	RoomNumber   *string `json:"roomNumber" validate:"omitnil,min=1,max=30"`
	RoomTypeID   *string `json:"roomTypeId" validate:"omitempty,uuid"`
	RoomTypeName *string `json:"roomType" validate:"omitempty,max=120"`

	JoinDate     *dbtime.Date       `json:"joinDate"`
	LeaveDate    *dbtime.Date       `json:"leaveDate"`
	RentOverride *decimal.Decimal   `json:"rentOverride"`
	Documents    *[]DocumentRequest `json:"documents" validate:"omitempty,dive"`
	Notes        *string            `json:"notes"`
}

// Apply copies everything but phone and room type id, which the controller checks first.
func (r *UpdateTenantRequest) Apply(m *model.TenantModel) {
	if r.Name != nil {
		m.TenantName = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		m.TenantEmail = r.Email
	}
	if r.Address != nil {
		m.TenantAddress = r.Address
	}
	if r.GuardianName != nil {
		m.TenantGuardianName = r.GuardianName
	}
	if r.GuardianPhone != nil {
		m.TenantGuardianPhone = r.GuardianPhone
	}
	if r.RoomNumber != nil {
		m.TenantRoomNumber = strings.TrimSpace(*r.RoomNumber)
	}
	if r.RoomTypeName != nil {
		m.TenantRoomTypeName = strings.TrimSpace(*r.RoomTypeName)
	}
	if r.JoinDate != nil && !r.JoinDate.IsZero() {
		m.TenantJoinDate = *r.JoinDate
	}
	if r.LeaveDate != nil {
		if r.LeaveDate.IsZero() {
			m.TenantLeaveDate = nil
		} else {
			m.TenantLeaveDate = r.LeaveDate
		}
	}
	if r.RentOverride != nil {
		if r.RentOverride.IsZero() {
			m.TenantRentOverride = nil
		} else {
			m.TenantRentOverride = r.RentOverride
		}
	}
	if r.Documents != nil {
		m.TenantDocuments = toDocuments(*r.Documents)
	}
	if r.Notes != nil {
		m.TenantNotes = r.Notes
	}
}

// UpdateTenantStatusRequest: PATCH /tenants/:id/status
type UpdateTenantStatusRequest struct {
	Status    string       `json:"status" validate:"required,oneof=active left blacklisted pending"`
	LeaveDate *dbtime.Date `json:"leaveDate"`
}

/* =========================
   Responses
========================= */

type TenantResponse struct {
	ID            uuid.UUID              `json:"id"`
	BlockID       uuid.UUID              `json:"blockId"`
	Name          string                 `json:"name"`
	Phone         string                 `json:"phone"`
	Email         *string                `json:"email,omitempty"`
	Address       *string                `json:"address,omitempty"`
	GuardianName  *string                `json:"guardianName,omitempty"`
	GuardianPhone *string                `json:"guardianPhone,omitempty"`
	RoomNumber    string                 `json:"roomNumber"`
	RoomTypeID    *uuid.UUID             `json:"roomTypeId,omitempty"`
	RoomType      string                 `json:"roomType"`
	JoinDate      dbtime.Date            `json:"joinDate"`
	LeaveDate     *dbtime.Date           `json:"leaveDate,omitempty"`
	Status        string                 `json:"status"`
	RentOverride  *decimal.Decimal       `json:"rentOverride,omitempty"`
	Documents     []model.TenantDocument `json:"documents"`
	Notes         *string                `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"createdAt"`
	UpdatedAt     time.Time              `json:"updatedAt"`
}

func FromModel(m *model.TenantModel) TenantResponse {
	docs := []model.TenantDocument(m.TenantDocuments)
	if docs == nil {
		docs = []model.TenantDocument{}
	}
	return TenantResponse{
		ID:            m.TenantID,
		BlockID:       m.TenantBlockID,
		Name:          m.TenantName,
		Phone:         m.TenantPhone,
		Email:         m.TenantEmail,
		Address:       m.TenantAddress,
		GuardianName:  m.TenantGuardianName,
		GuardianPhone: m.TenantGuardianPhone,
		RoomNumber:    m.TenantRoomNumber,
		RoomTypeID:    m.TenantRoomTypeID,
		RoomType:      m.TenantRoomTypeName,
		JoinDate:      m.TenantJoinDate,
		LeaveDate:     m.TenantLeaveDate,
		Status:        string(m.TenantStatus),
		RentOverride:  m.TenantRentOverride,
		Documents:     docs,
		Notes:         m.TenantNotes,
		CreatedAt:     m.TenantCreatedAt,
		UpdatedAt:     m.TenantUpdatedAt,
	}
}

func FromModels(rows []model.TenantModel) []TenantResponse {
	out := make([]TenantResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

// PublicTenantResult is one phone lookup match. No contact details leave the service.
type PublicTenantResult struct {
	Name       string                      `json:"name"`
	BlockName  string                      `json:"blockName"`
	RoomNumber string                      `json:"roomNumber"`
	RoomType   string                      `json:"roomType"`
	Status     string                      `json:"status"`
	Payments   []rpDto.RentPaymentResponse `json:"payments"`
	DueSummary rpService.DueSummary        `json:"dueSummary"`
}
