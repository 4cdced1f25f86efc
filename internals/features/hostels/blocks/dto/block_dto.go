// file: internals/features/hostels/blocks/dto/block_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"hostelku_backend/internals/features/hostels/blocks/model"
)

/* =========================
   Requests
========================= */

type CreateBlockRequest struct {
	HostelID    *string `json:"hostelId" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=1,max=120"`
	Description *string `json:"description"`
	Address     *string `json:"address"`

	PaymentGenerationType *string `json:"paymentGenerationType" validate:"omitnil,oneof=global join_date_based"`
	PaymentVisibilityDays *int    `json:"paymentVisibilityDays" validate:"omitnil,min=0,max=31"`
	RentGenerationDay     *int    `json:"rentGenerationDay" validate:"omitnil,min=1,max=28"`
	RentGenerationEnabled *bool   `json:"rentGenerationEnabled"`
}

func (r *CreateBlockRequest) ToModel(ownerID string) *model.BlockModel {
	m := &model.BlockModel{
		BlockOwnerUserID:           ownerID,
		BlockName:                  strings.TrimSpace(r.Name),
		BlockDescription:           r.Description,
		BlockAddress:               r.Address,
		BlockPaymentGenerationType: model.GenerationGlobal,
		BlockPaymentVisibilityDays: model.DefaultPaymentVisibilityDays,
		BlockRentGenerationDay:     model.DefaultRentGenerationDay,
		BlockRentGenerationEnabled: true,
	}
	if r.HostelID != nil && *r.HostelID != "" {
		id := uuid.MustParse(*r.HostelID)
		m.BlockHostelID = &id
	}
	if r.PaymentGenerationType != nil {
		m.BlockPaymentGenerationType = model.PaymentGenerationType(*r.PaymentGenerationType)
	}
	if r.PaymentVisibilityDays != nil {
		m.BlockPaymentVisibilityDays = *r.PaymentVisibilityDays
	}
	if r.RentGenerationDay != nil {
		m.BlockRentGenerationDay = *r.RentGenerationDay
	}
	if r.RentGenerationEnabled != nil {
		m.BlockRentGenerationEnabled = *r.RentGenerationEnabled
	}
	return m
}

// UpdateBlockRequest: PATCH /blocks/:blockId. HostelID "" detaches the block.
type UpdateBlockRequest struct {
	HostelID    *string `json:"hostelId" validate:"omitempty,uuid"`
	Name        *string `json:"name" validate:"omitnil,min=1,max=120"`
	Description *string `json:"description"`
	Address     *string `json:"address"`
}

func (r *UpdateBlockRequest) Apply(m *model.BlockModel) {
	if r.Name != nil {
		m.BlockName = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		m.BlockDescription = r.Description
	}
	if r.Address != nil {
		m.BlockAddress = r.Address
	}
	if r.HostelID != nil {
		if *r.HostelID == "" {
			m.BlockHostelID = nil
		} else {
			id := uuid.MustParse(*r.HostelID)
			m.BlockHostelID = &id
		}
	}
}

// PaymentSettingsRequest: PUT /blocks/:blockId/payment-settings
type PaymentSettingsRequest struct {
	PaymentGenerationType *string `json:"paymentGenerationType" validate:"omitnil,oneof=global join_date_based"`
	PaymentVisibilityDays *int    `json:"paymentVisibilityDays" validate:"omitnil,min=0,max=31"`
	RentGenerationDay     *int    `json:"rentGenerationDay" validate:"omitnil,min=1,max=28"`
	RentGenerationEnabled *bool   `json:"rentGenerationEnabled"`
}

func (r *PaymentSettingsRequest) Empty() bool {
	return r.PaymentGenerationType == nil && r.PaymentVisibilityDays == nil &&
		r.RentGenerationDay == nil && r.RentGenerationEnabled == nil
}

func (r *PaymentSettingsRequest) Apply(m *model.BlockModel) {
	if r.PaymentGenerationType != nil {
		m.BlockPaymentGenerationType = model.PaymentGenerationType(*r.PaymentGenerationType)
	}
	if r.PaymentVisibilityDays != nil {
		m.BlockPaymentVisibilityDays = *r.PaymentVisibilityDays
	}
	if r.RentGenerationDay != nil {
		m.BlockRentGenerationDay = *r.RentGenerationDay
	}
	if r.RentGenerationEnabled != nil {
		m.BlockRentGenerationEnabled = *r.RentGenerationEnabled
	}
}

/* =========================
   Responses
========================= */

type PaymentSettingsResponse struct {
	PaymentGenerationType string `json:"paymentGenerationType"`
	PaymentVisibilityDays int    `json:"paymentVisibilityDays"`
	RentGenerationDay     int    `json:"rentGenerationDay"`
	RentGenerationEnabled bool   `json:"rentGenerationEnabled"`
}

func SettingsFromModel(m *model.BlockModel) PaymentSettingsResponse {
	return PaymentSettingsResponse{
		PaymentGenerationType: string(m.BlockPaymentGenerationType),
		PaymentVisibilityDays: m.BlockPaymentVisibilityDays,
		RentGenerationDay:     m.BlockRentGenerationDay,
		RentGenerationEnabled: m.BlockRentGenerationEnabled,
	}
}

type BlockResponse struct {
	ID              uuid.UUID               `json:"id"`
	HostelID        *uuid.UUID              `json:"hostelId,omitempty"`
	Name            string                  `json:"name"`
	Description     *string                 `json:"description,omitempty"`
	Address         *string                 `json:"address,omitempty"`
	PaymentSettings PaymentSettingsResponse `json:"paymentSettings"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func FromModel(m *model.BlockModel) BlockResponse {
	return BlockResponse{
		ID:              m.BlockID,
		HostelID:        m.BlockHostelID,
		Name:            m.BlockName,
		Description:     m.BlockDescription,
		Address:         m.BlockAddress,
		PaymentSettings: SettingsFromModel(m),
		CreatedAt:       m.BlockCreatedAt,
		UpdatedAt:       m.BlockUpdatedAt,
	}
}

func FromModels(rows []model.BlockModel) []BlockResponse {
	out := make([]BlockResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}
