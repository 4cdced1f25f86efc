// file: internals/features/finance/rent_payments/dto/rent_payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"hostelku_backend/internals/features/finance/rent_payments/model"
	"hostelku_backend/internals/features/finance/rent_payments/service"
	"hostelku_backend/internals/helpers/dbtime"
)

/* =========================
   Requests
========================= */

type RefreshRequest struct {
	BlockID string `json:"blockId" validate:"required,uuid"`
}

// EditRentPaymentRequest: PUT /rent-payments/:id/edit
type EditRentPaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	Status        *string          `json:"status" validate:"omitnil,oneof=pending paid overdue undefined"`
	PaymentMethod *string          `json:"paymentMethod" validate:"omitnil,oneof=cash upi bank_transfer card online other"`
	PaidDate      *time.Time       `json:"paidDate"`
	Label         *string          `json:"label" validate:"omitempty,max=150"`
	Message       string           `json:"message"`
}

func (r *EditRentPaymentRequest) ToInput(actor string) service.EditInput {
	in := service.EditInput{
		Amount:   r.Amount,
		PaidDate: r.PaidDate,
		Label:    r.Label,
		Message:  r.Message,
		Actor:    actor,
	}
	if r.Status != nil {
		st := model.PaymentStatus(*r.Status)
		in.Status = &st
	}
	if r.PaymentMethod != nil {
		m := model.PaymentMethod(*r.PaymentMethod)
		in.PaymentMethod = &m
	}
	return in
}

// CancelRentPaymentRequest: DELETE /rent-payments/:id/remove
type CancelRentPaymentRequest struct {
	Message string `json:"message"`
}

// CreateAdditionalChargeRequest: POST /rent-payments
type CreateAdditionalChargeRequest struct {
	TenantID      string          `json:"tenantId" validate:"required,uuid"`
	Amount        decimal.Decimal `json:"amount"`
	Label         string          `json:"label" validate:"required,max=150"`
	DueDate       *dbtime.Date    `json:"dueDate"`
	PaymentMethod *string         `json:"paymentMethod" validate:"omitnil,oneof=cash upi bank_transfer card online other"`
}

func (r *CreateAdditionalChargeRequest) ToInput() service.AdditionalInput {
	in := service.AdditionalInput{
		TenantID: uuid.MustParse(r.TenantID),
		Amount:   r.Amount,
		Label:    r.Label,
		DueDate:  r.DueDate,
	}
	if r.PaymentMethod != nil {
		m := model.PaymentMethod(*r.PaymentMethod)
		in.PaymentMethod = &m
	}
	return in
}

/* =========================
   Responses
========================= */

type ChangeLogEntryResponse struct {
	Type      string                       `json:"type"`
	Message   string                       `json:"message"`
	Changes   map[string]model.FieldChange `json:"changes,omitempty"`
	ChangedBy string                       `json:"changedBy,omitempty"`
	ChangedAt time.Time                    `json:"changedAt"`
}

type RentPaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	TenantID      uuid.UUID       `json:"tenantId"`
	BlockID       uuid.UUID       `json:"blockId"`
	Amount        decimal.Decimal `json:"amount"`
	Month         string          `json:"month"`
	MonthNumber   int             `json:"monthNumber"`
	Year          int             `json:"year"`
	DueDate       dbtime.Date     `json:"dueDate"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	Status        string          `json:"status"`
	DisplayStatus string          `json:"displayStatus"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	Type          string          `json:"type"`
	Label         *string         `json:"label,omitempty"`
	IsCancelled   bool            `json:"isCancelled"`
	CancelledAt   *time.Time      `json:"cancelledAt,omitempty"`
	CheckoutURL   *string         `json:"checkoutUrl,omitempty"`

	ChangeLog []ChangeLogEntryResponse `json:"changeLog,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromModel builds the owner view. withLog=false drops the change log (tenant-facing lists).
func FromModel(p *model.RentPaymentModel, now time.Time, withLog bool) RentPaymentResponse {
	out := RentPaymentResponse{
		ID:            p.RentPaymentID,
		TenantID:      p.RentPaymentTenantID,
		BlockID:       p.RentPaymentBlockID,
		Amount:        p.RentPaymentAmount,
		Month:         p.RentPaymentMonth,
		MonthNumber:   p.RentPaymentMonthNumber,
		Year:          p.RentPaymentYear,
		DueDate:       p.RentPaymentDueDate,
		PaidDate:      dbtime.ToAppTimePtr(p.RentPaymentPaidDate),
		Status:        string(p.RentPaymentStatus),
		DisplayStatus: service.DisplayStatus(p, now),
		Type:          string(p.RentPaymentType),
		Label:         p.RentPaymentLabel,
		IsCancelled:   p.IsCancelled(),
		CancelledAt:   dbtime.ToAppTimePtr(p.RentPaymentCancelledAt),
		CheckoutURL:   p.RentPaymentCheckoutURL,
		CreatedAt:     p.RentPaymentCreatedAt,
		UpdatedAt:     p.RentPaymentUpdatedAt,
	}
	if p.RentPaymentPaymentMethod != nil {
		m := string(*p.RentPaymentPaymentMethod)
		out.PaymentMethod = &m
	}
	if withLog {
		out.ChangeLog = make([]ChangeLogEntryResponse, 0, len(p.RentPaymentChangeLog))
		for _, e := range p.RentPaymentChangeLog {
			out.ChangeLog = append(out.ChangeLog, ChangeLogEntryResponse{
				Type:      string(e.Type),
				Message:   e.Message,
				Changes:   e.Changes,
				ChangedBy: e.ChangedBy,
				ChangedAt: e.ChangedAt,
			})
		}
	}
	return out
}

func FromModels(rows []model.RentPaymentModel, now time.Time, withLog bool) []RentPaymentResponse {
	out := make([]RentPaymentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i], now, withLog))
	}
	return out
}
