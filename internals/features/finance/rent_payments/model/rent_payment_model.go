// file: internals/features/finance/rent_payments/model/rent_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hostelku_backend/internals/helpers/dbtime"
)

/* =========================
   Enums
========================= */

type PaymentStatus string

const (
	StatusUndefined PaymentStatus = "undefined"
	StatusPending   PaymentStatus = "pending"
	StatusPaid      PaymentStatus = "paid"
	StatusOverdue   PaymentStatus = "overdue"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case StatusUndefined, StatusPending, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

type PaymentType string

const (
	TypeMonthly    PaymentType = "monthly"
	TypeAdditional PaymentType = "additional"
)

type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodUPI    PaymentMethod = "upi"
	MethodBank   PaymentMethod = "bank_transfer"
	MethodCard   PaymentMethod = "card"
	MethodOnline PaymentMethod = "online"
	MethodOther  PaymentMethod = "other"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodCash, MethodUPI, MethodBank, MethodCard, MethodOnline, MethodOther:
		return true
	}
	return false
}

type ChangeType string

const (
	ChangeEdit    ChangeType = "edit"
	ChangeCancel  ChangeType = "cancel"
	ChangeGateway ChangeType = "gateway"
)

/* =========================
   Change log
========================= */

type FieldChange struct {
	From any `json:"from"`
	To   any `json:"to"`
}

type ChangeLogEntry struct {
	Type      ChangeType             `json:"type"`
	Message   string                 `json:"message"`
	Changes   map[string]FieldChange `json:"changes,omitempty"`
	ChangedBy string                 `json:"changed_by,omitempty"`
	ChangedAt time.Time              `json:"changed_at"`
}

/* =========================
   Model
========================= */

// MonthlyUniqueIndex backs the insert-if-absent generation; built by database.Migrate.
const MonthlyUniqueIndex = "uq_rent_payments_monthly"

type RentPaymentModel struct {
	RentPaymentID          uuid.UUID `gorm:"type:uuid;primaryKey;column:rent_payment_id" json:"rent_payment_id"`
	RentPaymentOwnerUserID string    `gorm:"type:varchar(100);not null;column:rent_payment_owner_user_id" json:"rent_payment_owner_user_id"`
	RentPaymentTenantID    uuid.UUID `gorm:"type:uuid;not null;index:idx_rent_payments_tenant;column:rent_payment_tenant_id" json:"rent_payment_tenant_id"`
	RentPaymentBlockID     uuid.UUID `gorm:"type:uuid;not null;index:idx_rent_payments_block;column:rent_payment_block_id" json:"rent_payment_block_id"`

	RentPaymentAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;column:rent_payment_amount" json:"rent_payment_amount"`
	RentPaymentMonth       string          `gorm:"type:varchar(12);not null;column:rent_payment_month" json:"rent_payment_month"` // "October"
	RentPaymentMonthNumber int             `gorm:"not null;column:rent_payment_month_number" json:"rent_payment_month_number"`
	RentPaymentYear        int             `gorm:"not null;column:rent_payment_year" json:"rent_payment_year"`

	RentPaymentDueDate       dbtime.Date    `gorm:"not null;index:idx_rent_payments_due;column:rent_payment_due_date" json:"rent_payment_due_date"`
	RentPaymentPaidDate      *time.Time     `gorm:"column:rent_payment_paid_date" json:"rent_payment_paid_date,omitempty"`
	RentPaymentStatus        PaymentStatus  `gorm:"type:varchar(20);not null;column:rent_payment_status" json:"rent_payment_status"`
	RentPaymentPaymentMethod *PaymentMethod `gorm:"type:varchar(20);column:rent_payment_payment_method" json:"rent_payment_payment_method,omitempty"`
	RentPaymentType          PaymentType    `gorm:"type:varchar(20);not null;column:rent_payment_type" json:"rent_payment_type"`
	RentPaymentLabel         *string        `gorm:"type:varchar(150);column:rent_payment_label" json:"rent_payment_label,omitempty"`

	RentPaymentChangeLog   datatypes.JSONSlice[ChangeLogEntry] `gorm:"column:rent_payment_change_log" json:"rent_payment_change_log"`
	RentPaymentCancelledAt *time.Time                          `gorm:"index;column:rent_payment_cancelled_at" json:"rent_payment_cancelled_at,omitempty"`

	// latest online checkout; every issued order lives in rent_payment_orders
	RentPaymentGatewayOrderID   *string `gorm:"type:varchar(80);uniqueIndex:uq_rent_payments_order;column:rent_payment_gateway_order_id" json:"rent_payment_gateway_order_id,omitempty"`
	RentPaymentGatewayReference *string `gorm:"type:varchar(120);column:rent_payment_gateway_reference" json:"rent_payment_gateway_reference,omitempty"`
	RentPaymentCheckoutURL      *string `gorm:"type:text;column:rent_payment_checkout_url" json:"rent_payment_checkout_url,omitempty"`

	RentPaymentCreatedAt time.Time `gorm:"not null;column:rent_payment_created_at" json:"rent_payment_created_at"`
	RentPaymentUpdatedAt time.Time `gorm:"not null;column:rent_payment_updated_at" json:"rent_payment_updated_at"`
}

func (RentPaymentModel) TableName() string { return "rent_payments" }

func (m *RentPaymentModel) BeforeCreate(tx *gorm.DB) error {
	if m.RentPaymentID == uuid.Nil {
		m.RentPaymentID = uuid.New()
	}
	if m.RentPaymentStatus == "" {
		m.RentPaymentStatus = StatusPending
	}
	if m.RentPaymentChangeLog == nil {
		m.RentPaymentChangeLog = datatypes.JSONSlice[ChangeLogEntry]{}
	}
	now := time.Now()
	if m.RentPaymentCreatedAt.IsZero() {
		m.RentPaymentCreatedAt = now
	}
	m.RentPaymentUpdatedAt = now
	return nil
}

func (m *RentPaymentModel) BeforeUpdate(tx *gorm.DB) error {
	m.RentPaymentUpdatedAt = time.Now()
	return nil
}

func (m *RentPaymentModel) IsCancelled() bool { return m.RentPaymentCancelledAt != nil }
