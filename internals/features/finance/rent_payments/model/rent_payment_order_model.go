// file: internals/features/finance/rent_payments/model/rent_payment_order_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderOpen     OrderStatus = "open"
	OrderSettled  OrderStatus = "settled"
	OrderMismatch OrderStatus = "amount_mismatch"
)

// RentPaymentOrderModel is one gateway order issued for a payment. A payment may be
// checked out several times; every order stays resolvable until the gateway settles it.
type RentPaymentOrderModel struct {
	RentPaymentOrderID          string      `gorm:"type:varchar(80);primaryKey;column:rent_payment_order_id" json:"rent_payment_order_id"`
	RentPaymentOrderPaymentID   uuid.UUID   `gorm:"type:uuid;not null;index:idx_rent_payment_orders_payment;column:rent_payment_order_payment_id" json:"rent_payment_order_payment_id"`
	RentPaymentOrderOwnerUserID string      `gorm:"type:varchar(100);not null;column:rent_payment_order_owner_user_id" json:"rent_payment_order_owner_user_id"`
	RentPaymentOrderGrossAmount int64       `gorm:"not null;column:rent_payment_order_gross_amount" json:"rent_payment_order_gross_amount"`
	RentPaymentOrderStatus      OrderStatus `gorm:"type:varchar(20);not null;column:rent_payment_order_status" json:"rent_payment_order_status"`
	RentPaymentOrderCheckoutURL *string     `gorm:"type:text;column:rent_payment_order_checkout_url" json:"rent_payment_order_checkout_url,omitempty"`

	RentPaymentOrderCreatedAt time.Time `gorm:"not null;column:rent_payment_order_created_at" json:"rent_payment_order_created_at"`
	RentPaymentOrderUpdatedAt time.Time `gorm:"not null;column:rent_payment_order_updated_at" json:"rent_payment_order_updated_at"`
}

func (RentPaymentOrderModel) TableName() string { return "rent_payment_orders" }

func (m *RentPaymentOrderModel) BeforeCreate(tx *gorm.DB) error {
	if m.RentPaymentOrderStatus == "" {
		m.RentPaymentOrderStatus = OrderOpen
	}
	now := time.Now()
	if m.RentPaymentOrderCreatedAt.IsZero() {
		m.RentPaymentOrderCreatedAt = now
	}
	m.RentPaymentOrderUpdatedAt = now
	return nil
}

func (m *RentPaymentOrderModel) BeforeUpdate(tx *gorm.DB) error {
	m.RentPaymentOrderUpdatedAt = time.Now()
	return nil
}
