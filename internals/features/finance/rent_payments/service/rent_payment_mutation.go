// file: internals/features/finance/rent_payments/service/rent_payment_mutation.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostelku_backend/internals/features/finance/rent_payments/gateway"
	"hostelku_backend/internals/features/finance/rent_payments/model"
	tenantModel "hostelku_backend/internals/features/tenants/tenants/model"
	"hostelku_backend/internals/helpers/dbtime"
)

/* =========================================================
   Edit
========================================================= */

type EditInput struct {
	Amount        *decimal.Decimal
	Status        *model.PaymentStatus
	PaymentMethod *model.PaymentMethod
	PaidDate      *time.Time
	Label         *string
	Message       string
	Actor         string
}

func (in *EditInput) validate() error {
	if strings.TrimSpace(in.Message) == "" {
		return ErrMessageRequired
	}
	if in.Amount != nil && !in.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if in.Status != nil && !in.Status.Valid() {
		return ErrInvalidStatus
	}
	if in.PaymentMethod != nil && !in.PaymentMethod.Valid() {
		return ErrInvalidMethod
	}
	return nil
}

// Edit applies owner corrections and appends one edit entry holding only the
// fields that actually changed. Moving into paid stamps the paid date; leaving paid clears it.
func (s *Service) Edit(ctx context.Context, ownerID string, id uuid.UUID, in EditInput) (*model.RentPaymentModel, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	now := s.now()

	var out model.RentPaymentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockOwned(tx, ownerID, id)
		if err != nil {
			return err
		}
		if p.IsCancelled() {
			return ErrCancelled
		}

		changes := map[string]model.FieldChange{}

		if in.Amount != nil && !in.Amount.Equal(p.RentPaymentAmount) {
			changes["amount"] = model.FieldChange{From: p.RentPaymentAmount.StringFixed(2), To: in.Amount.StringFixed(2)}
			p.RentPaymentAmount = *in.Amount
		}

		if in.PaymentMethod != nil && (p.RentPaymentPaymentMethod == nil || *p.RentPaymentPaymentMethod != *in.PaymentMethod) {
			changes["paymentMethod"] = model.FieldChange{From: methodValue(p.RentPaymentPaymentMethod), To: string(*in.PaymentMethod)}
			m := *in.PaymentMethod
			p.RentPaymentPaymentMethod = &m
		}

		if in.Label != nil {
			label := strings.TrimSpace(*in.Label)
			if p.RentPaymentType != model.TypeAdditional {
				return ErrLabelNotAllowed
			}
			if label == "" {
				return ErrLabelRequired
			}
			if p.RentPaymentLabel == nil || *p.RentPaymentLabel != label {
				changes["label"] = model.FieldChange{From: strValue(p.RentPaymentLabel), To: label}
				p.RentPaymentLabel = &label
			}
		}

		oldStatus := p.RentPaymentStatus
		newStatus := oldStatus
		if in.Status != nil {
			newStatus = *in.Status
		}
		if newStatus != oldStatus {
			changes["status"] = model.FieldChange{From: string(oldStatus), To: string(newStatus)}
			p.RentPaymentStatus = newStatus
		}

		paidDate := p.RentPaymentPaidDate
		switch {
		case in.PaidDate != nil:
			if newStatus != model.StatusPaid {
				return ErrInvalidPaidDate
			}
			v := *in.PaidDate
			paidDate = &v
		case newStatus == model.StatusPaid && oldStatus != model.StatusPaid:
			v := now
			paidDate = &v
		case newStatus != model.StatusPaid && oldStatus == model.StatusPaid:
			paidDate = nil
		}
		if !sameTime(paidDate, p.RentPaymentPaidDate) {
			changes["paidDate"] = model.FieldChange{From: timeValue(p.RentPaymentPaidDate), To: timeValue(paidDate)}
			p.RentPaymentPaidDate = paidDate
		}

		if len(changes) == 0 {
			return ErrNoChanges
		}

		p.RentPaymentChangeLog = append(p.RentPaymentChangeLog, model.ChangeLogEntry{
			Type:      model.ChangeEdit,
			Message:   strings.TrimSpace(in.Message),
			Changes:   changes,
			ChangedBy: in.Actor,
			ChangedAt: now,
		})
		if err := tx.Save(p).Error; err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================================================
   Cancel
========================================================= */

// Cancel marks the payment cancelled (terminal). The row stays for history.
func (s *Service) Cancel(ctx context.Context, ownerID string, id uuid.UUID, message, actor string) (*model.RentPaymentModel, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageRequired
	}
	now := s.now()

	var out model.RentPaymentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		p, err := lockOwned(tx, ownerID, id)
		if err != nil {
			return err
		}
		if p.IsCancelled() {
			return ErrCancelled
		}
		ts := now
		p.RentPaymentCancelledAt = &ts
		p.RentPaymentChangeLog = append(p.RentPaymentChangeLog, model.ChangeLogEntry{
			Type:    model.ChangeCancel,
			Message: message,
			Changes: map[string]model.FieldChange{
				"cancelled": {From: false, To: true},
			},
			ChangedBy: actor,
			ChangedAt: now,
		})
		if err := tx.Save(p).Error; err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		out = *p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

/* =========================================================
   Additional charges
========================================================= */

type AdditionalInput struct {
	TenantID      uuid.UUID
	Amount        decimal.Decimal
	Label         string
	DueDate       *dbtime.Date
	PaymentMethod *model.PaymentMethod
}

func (s *Service) CreateAdditional(ctx context.Context, ownerID string, in AdditionalInput) (*model.RentPaymentModel, error) {
	label := strings.TrimSpace(in.Label)
	if label == "" {
		return nil, ErrLabelRequired
	}
	if !in.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	if in.PaymentMethod != nil && !in.PaymentMethod.Valid() {
		return nil, ErrInvalidMethod
	}

	var t tenantModel.TenantModel
	err := s.DB.WithContext(ctx).
		Where("tenant_id = ? AND tenant_owner_user_id = ?", in.TenantID, ownerID).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTenantNotFound
	}
	if err != nil {
		return nil, err
	}

	due := dbtime.DateOf(s.now())
	if in.DueDate != nil && !in.DueDate.IsZero() {
		due = *in.DueDate
	}

	row := model.RentPaymentModel{
		RentPaymentOwnerUserID:   ownerID,
		RentPaymentTenantID:      t.TenantID,
		RentPaymentBlockID:       t.TenantBlockID,
		RentPaymentAmount:        in.Amount,
		RentPaymentMonth:         due.Month().String(),
		RentPaymentMonthNumber:   int(due.Month()),
		RentPaymentYear:          due.Year(),
		RentPaymentDueDate:       due,
		RentPaymentStatus:        model.StatusPending,
		RentPaymentPaymentMethod: in.PaymentMethod,
		RentPaymentType:          model.TypeAdditional,
		RentPaymentLabel:         &label,
	}
	if err := s.DB.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create additional charge: %w", err)
	}
	return &row, nil
}

/* =========================================================
   Online checkout
========================================================= */

type CheckoutResult struct {
	PaymentID   uuid.UUID `json:"paymentId"`
	OrderID     string    `json:"orderId"`
	Token       string    `json:"token"`
	RedirectURL string    `json:"redirectUrl"`
}

// Checkout opens a gateway session for an unpaid payment and remembers the order id
// so the notification can find the row again.
func (s *Service) Checkout(ctx context.Context, ownerID string, id uuid.UUID, gw gateway.Gateway) (*CheckoutResult, error) {
	if gw == nil {
		return nil, gateway.ErrNotConfigured
	}
	p, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if p.IsCancelled() {
		return nil, ErrCancelled
	}
	if p.RentPaymentStatus == model.StatusPaid {
		return nil, ErrAlreadyPaid
	}

	var t tenantModel.TenantModel
	if err := s.DB.WithContext(ctx).Where("tenant_id = ?", p.RentPaymentTenantID).First(&t).Error; err != nil {
		return nil, fmt.Errorf("load tenant: %w", err)
	}

	orderID := newOrderID(s.now())
	item := fmt.Sprintf("Rent %s %d", p.RentPaymentMonth, p.RentPaymentYear)
	if p.RentPaymentLabel != nil {
		item = *p.RentPaymentLabel
	}
	gross := grossAmount(p.RentPaymentAmount).IntPart()
	res, err := gw.CreateCheckout(ctx, gateway.CheckoutRequest{
		OrderID:  orderID,
		Amount:   gross,
		ItemName: item,
		Customer: gateway.Customer{Name: t.TenantName, Email: strValue(t.TenantEmail), Phone: t.TenantPhone},
	})
	if err != nil {
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	url := res.RedirectURL
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		order := model.RentPaymentOrderModel{
			RentPaymentOrderID:          orderID,
			RentPaymentOrderPaymentID:   p.RentPaymentID,
			RentPaymentOrderOwnerUserID: p.RentPaymentOwnerUserID,
			RentPaymentOrderGrossAmount: gross,
			RentPaymentOrderCheckoutURL: &url,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		// the payment row only points at the latest order
		return tx.Model(p).Updates(map[string]any{
			"rent_payment_gateway_order_id": orderID,
			"rent_payment_checkout_url":     url,
			"rent_payment_updated_at":       time.Now(),
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	return &CheckoutResult{PaymentID: p.RentPaymentID, OrderID: orderID, Token: res.Token, RedirectURL: url}, nil
}

type NotificationOutcome string

const (
	OutcomePaid     NotificationOutcome = "paid"
	OutcomeIgnored  NotificationOutcome = "ignored"
	OutcomeNoChange NotificationOutcome = "unchanged"
	OutcomeMismatch NotificationOutcome = "amount_mismatch"
)

// ApplyNotification marks the payment behind a verified gateway notification as paid.
// Any order ever issued for the payment resolves to it. A settled gross amount that
// differs from the payment's current amount is logged and leaves the payment unpaid.
// Unknown orders and non-settled statuses are acknowledged without changes.
func (s *Service) ApplyNotification(ctx context.Context, n gateway.Notification) (NotificationOutcome, error) {
	if !gateway.Settled(n) {
		return OutcomeNoChange, nil
	}
	now := s.now()

	outcome := OutcomeNoChange
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order model.RentPaymentOrderModel
		err := tx.Where("rent_payment_order_id = ?", n.OrderID).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			outcome = OutcomeIgnored
			return nil
		}
		if err != nil {
			return err
		}
		if order.RentPaymentOrderStatus != model.OrderOpen {
			return nil
		}

		var p model.RentPaymentModel
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("rent_payment_id = ?", order.RentPaymentOrderPaymentID).
			First(&p).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			outcome = OutcomeIgnored
			return nil
		}
		if err != nil {
			return err
		}
		if p.IsCancelled() || p.RentPaymentStatus == model.StatusPaid {
			return nil
		}

		due := grossAmount(p.RentPaymentAmount)
		got, perr := decimal.NewFromString(strings.TrimSpace(n.GrossAmount))
		if perr != nil || !got.Equal(due) {
			p.RentPaymentChangeLog = append(p.RentPaymentChangeLog, model.ChangeLogEntry{
				Type:      model.ChangeGateway,
				Message:   fmt.Sprintf("%s via %s (order %s) not applied: paid %q, due %s", n.TransactionStatus, n.PaymentType, n.OrderID, n.GrossAmount, due.String()),
				ChangedBy: "midtrans",
				ChangedAt: now,
			})
			if err := tx.Save(&p).Error; err != nil {
				return err
			}
			order.RentPaymentOrderStatus = model.OrderMismatch
			if err := tx.Save(&order).Error; err != nil {
				return err
			}
			outcome = OutcomeMismatch
			return nil
		}

		method := model.MethodOnline
		paid := now
		changes := map[string]model.FieldChange{
			"status":   {From: string(p.RentPaymentStatus), To: string(model.StatusPaid)},
			"paidDate": {From: timeValue(p.RentPaymentPaidDate), To: timeValue(&paid)},
		}
		if p.RentPaymentPaymentMethod == nil || *p.RentPaymentPaymentMethod != method {
			changes["paymentMethod"] = model.FieldChange{From: methodValue(p.RentPaymentPaymentMethod), To: string(method)}
		}

		p.RentPaymentStatus = model.StatusPaid
		p.RentPaymentPaidDate = &paid
		p.RentPaymentPaymentMethod = &method
		if n.TransactionID != "" {
			ref := n.TransactionID
			p.RentPaymentGatewayReference = &ref
		}
		p.RentPaymentChangeLog = append(p.RentPaymentChangeLog, model.ChangeLogEntry{
			Type:      model.ChangeGateway,
			Message:   fmt.Sprintf("%s via %s (order %s)", n.TransactionStatus, n.PaymentType, n.OrderID),
			Changes:   changes,
			ChangedBy: "midtrans",
			ChangedAt: now,
		})
		if err := tx.Save(&p).Error; err != nil {
			return err
		}
		order.RentPaymentOrderStatus = model.OrderSettled
		if err := tx.Save(&order).Error; err != nil {
			return err
		}
		outcome = OutcomePaid
		return nil
	})
	if err != nil {
		return "", err
	}
	return outcome, nil
}

/* =========================================================
   Helpers
========================================================= */

func lockOwned(tx *gorm.DB, ownerID string, id uuid.UUID) (*model.RentPaymentModel, error) {
	var p model.RentPaymentModel
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("rent_payment_id = ? AND rent_payment_owner_user_id = ?", id, ownerID).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// grossAmount is what the gateway charges: whole units, rounded up.
func grossAmount(amount decimal.Decimal) decimal.Decimal { return amount.Ceil() }

func newOrderID(now time.Time) string {
	u := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "RENT-" + now.Format("20060102-150405") + "-" + strings.ToUpper(u[:8])
}

func methodValue(m *model.PaymentMethod) any {
	if m == nil {
		return nil
	}
	return string(*m)
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timeValue(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
