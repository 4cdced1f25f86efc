// file: internals/features/finance/rent_payments/gateway/midtrans.go
package gateway

import (
	"context"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strings"
	"unicode/utf8"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

var ErrNotConfigured = errors.New("payment gateway is not configured")

type Customer struct {
	Name  string
	Email string
	Phone string
}

type CheckoutRequest struct {
	OrderID  string
	Amount   int64
	ItemName string
	Customer Customer
}

type CheckoutResult struct {
	Token       string
	RedirectURL string
}

// Gateway creates hosted checkout sessions. Tests swap in a fake.
type Gateway interface {
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
	ServerKey() string
}

/* =========================================================
   Midtrans Snap
========================================================= */

type Midtrans struct {
	client    snap.Client
	serverKey string
}

// NewMidtrans returns nil for an empty key so callers can answer 503.
func NewMidtrans(serverKey string, useProduction bool) *Midtrans {
	serverKey = strings.TrimSpace(serverKey)
	if serverKey == "" {
		return nil
	}
	m := &Midtrans{serverKey: serverKey}
	if useProduction {
		m.client.New(serverKey, midtrans.Production)
	} else {
		m.client.New(serverKey, midtrans.Sandbox)
	}
	return m
}

func (m *Midtrans) ServerKey() string { return m.serverKey }

func (m *Midtrans) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	if req.Amount <= 0 {
		return nil, errors.New("checkout amount must be positive")
	}
	first, last := splitName(req.Customer.Name)

	sreq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderID,
			GrossAmt: req.Amount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: req.Customer.Email,
			Phone: req.Customer.Phone,
		},
		Items: &[]midtrans.ItemDetails{{
			ID:    req.OrderID,
			Price: req.Amount,
			Qty:   1,
			Name:  truncate(req.ItemName, 50),
		}},
	}

	resp, merr := m.client.CreateTransaction(sreq)
	if merr != nil {
		return nil, merr
	}
	return &CheckoutResult{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}

/* =========================================================
   Notifications
========================================================= */

type Notification struct {
	TransactionTime   string `json:"transaction_time"`
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, refund, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	FraudStatus       string `json:"fraud_status"` // accept / challenge / deny
	TransactionID     string `json:"transaction_id"`
}

// Signature is SHA512(order_id + status_code + gross_amount + server_key), hex.
func Signature(n Notification, serverKey string) string {
	h := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(h[:])
}

func VerifySignature(n Notification, serverKey string) bool {
	want := strings.ToLower(strings.TrimSpace(n.SignatureKey))
	if want == "" || serverKey == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(Signature(n, serverKey))) == 1
}

// Settled: settlement, or capture with fraud_status accept.
func Settled(n Notification) bool {
	switch strings.ToLower(n.TransactionStatus) {
	case "settlement":
		return true
	case "capture":
		return strings.EqualFold(n.FraudStatus, "accept")
	}
	return false
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "Tenant", ""
	case 1:
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// truncate keeps at most n runes.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n])
}
