package gateway

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestVerifySignature(t *testing.T) {
	n := Notification{OrderID: "RENT-1", StatusCode: "200", GrossAmount: "6500.00"}
	n.SignatureKey = Signature(n, "SB-Mid-server-key")

	assert.True(t, VerifySignature(n, "SB-Mid-server-key"))
	assert.False(t, VerifySignature(n, "other-key"))

	tampered := n
	tampered.GrossAmount = "1.00"
	assert.False(t, VerifySignature(tampered, "SB-Mid-server-key"))

	n.SignatureKey = ""
	assert.False(t, VerifySignature(n, "SB-Mid-server-key"))
}

func TestSettled(t *testing.T) {
	assert.True(t, Settled(Notification{TransactionStatus: "settlement"}))
	assert.True(t, Settled(Notification{TransactionStatus: "capture", FraudStatus: "accept"}))
	assert.False(t, Settled(Notification{TransactionStatus: "capture", FraudStatus: "challenge"}))
	assert.False(t, Settled(Notification{TransactionStatus: "pending"}))
	assert.False(t, Settled(Notification{TransactionStatus: "expire"}))
}

func TestNewMidtransWithoutKey(t *testing.T) {
	assert.Nil(t, NewMidtrans("  ", false))
	m := NewMidtrans("SB-Mid-server-key", false)
	if assert.NotNil(t, m) {
		assert.Equal(t, "SB-Mid-server-key", m.ServerKey())
	}
}

func TestSplitName(t *testing.T) {
	f, l := splitName("Anita Rao Kumar")
	assert.Equal(t, "Anita", f)
	assert.Equal(t, "Rao Kumar", l)
	f, _ = splitName("")
	assert.Equal(t, "Tenant", f)
}

func TestTruncateKeepsWholeRunes(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 50))
	assert.Equal(t, "abc", truncate("abcdef", 3))

	name := strings.Repeat("é", 60)
	got := truncate(name, 50)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 50, utf8.RuneCountInString(got))

	assert.Equal(t, "किराया", truncate("किराया अक्टूबर", 6))
}
