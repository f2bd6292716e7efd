package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signPayload(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	const secret = "test_secret_key"
	valid := signPayload(secret, "order_123", "pay_456")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"valid signature", "order_123", "pay_456", valid, true},
		{"tampered order id", "order_124", "pay_456", valid, false},
		{"tampered payment id", "order_123", "pay_457", valid, false},
		{"garbage signature", "order_123", "pay_456", "deadbeef", false},
		{"empty signature", "order_123", "pay_456", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := verifySignatureWith(secret, tt.orderID, tt.paymentID, tt.signature)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifySignatureWrongSecret(t *testing.T) {
	valid := signPayload("test_secret_key", "order_123", "pay_456")
	assert.False(t, verifySignatureWith("another_secret", "order_123", "pay_456", valid))
}
