// file: internals/features/billing/service/stripe_gateway_test.go
package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v82"
)

func TestResolveIntentStatus(t *testing.T) {
	res := ResolveIntentStatus("pi_123", stripe.PaymentIntentStatusSucceeded)
	assert.Equal(t, ChargeSucceeded, res.Outcome)
	assert.Equal(t, "pi_123", res.PaymentIntentID)
	assert.Empty(t, res.FailureReason)

	// Flow charge-once tanpa redirect: requires_action = ditolak
	res = ResolveIntentStatus("pi_456", stripe.PaymentIntentStatusRequiresAction)
	assert.Equal(t, ChargeDeclined, res.Outcome)
	assert.NotEmpty(t, res.FailureReason)

	res = ResolveIntentStatus("pi_789", stripe.PaymentIntentStatusRequiresPaymentMethod)
	assert.Equal(t, ChargeDeclined, res.Outcome)

	// Processing = belum pasti, jangan tandai sukses ataupun ditolak final
	res = ResolveIntentStatus("pi_000", stripe.PaymentIntentStatusProcessing)
	assert.Equal(t, ChargeErrored, res.Outcome)
}

func TestToMinorUnit(t *testing.T) {
	assert.Equal(t, int64(15000), ToMinorUnit(150))
	assert.Equal(t, int64(12345), ToMinorUnit(123.45))

	// Dibulatkan, bukan dipotong
	assert.Equal(t, int64(15000), ToMinorUnit(149.999))
	assert.Equal(t, int64(1), ToMinorUnit(0.005))
}
