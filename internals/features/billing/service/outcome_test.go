// file: internals/features/billing/service/outcome_test.go
package service

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	billingModel "layananku_backend/internals/features/billing/model"
)

// Satu attempt = satu row audit; status akhir dan flag haspaid harus
// selalu sejalan: haspaid cuma boleh naik saat status completed.
func TestResolveAttempt(t *testing.T) {
	reso := ResolveAttempt(ChargeSucceeded)
	assert.Equal(t, billingModel.BillingStatusCompleted, reso.BillingStatus)
	assert.True(t, reso.MarkPaid)
	assert.Equal(t, http.StatusOK, reso.HTTPStatus)

	reso = ResolveAttempt(ChargeDeclined)
	assert.Equal(t, billingModel.BillingStatusFailed, reso.BillingStatus)
	assert.False(t, reso.MarkPaid)
	assert.Equal(t, http.StatusBadRequest, reso.HTTPStatus)

	reso = ResolveAttempt(ChargeErrored)
	assert.Equal(t, billingModel.BillingStatusFailed, reso.BillingStatus)
	assert.False(t, reso.MarkPaid)
	assert.Equal(t, http.StatusBadGateway, reso.HTTPStatus)
}

// Alur gateway penuh dengan attempt palsu: outcome apapun selain
// succeeded tidak boleh menandai lunas.
func TestResolveAttempt_OnlySucceededMarksPaid(t *testing.T) {
	for _, out := range []ChargeOutcome{ChargeDeclined, ChargeErrored, ChargeOutcome("unknown")} {
		reso := ResolveAttempt(out)
		assert.False(t, reso.MarkPaid, "outcome %s tidak boleh menandai lunas", out)
		assert.Equal(t, billingModel.BillingStatusFailed, reso.BillingStatus)
	}
}
