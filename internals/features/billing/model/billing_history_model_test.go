// file: internals/features/billing/model/billing_history_model_test.go
package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Double-charge ditahan di level store: satu attempt hidup per renewal.
// Test ini menjaga deklarasi partial unique index-nya supaya tidak hilang
// tanpa sengaja waktu model diubah.
func TestBillingRenewalID_ActiveAttemptUnique(t *testing.T) {
	f, ok := reflect.TypeOf(BillingHistory{}).FieldByName("BillingRenewalID")
	require.True(t, ok)

	tag := f.Tag.Get("gorm")
	assert.Contains(t, tag, "uniqueIndex:uq_billing_histories_active_attempt")
	// Attempt failed harus keluar dari index supaya retry tetap bisa
	assert.Contains(t, tag, "billing_status <> 'failed'")
	assert.Contains(t, tag, "billing_deleted_at IS NULL")
}
