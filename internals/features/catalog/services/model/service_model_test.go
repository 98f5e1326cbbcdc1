// file: internals/features/catalog/services/model/service_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptrS(s string) *string       { return &s }
func ptrF(f float64) *float64     { return &f }
func ptrT(t time.Time) *time.Time { return &t }

func TestDiscountActiveAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	svc := Service{
		ServicePrice:             200,
		ServiceHasDiscount:       true,
		ServiceDiscountType:      ptrS(DiscountTypePercentage),
		ServiceDiscountValue:     ptrF(10),
		ServiceDiscountStartDate: ptrT(now.AddDate(0, 0, -5)),
		ServiceDiscountEndDate:   ptrT(now.AddDate(0, 0, 5)),
	}
	assert.True(t, svc.DiscountActiveAt(now))

	// Belum mulai
	assert.False(t, svc.DiscountActiveAt(now.AddDate(0, 0, -10)))
	// Sudah lewat
	assert.False(t, svc.DiscountActiveAt(now.AddDate(0, 0, 10)))

	// Flag mati = tidak aktif walau window cocok
	svc.ServiceHasDiscount = false
	assert.False(t, svc.DiscountActiveAt(now))
}

func TestEffectivePriceAt(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	svc := Service{
		ServicePrice:         200,
		ServiceHasDiscount:   true,
		ServiceDiscountType:  ptrS(DiscountTypePercentage),
		ServiceDiscountValue: ptrF(25),
	}
	assert.Equal(t, 150.0, svc.EffectivePriceAt(now))

	svc.ServiceDiscountType = ptrS(DiscountTypeFixed)
	svc.ServiceDiscountValue = ptrF(30)
	assert.Equal(t, 170.0, svc.EffectivePriceAt(now))

	// Diskon fixed lebih besar dari harga: clamp ke 0, tidak negatif
	svc.ServiceDiscountValue = ptrF(500)
	assert.Equal(t, 0.0, svc.EffectivePriceAt(now))

	// Tanpa diskon aktif: harga penuh
	svc.ServiceHasDiscount = false
	assert.Equal(t, 200.0, svc.EffectivePriceAt(now))
}

func TestClearDiscount(t *testing.T) {
	now := time.Now()
	svc := Service{
		ServiceHasDiscount:     true,
		ServiceDiscountType:    ptrS(DiscountTypeFixed),
		ServiceDiscountValue:   ptrF(10),
		ServiceDiscountEndDate: ptrT(now),
	}
	svc.ClearDiscount()
	assert.False(t, svc.ServiceHasDiscount)
	assert.Nil(t, svc.ServiceDiscountType)
	assert.Nil(t, svc.ServiceDiscountValue)
	assert.Nil(t, svc.ServiceDiscountStartDate)
	assert.Nil(t, svc.ServiceDiscountEndDate)
}
