package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL: service_billing_type, discount_type */

const (
	ServiceBillingOneTime   = "one_time"
	ServiceBillingRecurring = "recurring"
)

const (
	DiscountTypePercentage = "percentage"
	DiscountTypeFixed      = "fixed"
)

/* ===================== Model ===================== */

type Service struct {
	ServiceID uuid.UUID `gorm:"column:service_id;type:uuid;default:gen_random_uuid();primaryKey" json:"service_id"`

	ServiceName        string  `gorm:"column:service_name;type:varchar(160);not null;uniqueIndex:uq_services_name,where:service_deleted_at IS NULL" json:"service_name"`
	ServiceDescription *string `gorm:"column:service_description" json:"service_description,omitempty"`

	ServicePrice       float64 `gorm:"column:service_price;type:numeric(12,2);not null;check:service_price >= 0" json:"service_price"`
	ServiceCurrency    string  `gorm:"column:service_currency;type:varchar(8);not null;default:USD" json:"service_currency"`
	ServiceBillingType string  `gorm:"column:service_billing_type;type:varchar(16);not null;default:'one_time'" json:"service_billing_type"`

	ServiceCategoryID   uuid.UUID `gorm:"column:service_category_id;type:uuid;not null;index" json:"service_category_id"`
	ServiceDurationDays int       `gorm:"column:service_duration_days;not null;default:0" json:"service_duration_days"`
	ServiceImageURL     *string   `gorm:"column:service_image_url" json:"service_image_url,omitempty"` // URL dari storage eksternal

	// Discount sub-record: hanya bermakna selama has_discount=true & masih dalam window
	ServiceHasDiscount       bool       `gorm:"column:service_has_discount;not null;default:false" json:"service_has_discount"`
	ServiceDiscountType      *string    `gorm:"column:service_discount_type;type:varchar(16)" json:"service_discount_type,omitempty"`
	ServiceDiscountValue     *float64   `gorm:"column:service_discount_value;type:numeric(12,2)" json:"service_discount_value,omitempty"`
	ServiceDiscountStartDate *time.Time `gorm:"column:service_discount_start_date" json:"service_discount_start_date,omitempty"`
	ServiceDiscountEndDate   *time.Time `gorm:"column:service_discount_end_date" json:"service_discount_end_date,omitempty"`

	CreatedAt time.Time      `gorm:"column:service_created_at;autoCreateTime" json:"service_created_at"`
	UpdatedAt time.Time      `gorm:"column:service_updated_at;autoUpdateTime" json:"service_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:service_deleted_at;index" json:"service_deleted_at,omitempty"`
}

func (Service) TableName() string { return "services" }

/* ===================== Helpers ===================== */

// DiscountActiveAt: diskon dianggap aktif hanya jika flag menyala dan
// `now` berada di dalam window diskon.
func (s *Service) DiscountActiveAt(now time.Time) bool {
	if !s.ServiceHasDiscount || s.ServiceDiscountValue == nil {
		return false
	}
	if s.ServiceDiscountStartDate != nil && now.Before(*s.ServiceDiscountStartDate) {
		return false
	}
	if s.ServiceDiscountEndDate != nil && now.After(*s.ServiceDiscountEndDate) {
		return false
	}
	return true
}

// EffectivePriceAt menghitung harga setelah diskon (kalau aktif).
func (s *Service) EffectivePriceAt(now time.Time) float64 {
	if !s.DiscountActiveAt(now) {
		return s.ServicePrice
	}
	price := s.ServicePrice
	switch {
	case s.ServiceDiscountType != nil && *s.ServiceDiscountType == DiscountTypePercentage:
		price = price - price*(*s.ServiceDiscountValue)/100
	case s.ServiceDiscountType != nil && *s.ServiceDiscountType == DiscountTypeFixed:
		price = price - *s.ServiceDiscountValue
	}
	if price < 0 {
		price = 0
	}
	return price
}

// ClearDiscount mengosongkan seluruh sub-field diskon (dipakai sweeper).
func (s *Service) ClearDiscount() {
	s.ServiceHasDiscount = false
	s.ServiceDiscountType = nil
	s.ServiceDiscountValue = nil
	s.ServiceDiscountStartDate = nil
	s.ServiceDiscountEndDate = nil
}
