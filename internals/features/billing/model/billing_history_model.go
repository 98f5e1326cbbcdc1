// file: internals/features/billing/model/billing_history_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	BillingStatusPending   = "pending"
	BillingStatusCompleted = "completed"
	BillingStatusFailed    = "failed"
	BillingStatusRefunded  = "refunded"
)

/* ===================== Model ===================== */

// BillingHistory = audit trail pembayaran. Satu row per attempt:
// dibuat pending SEBELUM charge, lalu ditandai completed/failed sesuai hasil.
type BillingHistory struct {
	BillingID uuid.UUID `gorm:"column:billing_id;type:uuid;default:gen_random_uuid();primaryKey" json:"billing_id"`

	BillingUserID    *uuid.UUID `gorm:"column:billing_user_id;type:uuid;index" json:"billing_user_id,omitempty"`
	BillingUserEmail string     `gorm:"column:billing_user_email;type:varchar(160);not null;index" json:"billing_user_email"`

	BillingAssignServiceID uuid.UUID `gorm:"column:billing_assign_service_id;type:uuid;not null;index" json:"billing_assign_service_id"`

	// Partial unique: maksimal satu attempt hidup (non-failed) per renewal.
	// Ini yang menahan double-charge saat dua request balapan; attempt failed
	// keluar dari index supaya retry tetap bisa.
	BillingRenewalID uuid.UUID `gorm:"column:billing_renewal_id;type:uuid;not null;uniqueIndex:uq_billing_histories_active_attempt,where:billing_status <> 'failed' AND billing_deleted_at IS NULL" json:"billing_renewal_id"`

	// Snapshot untuk tampilan riwayat yang stabil
	BillingInvoiceID   string `gorm:"column:billing_invoice_id;type:varchar(32);not null;index" json:"billing_invoice_id"`
	BillingServiceName string `gorm:"column:billing_service_name;type:varchar(160);not null" json:"billing_service_name"`

	BillingAmount   float64 `gorm:"column:billing_amount;type:numeric(12,2);not null" json:"billing_amount"`
	BillingCurrency string  `gorm:"column:billing_currency;type:varchar(8);not null;default:'usd'" json:"billing_currency"`

	BillingStatus string `gorm:"column:billing_status;type:varchar(16);not null;default:'pending';index" json:"billing_status"`

	// Deskriptor metode bayar (mis. "card") — bukan nomor kartu
	BillingPaymentMethod   *string `gorm:"column:billing_payment_method;type:varchar(40)" json:"billing_payment_method,omitempty"`
	BillingPaymentIntentID *string `gorm:"column:billing_payment_intent_id;type:varchar(80);index" json:"billing_payment_intent_id,omitempty"`

	BillingPaymentDate   *time.Time `gorm:"column:billing_payment_date" json:"billing_payment_date,omitempty"`
	BillingFailureReason *string    `gorm:"column:billing_failure_reason;type:text" json:"billing_failure_reason,omitempty"`

	BillingMeta datatypes.JSONMap `gorm:"column:billing_meta;type:jsonb" json:"billing_meta,omitempty"`

	CreatedAt time.Time      `gorm:"column:billing_created_at;autoCreateTime" json:"billing_created_at"`
	UpdatedAt time.Time      `gorm:"column:billing_updated_at;autoUpdateTime" json:"billing_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:billing_deleted_at;index" json:"billing_deleted_at,omitempty"`
}

func (BillingHistory) TableName() string { return "billing_histories" }
