package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */
/* Selaras dengan ENUM di PostgreSQL:
   assign_accept_status, assign_lifecycle_status, billing_cycle
*/

const (
	AssignAcceptPending  = "pending"
	AssignAcceptAccepted = "accepted"
	AssignAcceptRejected = "rejected"
)

const (
	AssignStatusActive    = "active"
	AssignStatusExpired   = "expired"
	AssignStatusCancelled = "cancelled"
)

const (
	BillingCycleMonthly = "monthly"
	BillingCycleAnnual  = "annual"
	BillingCycleNone    = "none"
)

/* ===================== Model ===================== */

// AssignService = satu kontrak client-service. Aggregate root untuk
// renewal line item: SEMUA mutasi renewal lewat operasi update assignment
// (single-writer discipline).
type AssignService struct {
	AssignServiceID uuid.UUID `gorm:"column:assign_service_id;type:uuid;default:gen_random_uuid();primaryKey" json:"assign_service_id"`

	AssignServiceClientID  uuid.UUID `gorm:"column:assign_service_client_id;type:uuid;not null;index" json:"assign_service_client_id"`
	AssignServiceServiceID uuid.UUID `gorm:"column:assign_service_service_id;type:uuid;not null;index" json:"assign_service_service_id"`

	// Dibuat sekali saat create, format INV-<epoch-ms>
	AssignServiceInvoiceID string `gorm:"column:assign_service_invoice_id;type:varchar(32);not null;uniqueIndex" json:"assign_service_invoice_id"`

	// Harga kontrak: cap untuk total alokasi renewal; immutable di flow normal
	AssignServicePrice float64 `gorm:"column:assign_service_price;type:numeric(12,2);not null;check:assign_service_price >= 0" json:"assign_service_price"`

	AssignServiceCycle      string `gorm:"column:assign_service_cycle;type:varchar(16);not null;default:'none'" json:"assign_service_cycle"`
	AssignServiceIsAccepted string `gorm:"column:assign_service_is_accepted;type:varchar(16);not null;default:'pending'" json:"assign_service_is_accepted"`
	AssignServiceStatus     string `gorm:"column:assign_service_status;type:varchar(16);not null;default:'active'" json:"assign_service_status"`

	AssignServiceStartDate time.Time  `gorm:"column:assign_service_start_date;not null" json:"assign_service_start_date"`
	AssignServiceEndDate   *time.Time `gorm:"column:assign_service_end_date" json:"assign_service_end_date,omitempty"`

	AssignServiceNote     *string `gorm:"column:assign_service_note" json:"assign_service_note,omitempty"`
	AssignServiceAssignBy *string `gorm:"column:assign_service_assign_by;type:varchar(160)" json:"assign_service_assign_by,omitempty"`

	// Snapshot denormalisasi (diambil saat create, untuk tampilan historis stabil)
	AssignServiceClientName  string `gorm:"column:assign_service_client_name;type:varchar(160);not null" json:"assign_service_client_name"`
	AssignServiceClientEmail string `gorm:"column:assign_service_client_email;type:varchar(160);not null;index" json:"assign_service_client_email"`
	AssignServiceServiceName string `gorm:"column:assign_service_service_name;type:varchar(160);not null" json:"assign_service_service_name"`

	Renewals []AssignServiceRenewal `gorm:"foreignKey:RenewalAssignServiceID;references:AssignServiceID" json:"renewals,omitempty"`

	CreatedAt time.Time      `gorm:"column:assign_service_created_at;autoCreateTime" json:"assign_service_created_at"`
	UpdatedAt time.Time      `gorm:"column:assign_service_updated_at;autoUpdateTime" json:"assign_service_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:assign_service_deleted_at;index" json:"assign_service_deleted_at,omitempty"`
}

func (AssignService) TableName() string { return "assign_services" }

// NewInvoiceID membuat invoice id baru, format INV-<epoch-ms>.
func NewInvoiceID() string {
	return fmt.Sprintf("INV-%d", time.Now().UnixMilli())
}

func (a *AssignService) IsPending() bool {
	return a.AssignServiceIsAccepted == AssignAcceptPending
}
