// file: internals/features/assignments/dto/assign_service_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "layananku_backend/internals/features/assignments/model"
)

/* =========================================================
   REQUEST: Create (assign service ke client)
========================================================= */

type AssignServiceRequest struct {
	ClientID  uuid.UUID `json:"client_id" validate:"required"`
	ServiceID uuid.UUID `json:"service_catalog_id" validate:"required"`

	Price float64 `json:"price" validate:"required,gt=0"`
	Cycle string  `json:"cycle" validate:"required,oneof=monthly annual none"`

	Status    *string `json:"status" validate:"omitempty,oneof=active expired cancelled"`
	Note      *string `json:"note"`
	AssignBy  *string `json:"assign_by" validate:"omitempty,max=160"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`

	// false = admin isi invoice_id sendiri (wajib kalau auto dimatikan)
	AutoInvoice *bool   `json:"auto_invoice"`
	InvoiceID   *string `json:"invoice_id" validate:"omitempty,max=32"`
}

// ToModel membentuk AssignService baru; snapshot nama/email diisi controller
// setelah client & service diverifikasi ada.
func (r *AssignServiceRequest) ToModel() (*model.AssignService, error) {
	as := &model.AssignService{
		AssignServiceClientID:   r.ClientID,
		AssignServiceServiceID:  r.ServiceID,
		AssignServiceInvoiceID:  model.NewInvoiceID(),
		AssignServicePrice:      r.Price,
		AssignServiceCycle:      r.Cycle,
		AssignServiceIsAccepted: model.AssignAcceptPending, // selalu mulai pending
		AssignServiceStatus:     model.AssignStatusActive,
		AssignServiceStartDate:  time.Now(),
		AssignServiceNote:       r.Note,
		AssignServiceAssignBy:   r.AssignBy,
	}
	if r.Status != nil {
		as.AssignServiceStatus = *r.Status
	}
	if r.AutoInvoice != nil && !*r.AutoInvoice {
		if r.InvoiceID == nil || strings.TrimSpace(*r.InvoiceID) == "" {
			return nil, fiber.NewError(fiber.StatusBadRequest, "invoice_id wajib diisi kalau auto_invoice dimatikan")
		}
		as.AssignServiceInvoiceID = strings.TrimSpace(*r.InvoiceID)
	}
	if r.StartDate != nil && *r.StartDate != "" {
		t, err := parseDateYMD(*r.StartDate)
		if err != nil {
			return nil, err
		}
		as.AssignServiceStartDate = t
	}
	if r.EndDate != nil && *r.EndDate != "" {
		t, err := parseDateYMD(*r.EndDate)
		if err != nil {
			return nil, err
		}
		as.AssignServiceEndDate = &t
	}
	return as, nil
}

/* =========================================================
   REQUEST: Update (top-level patch + renewal add/edit)
   Field di-allow-list eksplisit — body lain diabaikan.
========================================================= */

type UpdateAssignServiceRequest struct {
	// Patch top-level (opsional)
	IsAccepted *string  `json:"isaccepted" validate:"omitempty,oneof=pending accepted rejected"`
	Price      *float64 `json:"price" validate:"omitempty,gt=0"`
	EndDate    *string  `json:"end_date" validate:"omitempty,datetime=2006-01-02"`

	// Renewal add/edit (opsional). renewal_id kosong = append, isi = edit in-place.
	RenewalDate    *string    `json:"renewal_date" validate:"omitempty,datetime=2006-01-02"`
	AddRenewalDate *string    `json:"add_renewal_date" validate:"omitempty,datetime=2006-01-02"` // alias lama
	RenewalLabel   *string    `json:"renewal_label" validate:"omitempty,max=160"`
	RenewalPrice   *float64   `json:"renewal_price" validate:"omitempty,gt=0"`
	RenewalID      *uuid.UUID `json:"renewal_id"`
}

// HasRenewalFields: true kalau request menyentuh renewal ledger.
func (r *UpdateAssignServiceRequest) HasRenewalFields() bool {
	return r.RenewalDate != nil || r.AddRenewalDate != nil ||
		r.RenewalLabel != nil || r.RenewalPrice != nil || r.RenewalID != nil
}

// RenewalDueDate memilih renewal_date, fallback ke alias add_renewal_date.
func (r *UpdateAssignServiceRequest) RenewalDueDate() (*time.Time, error) {
	raw := r.RenewalDate
	if raw == nil {
		raw = r.AddRenewalDate
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := parseDateYMD(*raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ValidateRenewalFields: add/edit wajib membawa label, tanggal, dan harga.
func (r *UpdateAssignServiceRequest) ValidateRenewalFields() error {
	if !r.HasRenewalFields() {
		return nil
	}
	if r.RenewalLabel == nil || strings.TrimSpace(*r.RenewalLabel) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "renewal_label wajib diisi")
	}
	if r.RenewalPrice == nil {
		return fiber.NewError(fiber.StatusBadRequest, "renewal_price wajib diisi")
	}
	if r.RenewalDate == nil && r.AddRenewalDate == nil {
		return fiber.NewError(fiber.StatusBadRequest, "renewal_date wajib diisi")
	}
	return nil
}

/* =========================================================
   REQUEST: lain-lain
========================================================= */

type AcceptAssignServiceRequest struct {
	IsAccepted string `json:"isaccepted" validate:"required,oneof=accepted rejected"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

/* =========================================================
   RESPONSE: list item dengan enrichment nama client/service
========================================================= */

type AssignServiceResponse struct {
	model.AssignService

	// Nama hasil resolve saat read; fallback ke snapshot kalau referensi
	// sudah tidak resolve (profile/service terhapus).
	ClientName  string `json:"client_name"`
	ServiceName string `json:"service_name"`

	RenewalTotal float64 `json:"renewal_total"`
}

func NewAssignServiceResponse(as model.AssignService, clientName, serviceName string) AssignServiceResponse {
	if strings.TrimSpace(clientName) == "" {
		clientName = as.AssignServiceClientName
	}
	if strings.TrimSpace(serviceName) == "" {
		serviceName = as.AssignServiceServiceName
	}
	return AssignServiceResponse{
		AssignService: as,
		ClientName:    clientName,
		ServiceName:   serviceName,
		RenewalTotal:  model.RenewalTotal(as.Renewals),
	}
}

/* ================= Internal ================= */

func parseDateYMD(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "format tanggal harus YYYY-MM-DD")
	}
	return t, nil
}
