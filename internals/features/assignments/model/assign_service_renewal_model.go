package model

import (
	"time"

	"github.com/google/uuid"
)

// AssignServiceRenewal = satu cicilan/line item renewal di dalam kontrak.
// Tidak pernah dihapus sendiri; haspaid hanya diubah oleh payment flow.
type AssignServiceRenewal struct {
	RenewalID uuid.UUID `gorm:"column:renewal_id;type:uuid;default:gen_random_uuid();primaryKey" json:"renewal_id"`

	RenewalAssignServiceID uuid.UUID `gorm:"column:renewal_assign_service_id;type:uuid;not null;index" json:"renewal_assign_service_id"`

	RenewalLabel   string     `gorm:"column:renewal_label;type:varchar(160);not null" json:"renewal_label"`
	RenewalDueDate *time.Time `gorm:"column:renewal_due_date" json:"renewal_due_date,omitempty"`
	RenewalPrice   float64    `gorm:"column:renewal_price;type:numeric(12,2);not null;check:renewal_price >= 0" json:"renewal_price"`
	RenewalHasPaid bool       `gorm:"column:renewal_haspaid;not null;default:false" json:"renewal_haspaid"`

	CreatedAt time.Time `gorm:"column:renewal_created_at;autoCreateTime" json:"renewal_created_at"`
	UpdatedAt time.Time `gorm:"column:renewal_updated_at;autoUpdateTime" json:"renewal_updated_at"`
}

func (AssignServiceRenewal) TableName() string { return "assign_service_renewals" }

// ProjectedRenewalTotal menghitung total alokasi SETELAH add/edit:
// seluruh line item yang ada (minus harga lama line yang diedit) + harga baru.
// Dipakai di dalam transaksi ber-lock supaya cek cap konsisten.
func ProjectedRenewalTotal(renewals []AssignServiceRenewal, editID *uuid.UUID, newPrice float64) float64 {
	total := newPrice
	for _, r := range renewals {
		if editID != nil && r.RenewalID == *editID {
			continue // harga lama line yang diedit tidak ikut dihitung
		}
		total += r.RenewalPrice
	}
	return total
}

// RenewalTotal menjumlahkan seluruh alokasi saat ini.
func RenewalTotal(renewals []AssignServiceRenewal) float64 {
	total := 0.0
	for _, r := range renewals {
		total += r.RenewalPrice
	}
	return total
}

// AllocatedAfterChange: total alokasi yang akan berlaku setelah operasi
// update. renewalPrice nil berarti ledger tidak disentuh (mis. patch harga
// kontrak saja) — total dihitung apa adanya supaya cap baru tetap dicek.
func AllocatedAfterChange(renewals []AssignServiceRenewal, editID *uuid.UUID, renewalPrice *float64) float64 {
	if renewalPrice == nil {
		return RenewalTotal(renewals)
	}
	return ProjectedRenewalTotal(renewals, editID, *renewalPrice)
}

// FindRenewal mencari line item berdasarkan id; nil kalau tidak ada.
func FindRenewal(renewals []AssignServiceRenewal, id uuid.UUID) *AssignServiceRenewal {
	for i := range renewals {
		if renewals[i].RenewalID == id {
			return &renewals[i]
		}
	}
	return nil
}
