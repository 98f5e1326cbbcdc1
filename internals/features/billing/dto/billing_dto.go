// file: internals/features/billing/dto/billing_dto.go
package dto

import "github.com/google/uuid"

// Key camelCase: kontrak lama dashboard client, jangan diubah.
type ProcessPaymentRequest struct {
	AssignServiceID uuid.UUID `json:"assignServiceId" validate:"required"`
	RenewalID       uuid.UUID `json:"renewalId" validate:"required"`
	PaymentMethodID string    `json:"paymentMethodId" validate:"required"`

	// Advisory saja — harga otoritatif tetap dari DB; mismatch ditolak.
	Amount *float64 `json:"amount" validate:"omitempty,gt=0"`
}

type BillingStatsResponse struct {
	TotalTransactions int64   `json:"total_transactions"`
	TotalCompleted    int64   `json:"total_completed"`
	TotalFailed       int64   `json:"total_failed"`
	TotalPending      int64   `json:"total_pending"`
	TotalPaidAmount   float64 `json:"total_paid_amount"`
}
