// file: internals/features/billing/service/outcome.go
package service

import (
	"net/http"

	billingModel "layananku_backend/internals/features/billing/model"
)

// AttemptResolution = keputusan pencatatan untuk satu attempt pembayaran:
// status akhir row audit, apakah renewal ditandai lunas, dan kode HTTP.
type AttemptResolution struct {
	BillingStatus string
	MarkPaid      bool
	HTTPStatus    int
}

// ResolveAttempt memetakan outcome gateway ke pencatatan audit.
// haspaid hanya boleh true ketika status akhir completed — kaitan ini
// dijaga di satu tempat supaya controller tidak bisa menyimpang.
func ResolveAttempt(out ChargeOutcome) AttemptResolution {
	switch out {
	case ChargeSucceeded:
		return AttemptResolution{
			BillingStatus: billingModel.BillingStatusCompleted,
			MarkPaid:      true,
			HTTPStatus:    http.StatusOK,
		}
	case ChargeDeclined:
		return AttemptResolution{
			BillingStatus: billingModel.BillingStatusFailed,
			HTTPStatus:    http.StatusBadRequest,
		}
	default: // ChargeErrored
		return AttemptResolution{
			BillingStatus: billingModel.BillingStatusFailed,
			HTTPStatus:    http.StatusBadGateway,
		}
	}
}
