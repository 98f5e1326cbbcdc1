// file: internals/features/billing/service/stripe_gateway.go
package service

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

/* =========================================================
   ChargeGateway: abstraksi payment provider.
   Controller tidak tahu Stripe — cukup hasil outcome-nya.
========================================================= */

type ChargeOutcome string

const (
	ChargeSucceeded ChargeOutcome = "succeeded" // dana tertagih
	ChargeDeclined  ChargeOutcome = "declined"  // ditolak / butuh action lanjutan
	ChargeErrored   ChargeOutcome = "errored"   // gangguan transport/provider
)

type ChargeInput struct {
	Amount          float64 // major unit (mis. 150.00)
	Currency        string
	PaymentMethodID string
	InvoiceID       string
	RenewalID       string
	CustomerEmail   string
}

type ChargeResult struct {
	Outcome         ChargeOutcome
	PaymentIntentID string
	FailureReason   string
}

type ChargeGateway interface {
	Charge(in ChargeInput) ChargeResult
}

/* =========================================================
   StripeGateway: implementasi via PaymentIntent confirm-once.
========================================================= */

type StripeGateway struct {
	defaultCurrency string
}

// NewStripeGateway set API key global stripe-go lalu kembalikan gateway.
// Key kosong = mode degraded: semua charge langsung errored (tanpa panic).
func NewStripeGateway(apiKey, defaultCurrency string) *StripeGateway {
	if strings.TrimSpace(apiKey) == "" {
		log.Println("[STRIPE] ⚠️ STRIPE_SECRET_KEY kosong — semua charge akan gagal")
	} else {
		stripe.Key = apiKey
	}
	if defaultCurrency == "" {
		defaultCurrency = "usd"
	}
	return &StripeGateway{defaultCurrency: defaultCurrency}
}

func (g *StripeGateway) Charge(in ChargeInput) ChargeResult {
	if stripe.Key == "" {
		return ChargeResult{Outcome: ChargeErrored, FailureReason: "payment provider belum dikonfigurasi"}
	}

	currency := in.Currency
	if currency == "" {
		currency = g.defaultCurrency
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(ToMinorUnit(in.Amount)),
		Currency:      stripe.String(strings.ToLower(currency)),
		PaymentMethod: stripe.String(in.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		Description:   stripe.String(fmt.Sprintf("Renewal %s (%s)", in.RenewalID, in.InvoiceID)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.AddMetadata("invoice_id", in.InvoiceID)
	params.AddMetadata("renewal_id", in.RenewalID)
	if in.CustomerEmail != "" {
		params.AddMetadata("customer_email", in.CustomerEmail)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		// Card error = declined; selain itu gangguan provider
		if stripeErr, ok := err.(*stripe.Error); ok && stripeErr.Type == stripe.ErrorTypeCard {
			reason := stripeErr.Msg
			if stripeErr.DeclineCode != "" {
				reason = fmt.Sprintf("%s (%s)", stripeErr.Msg, stripeErr.DeclineCode)
			}
			res := ChargeResult{Outcome: ChargeDeclined, FailureReason: reason}
			if stripeErr.PaymentIntent != nil {
				res.PaymentIntentID = stripeErr.PaymentIntent.ID
			}
			return res
		}
		log.Printf("[STRIPE] charge error (invoice=%s): %v", in.InvoiceID, err)
		return ChargeResult{Outcome: ChargeErrored, FailureReason: err.Error()}
	}

	return ResolveIntentStatus(pi.ID, pi.Status)
}

// ResolveIntentStatus memetakan status PaymentIntent ke outcome internal.
// Hanya succeeded yang dihitung sukses; requires_action dkk = declined
// karena flow kita charge-once tanpa redirect.
func ResolveIntentStatus(intentID string, status stripe.PaymentIntentStatus) ChargeResult {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return ChargeResult{Outcome: ChargeSucceeded, PaymentIntentID: intentID}
	case stripe.PaymentIntentStatusProcessing:
		return ChargeResult{
			Outcome:         ChargeErrored,
			PaymentIntentID: intentID,
			FailureReason:   "pembayaran masih diproses provider",
		}
	default:
		return ChargeResult{
			Outcome:         ChargeDeclined,
			PaymentIntentID: intentID,
			FailureReason:   fmt.Sprintf("pembayaran tidak selesai (status: %s)", status),
		}
	}
}

// ToMinorUnit mengubah amount major unit ke minor unit (cents).
// Dibulatkan, bukan dipotong, supaya 149.999 float tidak jadi 14999.
func ToMinorUnit(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
