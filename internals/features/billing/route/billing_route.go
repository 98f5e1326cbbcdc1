// file: internals/features/billing/route/billing_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingController "layananku_backend/internals/features/billing/controller"
	billingService "layananku_backend/internals/features/billing/service"
	"layananku_backend/internals/middlewares"
)

// UserBillingRoutes: bayar + riwayat milik sendiri (role client).
func UserBillingRoutes(r fiber.Router, db *gorm.DB, gateway billingService.ChargeGateway) {
	ctl := billingController.NewBillingController(db, gateway)

	r.Post("/billing/process-payment", middlewares.PaymentRateLimiter(), ctl.ProcessPayment)
	r.Get("/billing/history", ctl.MyHistory)
	r.Get("/billing/stats", ctl.MyStats)
}

// AdminBillingRoutes: audit semua transaksi (role admin).
func AdminBillingRoutes(r fiber.Router, db *gorm.DB, gateway billingService.ChargeGateway) {
	ctl := billingController.NewBillingController(db, gateway)

	r.Get("/billing/admin/history", ctl.AdminHistory)
	r.Get("/billing/admin/stats", ctl.AdminStats)
	r.Delete("/billing/admin/history/:id", ctl.AdminDelete)
}
