// file: internals/features/assignments/route/assign_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignController "layananku_backend/internals/features/assignments/controller"
	notifService "layananku_backend/internals/features/notifications/service"
)

// AdminAssignRoutes: CRUD assignment + renewal ledger (role admin).
func AdminAssignRoutes(r fiber.Router, db *gorm.DB, mailer notifService.Mailer) {
	ctl := assignController.NewAssignServiceController(db, mailer)

	r.Post("/assign-service", ctl.Create)
	r.Get("/assigned_services", ctl.List)
	r.Get("/assigned_services/:id", ctl.GetByID)
	r.Put("/assigned_services/:id", ctl.Update)
	r.Patch("/assigned_services/:id/accept-status", ctl.AcceptStatus)
	r.Delete("/assigned_services/:id", ctl.Delete)
	r.Get("/assign_details/:client_id/:service_catalog_id", ctl.AssignDetails)
}

// UserAssignRoutes: read-only, scoped ke email token (role client).
func UserAssignRoutes(r fiber.Router, db *gorm.DB, mailer notifService.Mailer) {
	ctl := assignController.NewAssignServiceController(db, mailer)

	r.Get("/assigned_services", ctl.ListMine)
}

// PublicAssignRoutes: verifikasi token acceptance dari link email.
func PublicAssignRoutes(r fiber.Router, db *gorm.DB, mailer notifService.Mailer) {
	ctl := assignController.NewAssignServiceController(db, mailer)

	r.Post("/verify_token", ctl.VerifyToken)
}
