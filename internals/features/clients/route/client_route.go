// file: internals/features/clients/route/client_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clientController "layananku_backend/internals/features/clients/controller"
	notifService "layananku_backend/internals/features/notifications/service"
)

// AdminClientRoutes: kelola client profile + undangan.
func AdminClientRoutes(r fiber.Router, db *gorm.DB, mailer notifService.Mailer) {
	clientCtl := clientController.NewClientController(db)
	clients := r.Group("/clients")
	{
		clients.Post("/", clientCtl.Create)
		clients.Get("/", clientCtl.List)
		clients.Get("/:id", clientCtl.GetByID)
		clients.Patch("/:id", clientCtl.Patch)
	}

	inviteCtl := clientController.NewInviteController(db, mailer)
	r.Post("/invites", inviteCtl.Create)
}

// PublicInviteRoutes: accept undangan & verifikasi email via token.
func PublicInviteRoutes(r fiber.Router, db *gorm.DB, mailer notifService.Mailer) {
	inviteCtl := clientController.NewInviteController(db, mailer)
	r.Post("/invites/accept", inviteCtl.Accept)
	r.Post("/verify_email", inviteCtl.VerifyEmail)
}
