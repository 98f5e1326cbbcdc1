// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"layananku_backend/internals/configs"
	assignRoute "layananku_backend/internals/features/assignments/route"
	billingRoute "layananku_backend/internals/features/billing/route"
	billingService "layananku_backend/internals/features/billing/service"
	catalogRoute "layananku_backend/internals/features/catalog/route"
	clientRoute "layananku_backend/internals/features/clients/route"
	notifService "layananku_backend/internals/features/notifications/service"
	"layananku_backend/internals/middlewares"
	authMiddleware "layananku_backend/internals/middlewares/auth"
)

// SetupRoutes merangkai seluruh permukaan HTTP:
//   /api/public — tanpa auth (browse katalog, verifikasi token dari email)
//   /api/u      — login (role client/admin), scoped ke email token
//   /api/a      — admin only
func SetupRoutes(app *fiber.App, db *gorm.DB, gateway billingService.ChargeGateway, mailer notifService.Mailer) {
	api := app.Group("/api")

	// ---------- PUBLIC ----------
	public := api.Group("/public")
	catalogRoute.PublicCatalogRoutes(public, db)

	tokenGuard := middlewares.TokenVerifyRateLimiter()
	public.Use("/verify_token", tokenGuard)
	public.Use("/invites", tokenGuard)
	public.Use("/verify_email", tokenGuard)
	assignRoute.PublicAssignRoutes(public, db, mailer)
	clientRoute.PublicInviteRoutes(public, db, mailer)
	log.Println("[INFO] public routes terpasang di /api/public")

	// ---------- USER (login) ----------
	auth := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	user := api.Group("/u", auth)
	assignRoute.UserAssignRoutes(user, db, mailer)
	billingRoute.UserBillingRoutes(user, db, gateway)
	log.Println("[INFO] user routes terpasang di /api/u")

	// ---------- ADMIN ----------
	admin := api.Group("/a", auth, authMiddleware.AdminOnly())
	catalogRoute.AdminCatalogRoutes(admin, db)
	clientRoute.AdminClientRoutes(admin, db, mailer)
	assignRoute.AdminAssignRoutes(admin, db, mailer)
	billingRoute.AdminBillingRoutes(admin, db, gateway)
	log.Println("[INFO] admin routes terpasang di /api/a")
}
