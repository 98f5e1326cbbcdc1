// file: internals/features/catalog/route/catalog_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	categoryController "layananku_backend/internals/features/catalog/categories/controller"
	serviceController "layananku_backend/internals/features/catalog/services/controller"
)

// AdminCatalogRoutes: CRUD katalog (service & category) khusus admin.
func AdminCatalogRoutes(r fiber.Router, db *gorm.DB) {
	catCtl := categoryController.NewCategoryController(db)
	cats := r.Group("/categories")
	{
		cats.Post("/", catCtl.Create)
		cats.Get("/", catCtl.List)
		cats.Patch("/:id", catCtl.Patch)
		cats.Delete("/:id", catCtl.Delete)
	}

	svcCtl := serviceController.NewServiceController(db)
	svcs := r.Group("/services")
	{
		svcs.Post("/", svcCtl.Create)
		svcs.Get("/", svcCtl.List)
		svcs.Get("/:id", svcCtl.GetByID)
		svcs.Patch("/:id", svcCtl.Patch)
		svcs.Delete("/:id", svcCtl.Delete)
	}
}

// PublicCatalogRoutes: client dashboard hanya boleh browse.
func PublicCatalogRoutes(r fiber.Router, db *gorm.DB) {
	catCtl := categoryController.NewCategoryController(db)
	svcCtl := serviceController.NewServiceController(db)

	r.Get("/categories", catCtl.List)
	r.Get("/services", svcCtl.List)
	r.Get("/services/:id", svcCtl.GetByID)
}
