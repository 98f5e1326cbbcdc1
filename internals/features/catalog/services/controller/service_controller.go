// file: internals/features/catalog/services/controller/service_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignModel "layananku_backend/internals/features/assignments/model"
	categoryModel "layananku_backend/internals/features/catalog/categories/model"
	dto "layananku_backend/internals/features/catalog/services/dto"
	model "layananku_backend/internals/features/catalog/services/model"
	helper "layananku_backend/internals/helpers"
)

type ServiceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *ServiceController) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Kategori harus ada
	var catCount int64
	if err := ctl.DB.Model(&categoryModel.Category{}).
		Where("category_id = ?", req.ServiceCategoryID).
		Count(&catCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if catCount == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
	}

	// Nama service unik
	var dup int64
	if err := ctl.DB.Model(&model.Service{}).
		Where("LOWER(service_name) = LOWER(?)", strings.TrimSpace(req.ServiceName)).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama service sudah dipakai")
	}

	svc, err := req.ToModel()
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Create(svc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Service berhasil dibuat", svc)
}

// ========== List ==========
func (ctl *ServiceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Service{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pat := "%" + search + "%"
		q = q.Where("service_name ILIKE ? OR service_description ILIKE ?", pat, pat)
	}
	if cid := strings.TrimSpace(c.Query("category_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "category_id invalid")
		}
		q = q.Where("service_category_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var svcs []model.Service
	if err := q.Order("service_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&svcs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", svcs, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== GetByID ==========
func (ctl *ServiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "service_id invalid")
	}

	var svc model.Service
	if err := ctl.DB.First(&svc, "service_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", svc)
}

// ========== Patch ==========
func (ctl *ServiceController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "service_id invalid")
	}

	var svc model.Service
	if err := ctl.DB.First(&svc, "service_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.ServiceCategoryID != nil {
		var catCount int64
		if err := ctl.DB.Model(&categoryModel.Category{}).
			Where("category_id = ?", *req.ServiceCategoryID).
			Count(&catCount).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if catCount == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
	}

	if req.ServiceName != nil && !strings.EqualFold(*req.ServiceName, svc.ServiceName) {
		var dup int64
		if err := ctl.DB.Model(&model.Service{}).
			Where("LOWER(service_name) = LOWER(?) AND service_id <> ?", strings.TrimSpace(*req.ServiceName), id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nama service sudah dipakai")
		}
	}

	if err := req.ApplyTo(&svc); err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := ctl.DB.Save(&svc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Service berhasil diperbarui", svc)
}

// ========== Delete (soft delete, referential guard) ==========
func (ctl *ServiceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "service_id invalid")
	}

	var svc model.Service
	if err := ctl.DB.First(&svc, "service_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Service tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Guard: masih ada assignment hidup yang memakai service ini
	var refs int64
	if err := ctl.DB.Model(&assignModel.AssignService{}).
		Where("assign_service_service_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Service masih dipakai oleh assignment dan tidak bisa dihapus")
	}

	if err := ctl.DB.Delete(&svc).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Service berhasil dihapus", svc)
}
