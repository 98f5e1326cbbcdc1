// file: internals/features/catalog/categories/controller/category_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/catalog/categories/dto"
	model "layananku_backend/internals/features/catalog/categories/model"
	serviceModel "layananku_backend/internals/features/catalog/services/model"
	helper "layananku_backend/internals/helpers"
)

type CategoryController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Nama kategori unik (pre-check; index unik tetap jadi backstop)
	var dup int64
	if err := ctl.DB.Model(&model.Category{}).
		Where("LOWER(category_name) = LOWER(?)", strings.TrimSpace(req.CategoryName)).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Nama kategori sudah dipakai")
	}

	cat := req.ToModel()
	if err := ctl.DB.Create(cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Kategori berhasil dibuat", cat)
}

// ========== List ==========
func (ctl *CategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.Category{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("category_name ILIKE ?", "%"+search+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var cats []model.Category
	if err := q.Order("category_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&cats).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", cats, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== Patch ==========
func (ctl *CategoryController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "category_id invalid")
	}

	var cat model.Category
	if err := ctl.DB.First(&cat, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if req.CategoryName != nil && !strings.EqualFold(*req.CategoryName, cat.CategoryName) {
		var dup int64
		if err := ctl.DB.Model(&model.Category{}).
			Where("LOWER(category_name) = LOWER(?) AND category_id <> ?", strings.TrimSpace(*req.CategoryName), id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Nama kategori sudah dipakai")
		}
	}

	req.ApplyTo(&cat)
	if err := ctl.DB.Save(&cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Kategori berhasil diperbarui", cat)
}

// ========== Delete (soft delete, referential guard) ==========
func (ctl *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "category_id invalid")
	}

	var cat model.Category
	if err := ctl.DB.First(&cat, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kategori tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Guard: kategori masih direferensikan service yang hidup
	var refs int64
	if err := ctl.DB.Model(&serviceModel.Service{}).
		Where("service_category_id = ?", id).
		Count(&refs).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if refs > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kategori masih dipakai oleh service dan tidak bisa dihapus")
	}

	if err := ctl.DB.Delete(&cat).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonDeleted(c, "Kategori berhasil dihapus", cat)
}
