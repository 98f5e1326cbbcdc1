// file: internals/features/clients/controller/client_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/clients/dto"
	model "layananku_backend/internals/features/clients/model"
	helper "layananku_backend/internals/helpers"
)

type ClientController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{
		DB:        db,
		Validator: validator.New(),
	}
}

// ========== Create ==========
func (ctl *ClientController) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var dup int64
	if err := ctl.DB.Model(&model.ClientProfile{}).
		Where("LOWER(client_email) = LOWER(?)", strings.TrimSpace(req.ClientEmail)).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email client sudah terdaftar")
	}

	profile := req.ToModel()
	if err := ctl.DB.Create(profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Client berhasil dibuat", profile)
}

// ========== List ==========
func (ctl *ClientController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.ClientProfile{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pat := "%" + search + "%"
		q = q.Where("client_name ILIKE ? OR client_email ILIKE ? OR client_company ILIKE ?", pat, pat, pat)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var profiles []model.ClientProfile
	if err := q.Order("client_created_at DESC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&profiles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "", profiles, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ========== GetByID ==========
func (ctl *ClientController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "client_id invalid")
	}

	var profile model.ClientProfile
	if err := ctl.DB.First(&profile, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "", profile)
}

// ========== Patch ==========
func (ctl *ClientController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "client_id invalid")
	}

	var profile model.ClientProfile
	if err := ctl.DB.First(&profile, "client_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var req dto.PatchClientRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	req.ApplyTo(&profile)
	if err := ctl.DB.Save(&profile).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Client berhasil diperbarui", profile)
}
