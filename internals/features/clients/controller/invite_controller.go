// file: internals/features/clients/controller/invite_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"layananku_backend/internals/configs"
	dto "layananku_backend/internals/features/clients/dto"
	model "layananku_backend/internals/features/clients/model"
	tokenService "layananku_backend/internals/features/clients/service"
	notifService "layananku_backend/internals/features/notifications/service"
	helper "layananku_backend/internals/helpers"
)

type InviteController struct {
	DB        *gorm.DB
	Validator *validator.Validate
	Mailer    notifService.Mailer
}

func NewInviteController(db *gorm.DB, mailer notifService.Mailer) *InviteController {
	return &InviteController{
		DB:        db,
		Validator: validator.New(),
		Mailer:    mailer,
	}
}

// ========== Create invite (admin) ==========
// Invite dipersist dulu (status+expiry mandiri), baru token & email.
// Gagal kirim email TIDAK membatalkan invite yang sudah tersimpan.
func (ctl *InviteController) Create(c *fiber.Ctx) error {
	var req dto.CreateInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.InviteEmail))

	// Masih ada invite pending yang belum kadaluarsa → tolak duplikat
	var pending int64
	if err := ctl.DB.Model(&model.ClientInvite{}).
		Where("invite_email = ? AND invite_status = ? AND invite_expiry > NOW()", email, model.InviteStatusPending).
		Count(&pending).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if pending > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Masih ada undangan pending untuk email ini")
	}

	invite := &model.ClientInvite{
		InviteEmail:  email,
		InviteStatus: model.InviteStatusPending,
		InviteExpiry: time.Now().Add(tokenService.InviteTTL),
	}
	if err := ctl.DB.Create(invite).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	token, err := tokenService.IssueToken(configs.TokenSecret, email, tokenService.TokenPurposeInvite, tokenService.InviteTTL)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	inviteURL := fmt.Sprintf("%s/invites/accept?token=%s", configs.AppBaseURL, token)
	subject, html := notifService.InviteEmail(email, inviteURL)
	if !ctl.Mailer.Send(email, subject, html) {
		log.Printf("[INVITE] email undangan ke %s gagal terkirim (invite tetap tersimpan)", email)
	}

	return helper.JsonCreated(c, "Undangan berhasil dibuat", invite)
}

// ========== Accept invite (public, via token) ==========
func (ctl *InviteController) Accept(c *fiber.Ctx) error {
	var req dto.AcceptInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email, err := tokenService.VerifyToken(configs.TokenSecret, req.Token, tokenService.TokenPurposeInvite)
	if err != nil {
		if errors.Is(err, tokenService.ErrTokenExpired) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token undangan sudah kadaluarsa")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Token undangan tidak valid")
	}

	var invite model.ClientInvite
	if err := ctl.DB.
		Where("invite_email = ? AND invite_status = ?", email, model.InviteStatusPending).
		Order("invite_created_at DESC").
		First(&invite).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Undangan pending tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	// Expiry tersimpan dicek terpisah dari exp token
	now := time.Now()
	if invite.IsExpiredAt(now) {
		invite.InviteStatus = model.InviteStatusExpired
		_ = ctl.DB.Save(&invite).Error
		return helper.JsonError(c, fiber.StatusBadRequest, "Undangan sudah kadaluarsa")
	}

	invite.InviteStatus = model.InviteStatusAccepted
	invite.InviteAcceptedAt = &now
	if err := ctl.DB.Save(&invite).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Undangan berhasil diterima", invite)
}

// ========== Verify email (public, via token 1 jam) ==========
func (ctl *InviteController) VerifyEmail(c *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email, err := tokenService.VerifyToken(configs.TokenSecret, req.Token, tokenService.TokenPurposeVerifyEmail)
	if err != nil {
		if errors.Is(err, tokenService.ErrTokenExpired) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Token verifikasi sudah kadaluarsa")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Token verifikasi tidak valid")
	}

	res := ctl.DB.Model(&model.ClientProfile{}).
		Where("LOWER(client_email) = LOWER(?) AND client_email_verified_at IS NULL", email).
		Update("client_email_verified_at", gorm.Expr("NOW()"))
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}

	return helper.JsonOK(c, "Email berhasil diverifikasi", fiber.Map{"email": email})
}
