// file: internals/features/billing/controller/billing_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"layananku_backend/internals/configs"
	assignModel "layananku_backend/internals/features/assignments/model"
	billingDto "layananku_backend/internals/features/billing/dto"
	billingModel "layananku_backend/internals/features/billing/model"
	billingService "layananku_backend/internals/features/billing/service"
	helper "layananku_backend/internals/helpers"
	helperAuth "layananku_backend/internals/helpers/auth"
)

type BillingController struct {
	DB       *gorm.DB
	Gateway  billingService.ChargeGateway
	Validate *validator.Validate
}

func NewBillingController(db *gorm.DB, gateway billingService.ChargeGateway) *BillingController {
	return &BillingController{
		DB:       db,
		Gateway:  gateway,
		Validate: validator.New(),
	}
}

/* =========================================================
   POST /api/u/billing/process-payment
   Bayar satu renewal. Urutan penting:
   1) validasi referensi + guard duplikat (409)
   2) tulis history PENDING dulu (audit trail ada walau proses mati)
   3) charge ke provider
   4) sukses → satu transaksi: history completed + renewal haspaid
      decline → history failed, 400 ; error provider → failed, 502
========================================================= */
func (ctl *BillingController) ProcessPayment(c *fiber.Ctx) error {
	var req billingDto.ProcessPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email, err := helperAuth.GetUserEmail(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email tidak ditemukan di token")
	}

	var as assignModel.AssignService
	if err := ctl.DB.First(&as, "assign_service_id = ?", req.AssignServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa assignment")
	}
	// Client hanya boleh bayar kontrak miliknya sendiri
	if !helperAuth.IsAdmin(c) && !strings.EqualFold(as.AssignServiceClientEmail, email) {
		return helper.JsonError(c, fiber.StatusForbidden, "Assignment ini bukan milik Anda")
	}

	var renewal assignModel.AssignServiceRenewal
	if err := ctl.DB.First(&renewal,
		"renewal_id = ? AND renewal_assign_service_id = ?",
		req.RenewalID, as.AssignServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Renewal tidak ditemukan pada assignment ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa renewal")
	}
	if renewal.RenewalHasPaid {
		return helper.JsonError(c, fiber.StatusConflict, "Renewal ini sudah dibayar")
	}
	// Amount dari client cuma advisory; harga otoritatif dari DB
	if req.Amount != nil && *req.Amount != renewal.RenewalPrice {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nominal tidak sesuai dengan harga renewal")
	}

	// Guard duplikat, fast path: ada attempt non-failed untuk renewal ini?
	// Balapan antar request tetap ditahan oleh partial unique index
	// uq_billing_histories_active_attempt saat insert row pending di bawah.
	var dup int64
	if err := ctl.DB.Model(&billingModel.BillingHistory{}).
		Where("billing_renewal_id = ? AND billing_status <> ?", renewal.RenewalID, billingModel.BillingStatusFailed).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa riwayat pembayaran")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Pembayaran untuk renewal ini sudah pernah diproses")
	}

	userID, _ := helperAuth.GetUserID(c)
	method := "card"
	hist := billingModel.BillingHistory{
		BillingUserEmail:       email,
		BillingAssignServiceID: as.AssignServiceID,
		BillingRenewalID:       renewal.RenewalID,
		BillingInvoiceID:       as.AssignServiceInvoiceID,
		BillingServiceName:     as.AssignServiceServiceName,
		BillingAmount:          renewal.RenewalPrice,
		BillingCurrency:        configs.DefaultCurrency,
		BillingStatus:          billingModel.BillingStatusPending,
		BillingPaymentMethod:   &method,
		BillingMeta: datatypes.JSONMap{
			"renewal_label": renewal.RenewalLabel,
		},
	}
	if userID != uuid.Nil {
		hist.BillingUserID = &userID
	}
	if err := ctl.DB.Create(&hist).Error; err != nil {
		// Kalah balapan dengan request lain untuk renewal yang sama
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Pembayaran untuk renewal ini sudah pernah diproses")
		}
		log.Printf("[BILLING] tulis history pending gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan riwayat pembayaran")
	}

	res := ctl.Gateway.Charge(billingService.ChargeInput{
		Amount:          renewal.RenewalPrice,
		Currency:        hist.BillingCurrency,
		PaymentMethodID: req.PaymentMethodID,
		InvoiceID:       as.AssignServiceInvoiceID,
		RenewalID:       renewal.RenewalID.String(),
		CustomerEmail:   email,
	})

	reso := billingService.ResolveAttempt(res.Outcome)

	if reso.MarkPaid {
		now := time.Now()
		txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&billingModel.BillingHistory{}).
				Where("billing_id = ?", hist.BillingID).
				Updates(map[string]any{
					"billing_status":            reso.BillingStatus,
					"billing_payment_intent_id": res.PaymentIntentID,
					"billing_payment_date":      now,
				}).Error; err != nil {
				return err
			}
			return tx.Model(&assignModel.AssignServiceRenewal{}).
				Where("renewal_id = ?", renewal.RenewalID).
				Update("renewal_haspaid", true).Error
		})
		if txErr != nil {
			// Dana sudah tertagih — jangan lapor gagal ke client, cukup log
			log.Printf("[BILLING] ⚠️ charge sukses tapi update DB gagal (billing=%s, intent=%s): %v",
				hist.BillingID, res.PaymentIntentID, txErr)
		}
		return helper.JsonOK(c, "Pembayaran berhasil", fiber.Map{
			"billing_id":        hist.BillingID,
			"payment_intent_id": res.PaymentIntentID,
			"status":            reso.BillingStatus,
		})
	}

	ctl.markFailed(hist.BillingID, res)
	msg := "Payment provider bermasalah, coba lagi nanti"
	code := "EXTERNAL_SERVICE_ERROR"
	if res.Outcome == billingService.ChargeDeclined {
		msg = "Pembayaran ditolak: " + res.FailureReason
		code = "PAYMENT_DECLINED"
	}
	// billing_id ikut dikirim supaya FE bisa menautkan ke riwayat
	return c.Status(reso.HTTPStatus).JSON(fiber.Map{
		"success":    false,
		"message":    msg,
		"error_code": code,
		"billing_id": hist.BillingID,
	})
}

func (ctl *BillingController) markFailed(billingID uuid.UUID, res billingService.ChargeResult) {
	updates := map[string]any{
		"billing_status":         billingModel.BillingStatusFailed,
		"billing_failure_reason": res.FailureReason,
	}
	if res.PaymentIntentID != "" {
		updates["billing_payment_intent_id"] = res.PaymentIntentID
	}
	if err := ctl.DB.Model(&billingModel.BillingHistory{}).
		Where("billing_id = ?", billingID).
		Updates(updates).Error; err != nil {
		log.Printf("[BILLING] tandai failed gagal (billing=%s): %v", billingID, err)
	}
}

/* =========================================================
   GET /api/u/billing/history   — scoped ke email token
   GET /api/a/billing/history   — semua, dengan filter
========================================================= */
func (ctl *BillingController) MyHistory(c *fiber.Ctx) error {
	email, err := helperAuth.GetUserEmail(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email tidak ditemukan di token")
	}
	return ctl.listHistory(c, ctl.DB.Where("billing_user_email = ?", email))
}

func (ctl *BillingController) AdminHistory(c *fiber.Ctx) error {
	q := ctl.DB
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		q = q.Where("billing_user_email = ?", email)
	}
	return ctl.listHistory(c, q)
}

func (ctl *BillingController) listHistory(c *fiber.Ctx, base *gorm.DB) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := base.Model(&billingModel.BillingHistory{})
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("billing_status = ?", status)
	}
	if invoice := strings.TrimSpace(c.Query("invoice_id")); invoice != "" {
		q = q.Where("billing_invoice_id = ?", invoice)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung riwayat")
	}
	var rows []billingModel.BillingHistory
	if err := q.Order("billing_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil riwayat")
	}
	return helper.JsonList(c, "OK", rows, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

/* =========================================================
   GET /api/u/billing/stats  &  GET /api/a/billing/stats
========================================================= */
func (ctl *BillingController) MyStats(c *fiber.Ctx) error {
	email, err := helperAuth.GetUserEmail(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email tidak ditemukan di token")
	}
	return ctl.stats(c, ctl.DB.Where("billing_user_email = ?", email))
}

func (ctl *BillingController) AdminStats(c *fiber.Ctx) error {
	return ctl.stats(c, ctl.DB)
}

func (ctl *BillingController) stats(c *fiber.Ctx, base *gorm.DB) error {
	var out billingDto.BillingStatsResponse

	type row struct {
		Status string
		Count  int64
		Amount float64
	}
	var rows []row
	if err := base.Model(&billingModel.BillingHistory{}).
		Select("billing_status AS status, COUNT(*) AS count, COALESCE(SUM(billing_amount), 0) AS amount").
		Group("billing_status").
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	for _, r := range rows {
		out.TotalTransactions += r.Count
		switch r.Status {
		case billingModel.BillingStatusCompleted:
			out.TotalCompleted = r.Count
			out.TotalPaidAmount = r.Amount
		case billingModel.BillingStatusFailed:
			out.TotalFailed = r.Count
		case billingModel.BillingStatusPending:
			out.TotalPending = r.Count
		}
	}
	return helper.JsonOK(c, "OK", out)
}

/* =========================================================
   DELETE /api/a/billing/history/:id
   Escape hatch admin untuk bersih-bersih record salah. Soft delete.
========================================================= */
func (ctl *BillingController) AdminDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Delete(&billingModel.BillingHistory{}, "billing_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus riwayat")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Riwayat tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Riwayat pembayaran dihapus", fiber.Map{"billing_id": id})
}
