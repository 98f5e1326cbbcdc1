// file: internals/features/assignments/controller/assign_service_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"layananku_backend/internals/configs"
	assignDto "layananku_backend/internals/features/assignments/dto"
	assignModel "layananku_backend/internals/features/assignments/model"
	serviceModel "layananku_backend/internals/features/catalog/services/model"
	clientModel "layananku_backend/internals/features/clients/model"
	clientService "layananku_backend/internals/features/clients/service"
	notifService "layananku_backend/internals/features/notifications/service"
	helper "layananku_backend/internals/helpers"
	helperAuth "layananku_backend/internals/helpers/auth"
)

type AssignServiceController struct {
	DB       *gorm.DB
	Mailer   notifService.Mailer
	Validate *validator.Validate
}

func NewAssignServiceController(db *gorm.DB, mailer notifService.Mailer) *AssignServiceController {
	return &AssignServiceController{
		DB:       db,
		Mailer:   mailer,
		Validate: validator.New(),
	}
}

/* =========================================================
   POST /api/a/assign-service
   Assign satu layanan ke client. Snapshot nama/email diambil
   saat create; sesudah commit kirim email acceptance (best-effort).
========================================================= */
func (ctl *AssignServiceController) Create(c *fiber.Ctx) error {
	var req assignDto.AssignServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Referensi wajib resolve
	var client clientModel.ClientProfile
	if err := ctl.DB.First(&client, "client_id = ?", req.ClientID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Client tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa client")
	}
	var svc serviceModel.Service
	if err := ctl.DB.First(&svc, "service_id = ?", req.ServiceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Layanan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa layanan")
	}

	as, err := req.ToModel()
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	as.AssignServiceClientName = client.ClientName
	as.AssignServiceClientEmail = client.ClientEmail
	as.AssignServiceServiceName = svc.ServiceName

	// Invoice id manual harus unik (yang auto sudah unik by construction)
	if req.AutoInvoice != nil && !*req.AutoInvoice {
		var dup int64
		if err := ctl.DB.Model(&assignModel.AssignService{}).
			Where("assign_service_invoice_id = ?", as.AssignServiceInvoiceID).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa invoice")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Invoice ID sudah dipakai")
		}
	}

	if err := ctl.DB.Create(as).Error; err != nil {
		log.Printf("[ASSIGN] create gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan assignment")
	}

	// Token acceptance + email: kegagalan di sini tidak membatalkan create.
	ctl.sendAcceptanceEmail(as, client.ClientName)

	return helper.JsonCreated(c, "Layanan berhasil di-assign ke client", as)
}

func (ctl *AssignServiceController) sendAcceptanceEmail(as *assignModel.AssignService, clientName string) {
	token, err := clientService.IssueToken(
		configs.TokenSecret,
		as.AssignServiceClientEmail,
		clientService.TokenPurposeAssignAccept,
		clientService.AssignAcceptTTL,
	)
	if err != nil {
		log.Printf("[ASSIGN] gagal issue token acceptance (invoice=%s): %v", as.AssignServiceInvoiceID, err)
		return
	}
	acceptURL := fmt.Sprintf("%s/assignments/accept?token=%s", configs.AppBaseURL, token)
	subject, html := notifService.AcceptanceEmail(clientName, as.AssignServiceServiceName, as.AssignServiceInvoiceID, acceptURL)
	if ok := ctl.Mailer.Send(as.AssignServiceClientEmail, subject, html); !ok {
		log.Printf("[ASSIGN] email acceptance gagal terkirim (invoice=%s, to=%s)", as.AssignServiceInvoiceID, as.AssignServiceClientEmail)
	}
}

/* =========================================================
   PUT /api/a/assigned_services/:id
   Patch top-level + add/edit renewal, atomik dalam satu transaksi.
   Assignment di-lock FOR UPDATE supaya cek cap renewal konsisten.
========================================================= */
func (ctl *AssignServiceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req assignDto.UpdateAssignServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if err := req.ValidateRenewalFields(); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}

	var updated assignModel.AssignService
	txErr := ctl.DB.Transaction(func(tx *gorm.DB) error {
		var as assignModel.AssignService
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&as, "assign_service_id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Assignment tidak ditemukan")
			}
			return err
		}

		// Cap mengikuti harga SETELAH patch: patch harga saja pun
		// tetap dicek terhadap alokasi renewal yang sudah ada.
		priceCap := as.AssignServicePrice
		if req.Price != nil {
			priceCap = *req.Price
		}

		if req.HasRenewalFields() || req.Price != nil {
			var renewals []assignModel.AssignServiceRenewal
			if err := tx.
				Where("renewal_assign_service_id = ?", as.AssignServiceID).
				Find(&renewals).Error; err != nil {
				return err
			}

			// Edit in-place: line harus milik assignment ini —
			// dicek SEBELUM hitung cap supaya id nyasar dapat 404, bukan 400
			var line *assignModel.AssignServiceRenewal
			if req.RenewalID != nil {
				line = assignModel.FindRenewal(renewals, *req.RenewalID)
				if line == nil {
					return fiber.NewError(fiber.StatusNotFound, "Renewal tidak ditemukan pada assignment ini")
				}
			}

			projected := assignModel.AllocatedAfterChange(renewals, req.RenewalID, req.RenewalPrice)
			if projected > priceCap {
				return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf(
					"Total renewal %.2f melebihi harga kontrak %.2f",
					projected, priceCap,
				))
			}

			if req.HasRenewalFields() {
				due, derr := req.RenewalDueDate()
				if derr != nil {
					var fe *fiber.Error
					if errors.As(derr, &fe) {
						return fe
					}
					return derr
				}

				if line != nil {
					line.RenewalLabel = strings.TrimSpace(*req.RenewalLabel)
					line.RenewalPrice = *req.RenewalPrice
					if due != nil {
						line.RenewalDueDate = due
					}
					if err := tx.Save(line).Error; err != nil {
						return err
					}
				} else {
					newLine := assignModel.AssignServiceRenewal{
						RenewalAssignServiceID: as.AssignServiceID,
						RenewalLabel:           strings.TrimSpace(*req.RenewalLabel),
						RenewalDueDate:         due,
						RenewalPrice:           *req.RenewalPrice,
					}
					if err := tx.Create(&newLine).Error; err != nil {
						return err
					}
				}
			}
		}

		// Patch top-level (allow-list)
		if req.IsAccepted != nil {
			as.AssignServiceIsAccepted = *req.IsAccepted
		}
		if req.Price != nil {
			as.AssignServicePrice = *req.Price
		}
		if req.EndDate != nil && *req.EndDate != "" {
			t, perr := time.Parse("2006-01-02", *req.EndDate)
			if perr != nil {
				return fiber.NewError(fiber.StatusBadRequest, "format tanggal harus YYYY-MM-DD")
			}
			as.AssignServiceEndDate = &t
		}
		if err := tx.Save(&as).Error; err != nil {
			return err
		}

		// Reload beserta renewals untuk response
		if err := tx.Preload("Renewals").
			First(&updated, "assign_service_id = ?", as.AssignServiceID).Error; err != nil {
			return err
		}
		return nil
	})
	if txErr != nil {
		var fe *fiber.Error
		if errors.As(txErr, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		log.Printf("[ASSIGN] update gagal: %v", txErr)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui assignment")
	}

	return helper.JsonUpdated(c, "Assignment berhasil diperbarui", updated)
}

/* =========================================================
   PATCH /api/a/assigned_services/:id/accept-status
   Escape hatch admin untuk memaksa status acceptance.
========================================================= */
func (ctl *AssignServiceController) AcceptStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var req assignDto.AcceptAssignServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	res := ctl.DB.Model(&assignModel.AssignService{}).
		Where("assign_service_id = ?", id).
		Update("assign_service_is_accepted", req.IsAccepted)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status acceptance")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}
	return helper.JsonUpdated(c, "Status acceptance diperbarui", fiber.Map{
		"assign_service_id": id,
		"isaccepted":        req.IsAccepted,
	})
}

/* =========================================================
   POST /api/public/verify_token
   Verifikasi token acceptance lalu kembalikan assignment pending
   milik email di token — untuk ditampilkan ke client sebelum
   dia memutuskan accept/reject.
========================================================= */
func (ctl *AssignServiceController) VerifyToken(c *fiber.Ctx) error {
	var req assignDto.VerifyTokenRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email, err := clientService.VerifyToken(configs.TokenSecret, req.Token, clientService.TokenPurposeAssignAccept)
	if err != nil {
		if errors.Is(err, clientService.ErrTokenExpired) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token sudah kedaluwarsa")
		}
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token tidak valid")
	}

	var as assignModel.AssignService
	if err := ctl.DB.Preload("Renewals").
		Where("assign_service_client_email = ? AND assign_service_is_accepted = ?", email, assignModel.AssignAcceptPending).
		Order("assign_service_created_at DESC").
		First(&as).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tidak ada assignment pending untuk email ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}

	return helper.JsonOK(c, "Token valid", fiber.Map{
		"email":      email,
		"assignment": as,
	})
}

/* =========================================================
   GET /api/a/assigned_services  (admin, semua)
   GET /api/u/assigned_services  (client, scoped email token)
========================================================= */
func (ctl *AssignServiceController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&assignModel.AssignService{}).Preload("Renewals")

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"assign_service_client_name ILIKE ? OR assign_service_service_name ILIKE ? OR assign_service_client_email ILIKE ? OR assign_service_invoice_id ILIKE ?",
			like, like, like, like,
		)
	}
	if raw := c.Query("client_id"); raw != "" {
		cid, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "client_id tidak valid")
		}
		q = q.Where("assign_service_client_id = ?", cid)
	}
	if raw := c.Query("service_catalog_id"); raw != "" {
		sid, perr := uuid.Parse(raw)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "service_catalog_id tidak valid")
		}
		q = q.Where("assign_service_service_id = ?", sid)
	}
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		q = q.Where("assign_service_client_email = ?", email)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("assign_service_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}

	var rows []assignModel.AssignService
	if err := q.Order("assign_service_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := ctl.enrich(rows)
	return helper.JsonList(c, "OK", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// ListMine: versi client — scope ke email dari token.
func (ctl *AssignServiceController) ListMine(c *fiber.Ctx) error {
	email, err := helperAuth.GetUserEmail(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email tidak ditemukan di token")
	}
	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&assignModel.AssignService{}).Preload("Renewals").
		Where("assign_service_client_email = ?", email)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data")
	}
	var rows []assignModel.AssignService
	if err := q.Order("assign_service_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	items := ctl.enrich(rows)
	return helper.JsonList(c, "OK", items, helper.BuildPaginationFromPage(total, p.Page, p.PerPage))
}

// enrich me-resolve nama client/service terkini; fallback ke snapshot.
func (ctl *AssignServiceController) enrich(rows []assignModel.AssignService) []assignDto.AssignServiceResponse {
	clientIDs := make([]uuid.UUID, 0, len(rows))
	serviceIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		clientIDs = append(clientIDs, r.AssignServiceClientID)
		serviceIDs = append(serviceIDs, r.AssignServiceServiceID)
	}

	clientNames := map[uuid.UUID]string{}
	if len(clientIDs) > 0 {
		var clients []clientModel.ClientProfile
		if err := ctl.DB.Where("client_id IN ?", clientIDs).Find(&clients).Error; err == nil {
			for _, cl := range clients {
				clientNames[cl.ClientID] = cl.ClientName
			}
		}
	}
	serviceNames := map[uuid.UUID]string{}
	if len(serviceIDs) > 0 {
		var svcs []serviceModel.Service
		if err := ctl.DB.Where("service_id IN ?", serviceIDs).Find(&svcs).Error; err == nil {
			for _, s := range svcs {
				serviceNames[s.ServiceID] = s.ServiceName
			}
		}
	}

	items := make([]assignDto.AssignServiceResponse, 0, len(rows))
	for _, r := range rows {
		items = append(items, assignDto.NewAssignServiceResponse(
			r, clientNames[r.AssignServiceClientID], serviceNames[r.AssignServiceServiceID],
		))
	}
	return items
}

/* =========================================================
   GET /api/a/assigned_services/:id
========================================================= */
func (ctl *AssignServiceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	var as assignModel.AssignService
	if err := ctl.DB.Preload("Renewals").
		First(&as, "assign_service_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}
	items := ctl.enrich([]assignModel.AssignService{as})
	return helper.JsonOK(c, "OK", items[0])
}

/* =========================================================
   GET /api/a/assign_details/:client_id/:service_catalog_id
   Detail kontrak satu pasangan client-service (yang terbaru).
========================================================= */
func (ctl *AssignServiceController) AssignDetails(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("client_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "client_id tidak valid")
	}
	serviceID, err := uuid.Parse(c.Params("service_catalog_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "service_catalog_id tidak valid")
	}

	var as assignModel.AssignService
	if err := ctl.DB.Preload("Renewals").
		Where("assign_service_client_id = ? AND assign_service_service_id = ?", clientID, serviceID).
		Order("assign_service_created_at DESC").
		First(&as).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
	}

	// Snapshot gabungan: profil client + layanan + kontrak terakhir.
	// Referensi yang sudah terhapus dibiarkan nil; FE pakai denormalized field.
	var client *clientModel.ClientProfile
	var cl clientModel.ClientProfile
	if err := ctl.DB.First(&cl, "client_id = ?", clientID).Error; err == nil {
		client = &cl
	}
	var svc *serviceModel.Service
	var sv serviceModel.Service
	if err := ctl.DB.First(&sv, "service_id = ?", serviceID).Error; err == nil {
		svc = &sv
	}

	items := ctl.enrich([]assignModel.AssignService{as})
	return helper.JsonOK(c, "OK", fiber.Map{
		"client":     client,
		"service":    svc,
		"assignment": items[0],
	})
}

/* =========================================================
   DELETE /api/a/assigned_services/:id  (soft delete)
========================================================= */
func (ctl *AssignServiceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := ctl.DB.Delete(&assignModel.AssignService{}, "assign_service_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Assignment berhasil dihapus", fiber.Map{"assign_service_id": id})
}
