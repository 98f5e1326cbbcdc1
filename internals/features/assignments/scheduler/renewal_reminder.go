// file: internals/features/assignments/scheduler/renewal_reminder.go
package scheduler

import (
	"log"
	"math"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"layananku_backend/internals/configs"
	assignModel "layananku_backend/internals/features/assignments/model"
	clientModel "layananku_backend/internals/features/clients/model"
	notifService "layananku_backend/internals/features/notifications/service"
)

// ReminderOffsets: kirim reminder H-7, H-3, dan H-1 sebelum due date.
var ReminderOffsets = []int{7, 3, 1}

// DaysUntilDue menghitung selisih hari kalender (berbasis midnight lokal),
// bukan selisih 24 jam — due besok jam 01:00 tetap dihitung 1 hari.
func DaysUntilDue(now, due time.Time) int {
	nowMid := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueMid := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location())
	// Round, bukan truncate: hari transisi DST panjangnya 23/25 jam
	return int(math.Round(dueMid.Sub(nowMid).Hours() / 24))
}

// MatchOffset: true kalau daysLeft tepat di salah satu offset reminder.
func MatchOffset(daysLeft int) bool {
	for _, off := range ReminderOffsets {
		if daysLeft == off {
			return true
		}
	}
	return false
}

// StartRenewalReminderCron menjadwalkan sweep harian reminder renewal.
// Jadwal dari REMINDER_CRON (default 08:00 tiap hari). SkipIfStillRunning
// mencegah run dobel kalau sweep sebelumnya belum selesai.
func StartRenewalReminderCron(db *gorm.DB, mailer notifService.Mailer) {
	spec := configs.GetEnv("REMINDER_CRON", "0 8 * * *")

	c := cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))
	if _, err := c.AddFunc(spec, func() {
		RunReminderSweep(db, mailer, time.Now())
	}); err != nil {
		log.Printf("[REMINDER] gagal daftar cron (%s): %v", spec, err)
		return
	}
	c.Start()
	log.Printf("[REMINDER] cron aktif (spec=%s)", spec)
}

// RunReminderSweep memindai renewal belum dibayar yang punya due date,
// dan mengirim email reminder untuk yang jatuh tepat di offset H-7/H-3/H-1.
// Idempoten: marker (renewal_id, offset_days) dicek sebelum kirim dan
// ditulis setelah kirim sukses, jadi tiap offset maksimal satu email.
func RunReminderSweep(db *gorm.DB, mailer notifService.Mailer, now time.Time) {
	start := time.Now()

	type candidate struct {
		assignModel.AssignServiceRenewal
		AssignServiceClientID    string `gorm:"column:assign_service_client_id"`
		AssignServiceServiceName string `gorm:"column:assign_service_service_name"`
		AssignServiceClientEmail string `gorm:"column:assign_service_client_email"`
		AssignServiceClientName  string `gorm:"column:assign_service_client_name"`
	}

	var rows []candidate
	err := db.Table("assign_service_renewals").
		Select("assign_service_renewals.*, assign_services.assign_service_client_id, assign_services.assign_service_service_name, assign_services.assign_service_client_email, assign_services.assign_service_client_name").
		Joins("JOIN assign_services ON assign_services.assign_service_id = assign_service_renewals.renewal_assign_service_id").
		Where("assign_service_renewals.renewal_haspaid = FALSE").
		Where("assign_service_renewals.renewal_due_date IS NOT NULL").
		Where("assign_services.assign_service_deleted_at IS NULL").
		Where("assign_services.assign_service_status = ?", assignModel.AssignStatusActive).
		Find(&rows).Error
	if err != nil {
		log.Printf("[REMINDER] scan gagal: %v", err)
		return
	}

	sent, skipped := 0, 0
	for _, row := range rows {
		daysLeft := DaysUntilDue(now, *row.RenewalDueDate)
		if !MatchOffset(daysLeft) {
			continue
		}

		// Sudah pernah dikirim untuk offset ini?
		var marked int64
		if err := db.Model(&assignModel.RenewalReminder{}).
			Where("reminder_renewal_id = ? AND reminder_offset_days = ?", row.RenewalID, daysLeft).
			Count(&marked).Error; err != nil {
			log.Printf("[REMINDER] cek marker gagal (renewal=%s): %v", row.RenewalID, err)
			continue
		}
		if marked > 0 {
			skipped++
			continue
		}

		// Resolve profil; email dari profil lebih dipercaya daripada snapshot
		to := row.AssignServiceClientEmail
		name := row.AssignServiceClientName
		var client clientModel.ClientProfile
		if err := db.First(&client, "client_id = ?", row.AssignServiceClientID).Error; err == nil {
			to = client.ClientEmail
			name = client.ClientName
		}
		if to == "" {
			log.Printf("[REMINDER] skip renewal %s: email client tidak resolve", row.RenewalID)
			continue
		}

		subject, html := notifService.RenewalReminderEmail(
			name,
			row.AssignServiceServiceName,
			row.RenewalLabel,
			*row.RenewalDueDate,
			row.RenewalPrice,
			configs.DefaultCurrency,
			daysLeft,
		)
		if ok := mailer.Send(to, subject, html); !ok {
			log.Printf("[REMINDER] kirim gagal (renewal=%s, to=%s)", row.RenewalID, to)
			continue // marker tidak ditulis → dicoba lagi di sweep berikutnya
		}

		marker := assignModel.RenewalReminder{
			ReminderRenewalID:  row.RenewalID,
			ReminderOffsetDays: daysLeft,
			ReminderSentOn:     now,
		}
		if err := db.Create(&marker).Error; err != nil {
			// Unique index menahan duplikat kalau dua sweep balapan
			log.Printf("[REMINDER] tulis marker gagal (renewal=%s, offset=%d): %v", row.RenewalID, daysLeft, err)
			continue
		}
		sent++
	}

	log.Printf("[REMINDER] sweep selesai: kandidat=%d terkirim=%d skip=%d durasi=%s",
		len(rows), sent, skipped, time.Since(start))
}
