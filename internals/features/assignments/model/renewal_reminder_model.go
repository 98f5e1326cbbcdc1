package model

import (
	"time"

	"github.com/google/uuid"
)

// RenewalReminder = marker "reminder sudah terkirim" per (renewal, offset).
// Dicek sebelum kirim supaya re-run scheduler di hari yang sama (restart
// proses dsb) tidak mengirim ulang reminder yang sama.
type RenewalReminder struct {
	ReminderID uuid.UUID `gorm:"column:reminder_id;type:uuid;default:gen_random_uuid();primaryKey" json:"reminder_id"`

	ReminderRenewalID  uuid.UUID `gorm:"column:reminder_renewal_id;type:uuid;not null;uniqueIndex:uq_renewal_reminders,priority:1" json:"reminder_renewal_id"`
	ReminderOffsetDays int       `gorm:"column:reminder_offset_days;not null;uniqueIndex:uq_renewal_reminders,priority:2" json:"reminder_offset_days"`

	ReminderSentOn time.Time `gorm:"column:reminder_sent_on;type:date;not null" json:"reminder_sent_on"`

	CreatedAt time.Time `gorm:"column:reminder_created_at;autoCreateTime" json:"reminder_created_at"`
}

func (RenewalReminder) TableName() string { return "renewal_reminders" }
