package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* Selaras dengan ENUM di PostgreSQL: invite_status */

const (
	InviteStatusPending  = "pending"
	InviteStatusAccepted = "accepted"
	InviteStatusExpired  = "expired"
)

// ClientInvite dipersist terpisah dari token-nya: status & expiry bisa
// dicek/di-expire mandiri bahkan sebelum verifikasi token.
type ClientInvite struct {
	InviteID uuid.UUID `gorm:"column:invite_id;type:uuid;default:gen_random_uuid();primaryKey" json:"invite_id"`

	InviteEmail  string    `gorm:"column:invite_email;type:varchar(160);not null;index" json:"invite_email"`
	InviteStatus string    `gorm:"column:invite_status;type:varchar(16);not null;default:'pending'" json:"invite_status"`
	InviteExpiry time.Time `gorm:"column:invite_expiry;not null" json:"invite_expiry"`

	InviteAcceptedAt *time.Time `gorm:"column:invite_accepted_at" json:"invite_accepted_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:invite_created_at;autoCreateTime" json:"invite_created_at"`
	UpdatedAt time.Time      `gorm:"column:invite_updated_at;autoUpdateTime" json:"invite_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:invite_deleted_at;index" json:"invite_deleted_at,omitempty"`
}

func (ClientInvite) TableName() string { return "client_invites" }

func (i *ClientInvite) IsExpiredAt(now time.Time) bool {
	return now.After(i.InviteExpiry)
}
