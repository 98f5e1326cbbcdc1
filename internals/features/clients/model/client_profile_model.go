package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientProfile struct {
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;default:gen_random_uuid();primaryKey" json:"client_id"`

	ClientName     string  `gorm:"column:client_name;type:varchar(160);not null" json:"client_name"`
	ClientEmail    string  `gorm:"column:client_email;type:varchar(160);not null;uniqueIndex:uq_client_profiles_email,where:client_deleted_at IS NULL" json:"client_email"`
	ClientPhone    *string `gorm:"column:client_phone;type:varchar(32)" json:"client_phone,omitempty"`
	ClientCompany  *string `gorm:"column:client_company;type:varchar(160)" json:"client_company,omitempty"`
	ClientImageURL *string `gorm:"column:client_image_url" json:"client_image_url,omitempty"` // URL dari storage eksternal

	ClientEmailVerifiedAt *time.Time `gorm:"column:client_email_verified_at" json:"client_email_verified_at,omitempty"`

	CreatedAt time.Time      `gorm:"column:client_created_at;autoCreateTime" json:"client_created_at"`
	UpdatedAt time.Time      `gorm:"column:client_updated_at;autoUpdateTime" json:"client_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:client_deleted_at;index" json:"client_deleted_at,omitempty"`
}

func (ClientProfile) TableName() string { return "client_profiles" }
