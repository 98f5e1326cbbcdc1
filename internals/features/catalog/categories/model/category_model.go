package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	CategoryID uuid.UUID `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`

	CategoryName        string  `gorm:"column:category_name;type:varchar(120);not null;uniqueIndex:uq_categories_name,where:category_deleted_at IS NULL" json:"category_name"`
	CategoryDescription *string `gorm:"column:category_description" json:"category_description,omitempty"`
	CategoryIsActive    bool    `gorm:"column:category_is_active;not null;default:true" json:"category_is_active"`

	CreatedAt time.Time      `gorm:"column:category_created_at;autoCreateTime" json:"category_created_at"`
	UpdatedAt time.Time      `gorm:"column:category_updated_at;autoUpdateTime" json:"category_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"category_deleted_at,omitempty"`
}

func (Category) TableName() string { return "categories" }
