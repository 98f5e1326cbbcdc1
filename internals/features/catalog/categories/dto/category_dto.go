// file: internals/features/catalog/categories/dto/category_dto.go
package dto

import (
	model "layananku_backend/internals/features/catalog/categories/model"
)

/* ================= REQUEST: Create ================= */

type CreateCategoryRequest struct {
	CategoryName        string  `json:"category_name" validate:"required,max=120"`
	CategoryDescription *string `json:"category_description"`
	CategoryIsActive    *bool   `json:"category_is_active"`
}

func (r *CreateCategoryRequest) ToModel() *model.Category {
	cat := &model.Category{
		CategoryName:        r.CategoryName,
		CategoryDescription: r.CategoryDescription,
		CategoryIsActive:    true, // default true
	}
	if r.CategoryIsActive != nil {
		cat.CategoryIsActive = *r.CategoryIsActive
	}
	return cat
}

/* ================= REQUEST: Patch (allow-list) ================= */

type PatchCategoryRequest struct {
	CategoryName        *string `json:"category_name" validate:"omitempty,max=120"`
	CategoryDescription *string `json:"category_description"`
	CategoryIsActive    *bool   `json:"category_is_active"`
}

func (r *PatchCategoryRequest) ApplyTo(cat *model.Category) {
	if r.CategoryName != nil {
		cat.CategoryName = *r.CategoryName
	}
	if r.CategoryDescription != nil {
		cat.CategoryDescription = r.CategoryDescription
	}
	if r.CategoryIsActive != nil {
		cat.CategoryIsActive = *r.CategoryIsActive
	}
}
