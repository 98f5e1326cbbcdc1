// file: internals/features/catalog/services/dto/service_dto.go
package dto

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	model "layananku_backend/internals/features/catalog/services/model"
)

/* ================= REQUEST: Create ================= */

type CreateServiceRequest struct {
	ServiceName        string  `json:"service_name" validate:"required,max=160"`
	ServiceDescription string  `json:"service_description" validate:"required"`
	ServicePrice       float64 `json:"service_price" validate:"required,gt=0"`
	ServiceCurrency    string  `json:"service_currency" validate:"required,max=8"`
	ServiceBillingType string  `json:"service_billing_type" validate:"required,oneof=one_time recurring"`

	ServiceCategoryID   uuid.UUID `json:"service_category_id" validate:"required"`
	ServiceDurationDays int       `json:"service_duration_days" validate:"required,gt=0"`
	ServiceImageURL     *string   `json:"service_image_url" validate:"omitempty,url"`

	ServiceHasDiscount       *bool    `json:"service_has_discount"`
	ServiceDiscountType      *string  `json:"service_discount_type" validate:"omitempty,oneof=percentage fixed"`
	ServiceDiscountValue     *float64 `json:"service_discount_value" validate:"omitempty,gt=0"`
	ServiceDiscountStartDate *string  `json:"service_discount_start_date" validate:"omitempty,datetime=2006-01-02"`
	ServiceDiscountEndDate   *string  `json:"service_discount_end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateServiceRequest) ToModel() (*model.Service, error) {
	desc := r.ServiceDescription
	svc := &model.Service{
		ServiceName:         r.ServiceName,
		ServiceDescription:  &desc,
		ServicePrice:        r.ServicePrice,
		ServiceCurrency:     r.ServiceCurrency,
		ServiceBillingType:  r.ServiceBillingType,
		ServiceCategoryID:   r.ServiceCategoryID,
		ServiceDurationDays: r.ServiceDurationDays,
		ServiceImageURL:     r.ServiceImageURL,
	}

	if r.ServiceHasDiscount != nil && *r.ServiceHasDiscount {
		if err := validateDiscount(r.ServiceDiscountType, r.ServiceDiscountValue, r.ServiceDiscountStartDate, r.ServiceDiscountEndDate); err != nil {
			return nil, err
		}
		svc.ServiceHasDiscount = true
		svc.ServiceDiscountType = r.ServiceDiscountType
		svc.ServiceDiscountValue = r.ServiceDiscountValue
		if t, err := parseDateYMD(*r.ServiceDiscountStartDate); err == nil {
			svc.ServiceDiscountStartDate = &t
		}
		if t, err := parseDateYMD(*r.ServiceDiscountEndDate); err == nil {
			svc.ServiceDiscountEndDate = &t
		}
	}
	return svc, nil
}

/* ================= REQUEST: Patch (allow-list) ================= */

type PatchServiceRequest struct {
	ServiceName        *string  `json:"service_name" validate:"omitempty,max=160"`
	ServiceDescription *string  `json:"service_description"`
	ServicePrice       *float64 `json:"service_price" validate:"omitempty,gt=0"`
	ServiceCurrency    *string  `json:"service_currency" validate:"omitempty,max=8"`
	ServiceBillingType *string  `json:"service_billing_type" validate:"omitempty,oneof=one_time recurring"`

	ServiceCategoryID   *uuid.UUID `json:"service_category_id"`
	ServiceDurationDays *int       `json:"service_duration_days" validate:"omitempty,gt=0"`
	ServiceImageURL     *string    `json:"service_image_url" validate:"omitempty,url"`

	ServiceHasDiscount       *bool    `json:"service_has_discount"`
	ServiceDiscountType      *string  `json:"service_discount_type" validate:"omitempty,oneof=percentage fixed"`
	ServiceDiscountValue     *float64 `json:"service_discount_value" validate:"omitempty,gt=0"`
	ServiceDiscountStartDate *string  `json:"service_discount_start_date" validate:"omitempty,datetime=2006-01-02"`
	ServiceDiscountEndDate   *string  `json:"service_discount_end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *PatchServiceRequest) ApplyTo(svc *model.Service) error {
	if r.ServiceName != nil {
		svc.ServiceName = *r.ServiceName
	}
	if r.ServiceDescription != nil {
		svc.ServiceDescription = r.ServiceDescription
	}
	if r.ServicePrice != nil {
		svc.ServicePrice = *r.ServicePrice
	}
	if r.ServiceCurrency != nil {
		svc.ServiceCurrency = *r.ServiceCurrency
	}
	if r.ServiceBillingType != nil {
		svc.ServiceBillingType = *r.ServiceBillingType
	}
	if r.ServiceCategoryID != nil {
		svc.ServiceCategoryID = *r.ServiceCategoryID
	}
	if r.ServiceDurationDays != nil {
		svc.ServiceDurationDays = *r.ServiceDurationDays
	}
	if r.ServiceImageURL != nil {
		svc.ServiceImageURL = r.ServiceImageURL
	}

	if r.ServiceHasDiscount != nil {
		if *r.ServiceHasDiscount {
			if err := validateDiscount(r.ServiceDiscountType, r.ServiceDiscountValue, r.ServiceDiscountStartDate, r.ServiceDiscountEndDate); err != nil {
				return err
			}
			svc.ServiceHasDiscount = true
			svc.ServiceDiscountType = r.ServiceDiscountType
			svc.ServiceDiscountValue = r.ServiceDiscountValue
			if t, err := parseDateYMD(*r.ServiceDiscountStartDate); err == nil {
				svc.ServiceDiscountStartDate = &t
			}
			if t, err := parseDateYMD(*r.ServiceDiscountEndDate); err == nil {
				svc.ServiceDiscountEndDate = &t
			}
		} else {
			svc.ClearDiscount()
		}
	}
	return nil
}

/* ================= Internal ================= */

func validateDiscount(dtype *string, value *float64, start, end *string) error {
	if dtype == nil || value == nil || start == nil || end == nil {
		return fiber.NewError(fiber.StatusBadRequest, "discount membutuhkan type, value, start_date, dan end_date")
	}
	if *dtype == model.DiscountTypePercentage && *value > 100 {
		return fiber.NewError(fiber.StatusBadRequest, "discount percentage tidak boleh lebih dari 100")
	}
	s, err1 := parseDateYMD(*start)
	e, err2 := parseDateYMD(*end)
	if err1 != nil || err2 != nil || !s.Before(e) {
		return fiber.NewError(fiber.StatusBadRequest, "discount window tidak valid (start harus sebelum end)")
	}
	return nil
}

func parseDateYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
