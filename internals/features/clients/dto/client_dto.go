// file: internals/features/clients/dto/client_dto.go
package dto

import (
	"strings"

	model "layananku_backend/internals/features/clients/model"
)

/* ================= REQUEST: Create client profile ================= */

type CreateClientRequest struct {
	ClientName     string  `json:"client_name" validate:"required,max=160"`
	ClientEmail    string  `json:"client_email" validate:"required,email,max=160"`
	ClientPhone    *string `json:"client_phone" validate:"omitempty,max=32"`
	ClientCompany  *string `json:"client_company" validate:"omitempty,max=160"`
	ClientImageURL *string `json:"client_image_url" validate:"omitempty,url"`
}

func (r *CreateClientRequest) ToModel() *model.ClientProfile {
	return &model.ClientProfile{
		ClientName:     strings.TrimSpace(r.ClientName),
		ClientEmail:    strings.ToLower(strings.TrimSpace(r.ClientEmail)),
		ClientPhone:    r.ClientPhone,
		ClientCompany:  r.ClientCompany,
		ClientImageURL: r.ClientImageURL,
	}
}

/* ================= REQUEST: Patch (allow-list) ================= */

type PatchClientRequest struct {
	ClientName     *string `json:"client_name" validate:"omitempty,max=160"`
	ClientPhone    *string `json:"client_phone" validate:"omitempty,max=32"`
	ClientCompany  *string `json:"client_company" validate:"omitempty,max=160"`
	ClientImageURL *string `json:"client_image_url" validate:"omitempty,url"`
}

func (r *PatchClientRequest) ApplyTo(p *model.ClientProfile) {
	if r.ClientName != nil {
		p.ClientName = strings.TrimSpace(*r.ClientName)
	}
	if r.ClientPhone != nil {
		p.ClientPhone = r.ClientPhone
	}
	if r.ClientCompany != nil {
		p.ClientCompany = r.ClientCompany
	}
	if r.ClientImageURL != nil {
		p.ClientImageURL = r.ClientImageURL
	}
}

/* ================= REQUEST: Invite ================= */

type CreateInviteRequest struct {
	InviteEmail string `json:"invite_email" validate:"required,email,max=160"`
}

type AcceptInviteRequest struct {
	Token string `json:"token" validate:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}
