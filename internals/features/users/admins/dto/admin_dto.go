package dto

import (
	"strings"

	userService "schoolquiz_backend/internals/features/users/user/service"
)

type CreateAdminRequest struct {
	Surname    string `json:"surname" validate:"required,min=1,max=20"`
	Othernames string `json:"othernames" validate:"required,min=1,max=40"`
	Email      string `json:"email" validate:"required,email,max=60"`
	Password   string `json:"password" validate:"required,min=4"`
}

func (r *CreateAdminRequest) Normalize() {
	r.Surname = strings.TrimSpace(r.Surname)
	r.Othernames = strings.TrimSpace(r.Othernames)
	r.Email = userService.NormalizeEmail(r.Email)
}

// UpdateAdminRequest is a partial update; nil fields are left unchanged.
type UpdateAdminRequest struct {
	Surname    *string `json:"surname,omitempty" validate:"omitempty,min=1,max=20"`
	Othernames *string `json:"othernames,omitempty" validate:"omitempty,min=1,max=40"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=60"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=4"`
}

func (r *UpdateAdminRequest) AccountUpdates() userService.AccountUpdates {
	return userService.AccountUpdates{
		Surname:    r.Surname,
		Othernames: r.Othernames,
		Email:      r.Email,
		Password:   r.Password,
	}
}

type ListAdminsQuery struct {
	Page   int
	Search string
}

// AdminFilter selects one admin by its own id or by its user id.
type AdminFilter struct {
	ID     uint
	UserID uint
}

type AdminDashboardStats struct {
	Admins      int64 `json:"admins"`
	Teachers    int64 `json:"teachers"`
	Students    int64 `json:"students"`
	Departments int64 `json:"departments"`
}
