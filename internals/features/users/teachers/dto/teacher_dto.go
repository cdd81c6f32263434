package dto

import (
	"strings"

	userService "schoolquiz_backend/internals/features/users/user/service"
)

type CreateTeacherRequest struct {
	Surname    string `json:"surname" validate:"required,min=1,max=20"`
	Othernames string `json:"othernames" validate:"required,min=1,max=40"`
	Email      string `json:"email" validate:"required,email,max=60"`
	Password   string `json:"password" validate:"required,min=4"`
	DeptID     uint   `json:"dept_id" validate:"required,gt=0"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.Surname = strings.TrimSpace(r.Surname)
	r.Othernames = strings.TrimSpace(r.Othernames)
	r.Email = userService.NormalizeEmail(r.Email)
}

type UpdateTeacherRequest struct {
	Surname    *string `json:"surname,omitempty" validate:"omitempty,min=1,max=20"`
	Othernames *string `json:"othernames,omitempty" validate:"omitempty,min=1,max=40"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=60"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=4"`
	DeptID     *uint   `json:"dept_id,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateTeacherRequest) AccountUpdates() userService.AccountUpdates {
	return userService.AccountUpdates{
		Surname:    r.Surname,
		Othernames: r.Othernames,
		Email:      r.Email,
		Password:   r.Password,
	}
}

type ListTeachersQuery struct {
	Page   int
	Search string
	DeptID uint
}

type TeacherFilter struct {
	ID     uint
	UserID uint
}

type TeacherDashboardStats struct {
	Students int64 `json:"students"`
	Courses  int64 `json:"courses"`
}
