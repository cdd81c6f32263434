package dto

import (
	"strings"

	adminModel "schoolquiz_backend/internals/features/users/admins/model"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
	uModel "schoolquiz_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UserFilter selects one user by id or email.
type UserFilter struct {
	ID    uint
	Email string
}

// UpdateUserRequest is a partial profile update; nil fields are left unchanged.
type UpdateUserRequest struct {
	Surname    *string `json:"surname,omitempty" validate:"omitempty,min=1,max=20"`
	Othernames *string `json:"othernames,omitempty" validate:"omitempty,min=1,max=40"`
	Avatar     *string `json:"avatar,omitempty" validate:"omitempty,max=300"`
}

func (r *UpdateUserRequest) Normalize() {
	trim := func(p *string) {
		if p != nil {
			*p = strings.TrimSpace(*p)
		}
	}
	trim(r.Surname)
	trim(r.Othernames)
	trim(r.Avatar)
}

// Updates returns the column map for a partial update.
func (r *UpdateUserRequest) Updates() map[string]any {
	m := map[string]any{}
	if r.Surname != nil {
		m["surname"] = *r.Surname
	}
	if r.Othernames != nil {
		m["othernames"] = *r.Othernames
	}
	if r.Avatar != nil {
		m["avatar"] = *r.Avatar
	}
	return m
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserProfile is a user with whichever role record it owns.
type UserProfile struct {
	uModel.UserModel
	Admin   *adminModel.AdminModel     `json:"admin,omitempty"`
	Teacher *teacherModel.TeacherModel `json:"teacher,omitempty"`
	Student *studentModel.StudentModel `json:"student,omitempty"`
}
