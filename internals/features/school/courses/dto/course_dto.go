package dto

import "strings"

type CreateCourseRequest struct {
	Code      string `json:"code" validate:"required,min=1,max=10"`
	Title     string `json:"title" validate:"required,min=1,max=150"`
	TeacherID uint   `json:"teacher_id" validate:"required,gt=0"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Title = strings.TrimSpace(r.Title)
}

type UpdateCourseRequest struct {
	Code      *string `json:"code,omitempty" validate:"omitempty,min=1,max=10"`
	Title     *string `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	TeacherID *uint   `json:"teacher_id,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateCourseRequest) Normalize() {
	if r.Code != nil {
		v := strings.ToUpper(strings.TrimSpace(*r.Code))
		r.Code = &v
	}
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
}

type ListCoursesQuery struct {
	Page      int
	Search    string
	TeacherID uint
	Paginate  bool
}
