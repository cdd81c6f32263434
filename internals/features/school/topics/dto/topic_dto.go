package dto

import "strings"

type CreateTopicRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=150"`
	Description string `json:"description" validate:"omitempty,max=300"`
	CourseID    uint   `json:"course_id" validate:"required,gt=0"`
}

func (r *CreateTopicRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

type UpdateTopicRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=300"`
}

func (r *UpdateTopicRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

type ListTopicsQuery struct {
	Page     int
	CourseID uint
	Search   string
	Paginate bool
}
