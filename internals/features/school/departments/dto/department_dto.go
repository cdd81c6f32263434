package dto

import "strings"

type DepartmentRequest struct {
	Name string `json:"name" validate:"required,min=1,max=150"`
}

func (r *DepartmentRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type ListDepartmentsQuery struct {
	Page     int
	Search   string
	Paginate bool
}
