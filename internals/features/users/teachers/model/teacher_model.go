package model

import (
	"time"

	"gorm.io/gorm"

	departmentModel "schoolquiz_backend/internals/features/school/departments/model"
	userModel "schoolquiz_backend/internals/features/users/user/model"
)

type TeacherModel struct {
	ID     uint `gorm:"column:id;primaryKey" json:"id"`
	UserID uint `gorm:"column:user_id;not null;index:idx_teachers_user" json:"user_id"`
	DeptID uint `gorm:"column:dept_id;not null;index:idx_teachers_dept" json:"dept_id"`

	User       *userModel.UserModel             `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Department *departmentModel.DepartmentModel `gorm:"foreignKey:DeptID;references:ID" json:"department,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
