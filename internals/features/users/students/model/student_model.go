package model

import (
	"time"

	"gorm.io/gorm"

	departmentModel "schoolquiz_backend/internals/features/school/departments/model"
	levelModel "schoolquiz_backend/internals/features/school/levels/model"
	userModel "schoolquiz_backend/internals/features/users/user/model"
)

type StudentModel struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	UserID  uint   `gorm:"column:user_id;not null;index:idx_students_user" json:"user_id"`
	RegNo   string `gorm:"column:reg_no;size:100;not null;index:idx_students_reg_no" json:"reg_no"`
	LevelID uint   `gorm:"column:level_id;not null;index:idx_students_level" json:"level_id"`
	DeptID  uint   `gorm:"column:dept_id;not null;index:idx_students_dept" json:"dept_id"`

	User       *userModel.UserModel             `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Level      *levelModel.LevelModel           `gorm:"foreignKey:LevelID;references:ID" json:"level,omitempty"`
	Department *departmentModel.DepartmentModel `gorm:"foreignKey:DeptID;references:ID" json:"department,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string {
	return "students"
}
