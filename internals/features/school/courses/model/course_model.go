package model

import (
	"time"

	"gorm.io/gorm"

	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
)

type CourseModel struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	Code      string `gorm:"column:code;size:10;not null;uniqueIndex:idx_courses_code" json:"code"`
	Title     string `gorm:"column:title;size:150;not null" json:"title"`
	TeacherID uint   `gorm:"column:teacher_id;not null;index:idx_courses_teacher" json:"teacher_id"`

	Teacher *teacherModel.TeacherModel `gorm:"foreignKey:TeacherID;references:ID" json:"teacher,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (CourseModel) TableName() string {
	return "courses"
}
