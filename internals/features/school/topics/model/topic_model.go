package model

import (
	"time"

	"gorm.io/gorm"

	courseModel "schoolquiz_backend/internals/features/school/courses/model"
)

type TopicModel struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	Title       string `gorm:"column:title;size:150;not null" json:"title"`
	Description string `gorm:"column:description;size:300" json:"description"`
	CourseID    uint   `gorm:"column:course_id;not null;index:idx_topics_course" json:"course_id"`

	Course *courseModel.CourseModel `gorm:"foreignKey:CourseID;references:ID" json:"course,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (TopicModel) TableName() string {
	return "topics"
}
