package model

import (
	"time"

	"gorm.io/gorm"

	topicModel "schoolquiz_backend/internals/features/school/topics/model"
)

/* ============================================================================
   MODEL: quizzes
   - token: 12 hex chars students present before answering
   - active: answers are accepted only while true
============================================================================ */
type QuizModel struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	Token   string `gorm:"column:token;size:15;not null" json:"token"`
	Title   string `gorm:"column:title;size:300;not null;index:idx_quizzes_title" json:"title"`
	Active  bool   `gorm:"column:active;not null;default:false" json:"active"`
	TopicID uint   `gorm:"column:topic_id;not null;index:idx_quizzes_topic" json:"topic_id"`

	Topic *topicModel.TopicModel `gorm:"foreignKey:TopicID;references:ID" json:"topic,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (QuizModel) TableName() string {
	return "quizzes"
}
