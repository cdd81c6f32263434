package model

import (
	"time"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
)

/* ============================================================================
   MODEL: questions
   - answer is compared case-insensitively with a student's submission
   - timeout in seconds
============================================================================ */
type QuestionModel struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Question string `gorm:"column:question;size:300;not null" json:"question"`
	Answer   string `gorm:"column:answer;size:300;not null" json:"answer"`
	Timeout  int    `gorm:"column:timeout;not null;default:30" json:"timeout"`
	Score    int    `gorm:"column:score;not null;default:1" json:"score"`
	QuizID   uint   `gorm:"column:quiz_id;not null;index:idx_questions_quiz" json:"quiz_id"`

	Options []OptionModel `gorm:"foreignKey:QuestionID;references:ID" json:"options,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (QuestionModel) TableName() string {
	return "questions"
}

func (q *QuestionModel) BeforeCreate(tx *gorm.DB) error {
	if q.Timeout <= 0 {
		q.Timeout = constants.QuestionTimeoutSec
	}
	if q.Score <= 0 {
		q.Score = constants.QuestionScore
	}
	return nil
}

/* ============================================================================
   MODEL: options
============================================================================ */
type OptionModel struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	Option     string `gorm:"column:option;size:300;not null" json:"option"`
	QuestionID uint   `gorm:"column:question_id;not null;index:idx_options_question" json:"question_id"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (OptionModel) TableName() string {
	return "options"
}
