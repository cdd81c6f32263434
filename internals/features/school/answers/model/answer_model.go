package model

import (
	"time"

	"gorm.io/gorm"

	questionModel "schoolquiz_backend/internals/features/school/questions/model"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
)

/* ============================================================================
   MODEL: answers
   - one row per (student, question); the unique index enforces it
   - score is the awarded score, 0 for a wrong answer
============================================================================ */
type AnswerModel struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	QuestionID uint   `gorm:"column:question_id;not null;uniqueIndex:uq_answers_student_question,priority:2;index:idx_answers_question" json:"question_id"`
	StudentID  uint   `gorm:"column:student_id;not null;uniqueIndex:uq_answers_student_question,priority:1" json:"student_id"`
	QuizID     uint   `gorm:"column:quiz_id;not null;index:idx_answers_quiz" json:"quiz_id"`
	Answer     string `gorm:"column:answer;size:300;not null" json:"answer"`
	Score      int    `gorm:"column:score;not null;default:0" json:"score"`

	Student  *studentModel.StudentModel   `gorm:"foreignKey:StudentID;references:ID" json:"student,omitempty"`
	Question *questionModel.QuestionModel `gorm:"foreignKey:QuestionID;references:ID" json:"question,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
