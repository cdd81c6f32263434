package dto

import (
	"strings"

	studentModel "schoolquiz_backend/internals/features/users/students/model"
)

type CreateQuizRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=300"`
	TopicID uint   `json:"topic_id" validate:"required,gt=0"`
}

func (r *CreateQuizRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
}

// UpdateQuizRequest is a partial update; nil fields are left unchanged.
type UpdateQuizRequest struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Token   *string `json:"token,omitempty" validate:"omitempty,min=1,max=15"`
	Active  *bool   `json:"active,omitempty"`
	TopicID *uint   `json:"topic_id,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateQuizRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Token != nil {
		v := strings.TrimSpace(*r.Token)
		r.Token = &v
	}
}

type QuizFilter struct {
	ID    uint
	Token string

	// HideToken blanks the join token in the result (student views).
	HideToken bool
}

type ListQuizzesQuery struct {
	Page      int
	TopicID   uint
	Search    string
	Active    *bool
	Paginate  bool
	HideToken bool
}

type ValidateQuizTokenRequest struct {
	QuizID uint   `json:"quiz_id" validate:"required,gt=0"`
	Token  string `json:"token" validate:"required"`
}

/* ===============================
   Results & report
=================================*/

// StudentScore is one student's summed score on a quiz.
type StudentScore struct {
	StudentID uint `json:"student_id"`
	Score     int  `json:"score"`
}

// RankedScore is a StudentScore with its dense rank (1-based).
type RankedScore struct {
	StudentScore
	Position int `json:"position"`
}

type QuizResultRow struct {
	Score      int                        `json:"score"`
	TotalScore int                        `json:"total_score"`
	Student    *studentModel.StudentModel `json:"student"`
	Position   int                        `json:"position"`
}

// QuestionCount is the number of answers for one question in a pass or fail bucket.
type QuestionCount struct {
	QuestionID uint   `json:"question_id"`
	Question   string `json:"question"`
	Count      int    `json:"count"`
}

type ReportSeries struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

type QuizReport struct {
	Labels  []string       `json:"labels"`
	Dataset []ReportSeries `json:"dataset"`
}
