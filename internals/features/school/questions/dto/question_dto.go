package dto

import (
	"strings"

	"schoolquiz_backend/internals/constants"
)

type CreateQuestionRequest struct {
	Question string   `json:"question" validate:"required,min=1,max=300"`
	Answer   string   `json:"answer" validate:"required,min=1,max=300"`
	Timeout  int      `json:"timeout" validate:"omitempty,gte=0"`
	Score    int      `json:"score" validate:"omitempty,gte=0"`
	QuizID   uint     `json:"quiz_id" validate:"required,gt=0"`
	Options  []string `json:"options" validate:"omitempty,dive,min=1,max=300"`
}

func (r *CreateQuestionRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
	r.Answer = strings.TrimSpace(r.Answer)
	opts := r.Options[:0]
	for _, o := range r.Options {
		if o = strings.TrimSpace(o); o != "" {
			opts = append(opts, o)
		}
	}
	r.Options = opts
}

type UpdateQuestionRequest struct {
	Question *string `json:"question,omitempty" validate:"omitempty,min=1,max=300"`
	Answer   *string `json:"answer,omitempty" validate:"omitempty,min=1,max=300"`
	Timeout  *int    `json:"timeout,omitempty" validate:"omitempty,gt=0"`
	Score    *int    `json:"score,omitempty" validate:"omitempty,gt=0"`
}

// Updates maps the set fields to their columns.
func (r *UpdateQuestionRequest) Updates() map[string]any {
	m := map[string]any{}
	if r.Question != nil {
		m["question"] = strings.TrimSpace(*r.Question)
	}
	if r.Answer != nil {
		m["answer"] = strings.TrimSpace(*r.Answer)
	}
	if r.Timeout != nil {
		m["timeout"] = *r.Timeout
	}
	if r.Score != nil {
		m["score"] = *r.Score
	}
	return m
}

// QuestionViewer is who is listing questions. Students only see what they
// have not answered yet.
type QuestionViewer struct {
	Type      constants.UserType
	StudentID uint
}

type ListQuestionsQuery struct {
	Page     int
	QuizID   uint
	Viewer   QuestionViewer
	Search   string
	Paginate bool
	// Since is a unix time in milliseconds; only questions created at or after it are listed.
	Since int64
}

type CreateOptionRequest struct {
	QuestionID uint   `json:"question_id" validate:"required,gt=0"`
	Option     string `json:"option" validate:"required,min=1,max=300"`
}

type UpdateOptionRequest struct {
	Option string `json:"option" validate:"required,min=1,max=300"`
}

/* ===============================
   Upload
=================================*/

// UploadRow is one parsed line of a question sheet.
type UploadRow struct {
	Line     int
	Score    int
	Timeout  int
	Question string
	Answer   string
	Options  []string
	Err      error
}

type UploadResult struct {
	Inserted int `json:"inserted"`
	Failed   int `json:"failed"`
}
