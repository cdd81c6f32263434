package dto

import (
	"strings"

	quizModel "schoolquiz_backend/internals/features/school/quizzes/model"
	"schoolquiz_backend/internals/features/users/students/model"
	userService "schoolquiz_backend/internals/features/users/user/service"
)

type CreateStudentRequest struct {
	Surname    string `json:"surname" validate:"required,min=1,max=20"`
	Othernames string `json:"othernames" validate:"required,min=1,max=40"`
	Email      string `json:"email" validate:"required,email,max=60"`
	Password   string `json:"password" validate:"required,min=4"`
	RegNo      string `json:"reg_no" validate:"required,min=1,max=100"`
	LevelID    uint   `json:"level_id" validate:"required,gt=0"`
	DeptID     uint   `json:"dept_id" validate:"required,gt=0"`
}

func (r *CreateStudentRequest) Normalize() {
	r.Surname = strings.TrimSpace(r.Surname)
	r.Othernames = strings.TrimSpace(r.Othernames)
	r.Email = userService.NormalizeEmail(r.Email)
	r.RegNo = strings.TrimSpace(r.RegNo)
}

type UpdateStudentRequest struct {
	Surname    *string `json:"surname,omitempty" validate:"omitempty,min=1,max=20"`
	Othernames *string `json:"othernames,omitempty" validate:"omitempty,min=1,max=40"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email,max=60"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=4"`
	RegNo      *string `json:"reg_no,omitempty" validate:"omitempty,min=1,max=100"`
	LevelID    *uint   `json:"level_id,omitempty" validate:"omitempty,gt=0"`
	DeptID     *uint   `json:"dept_id,omitempty" validate:"omitempty,gt=0"`
}

func (r *UpdateStudentRequest) AccountUpdates() userService.AccountUpdates {
	return userService.AccountUpdates{
		Surname:    r.Surname,
		Othernames: r.Othernames,
		Email:      r.Email,
		Password:   r.Password,
	}
}

type ListStudentsQuery struct {
	Page    int
	Search  string
	DeptID  uint
	LevelID uint
}

type StudentFilter struct {
	ID     uint
	UserID uint
	RegNo  string
}

/* =======================================================
   RESULTS
   ======================================================= */

// QuizResult is a student's running total on one quiz.
type QuizResult struct {
	Score      int                 `json:"score"`
	TotalScore int                 `json:"total_score"`
	Student    *model.StudentModel `json:"student"`
}

// QuizzesResultItem is a student's total on one of the quizzes they took.
type QuizzesResultItem struct {
	Score      int                  `json:"score"`
	TotalScore int                  `json:"total_score"`
	Quiz       *quizModel.QuizModel `json:"quiz"`
}
