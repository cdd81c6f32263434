package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/answers/dto"
	"schoolquiz_backend/internals/features/school/answers/model"
	questionModel "schoolquiz_backend/internals/features/school/questions/model"
	quizModel "schoolquiz_backend/internals/features/school/quizzes/model"
	studentService "schoolquiz_backend/internals/features/users/students/service"
	helper "schoolquiz_backend/internals/helpers"
)

const (
	msgQuizStopped     = "Quiz has been stopped! The quiz report will be displayed shortly."
	msgAlreadyAnswered = "Already answered"
)

type AnswerService struct {
	DB       *gorm.DB
	students *studentService.StudentService
}

func NewAnswerService(db *gorm.DB) *AnswerService {
	return &AnswerService{DB: db, students: studentService.NewStudentService(db)}
}

// SameAnswer compares a submission with the stored answer ignoring case and
// surrounding space.
func SameAnswer(submitted, expected string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(submitted)) == fold.String(strings.TrimSpace(expected))
}

// MarkAnswer is the score awarded for submitted on q.
func MarkAnswer(q questionModel.QuestionModel, submitted string) int {
	if SameAnswer(submitted, q.Answer) {
		return q.Score
	}
	return 0
}

// CreateAnswer scores and stores studentID's answer, then returns the
// student's running result on the quiz.
func (s *AnswerService) CreateAnswer(ctx context.Context, studentID uint, req dto.CreateAnswerRequest) helper.Feedback {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var quiz quizModel.QuizModel
		if err := tx.First(&quiz, req.QuizID).Error; err != nil {
			return helper.RecordErr(err, "Quiz not found")
		}
		if !quiz.Active {
			return helper.BadRequest(msgQuizStopped)
		}

		var question questionModel.QuestionModel
		if err := tx.Where("id = ? AND quiz_id = ?", req.QuestionID, req.QuizID).First(&question).Error; err != nil {
			return helper.RecordErr(err, "Question not found")
		}

		var n int64
		if err := tx.Model(&model.AnswerModel{}).
			Where("question_id = ? AND student_id = ?", req.QuestionID, studentID).
			Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return helper.Conflict(msgAlreadyAnswered)
		}

		answer := model.AnswerModel{
			QuestionID: question.ID,
			StudentID:  studentID,
			QuizID:     quiz.ID,
			Answer:     strings.TrimSpace(req.Answer),
			Score:      MarkAnswer(question, req.Answer),
		}
		if err := tx.Create(&answer).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return helper.Conflict(msgAlreadyAnswered)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	return s.students.GetStudentQuizResult(ctx, studentID, req.QuizID)
}
