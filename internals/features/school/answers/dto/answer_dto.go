package dto

type CreateAnswerRequest struct {
	QuestionID uint   `json:"question_id" validate:"required,gt=0"`
	QuizID     uint   `json:"quiz_id" validate:"required,gt=0"`
	Answer     string `json:"answer" validate:"max=300"`
}
