package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/features/school/answers/dto"
	"schoolquiz_backend/internals/features/school/answers/model"
	questionModel "schoolquiz_backend/internals/features/school/questions/model"
	studentDTO "schoolquiz_backend/internals/features/users/students/dto"
	"schoolquiz_backend/internals/testutil"
)

func TestSameAnswer(t *testing.T) {
	tests := []struct {
		submitted, expected string
		want                bool
	}{
		{"Paris", "paris", true},
		{"  PARIS ", "Paris", true},
		{"ÉCOLE", "école", true},
		{"Rome", "Paris", false},
		{"", "Paris", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SameAnswer(tt.submitted, tt.expected), "%q vs %q", tt.submitted, tt.expected)
	}
}

func TestMarkAnswer(t *testing.T) {
	q := questionModel.QuestionModel{Answer: "4", Score: 3}
	assert.Equal(t, 3, MarkAnswer(q, " 4"))
	assert.Equal(t, 0, MarkAnswer(q, "5"))
}

func TestCreateAnswer(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	q1 := testutil.CreateQuestion(t, db, school.Quiz.ID, "2+2?", "four", 2)
	q2 := testutil.CreateQuestion(t, db, school.Quiz.ID, "3+3?", "six", 3)
	svc := NewAnswerService(db)
	ctx := context.Background()

	fb := svc.CreateAnswer(ctx, school.Student.ID, dto.CreateAnswerRequest{QuestionID: q1.ID, QuizID: school.Quiz.ID, Answer: "FOUR"})
	require.True(t, fb.Success, fb.Message)
	res := fb.Result.(*studentDTO.QuizResult)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 5, res.TotalScore)

	fb = svc.CreateAnswer(ctx, school.Student.ID, dto.CreateAnswerRequest{QuestionID: q2.ID, QuizID: school.Quiz.ID, Answer: "seven"})
	require.True(t, fb.Success, fb.Message)
	assert.Equal(t, 2, fb.Result.(*studentDTO.QuizResult).Score)

	var stored model.AnswerModel
	require.NoError(t, db.Where("question_id = ?", q2.ID).First(&stored).Error)
	assert.Equal(t, 0, stored.Score)
	assert.Equal(t, "seven", stored.Answer)
}

func TestCreateAnswerRejects(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	q := testutil.CreateQuestion(t, db, school.Quiz.ID, "2+2?", "4", 1)
	stopped := testutil.CreateQuiz(t, db, "Stopped quiz", "000000000000", school.Topic.ID, false)
	stoppedQ := testutil.CreateQuestion(t, db, stopped.ID, "1+1?", "2", 1)
	svc := NewAnswerService(db)
	ctx := context.Background()

	fb := svc.CreateAnswer(ctx, school.Student.ID, dto.CreateAnswerRequest{QuestionID: q.ID, QuizID: school.Quiz.ID, Answer: "4"})
	require.True(t, fb.Success, fb.Message)

	fb = svc.CreateAnswer(ctx, school.Student.ID, dto.CreateAnswerRequest{QuestionID: q.ID, QuizID: school.Quiz.ID, Answer: "4"})
	assert.Equal(t, msgAlreadyAnswered, fb.Message)
	assert.Equal(t, http.StatusConflict, fb.Status)

	fb = svc.CreateAnswer(ctx, school.Student.ID, dto.CreateAnswerRequest{QuestionID: stoppedQ.ID, QuizID: stopped.ID, Answer: "2"})
	assert.Equal(t, msgQuizStopped, fb.Message)

	fb = svc.CreateAnswer(ctx, school.Student.ID, dto.CreateAnswerRequest{QuestionID: stoppedQ.ID, QuizID: school.Quiz.ID, Answer: "2"})
	assert.Equal(t, "Question not found", fb.Message)

	fb = svc.CreateAnswer(ctx, school.Student.ID, dto.CreateAnswerRequest{QuestionID: q.ID, QuizID: 999, Answer: "4"})
	assert.Equal(t, "Quiz not found", fb.Message)
}
