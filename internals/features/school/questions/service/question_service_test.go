package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/constants"
	answerModel "schoolquiz_backend/internals/features/school/answers/model"
	"schoolquiz_backend/internals/features/school/questions/dto"
	"schoolquiz_backend/internals/features/school/questions/model"
	studentDto "schoolquiz_backend/internals/features/users/students/dto"
	studentService "schoolquiz_backend/internals/features/users/students/service"
	"schoolquiz_backend/internals/testutil"
)

func TestCreateQuestionWithOptions(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	svc := NewQuestionService(db)

	fb := svc.CreateQuestion(context.Background(), dto.CreateQuestionRequest{
		Question: " 2+2? ",
		Answer:   "4",
		Score:    2,
		Timeout:  15,
		QuizID:   school.Quiz.ID,
		Options:  []string{"3", " ", "4"},
	}, school.Teacher.UserID)
	require.True(t, fb.Success, fb.Message)

	q := fb.Result.(model.QuestionModel)
	assert.Equal(t, "2+2?", q.Question)
	require.Len(t, q.Options, 2)

	got, err := svc.FindQuestion(context.Background(), q.ID)
	require.NoError(t, err)
	assert.Len(t, got.Options, 2)

	fb = svc.CreateQuestion(context.Background(), dto.CreateQuestionRequest{
		Question: "x", Answer: "y", QuizID: 999,
	}, school.Teacher.UserID)
	assert.Equal(t, http.StatusNotFound, fb.Status)
}

func TestGetQuestionsForStudentHidesAnsweredAndAnswers(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	q1 := testutil.CreateQuestion(t, db, school.Quiz.ID, "1+1?", "2", 1, "1", "2")
	testutil.CreateQuestion(t, db, school.Quiz.ID, "2+2?", "4", 1)
	require.NoError(t, db.Create(&answerModel.AnswerModel{
		QuizID: school.Quiz.ID, QuestionID: q1.ID, StudentID: school.Student.ID, Answer: "2", Score: 1,
	}).Error)
	svc := NewQuestionService(db)

	fb := svc.GetQuestions(context.Background(), dto.ListQuestionsQuery{
		QuizID: school.Quiz.ID,
		Viewer: dto.QuestionViewer{Type: constants.UserTypeStudent, StudentID: school.Student.ID},
	})
	require.True(t, fb.Success, fb.Message)
	rows := fb.Results.([]model.QuestionModel)
	require.Len(t, rows, 1)
	assert.Equal(t, "2+2?", rows[0].Question)
	assert.Empty(t, rows[0].Answer)

	fb = svc.GetQuestions(context.Background(), dto.ListQuestionsQuery{QuizID: school.Quiz.ID, Page: 1, Paginate: true})
	rows = fb.Results.([]model.QuestionModel)
	require.Len(t, rows, 2)
	assert.NotEmpty(t, rows[0].Answer)
	assert.Equal(t, 1, fb.Page)
}

func TestGetQuestionsSince(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	old := testutil.CreateQuestion(t, db, school.Quiz.ID, "old?", "a", 1)
	require.NoError(t, db.Model(old).Update("created_at", time.Now().Add(-time.Hour)).Error)
	testutil.CreateQuestion(t, db, school.Quiz.ID, "new?", "b", 1)

	fb := NewQuestionService(db).GetQuestions(context.Background(), dto.ListQuestionsQuery{
		QuizID: school.Quiz.ID,
		Since:  time.Now().Add(-time.Minute).UnixMilli(),
	})
	rows := fb.Results.([]model.QuestionModel)
	require.Len(t, rows, 1)
	assert.Equal(t, "new?", rows[0].Question)
}

func TestUpdateAndDeleteQuestion(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	q := testutil.CreateQuestion(t, db, school.Quiz.ID, "1+1?", "2", 1, "1", "2")
	svc := NewQuestionService(db)
	ctx := context.Background()

	score := 5
	fb := svc.UpdateQuestion(ctx, q.ID, dto.UpdateQuestionRequest{Score: &score}, school.Teacher.UserID)
	require.True(t, fb.Success, fb.Message)
	assert.Equal(t, 5, fb.Result.(model.QuestionModel).Score)

	fb = svc.DeleteQuestion(ctx, q.ID, school.Teacher.UserID)
	require.True(t, fb.Success)

	var n int64
	require.NoError(t, db.Model(&model.OptionModel{}).Where("question_id = ?", q.ID).Count(&n).Error)
	assert.Zero(t, n)

	fb = svc.GetQuestion(ctx, q.ID)
	assert.Equal(t, http.StatusNotFound, fb.Status)
}

func TestDeleteQuestionDropsItsAnswers(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	heavy := testutil.CreateQuestion(t, db, school.Quiz.ID, "Largest digit?", "9", 5)
	testutil.CreateQuestion(t, db, school.Quiz.ID, "1+0?", "1", 1)
	require.NoError(t, db.Create(&answerModel.AnswerModel{
		StudentID: school.Student.ID, QuizID: school.Quiz.ID, QuestionID: heavy.ID, Answer: "9", Score: 5,
	}).Error)
	ctx := context.Background()

	fb := NewQuestionService(db).DeleteQuestion(ctx, heavy.ID, school.Teacher.UserID)
	require.True(t, fb.Success, fb.Message)

	var n int64
	require.NoError(t, db.Model(&answerModel.AnswerModel{}).Where("question_id = ?", heavy.ID).Count(&n).Error)
	assert.Zero(t, n)

	fb = studentService.NewStudentService(db).GetStudentQuizResult(ctx, school.Student.ID, school.Quiz.ID)
	require.True(t, fb.Success, fb.Message)
	res := fb.Result.(*studentDto.QuizResult)
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, 1, res.TotalScore)
}

func TestQuestionOptions(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	q := testutil.CreateQuestion(t, db, school.Quiz.ID, "1+1?", "2", 1)
	svc := NewQuestionService(db)
	ctx := context.Background()

	fb := svc.CreateQuestionOption(ctx, dto.CreateOptionRequest{QuestionID: q.ID, Option: "2"}, school.Teacher.UserID)
	require.True(t, fb.Success, fb.Message)
	opt := fb.Result.(model.OptionModel)

	fb = svc.UpdateQuestionOption(ctx, opt.ID, dto.UpdateOptionRequest{Option: "two"}, school.Teacher.UserID)
	require.True(t, fb.Success, fb.Message)

	got, err := svc.FindQuestion(ctx, q.ID)
	require.NoError(t, err)
	require.Len(t, got.Options, 1)
	assert.Equal(t, "two", got.Options[0].Option)

	fb = svc.DeleteQuestionOption(ctx, opt.ID, school.Teacher.UserID)
	require.True(t, fb.Success)

	fb = svc.CreateQuestionOption(ctx, dto.CreateOptionRequest{QuestionID: 999, Option: "x"}, school.Teacher.UserID)
	assert.Equal(t, "Question not found", fb.Message)
}

func TestProcessQuestionUpload(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	testutil.CreateQuestion(t, db, school.Quiz.ID, "Existing?", "yes", 1)
	svc := NewQuestionService(db)

	path := writeFile(t, "upload.csv", "Question,Answer,Score,OptionA,OptionB\n"+
		"New one?,a,2,a,b\n"+
		"Existing?,yes,1\n")

	fb := svc.ProcessQuestionUpload(context.Background(), school.Quiz.ID, path, school.Teacher.UserID)
	assert.False(t, fb.Success)
	assert.Equal(t, "Some questions were not inserted.", fb.Message)
	assert.Equal(t, []string{`Failed to add "Existing?" because it already exists.`}, fb.Errors)
	assert.Equal(t, dto.UploadResult{Inserted: 1, Failed: 1}, fb.Result)

	var q model.QuestionModel
	require.NoError(t, db.Preload("Options").Where("question = ?", "New one?").First(&q).Error)
	assert.Equal(t, 2, q.Score)
	assert.Len(t, q.Options, 2)
}

func TestProcessQuestionUploadBadRows(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	svc := NewQuestionService(db)

	path := writeFile(t, "upload.csv", "Question,Answer,Score\nGood?,a,1\nBad?,b,lots\n")

	fb := svc.ProcessQuestionUpload(context.Background(), school.Quiz.ID, path, school.Teacher.UserID)
	assert.False(t, fb.Success)
	assert.Equal(t, "Operation failed", fb.Message)
	assert.Equal(t, []string{`Failed to add "Bad?".`}, fb.Errors)
	assert.Equal(t, dto.UploadResult{Inserted: 1, Failed: 1}, fb.Result)
}

func TestProcessQuestionUploadAllInserted(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)

	path := writeFile(t, "upload.csv", "Question,Answer\nA?,a\nB?,b\n")
	fb := NewQuestionService(db).ProcessQuestionUpload(context.Background(), school.Quiz.ID, path, school.Teacher.UserID)
	assert.True(t, fb.Success)
	assert.Empty(t, fb.Errors)
	assert.Equal(t, dto.UploadResult{Inserted: 2}, fb.Result)
}

func TestProcessQuestionUploadUnknownQuiz(t *testing.T) {
	db := testutil.OpenTestDB(t)
	path := writeFile(t, "upload.csv", "Question,Answer\nA?,a\n")

	fb := NewQuestionService(db).ProcessQuestionUpload(context.Background(), 42, path, 1)
	assert.Equal(t, http.StatusNotFound, fb.Status)
}
