package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	answerModel "schoolquiz_backend/internals/features/school/answers/model"
	"schoolquiz_backend/internals/features/users/students/dto"
	"schoolquiz_backend/internals/features/users/students/model"
	"schoolquiz_backend/internals/testutil"
)

func TestCreateStudent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	svc := NewStudentService(db)
	ctx := context.Background()

	base := dto.CreateStudentRequest{
		Surname: "Ade", Othernames: "Tola", Email: "tola@school.test", Password: "pass",
		RegNo: " CSC/002 ", LevelID: school.Level.ID, DeptID: school.Department.ID,
	}
	fb := svc.CreateStudent(ctx, base, school.Admin.UserID)
	require.True(t, fb.Success, fb.Message)
	st := fb.Result.(model.StudentModel)
	assert.Equal(t, "CSC/002", st.RegNo)
	require.NotNil(t, st.User)
	assert.Equal(t, "Ade Tola", st.User.FullName())

	tests := []struct {
		name   string
		mutate func(r *dto.CreateStudentRequest)
		status int
		msg    string
	}{
		{"email taken", func(r *dto.CreateStudentRequest) { r.RegNo = "CSC/009" }, http.StatusConflict, "Email already exists."},
		{"reg no taken", func(r *dto.CreateStudentRequest) { r.Email = "new@school.test"; r.RegNo = "CSC/001" }, http.StatusConflict, "RegNo already exists."},
		{"unknown level", func(r *dto.CreateStudentRequest) { r.Email = "new@school.test"; r.RegNo = "CSC/009"; r.LevelID = 999 }, http.StatusNotFound, "Level not found"},
		{"unknown department", func(r *dto.CreateStudentRequest) { r.Email = "new@school.test"; r.RegNo = "CSC/009"; r.DeptID = 999 }, http.StatusNotFound, "Department not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			fb := svc.CreateStudent(ctx, req, school.Admin.UserID)
			assert.False(t, fb.Success)
			assert.Equal(t, tt.status, fb.Status)
			assert.Equal(t, tt.msg, fb.Message)
		})
	}
}

func TestStudentQueries(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	other := testutil.CreateLevel(t, db, "200")
	testutil.CreateStudent(t, db, "second@school.test", "MTH/001", other.ID, school.Department.ID)
	svc := NewStudentService(db)
	ctx := context.Background()

	fb := svc.GetStudents(ctx, dto.ListStudentsQuery{})
	assert.Len(t, fb.Results.([]model.StudentModel), 2)

	fb = svc.GetStudents(ctx, dto.ListStudentsQuery{LevelID: other.ID})
	assert.Len(t, fb.Results.([]model.StudentModel), 1)

	fb = svc.GetStudents(ctx, dto.ListStudentsQuery{Search: "csc/"})
	rows := fb.Results.([]model.StudentModel)
	require.Len(t, rows, 1)
	assert.Equal(t, "CSC/001", rows[0].RegNo)

	st, err := svc.FindStudentBy(ctx, dto.StudentFilter{RegNo: "MTH/001"})
	require.NoError(t, err)
	assert.Equal(t, other.ID, st.LevelID)

	_, err = svc.FindStudentBy(ctx, dto.StudentFilter{})
	assert.Error(t, err)
}

func TestUpdateDeleteStudent(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	testutil.CreateStudent(t, db, "second@school.test", "CSC/002", school.Level.ID, school.Department.ID)
	svc := NewStudentService(db)
	ctx := context.Background()

	taken := "CSC/002"
	fb := svc.UpdateStudent(ctx, school.Student.ID, dto.UpdateStudentRequest{RegNo: &taken}, school.Admin.UserID)
	assert.Equal(t, http.StatusConflict, fb.Status)

	regNo := "CSC/100"
	fb = svc.UpdateStudent(ctx, school.Student.ID, dto.UpdateStudentRequest{RegNo: &regNo}, school.Admin.UserID)
	require.True(t, fb.Success, fb.Message)
	assert.Equal(t, regNo, fb.Result.(model.StudentModel).RegNo)

	q := testutil.CreateQuestion(t, db, school.Quiz.ID, "1+1?", "2", 1)
	require.NoError(t, db.Create(&answerModel.AnswerModel{
		StudentID: school.Student.ID, QuizID: school.Quiz.ID, QuestionID: q.ID, Answer: "2", Score: 1,
	}).Error)

	fb = svc.DeleteStudent(ctx, school.Student.ID, school.Admin.UserID)
	require.True(t, fb.Success)
	fb = svc.GetStudent(ctx, school.Student.ID)
	assert.Equal(t, http.StatusNotFound, fb.Status)

	var n int64
	require.NoError(t, db.Model(&answerModel.AnswerModel{}).Where("student_id = ?", school.Student.ID).Count(&n).Error)
	assert.Zero(t, n)

	// the deleted account keeps its address
	fb = svc.CreateStudent(ctx, dto.CreateStudentRequest{
		Surname: "Doe", Othernames: "Jane", Email: "student@school.test", Password: "pass",
		RegNo: "CSC/009", LevelID: school.Level.ID, DeptID: school.Department.ID,
	}, school.Admin.UserID)
	assert.Equal(t, http.StatusConflict, fb.Status)
	assert.Equal(t, "Email already exists.", fb.Message)
}

func TestStudentQuizResults(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	q1 := testutil.CreateQuestion(t, db, school.Quiz.ID, "1+1?", "10", 2)
	testutil.CreateQuestion(t, db, school.Quiz.ID, "2+2?", "100", 3)
	second := testutil.CreateQuiz(t, db, "Second quiz", "tok2", school.Topic.ID, true)
	q3 := testutil.CreateQuestion(t, db, second.ID, "0+1?", "1", 4)
	require.NoError(t, db.Create(&[]answerModel.AnswerModel{
		{StudentID: school.Student.ID, QuizID: school.Quiz.ID, QuestionID: q1.ID, Answer: "10", Score: 2},
		{StudentID: school.Student.ID, QuizID: second.ID, QuestionID: q3.ID, Answer: "0", Score: 0},
	}).Error)
	svc := NewStudentService(db)
	ctx := context.Background()

	fb := svc.GetStudentQuizResult(ctx, school.Student.ID, school.Quiz.ID)
	require.True(t, fb.Success, fb.Message)
	res := fb.Result.(*dto.QuizResult)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 5, res.TotalScore)
	assert.Equal(t, school.Student.ID, res.Student.ID)

	fb = svc.GetStudentQuizzesResult(ctx, school.Student.ID)
	require.True(t, fb.Success)
	items := fb.Results.([]dto.QuizzesResultItem)
	require.Len(t, items, 2)
	assert.Equal(t, 2, items[0].Score)
	assert.Equal(t, 5, items[0].TotalScore)
	assert.Equal(t, "Binary quiz", items[0].Quiz.Title)
	assert.Equal(t, 0, items[1].Score)
	assert.Equal(t, 4, items[1].TotalScore)

	fb = svc.GetStudentQuizResult(ctx, 999, school.Quiz.ID)
	assert.Equal(t, http.StatusNotFound, fb.Status)
}
