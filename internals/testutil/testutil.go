// Package testutil opens throwaway databases and seeds fixtures for service tests.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/configs"
	"schoolquiz_backend/internals/constants"
	database "schoolquiz_backend/internals/databases"
	courseModel "schoolquiz_backend/internals/features/school/courses/model"
	departmentModel "schoolquiz_backend/internals/features/school/departments/model"
	levelModel "schoolquiz_backend/internals/features/school/levels/model"
	questionModel "schoolquiz_backend/internals/features/school/questions/model"
	quizModel "schoolquiz_backend/internals/features/school/quizzes/model"
	topicModel "schoolquiz_backend/internals/features/school/topics/model"
	adminModel "schoolquiz_backend/internals/features/users/admins/model"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
	userModel "schoolquiz_backend/internals/features/users/user/model"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
)

// Password is the plain password of every fixture user.
const Password = "secret123"

// OpenTestDB returns a migrated in-memory sqlite database private to t.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	configs.UseTestSecrets()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=off", uuid.NewString())
	db, err := database.Open("sqlite", dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close(db) })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

/* ===============================
   Fixtures
=================================*/

func CreateUser(t *testing.T, db *gorm.DB, email string, typ constants.UserType) *userModel.UserModel {
	t.Helper()
	hash, err := helperAuth.HashPassword(Password)
	require.NoError(t, err)
	u := &userModel.UserModel{
		Surname:    "Doe",
		Othernames: "Jane",
		Email:      email,
		Password:   hash,
		Type:       typ,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func CreateAdmin(t *testing.T, db *gorm.DB, email string) *adminModel.AdminModel {
	t.Helper()
	u := CreateUser(t, db, email, constants.UserTypeAdmin)
	a := &adminModel.AdminModel{UserID: u.ID, User: u}
	require.NoError(t, db.Omit("User").Create(a).Error)
	return a
}

func CreateDepartment(t *testing.T, db *gorm.DB, name string) *departmentModel.DepartmentModel {
	t.Helper()
	d := &departmentModel.DepartmentModel{Name: name}
	require.NoError(t, db.Create(d).Error)
	return d
}

func CreateLevel(t *testing.T, db *gorm.DB, name string) *levelModel.LevelModel {
	t.Helper()
	l := &levelModel.LevelModel{Name: name}
	require.NoError(t, db.Create(l).Error)
	return l
}

func CreateTeacher(t *testing.T, db *gorm.DB, email string, deptID uint) *teacherModel.TeacherModel {
	t.Helper()
	u := CreateUser(t, db, email, constants.UserTypeTeacher)
	tc := &teacherModel.TeacherModel{UserID: u.ID, DeptID: deptID, User: u}
	require.NoError(t, db.Omit("User", "Department").Create(tc).Error)
	return tc
}

func CreateStudent(t *testing.T, db *gorm.DB, email, regNo string, levelID, deptID uint) *studentModel.StudentModel {
	t.Helper()
	u := CreateUser(t, db, email, constants.UserTypeStudent)
	st := &studentModel.StudentModel{UserID: u.ID, RegNo: regNo, LevelID: levelID, DeptID: deptID, User: u}
	require.NoError(t, db.Omit("User", "Level", "Department").Create(st).Error)
	return st
}

func CreateCourse(t *testing.T, db *gorm.DB, code, title string, teacherID uint) *courseModel.CourseModel {
	t.Helper()
	c := &courseModel.CourseModel{Code: code, Title: title, TeacherID: teacherID}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateTopic(t *testing.T, db *gorm.DB, title string, courseID uint) *topicModel.TopicModel {
	t.Helper()
	tp := &topicModel.TopicModel{Title: title, CourseID: courseID}
	require.NoError(t, db.Create(tp).Error)
	return tp
}

func CreateQuiz(t *testing.T, db *gorm.DB, title, token string, topicID uint, active bool) *quizModel.QuizModel {
	t.Helper()
	q := &quizModel.QuizModel{Title: title, Token: token, TopicID: topicID}
	require.NoError(t, db.Create(q).Error)
	if active {
		require.NoError(t, db.Model(q).Update("active", true).Error)
		q.Active = true
	}
	return q
}

func CreateQuestion(t *testing.T, db *gorm.DB, quizID uint, question, answer string, score int, options ...string) *questionModel.QuestionModel {
	t.Helper()
	q := &questionModel.QuestionModel{Question: question, Answer: answer, Score: score, Timeout: 30, QuizID: quizID}
	require.NoError(t, db.Create(q).Error)
	for _, o := range options {
		opt := questionModel.OptionModel{Option: o, QuestionID: q.ID}
		require.NoError(t, db.Create(&opt).Error)
		q.Options = append(q.Options, opt)
	}
	return q
}

// School is a small seeded school: one department, level, teacher, student,
// course, topic and an active quiz.
type School struct {
	Admin      *adminModel.AdminModel
	Department *departmentModel.DepartmentModel
	Level      *levelModel.LevelModel
	Teacher    *teacherModel.TeacherModel
	Student    *studentModel.StudentModel
	Course     *courseModel.CourseModel
	Topic      *topicModel.TopicModel
	Quiz       *quizModel.QuizModel
}

func SeedSchool(t *testing.T, db *gorm.DB) School {
	t.Helper()
	var s School
	s.Admin = CreateAdmin(t, db, "admin@school.test")
	s.Department = CreateDepartment(t, db, "Computer Science")
	s.Level = CreateLevel(t, db, "100")
	s.Teacher = CreateTeacher(t, db, "teacher@school.test", s.Department.ID)
	s.Student = CreateStudent(t, db, "student@school.test", "CSC/001", s.Level.ID, s.Department.ID)
	s.Course = CreateCourse(t, db, "CSC101", "Intro to Computing", s.Teacher.ID)
	s.Topic = CreateTopic(t, db, "Binary numbers", s.Course.ID)
	s.Quiz = CreateQuiz(t, db, "Binary quiz", "abc123def456", s.Topic.ID, true)
	return s
}
