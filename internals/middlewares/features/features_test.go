package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/constants"
	quizDTO "schoolquiz_backend/internals/features/school/quizzes/dto"
	quizService "schoolquiz_backend/internals/features/school/quizzes/service"
	helper "schoolquiz_backend/internals/helpers"
	"schoolquiz_backend/internals/testutil"
)

func status(t *testing.T, app *fiber.App, req *http.Request) int {
	t.Helper()
	res, err := app.Test(req)
	require.NoError(t, err)
	return res.StatusCode
}

func TestRequireQuizToken(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	fb := quizService.NewQuizService(db).ValidateQuizToken(context.Background(),
		quizDTO.ValidateQuizTokenRequest{QuizID: school.Quiz.ID, Token: school.Quiz.Token})
	require.True(t, fb.Success, fb.Message)

	var seen uint
	app := fiber.New()
	app.Get("/", RequireQuizToken(), func(c *fiber.Ctx) error {
		seen = QuizID(c)
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusForbidden, status(t, app, req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderQuizToken, school.Quiz.Token)
	assert.Equal(t, http.StatusForbidden, status(t, app, req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderQuizToken, fb.Result.(string))
	assert.Equal(t, http.StatusOK, status(t, app, req))
	assert.Equal(t, school.Quiz.ID, seen)
}

func TestResolvers(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)

	signIn := func(userID uint, role constants.UserType) fiber.Handler {
		return func(c *fiber.Ctx) error {
			c.Locals(helper.LocalUserID, userID)
			c.Locals(helper.LocalRole, role.String())
			return c.Next()
		}
	}

	var studentID, teacherID uint
	app := fiber.New(fiber.Config{ErrorHandler: helper.FiberErrorHandler})
	app.Get("/student/:uid", func(c *fiber.Ctx) error {
		uid, _ := c.ParamsInt("uid")
		return signIn(uint(uid), constants.UserTypeStudent)(c)
	}, ResolveStudent(db), func(c *fiber.Ctx) error {
		id, err := StudentID(c)
		if err != nil {
			return err
		}
		studentID = id
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/teacher", signIn(school.Teacher.UserID, constants.UserTypeTeacher), ResolveTeacher(db), func(c *fiber.Ctx) error {
		teacherID = TeacherID(c)
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/admin", signIn(school.Admin.UserID, constants.UserTypeAdmin), ResolveTeacher(db), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"teacher_id": TeacherID(c)})
	})

	assert.Equal(t, http.StatusOK, status(t, app, httptest.NewRequest(http.MethodGet, "/student/"+itoa(school.Student.UserID), nil)))
	assert.Equal(t, school.Student.ID, studentID)

	assert.Equal(t, http.StatusForbidden, status(t, app, httptest.NewRequest(http.MethodGet, "/student/"+itoa(school.Teacher.UserID), nil)))

	assert.Equal(t, http.StatusOK, status(t, app, httptest.NewRequest(http.MethodGet, "/teacher", nil)))
	assert.Equal(t, school.Teacher.ID, teacherID)

	assert.Equal(t, http.StatusOK, status(t, app, httptest.NewRequest(http.MethodGet, "/admin", nil)))
}

func itoa(v uint) string {
	return fmt.Sprint(v)
}
