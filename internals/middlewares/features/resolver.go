package middleware

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
	helper "schoolquiz_backend/internals/helpers"
)

const (
	LocalStudentID = "student_id"
	LocalTeacherID = "teacher_id"
)

// resolveRoleRow loads the id of the role row owned by the signed-in user.
func resolveRoleRow(db *gorm.DB, m any, local, notFound string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		var id uint
		err = db.WithContext(c.UserContext()).Model(m).
			Select("id").
			Where("user_id = ?", userID).
			Limit(1).
			Scan(&id).Error
		if err != nil {
			slog.Error("resolve role row", "local", local, "err", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if id == 0 {
			return fiber.NewError(fiber.StatusForbidden, notFound)
		}
		c.Locals(local, id)
		return c.Next()
	}
}

// ResolveStudent stores the signed-in student's id in Locals("student_id").
func ResolveStudent(db *gorm.DB) fiber.Handler {
	return resolveRoleRow(db, &studentModel.StudentModel{}, LocalStudentID, "Student record not found")
}

// ResolveTeacher stores the signed-in teacher's id in Locals("teacher_id").
// Admins pass through without one.
func ResolveTeacher(db *gorm.DB) fiber.Handler {
	resolve := resolveRoleRow(db, &teacherModel.TeacherModel{}, LocalTeacherID, "Teacher record not found")
	return func(c *fiber.Ctx) error {
		if helper.GetRoleFromToken(c) != constants.UserTypeTeacher.String() {
			return c.Next()
		}
		return resolve(c)
	}
}

// StudentID is the id stored by ResolveStudent.
func StudentID(c *fiber.Ctx) (uint, error) {
	if id, ok := c.Locals(LocalStudentID).(uint); ok && id != 0 {
		return id, nil
	}
	return 0, errors.New("student not resolved")
}

// TeacherID is the id stored by ResolveTeacher, 0 for admins.
func TeacherID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalTeacherID).(uint)
	return id
}
