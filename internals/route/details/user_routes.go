package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	activityRoute "schoolquiz_backend/internals/features/users/activities/route"
	adminRoute "schoolquiz_backend/internals/features/users/admins/route"
	studentRoute "schoolquiz_backend/internals/features/users/students/route"
	teacherRoute "schoolquiz_backend/internals/features/users/teachers/route"
	userRoute "schoolquiz_backend/internals/features/users/user/route"
)

/* ===================== ADMIN ===================== */
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	adminRoute.AdminAdminRoutes(r, db)
	teacherRoute.TeacherAdminRoutes(r, db)
	studentRoute.StudentAdminRoutes(r, db)
}

/* ===================== TEACHER + ADMIN ===================== */
func UserStaffRoutes(r fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherStaffRoutes(r, db)
	studentRoute.StudentStaffRoutes(r, db)
}

/* ===================== STUDENT ===================== */
func UserStudentRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentSelfRoutes(r, db)
}

/* ===================== ANY SIGNED-IN USER ===================== */
func UserAllRoutes(r fiber.Router, db *gorm.DB) {
	userRoute.UserAllRoutes(r, db)
	activityRoute.ActivityUserRoutes(r, db)
}
