package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	answerRoute "schoolquiz_backend/internals/features/school/answers/route"
	courseRoute "schoolquiz_backend/internals/features/school/courses/route"
	departmentRoute "schoolquiz_backend/internals/features/school/departments/route"
	levelRoute "schoolquiz_backend/internals/features/school/levels/route"
	questionRoute "schoolquiz_backend/internals/features/school/questions/route"
	quizRoute "schoolquiz_backend/internals/features/school/quizzes/route"
	topicRoute "schoolquiz_backend/internals/features/school/topics/route"
)

/* ===================== ADMIN ===================== */
func SchoolAdminRoutes(r fiber.Router, db *gorm.DB) {
	departmentRoute.DepartmentAdminRoutes(r, db)
}

/* ===================== TEACHER + ADMIN ===================== */
// Expects ResolveTeacher upstream. Only course create/update read the resolved
// teacher id; topics, quizzes and questions are open to every teacher.
func SchoolStaffRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.CourseStaffRoutes(r, db)
	topicRoute.TopicStaffRoutes(r, db)
	quizRoute.QuizStaffRoutes(r, db)
	questionRoute.QuestionStaffRoutes(r, db)
}

/* ===================== STUDENT ===================== */
func SchoolStudentRoutes(r fiber.Router, db *gorm.DB) {
	quizRoute.QuizStudentRoutes(r, db)
	questionRoute.QuestionStudentRoutes(r, db)
	answerRoute.AnswerStudentRoutes(r, db)
}

/* ===================== ANY SIGNED-IN USER ===================== */
func SchoolUserRoutes(r fiber.Router, db *gorm.DB) {
	levelRoute.LevelUserRoutes(r, db)
	departmentRoute.DepartmentUserRoutes(r, db)
}
