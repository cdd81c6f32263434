package routes

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	rateLimiter "schoolquiz_backend/internals/middlewares"
	authMiddleware "schoolquiz_backend/internals/middlewares/auth"
	featuresMiddleware "schoolquiz_backend/internals/middlewares/features"
	routeDetails "schoolquiz_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH / INSTALL =====================
	slog.Info("setting up auth routes")
	routeDetails.AuthRoutes(app, db)
	routeDetails.AppRoutes(app, db)

	// ===================== GROUPS =====================
	auth := authMiddleware.AuthMiddleware(db)

	admin := app.Group("/api/a",
		rateLimiter.GlobalRateLimiter(),
		auth,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorAdmin("this resource"), constants.AdminOnly),
	)

	staff := app.Group("/api/t",
		rateLimiter.GlobalRateLimiter(),
		auth,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorTeacher("this resource"), constants.TeacherAndUp),
		featuresMiddleware.ResolveTeacher(db),
	)

	student := app.Group("/api/s",
		rateLimiter.GlobalRateLimiter(),
		auth,
		authMiddleware.OnlyRolesSlice(constants.RoleErrorStudent("this resource"), constants.StudentOnly),
		featuresMiddleware.ResolveStudent(db),
	)

	user := app.Group("/api/u",
		rateLimiter.GlobalRateLimiter(),
		auth,
		authMiddleware.OnlyRolesSlice("Sign in required", constants.AllSignedRoles),
	)

	// ===================== MOUNT ROUTES =====================
	slog.Info("mounting user routes")
	routeDetails.UserAdminRoutes(admin, db)
	routeDetails.UserStaffRoutes(staff, db)
	routeDetails.UserStudentRoutes(student, db)
	routeDetails.UserAllRoutes(user, db)

	slog.Info("mounting school routes")
	routeDetails.SchoolAdminRoutes(admin, db)
	routeDetails.SchoolStaffRoutes(staff, db)
	routeDetails.SchoolStudentRoutes(student, db)
	routeDetails.SchoolUserRoutes(user, db)
}
