package database

import (
	"gorm.io/gorm"

	activityModel "schoolquiz_backend/internals/features/users/activities/model"
	adminModel "schoolquiz_backend/internals/features/users/admins/model"
	authModel "schoolquiz_backend/internals/features/users/auth/model"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
	userModel "schoolquiz_backend/internals/features/users/user/model"

	answerModel "schoolquiz_backend/internals/features/school/answers/model"
	courseModel "schoolquiz_backend/internals/features/school/courses/model"
	departmentModel "schoolquiz_backend/internals/features/school/departments/model"
	levelModel "schoolquiz_backend/internals/features/school/levels/model"
	questionModel "schoolquiz_backend/internals/features/school/questions/model"
	quizModel "schoolquiz_backend/internals/features/school/quizzes/model"
	topicModel "schoolquiz_backend/internals/features/school/topics/model"
)

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&userModel.UserModel{},
		&departmentModel.DepartmentModel{},
		&levelModel.LevelModel{},
		&adminModel.AdminModel{},
		&teacherModel.TeacherModel{},
		&studentModel.StudentModel{},
		&courseModel.CourseModel{},
		&topicModel.TopicModel{},
		&quizModel.QuizModel{},
		&questionModel.QuestionModel{},
		&questionModel.OptionModel{},
		&answerModel.AnswerModel{},
		&activityModel.ActivityModel{},
		&authModel.RefreshTokenModel{},
	}
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
