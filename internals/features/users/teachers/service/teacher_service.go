package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	courseModel "schoolquiz_backend/internals/features/school/courses/model"
	departmentModel "schoolquiz_backend/internals/features/school/departments/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	"schoolquiz_backend/internals/features/users/teachers/dto"
	"schoolquiz_backend/internals/features/users/teachers/model"
	userService "schoolquiz_backend/internals/features/users/user/service"
	helper "schoolquiz_backend/internals/helpers"
)

type TeacherService struct {
	DB *gorm.DB
}

func NewTeacherService(db *gorm.DB) *TeacherService {
	return &TeacherService{DB: db}
}

func ensureDepartment(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&departmentModel.DepartmentModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound("Department not found")
	}
	return nil
}

func (s *TeacherService) CreateTeacher(ctx context.Context, req dto.CreateTeacherRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var teacher model.TeacherModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := userService.EmailTaken(ctx, tx, req.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return helper.Conflict("Email already exists.")
		}
		if err := ensureDepartment(tx, req.DeptID); err != nil {
			return err
		}

		u, err := userService.NewAccount(ctx, tx, req.Surname, req.Othernames, req.Email, req.Password, constants.UserTypeTeacher)
		if err != nil {
			if helper.IsDuplicate(err) {
				return helper.Conflict("Email already exists.")
			}
			return err
		}

		teacher = model.TeacherModel{UserID: u.ID, DeptID: req.DeptID}
		if err := tx.Create(&teacher).Error; err != nil {
			return err
		}
		return tx.Preload("User").Preload("Department").First(&teacher, teacher.ID).Error
	})
	if err != nil {
		return helper.FromError(err, "Failed to create account")
	}

	activityService.Record(ctx, s.DB, actorID,
		fmt.Sprintf("created teacher '%s' record", teacher.User.FullName()),
		map[string]any{"teacher_id": teacher.ID})
	return helper.Ok("Account created", teacher)
}

func (s *TeacherService) FindTeacherBy(ctx context.Context, filter dto.TeacherFilter) (*model.TeacherModel, error) {
	q := s.DB.WithContext(ctx).Preload("User").Preload("Department")
	switch {
	case filter.ID != 0:
		q = q.Where("id = ?", filter.ID)
	case filter.UserID != 0:
		q = q.Where("user_id = ?", filter.UserID)
	default:
		return nil, gorm.ErrRecordNotFound
	}
	var t model.TeacherModel
	if err := q.First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TeacherService) GetTeacher(ctx context.Context, id uint) helper.Feedback {
	t, err := s.FindTeacherBy(ctx, dto.TeacherFilter{ID: id})
	if err != nil {
		return helper.FromError(helper.RecordErr(err, "Teacher not found"), "Unable to fetch teacher")
	}
	return helper.Ok("Operation successful", t)
}

func (s *TeacherService) GetTeachers(ctx context.Context, q dto.ListTeachersQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.TeacherModel{})
	if q.Search != "" {
		base = base.Where("user_id IN (?)", userService.MatchingUserIDs(s.DB, q.Search))
	}
	if q.DeptID != 0 {
		base = base.Where("dept_id = ?", q.DeptID)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromError(err, "Unable to fetch teachers")
	}
	p := helper.NewPagination(q.Page, helper.PerPageTeachers, total)

	var rows []model.TeacherModel
	if err := base.Preload("User").Preload("Department").
		Order("id DESC").Scopes(helper.Paginate(p)).Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch teachers")
	}
	return helper.OkList("Operation successful", rows, &p)
}

func (s *TeacherService) UpdateTeacher(ctx context.Context, id uint, req dto.UpdateTeacherRequest, actorID uint) helper.Feedback {
	var teacher model.TeacherModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&teacher, id).Error; err != nil {
			return helper.RecordErr(err, "Teacher not found")
		}
		if err := userService.ApplyAccountUpdates(ctx, tx, teacher.UserID, req.AccountUpdates()); err != nil {
			return err
		}
		if req.DeptID != nil && *req.DeptID != teacher.DeptID {
			if err := ensureDepartment(tx, *req.DeptID); err != nil {
				return err
			}
			if err := tx.Model(&teacher).Update("dept_id", *req.DeptID).Error; err != nil {
				return err
			}
		}
		return tx.Preload("User").Preload("Department").First(&teacher, id).Error
	})
	if err != nil {
		return helper.FromError(err, "Unable to update teacher")
	}

	activityService.Record(ctx, s.DB, actorID,
		fmt.Sprintf("updated teacher '%s' record", teacher.User.FullName()),
		map[string]any{"teacher_id": teacher.ID})
	return helper.Ok("Teacher updated", teacher)
}

func (s *TeacherService) DeleteTeacher(ctx context.Context, id uint, actorID uint) helper.Feedback {
	var teacher model.TeacherModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&teacher, id).Error; err != nil {
			return helper.RecordErr(err, "Teacher not found")
		}
		if err := tx.Delete(&teacher).Error; err != nil {
			return err
		}
		return userService.DeleteAccount(ctx, tx, teacher.UserID)
	})
	if err != nil {
		return helper.FromError(err, "Unable to delete teacher")
	}

	name := ""
	if teacher.User != nil {
		name = teacher.User.FullName()
	}
	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted teacher '%s' record", name), map[string]any{"teacher_id": teacher.ID})
	return helper.NewFeedback(true, "Teacher deleted")
}

func (s *TeacherService) GetTeacherDashboardStats(ctx context.Context) helper.Feedback {
	var stats dto.TeacherDashboardStats
	db := s.DB.WithContext(ctx)
	if err := db.Model(&studentModel.StudentModel{}).Count(&stats.Students).Error; err != nil {
		return helper.FromError(err, "Unable to fetch dashboard stats")
	}
	if err := db.Model(&courseModel.CourseModel{}).Count(&stats.Courses).Error; err != nil {
		return helper.FromError(err, "Unable to fetch dashboard stats")
	}
	return helper.Ok("Operation successful", stats)
}
