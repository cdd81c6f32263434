package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/courses/dto"
	"schoolquiz_backend/internals/features/school/courses/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
	helper "schoolquiz_backend/internals/helpers"
)

type CourseService struct {
	DB *gorm.DB
}

func NewCourseService(db *gorm.DB) *CourseService {
	return &CourseService{DB: db}
}

func codeTaken(tx *gorm.DB, code string, exceptID uint) (bool, error) {
	q := tx.Model(&model.CourseModel{}).Where("code = ?", code)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func titleTaken(tx *gorm.DB, title string, teacherID, exceptID uint) (bool, error) {
	q := tx.Model(&model.CourseModel{}).
		Where("LOWER(title) = ? AND teacher_id = ?", strings.ToLower(title), teacherID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func ensureTeacher(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&teacherModel.TeacherModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound("Teacher not found")
	}
	return nil
}

func (s *CourseService) CreateCourse(ctx context.Context, req dto.CreateCourseRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var course model.CourseModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureTeacher(tx, req.TeacherID); err != nil {
			return err
		}
		if taken, err := codeTaken(tx, req.Code, 0); err != nil {
			return err
		} else if taken {
			return helper.Conflict("Course code already exists")
		}
		if taken, err := titleTaken(tx, req.Title, req.TeacherID, 0); err != nil {
			return err
		} else if taken {
			return helper.Conflict("Course title already exists")
		}

		course = model.CourseModel{Code: req.Code, Title: req.Title, TeacherID: req.TeacherID}
		if err := tx.Create(&course).Error; err != nil {
			if helper.IsDuplicate(err) {
				return helper.Conflict("Course code already exists")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return helper.FromError(err, "Unable to create course")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("created course '%s' record", course.Code), map[string]any{"course_id": course.ID})
	return helper.Ok("Course created", course)
}

func (s *CourseService) FindCourse(ctx context.Context, id uint) (*model.CourseModel, error) {
	var course model.CourseModel
	if err := s.DB.WithContext(ctx).Preload("Teacher.User").First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

func (s *CourseService) GetCourse(ctx context.Context, id uint) helper.Feedback {
	course, err := s.FindCourse(ctx, id)
	if err != nil {
		return helper.FromError(helper.RecordErr(err, "Course not found"), "Unable to fetch course")
	}
	return helper.Ok("Operation successful", course)
}

func (s *CourseService) GetCourses(ctx context.Context, q dto.ListCoursesQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.CourseModel{})
	if q.Search != "" {
		p := helper.LikePattern(q.Search)
		base = base.Where("LOWER(title) LIKE ? OR LOWER(code) LIKE ?", p, p)
	}
	if q.TeacherID != 0 {
		base = base.Where("teacher_id = ?", q.TeacherID)
	}
	base = base.Session(&gorm.Session{})

	var rows []model.CourseModel
	if !q.Paginate {
		if err := base.Preload("Teacher.User").Order("code ASC").Find(&rows).Error; err != nil {
			return helper.FromError(err, "Unable to fetch courses")
		}
		return helper.OkList("Operation successful", rows, nil)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromError(err, "Unable to fetch courses")
	}
	p := helper.NewPagination(q.Page, helper.PerPageCourses, total)
	if err := base.Preload("Teacher.User").Order("code ASC").Scopes(helper.Paginate(p)).Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch courses")
	}
	return helper.OkList("Operation successful", rows, &p)
}

func (s *CourseService) UpdateCourse(ctx context.Context, id uint, req dto.UpdateCourseRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var course model.CourseModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&course, id).Error; err != nil {
			return helper.RecordErr(err, "Course not found")
		}

		teacherID := course.TeacherID
		updates := map[string]any{}
		if req.TeacherID != nil && *req.TeacherID != course.TeacherID {
			if err := ensureTeacher(tx, *req.TeacherID); err != nil {
				return err
			}
			teacherID = *req.TeacherID
			updates["teacher_id"] = teacherID
		}
		if req.Code != nil && *req.Code != course.Code {
			if taken, err := codeTaken(tx, *req.Code, id); err != nil {
				return err
			} else if taken {
				return helper.Conflict("Course code already exists")
			}
			updates["code"] = *req.Code
		}
		title := course.Title
		if req.Title != nil {
			title = *req.Title
			updates["title"] = title
		}
		if _, ok := updates["title"]; ok || updates["teacher_id"] != nil {
			if taken, err := titleTaken(tx, title, teacherID, id); err != nil {
				return err
			} else if taken {
				return helper.Conflict("Course title already exists")
			}
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&course).Updates(updates).Error; err != nil {
			if helper.IsDuplicate(err) {
				return helper.Conflict("Course code already exists")
			}
			return err
		}
		return tx.First(&course, id).Error
	})
	if err != nil {
		return helper.FromError(err, "Unable to update course")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("updated course '%s' record", course.Code), map[string]any{"course_id": course.ID})
	return helper.Ok("Course updated", course)
}

func (s *CourseService) DeleteCourse(ctx context.Context, id uint, actorID uint) helper.Feedback {
	var course model.CourseModel
	if err := s.DB.WithContext(ctx).First(&course, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Course not found"), "Unable to delete course")
	}
	if err := s.DB.WithContext(ctx).Delete(&course).Error; err != nil {
		return helper.FromError(err, "Unable to delete course")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted course '%s' record", course.Code), map[string]any{"course_id": course.ID})
	return helper.NewFeedback(true, "Course deleted")
}
