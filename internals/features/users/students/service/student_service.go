package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	answerModel "schoolquiz_backend/internals/features/school/answers/model"
	departmentModel "schoolquiz_backend/internals/features/school/departments/model"
	levelModel "schoolquiz_backend/internals/features/school/levels/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	"schoolquiz_backend/internals/features/users/students/dto"
	"schoolquiz_backend/internals/features/users/students/model"
	userService "schoolquiz_backend/internals/features/users/user/service"
	helper "schoolquiz_backend/internals/helpers"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

func regNoTaken(tx *gorm.DB, regNo string, exceptID uint) (bool, error) {
	q := tx.Model(&model.StudentModel{}).Where("reg_no = ?", regNo)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func ensureExists(tx *gorm.DB, m any, id uint, notFound string) error {
	var n int64
	if err := tx.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound(notFound)
	}
	return nil
}

func (s *StudentService) CreateStudent(ctx context.Context, req dto.CreateStudentRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var student model.StudentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taken, err := userService.EmailTaken(ctx, tx, req.Email, 0)
		if err != nil {
			return err
		}
		if taken {
			return helper.Conflict("Email already exists.")
		}
		if taken, err = regNoTaken(tx, req.RegNo, 0); err != nil {
			return err
		} else if taken {
			return helper.Conflict("RegNo already exists.")
		}
		if err := ensureExists(tx, &levelModel.LevelModel{}, req.LevelID, "Level not found"); err != nil {
			return err
		}
		if err := ensureExists(tx, &departmentModel.DepartmentModel{}, req.DeptID, "Department not found"); err != nil {
			return err
		}

		u, err := userService.NewAccount(ctx, tx, req.Surname, req.Othernames, req.Email, req.Password, constants.UserTypeStudent)
		if err != nil {
			if helper.IsDuplicate(err) {
				return helper.Conflict("Email already exists.")
			}
			return err
		}

		student = model.StudentModel{UserID: u.ID, RegNo: req.RegNo, LevelID: req.LevelID, DeptID: req.DeptID}
		if err := tx.Create(&student).Error; err != nil {
			return err
		}
		return tx.Preload("User").Preload("Level").Preload("Department").First(&student, student.ID).Error
	})
	if err != nil {
		return helper.FromError(err, "Failed to create account")
	}

	activityService.Record(ctx, s.DB, actorID,
		fmt.Sprintf("created student '%s' record", student.User.FullName()),
		map[string]any{"student_id": student.ID, "reg_no": student.RegNo})
	return helper.Ok("Account created", student)
}

func (s *StudentService) FindStudentBy(ctx context.Context, filter dto.StudentFilter) (*model.StudentModel, error) {
	q := s.DB.WithContext(ctx).Preload("User").Preload("Level").Preload("Department")
	switch {
	case filter.ID != 0:
		q = q.Where("id = ?", filter.ID)
	case filter.UserID != 0:
		q = q.Where("user_id = ?", filter.UserID)
	case filter.RegNo != "":
		q = q.Where("reg_no = ?", filter.RegNo)
	default:
		return nil, gorm.ErrRecordNotFound
	}
	var st model.StudentModel
	if err := q.First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (s *StudentService) GetStudent(ctx context.Context, id uint) helper.Feedback {
	st, err := s.FindStudentBy(ctx, dto.StudentFilter{ID: id})
	if err != nil {
		return helper.FromError(helper.RecordErr(err, "Student not found"), "Unable to fetch student")
	}
	return helper.Ok("Operation successful", st)
}

func (s *StudentService) GetStudents(ctx context.Context, q dto.ListStudentsQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.StudentModel{})
	if q.Search != "" {
		base = base.Where("user_id IN (?) OR LOWER(reg_no) LIKE ?",
			userService.MatchingUserIDs(s.DB, q.Search), helper.LikePattern(q.Search))
	}
	if q.DeptID != 0 {
		base = base.Where("dept_id = ?", q.DeptID)
	}
	if q.LevelID != 0 {
		base = base.Where("level_id = ?", q.LevelID)
	}
	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromError(err, "Unable to fetch students")
	}
	p := helper.NewPagination(q.Page, helper.PerPageStudents, total)

	var rows []model.StudentModel
	if err := base.Preload("User").Preload("Level").Preload("Department").
		Order("id DESC").Scopes(helper.Paginate(p)).Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch students")
	}
	return helper.OkList("Operation successful", rows, &p)
}

func (s *StudentService) UpdateStudent(ctx context.Context, id uint, req dto.UpdateStudentRequest, actorID uint) helper.Feedback {
	var student model.StudentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&student, id).Error; err != nil {
			return helper.RecordErr(err, "Student not found")
		}
		if err := userService.ApplyAccountUpdates(ctx, tx, student.UserID, req.AccountUpdates()); err != nil {
			return err
		}

		updates := map[string]any{}
		if req.RegNo != nil && *req.RegNo != student.RegNo {
			taken, err := regNoTaken(tx, *req.RegNo, id)
			if err != nil {
				return err
			}
			if taken {
				return helper.Conflict("RegNo already exists.")
			}
			updates["reg_no"] = *req.RegNo
		}
		if req.LevelID != nil {
			if err := ensureExists(tx, &levelModel.LevelModel{}, *req.LevelID, "Level not found"); err != nil {
				return err
			}
			updates["level_id"] = *req.LevelID
		}
		if req.DeptID != nil {
			if err := ensureExists(tx, &departmentModel.DepartmentModel{}, *req.DeptID, "Department not found"); err != nil {
				return err
			}
			updates["dept_id"] = *req.DeptID
		}
		if len(updates) > 0 {
			if err := tx.Model(&student).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Preload("User").Preload("Level").Preload("Department").First(&student, id).Error
	})
	if err != nil {
		return helper.FromError(err, "Unable to update student")
	}

	activityService.Record(ctx, s.DB, actorID,
		fmt.Sprintf("updated student '%s' record", student.User.FullName()),
		map[string]any{"student_id": student.ID})
	return helper.Ok("Student updated", student)
}

func (s *StudentService) DeleteStudent(ctx context.Context, id uint, actorID uint) helper.Feedback {
	var student model.StudentModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&student, id).Error; err != nil {
			return helper.RecordErr(err, "Student not found")
		}
		if err := tx.Where("student_id = ?", student.ID).Delete(&answerModel.AnswerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&student).Error; err != nil {
			return err
		}
		return userService.DeleteAccount(ctx, tx, student.UserID)
	})
	if err != nil {
		return helper.FromError(err, "Unable to delete student")
	}

	name := ""
	if student.User != nil {
		name = student.User.FullName()
	}
	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted student '%s' record", name), map[string]any{"student_id": student.ID})
	return helper.NewFeedback(true, "Student deleted")
}
