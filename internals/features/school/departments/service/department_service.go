package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/features/school/departments/dto"
	"schoolquiz_backend/internals/features/school/departments/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	helper "schoolquiz_backend/internals/helpers"
)

type DepartmentService struct {
	DB *gorm.DB
}

func NewDepartmentService(db *gorm.DB) *DepartmentService {
	return &DepartmentService{DB: db}
}

func (s *DepartmentService) nameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	q := s.DB.WithContext(ctx).Model(&model.DepartmentModel{}).Where("LOWER(name) = ?", strings.ToLower(name))
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (s *DepartmentService) CreateDepartment(ctx context.Context, req dto.DepartmentRequest, actorID uint) helper.Feedback {
	req.Normalize()

	taken, err := s.nameTaken(ctx, req.Name, 0)
	if err != nil {
		return helper.FromError(err, "Unable to create department")
	}
	if taken {
		return helper.FailStatus(http.StatusConflict, "Department already exists")
	}

	dept := model.DepartmentModel{Name: req.Name}
	if err := s.DB.WithContext(ctx).Create(&dept).Error; err != nil {
		return helper.FromError(err, "Unable to create department")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("created department '%s' record", dept.Name), map[string]any{"department_id": dept.ID})
	return helper.Ok("Department created", dept)
}

func (s *DepartmentService) GetDepartment(ctx context.Context, id uint) helper.Feedback {
	var dept model.DepartmentModel
	if err := s.DB.WithContext(ctx).First(&dept, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Department not found"), "Unable to fetch department")
	}
	return helper.Ok("Operation successful", dept)
}

func (s *DepartmentService) GetDepartments(ctx context.Context, q dto.ListDepartmentsQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.DepartmentModel{})
	if q.Search != "" {
		base = base.Where("LOWER(name) LIKE ?", helper.LikePattern(q.Search))
	}

	base = base.Session(&gorm.Session{})

	var rows []model.DepartmentModel
	if !q.Paginate {
		if err := base.Order("name ASC").Find(&rows).Error; err != nil {
			return helper.FromError(err, "Unable to fetch departments")
		}
		return helper.OkList("Operation successful", rows, nil)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromError(err, "Unable to fetch departments")
	}
	p := helper.NewPagination(q.Page, helper.PerPageDepartments, total)
	if err := base.Order("name ASC").Scopes(helper.Paginate(p)).Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch departments")
	}
	return helper.OkList("Operation successful", rows, &p)
}

func (s *DepartmentService) UpdateDepartment(ctx context.Context, id uint, req dto.DepartmentRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var dept model.DepartmentModel
	if err := s.DB.WithContext(ctx).First(&dept, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Department not found"), "Unable to update department")
	}
	taken, err := s.nameTaken(ctx, req.Name, id)
	if err != nil {
		return helper.FromError(err, "Unable to update department")
	}
	if taken {
		return helper.FailStatus(http.StatusConflict, "Department already exists")
	}

	if err := s.DB.WithContext(ctx).Model(&dept).Update("name", req.Name).Error; err != nil {
		return helper.FromError(err, "Unable to update department")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("updated department '%s' record", dept.Name), map[string]any{"department_id": dept.ID})
	return helper.Ok("Department updated", dept)
}

func (s *DepartmentService) DeleteDepartment(ctx context.Context, id uint, actorID uint) helper.Feedback {
	var dept model.DepartmentModel
	if err := s.DB.WithContext(ctx).First(&dept, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Department not found"), "Unable to delete department")
	}
	if err := s.DB.WithContext(ctx).Delete(&dept).Error; err != nil {
		return helper.FromError(err, "Unable to delete department")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted department '%s' record", dept.Name), map[string]any{"department_id": dept.ID})
	return helper.NewFeedback(true, "Department deleted")
}
