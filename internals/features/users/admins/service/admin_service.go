package service

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	departmentModel "schoolquiz_backend/internals/features/school/departments/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	"schoolquiz_backend/internals/features/users/admins/dto"
	"schoolquiz_backend/internals/features/users/admins/model"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	teacherModel "schoolquiz_backend/internals/features/users/teachers/model"
	userService "schoolquiz_backend/internals/features/users/user/service"
	helper "schoolquiz_backend/internals/helpers"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

// CreateAdminTx creates the user and admin rows inside tx.
func CreateAdminTx(ctx context.Context, tx *gorm.DB, req dto.CreateAdminRequest) (*model.AdminModel, error) {
	req.Normalize()

	taken, err := userService.EmailTaken(ctx, tx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, helper.Conflict("email already exists.")
	}

	u, err := userService.NewAccount(ctx, tx, req.Surname, req.Othernames, req.Email, req.Password, constants.UserTypeAdmin)
	if err != nil {
		if helper.IsDuplicate(err) {
			return nil, helper.Conflict("email already exists.")
		}
		return nil, err
	}

	admin := &model.AdminModel{UserID: u.ID}
	if err := tx.WithContext(ctx).Create(admin).Error; err != nil {
		return nil, err
	}
	admin.User = u
	return admin, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest, actorID uint) helper.Feedback {
	var admin *model.AdminModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		admin, err = CreateAdminTx(ctx, tx, req)
		return err
	})
	if err != nil {
		return helper.FromError(err, "Failed to create account")
	}

	activityService.Record(ctx, s.DB, actorID,
		fmt.Sprintf("created admin '%s' record", admin.User.FullName()),
		map[string]any{"admin_id": admin.ID})
	return helper.Ok("Account created", admin)
}

func (s *AdminService) FindAdminBy(ctx context.Context, filter dto.AdminFilter) (*model.AdminModel, error) {
	q := s.DB.WithContext(ctx).Preload("User")
	switch {
	case filter.ID != 0:
		q = q.Where("id = ?", filter.ID)
	case filter.UserID != 0:
		q = q.Where("user_id = ?", filter.UserID)
	default:
		return nil, gorm.ErrRecordNotFound
	}
	var admin model.AdminModel
	if err := q.First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (s *AdminService) GetAdminCount(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.WithContext(ctx).Model(&model.AdminModel{}).Count(&n).Error
	return n, err
}

func (s *AdminService) GetAdmin(ctx context.Context, id uint) helper.Feedback {
	admin, err := s.FindAdminBy(ctx, dto.AdminFilter{ID: id})
	if err != nil {
		return helper.FromError(helper.RecordErr(err, "Admin not found"), "Unable to fetch admin")
	}
	return helper.Ok("Operation successful", admin)
}

func (s *AdminService) GetAdmins(ctx context.Context, q dto.ListAdminsQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.AdminModel{})
	if q.Search != "" {
		base = base.Where("user_id IN (?)", userService.MatchingUserIDs(s.DB, q.Search))
	}

	base = base.Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromError(err, "Unable to fetch admins")
	}
	p := helper.NewPagination(q.Page, helper.PerPageAdmins, total)

	var rows []model.AdminModel
	if err := base.Preload("User").Order("id DESC").Scopes(helper.Paginate(p)).Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch admins")
	}
	return helper.OkList("Operation successful", rows, &p)
}

func (s *AdminService) UpdateAdmin(ctx context.Context, id uint, req dto.UpdateAdminRequest, actorID uint) helper.Feedback {
	var admin *model.AdminModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var a model.AdminModel
		if err := tx.First(&a, id).Error; err != nil {
			return helper.RecordErr(err, "Admin not found")
		}
		if err := userService.ApplyAccountUpdates(ctx, tx, a.UserID, req.AccountUpdates()); err != nil {
			return err
		}
		if err := tx.Preload("User").First(&a, id).Error; err != nil {
			return err
		}
		admin = &a
		return nil
	})
	if err != nil {
		return helper.FromError(err, "Unable to update admin")
	}

	activityService.Record(ctx, s.DB, actorID,
		fmt.Sprintf("updated admin '%s' record", admin.User.FullName()),
		map[string]any{"admin_id": admin.ID})
	return helper.Ok("Admin updated", admin)
}

func (s *AdminService) DeleteAdmin(ctx context.Context, id uint, actorID uint) helper.Feedback {
	var admin model.AdminModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("User").First(&admin, id).Error; err != nil {
			return helper.RecordErr(err, "Admin not found")
		}
		if admin.UserID == actorID {
			return helper.NewAppError(http.StatusBadRequest, "You cannot delete your own account")
		}
		if err := tx.Delete(&admin).Error; err != nil {
			return err
		}
		return userService.DeleteAccount(ctx, tx, admin.UserID)
	})
	if err != nil {
		return helper.FromError(err, "Unable to delete admin")
	}

	name := ""
	if admin.User != nil {
		name = admin.User.FullName()
	}
	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted admin '%s' record", name), map[string]any{"admin_id": admin.ID})
	return helper.NewFeedback(true, "Admin deleted")
}

func (s *AdminService) GetAdminDashboardStats(ctx context.Context) helper.Feedback {
	var stats dto.AdminDashboardStats
	db := s.DB.WithContext(ctx)
	counts := []struct {
		model any
		dst   *int64
	}{
		{&model.AdminModel{}, &stats.Admins},
		{&teacherModel.TeacherModel{}, &stats.Teachers},
		{&studentModel.StudentModel{}, &stats.Students},
		{&departmentModel.DepartmentModel{}, &stats.Departments},
	}
	for _, c := range counts {
		if err := db.Model(c.model).Count(c.dst).Error; err != nil {
			return helper.FromError(err, "Unable to fetch dashboard stats")
		}
	}
	return helper.Ok("Operation successful", stats)
}
