package service

import (
	"context"
	"log/slog"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	levelService "schoolquiz_backend/internals/features/school/levels/service"
	adminDTO "schoolquiz_backend/internals/features/users/admins/dto"
	adminModel "schoolquiz_backend/internals/features/users/admins/model"
	adminService "schoolquiz_backend/internals/features/users/admins/service"
	helper "schoolquiz_backend/internals/helpers"
)

type InstallService struct {
	DB *gorm.DB
}

func NewInstallService(db *gorm.DB) *InstallService {
	return &InstallService{DB: db}
}

// InstallApp creates the first admin and the default levels. It refuses to
// run once any admin exists.
func (s *InstallService) InstallApp(ctx context.Context) helper.Feedback {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&adminModel.AdminModel{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return helper.Conflict("App already installed")
		}

		if _, err := adminService.CreateAdminTx(ctx, tx, adminDTO.CreateAdminRequest{
			Surname:    "admin",
			Othernames: "admin",
			Email:      constants.DefaultAdminEmail,
			Password:   constants.DefaultAdminPass,
		}); err != nil {
			return err
		}
		return levelService.SeedLevels(ctx, tx)
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}
	return helper.NewFeedback(true, "installed")
}

// Installer runs InstallApp on boot when no admin exists yet.
func (s *InstallService) Installer(ctx context.Context) {
	var n int64
	if err := s.DB.WithContext(ctx).Model(&adminModel.AdminModel{}).Count(&n).Error; err != nil {
		slog.Error("installer: count admins", "err", err)
		return
	}
	if n > 0 {
		return
	}
	fb := s.InstallApp(ctx)
	if !fb.Success {
		slog.Error("installer failed", "message", fb.Message)
		return
	}
	slog.Info("app installed", "admin", constants.DefaultAdminEmail)
}
