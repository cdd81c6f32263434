package service

import (
	"context"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	"schoolquiz_backend/internals/features/school/levels/model"
	helper "schoolquiz_backend/internals/helpers"
)

type LevelService struct {
	DB *gorm.DB
}

func NewLevelService(db *gorm.DB) *LevelService {
	return &LevelService{DB: db}
}

func (s *LevelService) GetLevels(ctx context.Context) helper.Feedback {
	var rows []model.LevelModel
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch levels")
	}
	return helper.OkList("Operation successful", rows, nil)
}

// SeedLevels inserts the default levels that are not present yet.
func SeedLevels(ctx context.Context, tx *gorm.DB) error {
	for _, name := range constants.DefaultLevels {
		var n int64
		if err := tx.WithContext(ctx).Model(&model.LevelModel{}).Where("name = ?", name).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			continue
		}
		if err := tx.WithContext(ctx).Create(&model.LevelModel{Name: name}).Error; err != nil {
			return err
		}
	}
	return nil
}
