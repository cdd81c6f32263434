package model

import (
	"time"

	"gorm.io/gorm"

	userModel "schoolquiz_backend/internals/features/users/user/model"
)

type AdminModel struct {
	ID     uint `gorm:"column:id;primaryKey" json:"id"`
	UserID uint `gorm:"column:user_id;not null;index:idx_admins_user" json:"user_id"`

	User *userModel.UserModel `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (AdminModel) TableName() string {
	return "admins"
}
