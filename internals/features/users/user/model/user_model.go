package model

import (
	"time"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
)

// UserModel is the login identity shared by admins, teachers and students.
type UserModel struct {
	ID         uint               `gorm:"column:id;primaryKey" json:"id"`
	Surname    string             `gorm:"column:surname;size:20;not null" json:"surname"`
	Othernames string             `gorm:"column:othernames;size:40;not null" json:"othernames"`
	Email      string             `gorm:"column:email;size:60;not null;uniqueIndex:idx_users_email" json:"email"`
	Password   string             `gorm:"column:password;not null" json:"-"`
	Type       constants.UserType `gorm:"column:type;type:varchar(10);not null;index:idx_users_type" json:"type"`
	Avatar     string             `gorm:"column:avatar;size:300;not null;default:'./assets/imgs/avatar.png'" json:"avatar"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.Avatar == "" {
		u.Avatar = constants.DefaultAvatar
	}
	return nil
}

func (u UserModel) FullName() string {
	if u.Othernames == "" {
		return u.Surname
	}
	return u.Surname + " " + u.Othernames
}
