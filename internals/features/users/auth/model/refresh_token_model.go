package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenModel is one signed-in session; its id is carried in the access token.
type RefreshTokenModel struct {
	ID        string    `gorm:"column:id;type:varchar(36);primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null;index:idx_refresh_tokens_user" json:"user_id"`
	Token     string    `gorm:"column:token;type:text;not null" json:"-"`
	UserAgent string    `gorm:"column:user_agent;size:300" json:"user_agent"`
	Valid     bool      `gorm:"column:valid;not null;default:true" json:"valid"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index:idx_refresh_tokens_expires" json:"expires_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshTokenModel) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == "" {
		rt.ID = uuid.NewString()
	}
	return nil
}
