package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityModel is one line of a user's audit trail.
type ActivityModel struct {
	ID      uint           `gorm:"column:id;primaryKey" json:"id"`
	Content string         `gorm:"column:content;size:250;not null" json:"content"`
	UserID  uint           `gorm:"column:user_id;not null;index:idx_activities_user_created,priority:1" json:"user_id"`
	Meta    datatypes.JSON `gorm:"column:meta" json:"meta,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime;index:idx_activities_user_created,priority:2" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (ActivityModel) TableName() string {
	return "activities"
}
