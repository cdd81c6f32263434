package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	activityModel "schoolquiz_backend/internals/features/users/activities/model"
	helper "schoolquiz_backend/internals/helpers"
)

type ActivityService struct {
	DB *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{DB: db}
}

// Record appends content to userID's trail. Failures are logged, never returned.
// A zero userID records nothing.
func (s *ActivityService) Record(ctx context.Context, userID uint, content string, meta map[string]any) {
	Record(ctx, s.DB, userID, content, meta)
}

func Record(ctx context.Context, db *gorm.DB, userID uint, content string, meta map[string]any) {
	if userID == 0 || content == "" {
		return
	}
	row := activityModel.ActivityModel{UserID: userID, Content: truncate(content, 250)}
	if len(meta) > 0 {
		if b, err := json.Marshal(meta); err == nil {
			row.Meta = datatypes.JSON(b)
		}
	}
	if err := db.WithContext(ctx).Create(&row).Error; err != nil {
		slog.WarnContext(ctx, "activity not recorded", "user_id", userID, "content", content, "err", err)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

/* ===============================
   Queries
=================================*/

// MonthRange returns [first day of month, first day of next month) in year.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0)
}

// GetUserActivities lists userID's activities within month (1-12) of the current year, newest first.
func (s *ActivityService) GetUserActivities(ctx context.Context, userID uint, month int) helper.Feedback {
	if month < 1 || month > 12 {
		return helper.FailStatus(http.StatusBadRequest, "Invalid month")
	}
	now := time.Now()
	from, to := MonthRange(now.Year(), month, now.Location())

	var rows []activityModel.ActivityModel
	if err := s.DB.WithContext(ctx).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, from, to).
		Order("created_at DESC, id DESC").
		Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch activities")
	}
	return helper.OkList("Operation successful", rows, nil)
}

// DeleteUserActivity removes activity id; a non-zero ownerID restricts it to that user's trail.
func (s *ActivityService) DeleteUserActivity(ctx context.Context, id, ownerID uint) helper.Feedback {
	q := s.DB.WithContext(ctx).Where("id = ?", id)
	if ownerID != 0 {
		q = q.Where("user_id = ?", ownerID)
	}
	res := q.Delete(&activityModel.ActivityModel{})
	if res.Error != nil {
		return helper.FromError(res.Error, "Unable to delete activity")
	}
	if res.RowsAffected == 0 {
		return helper.FailStatus(http.StatusNotFound, "Activity not found")
	}
	return helper.NewFeedback(true, "Activity deleted")
}
