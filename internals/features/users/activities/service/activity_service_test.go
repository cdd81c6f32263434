package service

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/constants"
	"schoolquiz_backend/internals/features/users/activities/model"
	"schoolquiz_backend/internals/testutil"
)

func TestRecord(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeAdmin)
	ctx := context.Background()

	Record(ctx, db, 0, "ignored", nil)
	Record(ctx, db, u.ID, "", nil)
	Record(ctx, db, u.ID, strings.Repeat("x", 300), map[string]any{"quiz_id": 4})

	var rows []model.ActivityModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Len(t, rows[0].Content, 250)
	assert.JSONEq(t, `{"quiz_id":4}`, string(rows[0].Meta))
}

func TestGetUserActivities(t *testing.T) {
	db := testutil.OpenTestDB(t)
	u := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeAdmin)
	svc := NewActivityService(db)
	ctx := context.Background()

	svc.Record(ctx, u.ID, "first", nil)
	svc.Record(ctx, u.ID, "second", nil)
	old := model.ActivityModel{UserID: u.ID, Content: "last year", CreatedAt: time.Now().AddDate(-1, 0, 0)}
	require.NoError(t, db.Create(&old).Error)

	fb := svc.GetUserActivities(ctx, u.ID, int(time.Now().Month()))
	require.True(t, fb.Success, fb.Message)
	rows := fb.Results.([]model.ActivityModel)
	require.Len(t, rows, 2)
	assert.Equal(t, "second", rows[0].Content)

	fb = svc.GetUserActivities(ctx, u.ID, 13)
	assert.Equal(t, http.StatusBadRequest, fb.Status)
}

func TestDeleteUserActivity(t *testing.T) {
	db := testutil.OpenTestDB(t)
	a := testutil.CreateUser(t, db, "a@school.test", constants.UserTypeAdmin)
	b := testutil.CreateUser(t, db, "b@school.test", constants.UserTypeAdmin)
	svc := NewActivityService(db)
	ctx := context.Background()

	svc.Record(ctx, a.ID, "mine", nil)
	var row model.ActivityModel
	require.NoError(t, db.First(&row).Error)

	fb := svc.DeleteUserActivity(ctx, row.ID, b.ID)
	assert.Equal(t, http.StatusNotFound, fb.Status)

	fb = svc.DeleteUserActivity(ctx, row.ID, a.ID)
	assert.True(t, fb.Success)
}

func TestMonthRange(t *testing.T) {
	from, to := MonthRange(2024, 12, time.UTC)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), to)
}
