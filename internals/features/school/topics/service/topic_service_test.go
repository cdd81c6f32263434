package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolquiz_backend/internals/features/school/topics/dto"
	"schoolquiz_backend/internals/features/school/topics/model"
	"schoolquiz_backend/internals/testutil"
)

func TestTopicLifecycle(t *testing.T) {
	db := testutil.OpenTestDB(t)
	school := testutil.SeedSchool(t, db)
	svc := NewTopicService(db)
	ctx := context.Background()
	actor := school.Admin.UserID

	fb := svc.CreateTopic(ctx, dto.CreateTopicRequest{Title: " Logic gates ", CourseID: school.Course.ID}, actor)
	require.True(t, fb.Success, fb.Message)
	topic := fb.Result.(model.TopicModel)
	assert.Equal(t, "Logic gates", topic.Title)

	fb = svc.CreateTopic(ctx, dto.CreateTopicRequest{Title: "binary numbers", CourseID: school.Course.ID}, actor)
	assert.Equal(t, http.StatusConflict, fb.Status)
	assert.Equal(t, "Topic already exists in this course", fb.Message)

	fb = svc.CreateTopic(ctx, dto.CreateTopicRequest{Title: "Anything", CourseID: 999}, actor)
	assert.Equal(t, http.StatusNotFound, fb.Status)
	assert.Equal(t, "Course not found", fb.Message)

	title := "Binary Numbers"
	fb = svc.UpdateTopic(ctx, topic.ID, dto.UpdateTopicRequest{Title: &title}, actor)
	assert.Equal(t, http.StatusConflict, fb.Status)

	desc := "  AND, OR and NOT  "
	fb = svc.UpdateTopic(ctx, topic.ID, dto.UpdateTopicRequest{Description: &desc}, actor)
	require.True(t, fb.Success, fb.Message)
	assert.Equal(t, "AND, OR and NOT", fb.Result.(model.TopicModel).Description)

	fb = svc.GetTopics(ctx, dto.ListTopicsQuery{CourseID: school.Course.ID})
	assert.Len(t, fb.Results.([]model.TopicModel), 2)

	fb = svc.GetTopics(ctx, dto.ListTopicsQuery{Search: "logic", Paginate: true})
	assert.Len(t, fb.Results.([]model.TopicModel), 1)

	fb = svc.DeleteTopic(ctx, topic.ID, actor)
	require.True(t, fb.Success)
	fb = svc.GetTopic(ctx, topic.ID)
	assert.Equal(t, http.StatusNotFound, fb.Status)
}
