package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	courseModel "schoolquiz_backend/internals/features/school/courses/model"
	"schoolquiz_backend/internals/features/school/topics/dto"
	"schoolquiz_backend/internals/features/school/topics/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	helper "schoolquiz_backend/internals/helpers"
)

type TopicService struct {
	DB *gorm.DB
}

func NewTopicService(db *gorm.DB) *TopicService {
	return &TopicService{DB: db}
}

// topicTaken reports whether courseID already has a topic titled title (case-insensitive).
func topicTaken(tx *gorm.DB, title string, courseID, exceptID uint) (bool, error) {
	q := tx.Model(&model.TopicModel{}).
		Where("LOWER(title) = ? AND course_id = ?", strings.ToLower(title), courseID)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (s *TopicService) CreateTopic(ctx context.Context, req dto.CreateTopicRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var topic model.TopicModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&courseModel.CourseModel{}).Where("id = ?", req.CourseID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return helper.NotFound("Course not found")
		}
		if taken, err := topicTaken(tx, req.Title, req.CourseID, 0); err != nil {
			return err
		} else if taken {
			return helper.Conflict("Topic already exists in this course")
		}

		topic = model.TopicModel{Title: req.Title, Description: req.Description, CourseID: req.CourseID}
		return tx.Create(&topic).Error
	})
	if err != nil {
		return helper.FromError(err, "Unable to create topic")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("created topic '%s' record", topic.Title), map[string]any{"topic_id": topic.ID})
	return helper.Ok("Topic created", topic)
}

func (s *TopicService) GetTopic(ctx context.Context, id uint) helper.Feedback {
	var topic model.TopicModel
	if err := s.DB.WithContext(ctx).Preload("Course").First(&topic, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Topic not found"), "Unable to fetch topic")
	}
	return helper.Ok("Operation successful", topic)
}

func (s *TopicService) GetTopics(ctx context.Context, q dto.ListTopicsQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.TopicModel{})
	if q.CourseID != 0 {
		base = base.Where("course_id = ?", q.CourseID)
	}
	if q.Search != "" {
		base = base.Where("LOWER(title) LIKE ?", helper.LikePattern(q.Search))
	}
	base = base.Session(&gorm.Session{})

	var rows []model.TopicModel
	if !q.Paginate {
		if err := base.Preload("Course").Order("id DESC").Find(&rows).Error; err != nil {
			return helper.FromError(err, "Unable to fetch topics")
		}
		return helper.OkList("Operation successful", rows, nil)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromError(err, "Unable to fetch topics")
	}
	p := helper.NewPagination(q.Page, helper.PerPageTopics, total)
	if err := base.Preload("Course").Order("id DESC").Scopes(helper.Paginate(p)).Find(&rows).Error; err != nil {
		return helper.FromError(err, "Unable to fetch topics")
	}
	return helper.OkList("Operation successful", rows, &p)
}

func (s *TopicService) UpdateTopic(ctx context.Context, id uint, req dto.UpdateTopicRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var topic model.TopicModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&topic, id).Error; err != nil {
			return helper.RecordErr(err, "Topic not found")
		}
		updates := map[string]any{}
		if req.Title != nil && *req.Title != topic.Title {
			if taken, err := topicTaken(tx, *req.Title, topic.CourseID, id); err != nil {
				return err
			} else if taken {
				return helper.Conflict("Topic already exists in this course")
			}
			updates["title"] = *req.Title
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&topic).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&topic, id).Error
	})
	if err != nil {
		return helper.FromError(err, "Unable to update topic")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("updated topic '%s' record", topic.Title), map[string]any{"topic_id": topic.ID})
	return helper.Ok("Topic updated", topic)
}

func (s *TopicService) DeleteTopic(ctx context.Context, id uint, actorID uint) helper.Feedback {
	var topic model.TopicModel
	if err := s.DB.WithContext(ctx).First(&topic, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Topic not found"), "Unable to delete topic")
	}
	if err := s.DB.WithContext(ctx).Delete(&topic).Error; err != nil {
		return helper.FromError(err, "Unable to delete topic")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted topic '%s' record", topic.Title), map[string]any{"topic_id": topic.ID})
	return helper.NewFeedback(true, "Topic deleted")
}
