package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"schoolquiz_backend/internals/configs"
	answerModel "schoolquiz_backend/internals/features/school/answers/model"
	questionModel "schoolquiz_backend/internals/features/school/questions/model"
	"schoolquiz_backend/internals/features/school/quizzes/dto"
	"schoolquiz_backend/internals/features/school/quizzes/model"
	topicModel "schoolquiz_backend/internals/features/school/topics/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	studentModel "schoolquiz_backend/internals/features/users/students/model"
	studentService "schoolquiz_backend/internals/features/users/students/service"
	helper "schoolquiz_backend/internals/helpers"
	helperAuth "schoolquiz_backend/internals/helpers/auth"
)

const (
	quizTokenBytes = 6
	quizTokenTTL   = 24 * time.Hour
)

type QuizService struct {
	DB *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{DB: db}
}

func quizTitleTaken(tx *gorm.DB, title string, exceptID uint) (bool, error) {
	q := tx.Model(&model.QuizModel{}).Where("title = ?", title)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func ensureTopic(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&topicModel.TopicModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound("Topic not found")
	}
	return nil
}

/* ===============================
   CRUD
=================================*/

func (s *QuizService) CreateQuiz(ctx context.Context, req dto.CreateQuizRequest, actorID uint) helper.Feedback {
	req.Normalize()

	token, err := helperAuth.RandomHex(quizTokenBytes)
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	var quiz model.QuizModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if taken, err := quizTitleTaken(tx, req.Title, 0); err != nil {
			return err
		} else if taken {
			return helper.Conflict("Quiz title already exists")
		}
		if err := ensureTopic(tx, req.TopicID); err != nil {
			return err
		}
		quiz = model.QuizModel{Title: req.Title, Token: token, TopicID: req.TopicID}
		return tx.Create(&quiz).Error
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("created quiz '%s' record", quiz.Title), map[string]any{"quiz_id": quiz.ID})
	return helper.Ok("success", quiz)
}

func (s *QuizService) FindQuizBy(ctx context.Context, filter dto.QuizFilter) (*model.QuizModel, error) {
	q := s.DB.WithContext(ctx).Preload("Topic.Course")
	switch {
	case filter.ID != 0:
		q = q.Where("id = ?", filter.ID)
	case filter.Token != "":
		q = q.Where("token = ?", filter.Token)
	default:
		return nil, gorm.ErrRecordNotFound
	}
	var quiz model.QuizModel
	if err := q.First(&quiz).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *QuizService) GetQuiz(ctx context.Context, filter dto.QuizFilter) helper.Feedback {
	quiz, err := s.FindQuizBy(ctx, filter)
	if err != nil {
		return helper.FromError(helper.RecordErr(err, "Quiz not found"), "Operation failed")
	}
	if filter.HideToken {
		quiz.Token = ""
	}
	return helper.Ok("success", quiz)
}

// GetQuizzes lists quizzes newest first. Active filters only when set.
func (s *QuizService) GetQuizzes(ctx context.Context, q dto.ListQuizzesQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.QuizModel{})
	if q.TopicID != 0 {
		base = base.Where("topic_id = ?", q.TopicID)
	}
	if q.Search != "" {
		base = base.Where("LOWER(title) LIKE ?", helper.LikePattern(q.Search))
	}
	if q.Active != nil {
		base = base.Where("active = ?", *q.Active)
	}
	base = base.Session(&gorm.Session{})

	find := func(db *gorm.DB, rows *[]model.QuizModel) error {
		if err := db.Preload("Topic.Course.Teacher.User").
			Order("created_at DESC").Order("id DESC").
			Find(rows).Error; err != nil {
			return err
		}
		if q.HideToken {
			for i := range *rows {
				(*rows)[i].Token = ""
			}
		}
		return nil
	}

	var rows []model.QuizModel
	if !q.Paginate {
		if err := find(base, &rows); err != nil {
			return helper.FromError(err, "Operation failed")
		}
		return helper.OkList("success", rows, nil)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return helper.FromError(err, "Operation failed")
	}
	p := helper.NewPagination(q.Page, helper.PerPageQuizzes, total)
	if err := find(base.Scopes(helper.Paginate(p)), &rows); err != nil {
		return helper.FromError(err, "Operation failed")
	}
	return helper.OkList("success", rows, &p)
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id uint, req dto.UpdateQuizRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var quiz model.QuizModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&quiz, id).Error; err != nil {
			return helper.RecordErr(err, "Quiz not found")
		}
		updates := map[string]any{}
		if req.Title != nil && *req.Title != quiz.Title {
			if taken, err := quizTitleTaken(tx, *req.Title, id); err != nil {
				return err
			} else if taken {
				return helper.Conflict("Quiz title already exists")
			}
			updates["title"] = *req.Title
		}
		if req.Token != nil {
			updates["token"] = *req.Token
		}
		if req.Active != nil {
			updates["active"] = *req.Active
		}
		if req.TopicID != nil && *req.TopicID != quiz.TopicID {
			if err := ensureTopic(tx, *req.TopicID); err != nil {
				return err
			}
			updates["topic_id"] = *req.TopicID
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&quiz).Updates(updates).Error; err != nil {
			return err
		}
		return tx.First(&quiz, id).Error
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("updated quiz (%d) record", quiz.ID), map[string]any{"quiz_id": quiz.ID})
	return helper.Ok("success", quiz)
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id uint, actorID uint) helper.Feedback {
	var quiz model.QuizModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&quiz, id).Error; err != nil {
			return helper.RecordErr(err, "Quiz not found")
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&answerModel.AnswerModel{}).Error; err != nil {
			return err
		}
		questions := tx.Model(&questionModel.QuestionModel{}).Select("id").Where("quiz_id = ?", id)
		if err := tx.Where("question_id IN (?)", questions).Delete(&questionModel.OptionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", id).Delete(&questionModel.QuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted quiz (%d) record", quiz.ID), map[string]any{"quiz_id": quiz.ID})
	return helper.NewFeedback(true, "success")
}

/* ===============================
   Results, report, token
=================================*/

// GetQuizResults ranks every student who answered quizID.
func (s *QuizService) GetQuizResults(ctx context.Context, quizID uint) helper.Feedback {
	db := s.DB.WithContext(ctx)

	total, err := studentService.QuizTotalScore(ctx, s.DB, quizID)
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	var scores []dto.StudentScore
	if err := db.Model(&answerModel.AnswerModel{}).
		Select("student_id, COALESCE(SUM(score), 0) AS score").
		Where("quiz_id = ?", quizID).
		Group("student_id").
		Scan(&scores).Error; err != nil {
		return helper.FromError(err, "Operation failed")
	}
	ranked := RankResults(scores)

	ids := make([]uint, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.StudentID)
	}
	students := map[uint]*studentModel.StudentModel{}
	if len(ids) > 0 {
		var rows []studentModel.StudentModel
		if err := db.Preload("User").Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return helper.FromError(err, "Operation failed")
		}
		for i := range rows {
			students[rows[i].ID] = &rows[i]
		}
	}

	results := make([]dto.QuizResultRow, 0, len(ranked))
	for _, r := range ranked {
		results = append(results, dto.QuizResultRow{
			Score:      r.Score,
			TotalScore: total,
			Student:    students[r.StudentID],
			Position:   r.Position,
		})
	}
	return helper.OkList("success", results, nil)
}

func (s *QuizService) questionCounts(ctx context.Context, quizID uint, passed bool) ([]dto.QuestionCount, error) {
	cond := "score = 0"
	if passed {
		cond = "score > 0"
	}
	var counts []dto.QuestionCount
	if err := s.DB.WithContext(ctx).Model(&answerModel.AnswerModel{}).
		Select("question_id, COUNT(*) AS count").
		Where("quiz_id = ?", quizID).
		Where(cond).
		Group("question_id").
		Order("count DESC").Order("question_id ASC").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

// GenerateQuizReport counts passes and failures per question of quizID.
func (s *QuizService) GenerateQuizReport(ctx context.Context, quizID uint) helper.Feedback {
	passes, err := s.questionCounts(ctx, quizID, true)
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}
	fails, err := s.questionCounts(ctx, quizID, false)
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	ids := make([]uint, 0, len(passes)+len(fails))
	for _, c := range passes {
		ids = append(ids, c.QuestionID)
	}
	for _, c := range fails {
		ids = append(ids, c.QuestionID)
	}
	texts := map[uint]string{}
	if len(ids) > 0 {
		var questions []questionModel.QuestionModel
		if err := s.DB.WithContext(ctx).
			Select("id", "question").
			Where("id IN ?", ids).
			Find(&questions).Error; err != nil {
			return helper.FromError(err, "Operation failed")
		}
		for _, q := range questions {
			texts[q.ID] = q.Question
		}
	}
	for i := range passes {
		passes[i].Question = texts[passes[i].QuestionID]
	}
	for i := range fails {
		fails[i].Question = texts[fails[i].QuestionID]
	}

	return helper.Ok("success", BuildReport(passes, fails))
}

// ValidateQuizToken exchanges a quiz's join token for a signed 24h quiz token.
func (s *QuizService) ValidateQuizToken(ctx context.Context, req dto.ValidateQuizTokenRequest) helper.Feedback {
	var quiz model.QuizModel
	err := s.DB.WithContext(ctx).
		Where("id = ? AND token = ?", req.QuizID, strings.TrimSpace(req.Token)).
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.FromError(helper.BadRequest("Invalid quiz token"), "Operation failed")
	}
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	signed, err := helperAuth.SignToken(jwt.MapClaims{"typ": "quiz", "quiz": quiz.ID}, configs.JWTSecret, quizTokenTTL)
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}
	return helper.Ok("success", signed)
}

// ParseQuizToken returns the quiz id carried by a token from ValidateQuizToken.
func ParseQuizToken(raw string) (uint, error) {
	claims, err := helperAuth.ParseToken(raw, configs.JWTSecret)
	if err != nil {
		return 0, err
	}
	if helperAuth.ClaimString(claims, "typ") != "quiz" {
		return 0, helper.BadRequest("Invalid quiz token")
	}
	id, ok := helperAuth.ClaimUint(claims, "quiz")
	if !ok {
		return 0, helper.BadRequest("Invalid quiz token")
	}
	return id, nil
}
