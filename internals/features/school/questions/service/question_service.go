package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"gorm.io/gorm"

	"schoolquiz_backend/internals/constants"
	answerModel "schoolquiz_backend/internals/features/school/answers/model"
	"schoolquiz_backend/internals/features/school/questions/dto"
	"schoolquiz_backend/internals/features/school/questions/model"
	quizModel "schoolquiz_backend/internals/features/school/quizzes/model"
	activityService "schoolquiz_backend/internals/features/users/activities/service"
	helper "schoolquiz_backend/internals/helpers"
)

const (
	msgUploadDuplicate = "Some questions were not inserted."
	msgUploadFailed    = "Operation failed"
)

type QuestionService struct {
	DB *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{DB: db}
}

func ensureQuiz(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&quizModel.QuizModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return helper.NotFound("Quiz not found")
	}
	return nil
}

// insertQuestion writes q and one option row per text. tx must be a transaction.
func insertQuestion(tx *gorm.DB, q *model.QuestionModel, options []string) error {
	if err := tx.Create(q).Error; err != nil {
		return err
	}
	if len(options) == 0 {
		return nil
	}
	rows := make([]model.OptionModel, 0, len(options))
	for _, o := range options {
		rows = append(rows, model.OptionModel{Option: o, QuestionID: q.ID})
	}
	if err := tx.Create(&rows).Error; err != nil {
		return err
	}
	q.Options = rows
	return nil
}

/* ===============================
   Questions
=================================*/

func (s *QuestionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, actorID uint) helper.Feedback {
	req.Normalize()

	var question model.QuestionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureQuiz(tx, req.QuizID); err != nil {
			return err
		}
		question = model.QuestionModel{
			Question: req.Question,
			Answer:   req.Answer,
			Timeout:  req.Timeout,
			Score:    req.Score,
			QuizID:   req.QuizID,
		}
		return insertQuestion(tx, &question, req.Options)
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("added question (%d) to quiz (%d)", question.ID, question.QuizID), map[string]any{"question_id": question.ID})
	return helper.Ok("success", question)
}

func (s *QuestionService) FindQuestion(ctx context.Context, id uint) (*model.QuestionModel, error) {
	var q model.QuestionModel
	if err := s.DB.WithContext(ctx).Preload("Options").First(&q, id).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

func (s *QuestionService) GetQuestion(ctx context.Context, id uint) helper.Feedback {
	q, err := s.FindQuestion(ctx, id)
	if err != nil {
		return helper.FromError(helper.RecordErr(err, "Question not found"), "Operation failed")
	}
	return helper.Ok("success", q)
}

// GetQuestions lists a quiz's questions newest first with their options.
// A student viewer without Since gets only questions they have not answered.
func (s *QuestionService) GetQuestions(ctx context.Context, q dto.ListQuestionsQuery) helper.Feedback {
	base := s.DB.WithContext(ctx).Model(&model.QuestionModel{}).Where("quiz_id = ?", q.QuizID)
	if q.Search != "" {
		base = base.Where("LOWER(question) LIKE ?", helper.LikePattern(q.Search))
	}
	if q.Since > 0 {
		base = base.Where("created_at >= ?", time.UnixMilli(q.Since))
	}
	if q.Viewer.Type == constants.UserTypeStudent && q.Since == 0 {
		base = base.Where(
			"NOT EXISTS (SELECT 1 FROM answers WHERE answers.question_id = questions.id AND answers.student_id = ? AND answers.deleted_at IS NULL)",
			q.Viewer.StudentID,
		)
	}
	base = base.Session(&gorm.Session{})

	find := func(db *gorm.DB, rows *[]model.QuestionModel) error {
		if err := db.Preload("Options").Order("created_at DESC").Order("id DESC").Find(rows).Error; err != nil {
			return err
		}
		if q.Viewer.Type == constants.UserTypeStudent {
			for i := range *rows {
				(*rows)[i].Answer = ""
			}
		}
		return nil
	}

	var rows []model.QuestionModel
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
	p := helper.NewPagination(q.Page, helper.PerPageQuestions, total)
	if err := find(base.Scopes(helper.Paginate(p)), &rows); err != nil {
		return helper.FromError(err, "Operation failed")
	}
	return helper.OkList("success", rows, &p)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, id uint, req dto.UpdateQuestionRequest, actorID uint) helper.Feedback {
	var question model.QuestionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&question, id).Error; err != nil {
			return helper.RecordErr(err, "Question not found")
		}
		if updates := req.Updates(); len(updates) > 0 {
			if err := tx.Model(&question).Updates(updates).Error; err != nil {
				return err
			}
		}
		return tx.Preload("Options").First(&question, id).Error
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("updated question (%d) record", question.ID), map[string]any{"question_id": question.ID})
	return helper.Ok("success", question)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id uint, actorID uint) helper.Feedback {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var question model.QuestionModel
		if err := tx.First(&question, id).Error; err != nil {
			return helper.RecordErr(err, "Question not found")
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.OptionModel{}).Error; err != nil {
			return err
		}
		// answer scores must stay within the quiz total
		if err := tx.Where("question_id = ?", id).Delete(&answerModel.AnswerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted question (%d) record", id), map[string]any{"question_id": id})
	return helper.NewFeedback(true, "success")
}

/* ===============================
   Options
=================================*/

func (s *QuestionService) CreateQuestionOption(ctx context.Context, req dto.CreateOptionRequest, actorID uint) helper.Feedback {
	var option model.OptionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.QuestionModel{}).Where("id = ?", req.QuestionID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return helper.NotFound("Question not found")
		}
		option = model.OptionModel{Option: req.Option, QuestionID: req.QuestionID}
		return tx.Create(&option).Error
	})
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("added new option to question (%d)", option.QuestionID), map[string]any{"option_id": option.ID})
	return helper.Ok("success", option)
}

func (s *QuestionService) UpdateQuestionOption(ctx context.Context, id uint, req dto.UpdateOptionRequest, actorID uint) helper.Feedback {
	db := s.DB.WithContext(ctx)

	var option model.OptionModel
	if err := db.First(&option, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Option not found"), "Operation failed")
	}
	if err := db.Model(&option).Update("option", req.Option).Error; err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("updated question (%d) option record", option.QuestionID), map[string]any{"option_id": option.ID})
	return helper.Ok("success", option)
}

func (s *QuestionService) DeleteQuestionOption(ctx context.Context, id uint, actorID uint) helper.Feedback {
	db := s.DB.WithContext(ctx)

	var option model.OptionModel
	if err := db.First(&option, id).Error; err != nil {
		return helper.FromError(helper.RecordErr(err, "Option not found"), "Operation failed")
	}
	if err := db.Delete(&option).Error; err != nil {
		return helper.FromError(err, "Operation failed")
	}

	activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("deleted question (%d) option record", option.QuestionID), map[string]any{"option_id": option.ID})
	return helper.NewFeedback(true, "success")
}

/* ===============================
   Bulk upload
=================================*/

// ProcessQuestionUpload imports every row of filename into quizID. Rows are
// inserted one by one, each in its own transaction; a failed row never undoes
// the others.
func (s *QuestionService) ProcessQuestionUpload(ctx context.Context, quizID uint, filename string, actorID uint) helper.Feedback {
	if err := ensureQuiz(s.DB.WithContext(ctx), quizID); err != nil {
		return helper.FromError(err, msgUploadFailed)
	}

	cells, err := ReadQuestionSheet(filename)
	if err != nil {
		slog.Error("read question sheet", "file", filename, "err", err)
		return helper.FailStatus(http.StatusBadRequest, err.Error())
	}
	rows, err := ParseSheetRows(cells)
	if err != nil {
		return helper.FailStatus(http.StatusBadRequest, err.Error())
	}

	fb := helper.NewFeedback(true, "success")
	fb.Errors = []string{}
	var res dto.UploadResult
	duplicates, failures := 0, 0

	for _, row := range rows {
		if row.Err != nil {
			slog.Warn("skip question row", "line", row.Line, "err", row.Err)
			fb.Errors = append(fb.Errors, fmt.Sprintf("Failed to add \"%s\".", row.Question))
			failures++
			continue
		}

		dup := false
		err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var n int64
			if err := tx.Model(&model.QuestionModel{}).
				Where("quiz_id = ? AND question = ?", quizID, row.Question).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				dup = true
				return nil
			}
			q := model.QuestionModel{
				Question: row.Question,
				Answer:   row.Answer,
				Score:    row.Score,
				Timeout:  row.Timeout,
				QuizID:   quizID,
			}
			return insertQuestion(tx, &q, row.Options)
		})

		switch {
		case err != nil:
			slog.Error("insert question row", "line", row.Line, "err", err)
			fb.Errors = append(fb.Errors, fmt.Sprintf("Failed to add \"%s\".", row.Question))
			failures++
		case dup:
			fb.Errors = append(fb.Errors, fmt.Sprintf("Failed to add \"%s\" because it already exists.", row.Question))
			duplicates++
		default:
			res.Inserted++
		}
	}

	res.Failed = duplicates + failures
	switch {
	case failures > 0:
		fb.Success = false
		fb.Message = msgUploadFailed
	case duplicates > 0:
		fb.Success = false
		fb.Message = msgUploadDuplicate
	}
	fb.Result = res

	if res.Inserted > 0 {
		activityService.Record(ctx, s.DB, actorID, fmt.Sprintf("uploaded %d questions to quiz (%d)", res.Inserted, quizID), map[string]any{"quiz_id": quizID})
	}
	return fb
}
