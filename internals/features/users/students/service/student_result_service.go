package service

import (
	"context"

	"gorm.io/gorm"

	answerModel "schoolquiz_backend/internals/features/school/answers/model"
	questionModel "schoolquiz_backend/internals/features/school/questions/model"
	quizModel "schoolquiz_backend/internals/features/school/quizzes/model"
	"schoolquiz_backend/internals/features/users/students/dto"
	helper "schoolquiz_backend/internals/helpers"
)

/* ===============================
   Aggregates
=================================*/

// QuizTotalScore is the sum of the scores of quizID's questions.
func QuizTotalScore(ctx context.Context, db *gorm.DB, quizID uint) (int, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&questionModel.QuestionModel{}).
		Select("COALESCE(SUM(score), 0)").
		Where("quiz_id = ?", quizID).
		Scan(&total).Error
	return int(total), err
}

// QuizTotalScores maps each of quizIDs to the sum of its question scores.
func QuizTotalScores(ctx context.Context, db *gorm.DB, quizIDs []uint) (map[uint]int, error) {
	out := make(map[uint]int, len(quizIDs))
	if len(quizIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		QuizID uint
		Total  int64
	}
	if err := db.WithContext(ctx).
		Model(&questionModel.QuestionModel{}).
		Select("quiz_id, COALESCE(SUM(score), 0) AS total").
		Where("quiz_id IN ?", quizIDs).
		Group("quiz_id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.QuizID] = int(r.Total)
	}
	return out, nil
}

// StudentQuizScore is the sum of studentID's awarded scores on quizID.
func StudentQuizScore(ctx context.Context, db *gorm.DB, studentID, quizID uint) (int, error) {
	var score int64
	err := db.WithContext(ctx).
		Model(&answerModel.AnswerModel{}).
		Select("COALESCE(SUM(score), 0)").
		Where("student_id = ? AND quiz_id = ?", studentID, quizID).
		Scan(&score).Error
	return int(score), err
}

/* ===============================
   Operations
=================================*/

// QuizResult is studentID's running result on quizID.
func (s *StudentService) QuizResult(ctx context.Context, studentID, quizID uint) (*dto.QuizResult, error) {
	score, err := StudentQuizScore(ctx, s.DB, studentID, quizID)
	if err != nil {
		return nil, err
	}
	total, err := QuizTotalScore(ctx, s.DB, quizID)
	if err != nil {
		return nil, err
	}
	student, err := s.FindStudentBy(ctx, dto.StudentFilter{ID: studentID})
	if err != nil {
		return nil, helper.RecordErr(err, "Student not found")
	}
	return &dto.QuizResult{Score: score, TotalScore: total, Student: student}, nil
}

func (s *StudentService) GetStudentQuizResult(ctx context.Context, studentID, quizID uint) helper.Feedback {
	res, err := s.QuizResult(ctx, studentID, quizID)
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}
	return helper.Ok("success", res)
}

// GetStudentQuizzesResult lists studentID's total on every quiz they answered.
func (s *StudentService) GetStudentQuizzesResult(ctx context.Context, studentID uint) helper.Feedback {
	db := s.DB.WithContext(ctx)

	var sums []struct {
		QuizID uint
		Score  int64
	}
	if err := db.Model(&answerModel.AnswerModel{}).
		Select("quiz_id, COALESCE(SUM(score), 0) AS score").
		Where("student_id = ?", studentID).
		Group("quiz_id").
		Order("quiz_id ASC").
		Scan(&sums).Error; err != nil {
		return helper.FromError(err, "Operation failed")
	}

	ids := make([]uint, 0, len(sums))
	for _, r := range sums {
		ids = append(ids, r.QuizID)
	}
	totals, err := QuizTotalScores(ctx, s.DB, ids)
	if err != nil {
		return helper.FromError(err, "Operation failed")
	}

	quizzes := map[uint]*quizModel.QuizModel{}
	if len(ids) > 0 {
		var rows []quizModel.QuizModel
		if err := db.Preload("Topic.Course").Where("id IN ?", ids).Find(&rows).Error; err != nil {
			return helper.FromError(err, "Operation failed")
		}
		for i := range rows {
			quizzes[rows[i].ID] = &rows[i]
		}
	}

	results := make([]dto.QuizzesResultItem, 0, len(sums))
	for _, r := range sums {
		results = append(results, dto.QuizzesResultItem{
			Score:      int(r.Score),
			TotalScore: totals[r.QuizID],
			Quiz:       quizzes[r.QuizID],
		})
	}
	return helper.OkList("success", results, nil)
}
