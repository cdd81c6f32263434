package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolquiz_backend/internals/features/school/quizzes/dto"
)

func TestRankResults(t *testing.T) {
	tests := []struct {
		name   string
		scores []dto.StudentScore
		want   []dto.RankedScore
	}{
		{
			name:   "empty",
			scores: nil,
			want:   []dto.RankedScore{},
		},
		{
			name: "ties share a dense position",
			scores: []dto.StudentScore{
				{StudentID: 3, Score: 5},
				{StudentID: 1, Score: 9},
				{StudentID: 2, Score: 9},
				{StudentID: 4, Score: 2},
			},
			want: []dto.RankedScore{
				{StudentScore: dto.StudentScore{StudentID: 1, Score: 9}, Position: 1},
				{StudentScore: dto.StudentScore{StudentID: 2, Score: 9}, Position: 1},
				{StudentScore: dto.StudentScore{StudentID: 3, Score: 5}, Position: 2},
				{StudentScore: dto.StudentScore{StudentID: 4, Score: 2}, Position: 3},
			},
		},
		{
			name: "all zero",
			scores: []dto.StudentScore{
				{StudentID: 7, Score: 0},
				{StudentID: 5, Score: 0},
			},
			want: []dto.RankedScore{
				{StudentScore: dto.StudentScore{StudentID: 5, Score: 0}, Position: 1},
				{StudentScore: dto.StudentScore{StudentID: 7, Score: 0}, Position: 1},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RankResults(tt.scores))
		})
	}
}

func TestRankResultsLeavesInputUntouched(t *testing.T) {
	in := []dto.StudentScore{{StudentID: 2, Score: 1}, {StudentID: 1, Score: 3}}
	RankResults(in)
	assert.Equal(t, uint(2), in[0].StudentID)
}

func TestBuildReport(t *testing.T) {
	passes := []dto.QuestionCount{
		{QuestionID: 1, Question: "2+2?", Count: 4},
		{QuestionID: 2, Question: "3+3?", Count: 1},
	}
	fails := []dto.QuestionCount{
		{QuestionID: 3, Question: "9*9?", Count: 5},
		{QuestionID: 2, Question: "3+3?", Count: 2},
	}

	got := BuildReport(passes, fails)

	assert.Equal(t, []string{"2+2?", "3+3?", "9*9?"}, got.Labels)
	assert.Len(t, got.Dataset, 2)
	assert.Equal(t, "Pass", got.Dataset[0].Label)
	assert.Equal(t, []int{4, 1, 0}, got.Dataset[0].Data)
	assert.Equal(t, "Fail", got.Dataset[1].Label)
	assert.Equal(t, []int{0, 2, 5}, got.Dataset[1].Data)
}

func TestBuildReportEmpty(t *testing.T) {
	got := BuildReport(nil, nil)
	assert.NotNil(t, got.Labels)
	assert.Empty(t, got.Labels)
	assert.NotNil(t, got.Dataset[0].Data)
	assert.NotNil(t, got.Dataset[1].Data)
}
