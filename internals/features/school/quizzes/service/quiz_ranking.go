package service

import (
	"sort"

	"schoolquiz_backend/internals/features/school/quizzes/dto"
)

// RankResults orders scores descending (student id ascending on ties) and
// assigns dense positions: equal scores share a position and the next lower
// score takes the following one.
func RankResults(scores []dto.StudentScore) []dto.RankedScore {
	sorted := make([]dto.StudentScore, len(scores))
	copy(sorted, scores)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].StudentID < sorted[j].StudentID
	})

	out := make([]dto.RankedScore, 0, len(sorted))
	position := 0
	for i, s := range sorted {
		if i == 0 || s.Score != sorted[i-1].Score {
			position++
		}
		out = append(out, dto.RankedScore{StudentScore: s, Position: position})
	}
	return out
}

// BuildReport lays pass and fail counts out as two parallel series keyed by
// question. Passes keep their order; fail-only questions follow with a zero pass.
func BuildReport(passes, fails []dto.QuestionCount) dto.QuizReport {
	failByQuestion := make(map[uint]int, len(fails))
	for _, f := range fails {
		failByQuestion[f.QuestionID] = f.Count
	}

	report := dto.QuizReport{
		Labels: []string{},
		Dataset: []dto.ReportSeries{
			{Label: "Pass", Data: []int{}},
			{Label: "Fail", Data: []int{}},
		},
	}
	seen := make(map[uint]bool, len(passes))
	for _, p := range passes {
		seen[p.QuestionID] = true
		report.Labels = append(report.Labels, p.Question)
		report.Dataset[0].Data = append(report.Dataset[0].Data, p.Count)
		report.Dataset[1].Data = append(report.Dataset[1].Data, failByQuestion[p.QuestionID])
	}
	for _, f := range fails {
		if seen[f.QuestionID] {
			continue
		}
		seen[f.QuestionID] = true
		report.Labels = append(report.Labels, f.Question)
		report.Dataset[0].Data = append(report.Dataset[0].Data, 0)
		report.Dataset[1].Data = append(report.Dataset[1].Data, f.Count)
	}
	return report
}
