package service

import "github.com/lshigami/examadmin/internal/model"

// ScoreAnswers tallies one candidate's answers against the exam's questions.
// Answers are matched to questions by order. A question with no answer of
// the same order, or whose answer is marked skipped, counts as skipped; wrong
// answers are whatever is neither correct nor skipped.
func ScoreAnswers(questions []model.Question, answers []model.Answer) model.ExamResult {
	byOrder := make(map[int]model.Answer, len(answers))
	for _, a := range answers {
		if _, seen := byOrder[a.Order]; !seen {
			byOrder[a.Order] = a
		}
	}

	result := model.ExamResult{TotalQuestions: len(questions)}
	for _, q := range questions {
		a, ok := byOrder[q.Order]
		switch {
		case !ok || a.Skipped:
			result.SkippedQuestions++
		case a.Answer == q.CorrectAnswer:
			result.CorrectAnswers++
		}
	}
	result.WrongAnswers = result.TotalQuestions - (result.CorrectAnswers + result.SkippedQuestions)
	return result
}
