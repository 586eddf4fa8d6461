package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var examDay = time.Date(2025, 3, 1, 14, 30, 0, 0, time.Local)

// seedExam creates an exam scheduled on examDay with the given correct answers.
func seedExam(t *testing.T, f *fixture, examID string, date string, correct ...int) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.exams.SaveSchedule(ctx, examID, model.ExamSchedule{
		Date: date, StartTime: "9:00 AM", EndTime: "11:00 AM", Marks: 100,
	}))
	for i, c := range correct {
		q := model.Question{Question: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: c, Order: i + 1}
		require.NoError(t, f.questions.Create(ctx, examID, &q))
	}
}

func seedCandidate(t *testing.T, f *fixture, id, examID string, answers ...model.Answer) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.docs.Set(ctx, f.cfg.Collections.Candidates, id, model.Candidate{
		Name: "Candidate " + id, Phone: "555-" + id, Exam: examID,
	}))
	for i := range answers {
		require.NoError(t, f.candidates.CreateAnswer(ctx, id, &answers[i]))
	}
}

func newResultServiceForTest(f *fixture, now time.Time) *resultService {
	s := NewResultService(f.exams, f.questions, f.candidates, f.results).(*resultService)
	s.now = fixedClock(now)
	return s
}

func TestComputeTodayResults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedExam(t, f, "Physics", examDay.Format(dateLayout), 1, 2, 3)
	seedExam(t, f, "Biology", "2025-04-01", 1)
	seedCandidate(t, f, "R1", "Physics",
		model.Answer{Order: 1, Answer: 1}, model.Answer{Order: 2, Answer: 2}, model.Answer{Order: 3, Answer: 4})
	seedCandidate(t, f, "R2", "Physics")
	seedCandidate(t, f, "R3", "Biology", model.Answer{Order: 1, Answer: 1})

	s := newResultServiceForTest(f, examDay)
	resp, err := s.ComputeTodayResults(ctx)
	require.NoError(t, err)

	assert.Equal(t, "Physics", resp.ExamDetails.ExamID)
	assert.Equal(t, "9:00 AM", resp.ExamDetails.StartTime)
	require.Len(t, resp.Results, 2)

	byID := map[string]model.ExamResult{}
	for _, r := range resp.Results {
		byID[r.RegistrationNumber] = r
	}
	assert.Equal(t, 2, byID["R1"].CorrectAnswers)
	assert.Equal(t, 1, byID["R1"].WrongAnswers)
	assert.Equal(t, "Candidate R1", byID["R1"].CandidateName)
	assert.Equal(t, 3, byID["R2"].SkippedQuestions)
	assert.Equal(t, 0, byID["R2"].CorrectAnswers)

	stored, err := f.results.FindByExam(ctx, "Physics")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.True(t, stored["R1"].Timestamp.Equal(examDay))

	_, err = f.results.FindByExam(ctx, "Biology")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestComputeTodayResultsOverwrites(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedExam(t, f, "Physics", examDay.Format(dateLayout), 1, 2)
	seedCandidate(t, f, "R1", "Physics", model.Answer{Order: 1, Answer: 1})

	s := newResultServiceForTest(f, examDay)
	_, err := s.ComputeTodayResults(ctx)
	require.NoError(t, err)

	require.NoError(t, f.candidates.CreateAnswer(ctx, "R1", &model.Answer{Order: 2, Answer: 2}))
	later := examDay.Add(time.Hour)
	s.now = fixedClock(later)
	_, err = s.ComputeTodayResults(ctx)
	require.NoError(t, err)

	stored, err := f.results.FindByExam(ctx, "Physics")
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 2, stored["R1"].CorrectAnswers)
	assert.Equal(t, 0, stored["R1"].SkippedQuestions)
	assert.True(t, stored["R1"].Timestamp.Equal(later))
}

func TestComputeTodayResultsNoExamToday(t *testing.T) {
	f := newFixture(t)
	seedExam(t, f, "Physics", "1999-01-01", 1)

	_, err := newResultServiceForTest(f, examDay).ComputeTodayResults(context.Background())
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Contains(t, nf.Error(), examDay.Format(dateLayout))
}

func TestGetAllResultsGroupsByExam(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.results.Save(ctx, "Physics", "R2", model.ExamResult{RegistrationNumber: "R2", TotalQuestions: 2, CorrectAnswers: 1, WrongAnswers: 1}))
	require.NoError(t, f.results.Save(ctx, "Physics", "R1", model.ExamResult{RegistrationNumber: "R1", TotalQuestions: 2, CorrectAnswers: 2}))
	require.NoError(t, f.results.Save(ctx, "Biology", "R3", model.ExamResult{RegistrationNumber: "R3", TotalQuestions: 1, SkippedQuestions: 1}))

	groups, err := newResultServiceForTest(f, examDay).GetAllResults(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "Biology", groups[0].ExamID)
	assert.Equal(t, "Physics", groups[1].ExamID)
	assert.Equal(t, 2, groups[1].TotalCandidates)
	assert.InDelta(t, 1.5, groups[1].AverageCorrect, 1e-9)
	assert.Equal(t, "R1", groups[1].Candidates[0].CandidateID)
}

func TestGetAllResultsEmpty(t *testing.T) {
	groups, err := newResultServiceForTest(newFixture(t), examDay).GetAllResults(context.Background())
	require.NoError(t, err)
	assert.Empty(t, groups)
	assert.NotNil(t, groups)
}

func TestExportResults(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.results.Save(ctx, "Physics", "R1", model.ExamResult{
		RegistrationNumber: "R1", CandidateName: "Ada", TotalQuestions: 3, CorrectAnswers: 2, WrongAnswers: 1, Timestamp: examDay,
	}))

	data, err := newResultServiceForTest(f, examDay).ExportResults(ctx)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer book.Close()

	rows, err := book.GetRows(resultsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Registration Number", rows[0][1])
	assert.Equal(t, []string{"Physics", "R1", "Ada"}, rows[1][:3])
	assert.Equal(t, "2", rows[1][5])
}

func TestComputeTodayResultsSkipsUnstorableCandidateIDs(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedExam(t, f, "Physics", examDay.Format(dateLayout), 1, 2)
	seedCandidate(t, f, "R1", "Physics", model.Answer{Order: 1, Answer: 1})
	seedCandidate(t, f, "REG.001", "Physics", model.Answer{Order: 1, Answer: 1})
	seedCandidate(t, f, "R2", "Physics")

	resp, err := newResultServiceForTest(f, examDay).ComputeTodayResults(ctx)
	require.NoError(t, err)
	assert.Len(t, resp.Results, 2)
	assert.Equal(t, []string{"REG.001"}, resp.SkippedCandidates)

	stored, err := f.results.FindByExam(ctx, "Physics")
	require.NoError(t, err)
	assert.Len(t, stored, 2)
	assert.Contains(t, stored, "R1")
	assert.Contains(t, stored, "R2")
}

func TestComputeTodayResultsAfterQuestionDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	seedExam(t, f, "Physics", examDay.Format(dateLayout), 1, 2, 3)

	questions, err := f.questions.FindByExam(ctx, "Physics")
	require.NoError(t, err)
	require.Len(t, questions, 3)
	require.NoError(t, f.questions.Delete(ctx, "Physics", questions[1].ID))

	// R1 answered the deleted question wrongly, R2 skipped question 3,
	// R3 only answered orders 1 and 2 so order 3 has no match
	seedCandidate(t, f, "R1", "Physics",
		model.Answer{Order: 1, Answer: 1}, model.Answer{Order: 2, Answer: 4}, model.Answer{Order: 3, Answer: 3})
	seedCandidate(t, f, "R2", "Physics", model.Answer{Order: 1, Answer: 2})
	seedCandidate(t, f, "R3", "Physics", model.Answer{Order: 1, Answer: 1}, model.Answer{Order: 2, Answer: 3})

	resp, err := newResultServiceForTest(f, examDay).ComputeTodayResults(ctx)
	require.NoError(t, err)

	byID := map[string]model.ExamResult{}
	for _, r := range resp.Results {
		byID[r.RegistrationNumber] = r
	}
	assert.Equal(t, model.ExamResult{TotalQuestions: 2, CorrectAnswers: 2}, scoreOnly(byID["R1"]))
	assert.Equal(t, model.ExamResult{TotalQuestions: 2, SkippedQuestions: 1, WrongAnswers: 1}, scoreOnly(byID["R2"]))
	assert.Equal(t, model.ExamResult{TotalQuestions: 2, CorrectAnswers: 1, SkippedQuestions: 1}, scoreOnly(byID["R3"]))
}

// scoreOnly keeps the tallies of a result.
func scoreOnly(r model.ExamResult) model.ExamResult {
	return model.ExamResult{
		TotalQuestions:   r.TotalQuestions,
		CorrectAnswers:   r.CorrectAnswers,
		SkippedQuestions: r.SkippedQuestions,
		WrongAnswers:     r.WrongAnswers,
	}
}
