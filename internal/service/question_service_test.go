package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validForm(text string) dto.QuestionForm {
	return dto.QuestionForm{
		Question:      text,
		Options:       `["a","b","c","d"]`,
		CorrectAnswer: "2",
	}
}

func newQuestionServiceForTest(f *fixture) *questionService {
	s := NewQuestionService(f.exams, f.questions).(*questionService)
	s.now = steppingClock(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	return s
}

func TestAddQuestionAssignsSequentialOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newQuestionServiceForTest(f)

	for i := 1; i <= 3; i++ {
		resp, err := s.AddQuestion(ctx, "Physics", validForm(fmt.Sprintf("q%d", i)))
		require.NoError(t, err)
		assert.Equal(t, i, resp.Order)
		assert.NotEmpty(t, resp.QuestionID)
	}

	_, err := f.exams.FindByID(ctx, "Physics")
	require.NoError(t, err, "adding a question creates the exam document")

	questions, err := f.questions.FindByExam(ctx, "Physics")
	require.NoError(t, err)
	require.Len(t, questions, 3)
	for i, q := range questions {
		assert.Equal(t, i+1, q.Order)
		assert.Equal(t, []string{"a", "b", "c", "d"}, q.Options)
		assert.Equal(t, 2, q.CorrectAnswer)
	}
}

func TestAddQuestionConcurrentOrdersAreUnique(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newQuestionServiceForTest(f)

	const n = 8
	var wg sync.WaitGroup
	orders := make([]int, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := s.AddQuestion(ctx, "Chemistry", validForm(fmt.Sprintf("q%d", i)))
			errs[i] = err
			if err == nil {
				orders[i] = resp.Order
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	sort.Ints(orders)
	for i, o := range orders {
		assert.Equal(t, i+1, o)
	}
}

func TestDeleteQuestionKeepsRemainingOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newQuestionServiceForTest(f)

	var ids []string
	for i := 0; i < 3; i++ {
		resp, err := s.AddQuestion(ctx, "Physics", validForm(fmt.Sprintf("q%d", i)))
		require.NoError(t, err)
		ids = append(ids, resp.QuestionID)
	}
	require.NoError(t, s.DeleteQuestion(ctx, "Physics", ids[1]))

	questions, err := f.questions.FindByExam(ctx, "Physics")
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, 1, questions[0].Order)
	assert.Equal(t, 3, questions[1].Order)
}

func TestAddQuestionValidation(t *testing.T) {
	s := newQuestionServiceForTest(newFixture(t))

	cases := map[string]dto.QuestionForm{
		"missing question":    {Options: `["a","b","c","d"]`, CorrectAnswer: "1"},
		"missing options":     {Question: "q", CorrectAnswer: "1"},
		"missing answer":      {Question: "q", Options: `["a","b","c","d"]`},
		"options not json":    {Question: "q", Options: "a,b,c,d", CorrectAnswer: "1"},
		"three options":       {Question: "q", Options: `["a","b","c"]`, CorrectAnswer: "1"},
		"answer not a number": {Question: "q", Options: `["a","b","c","d"]`, CorrectAnswer: "two"},
	}
	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.AddQuestion(context.Background(), "Physics", form)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestAddQuestionStoresImageAsDataURI(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newQuestionServiceForTest(f)

	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	form := validForm("with image")
	form.Image = &dto.ImageUpload{MimeType: "image/png", Data: payload}

	resp, err := s.AddQuestion(ctx, "Physics", form)
	require.NoError(t, err)

	q, err := f.questions.FindByID(ctx, "Physics", resp.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, "data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload), q.Image)
}

func TestUpdateQuestionKeepsOrderCreatedAtAndImage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newQuestionServiceForTest(f)

	_, err := s.AddQuestion(ctx, "Physics", validForm("first"))
	require.NoError(t, err)
	form := validForm("second")
	form.Image = &dto.ImageUpload{MimeType: "image/gif", Data: []byte("GIF89a")}
	created, err := s.AddQuestion(ctx, "Physics", form)
	require.NoError(t, err)

	before, err := f.questions.FindByID(ctx, "Physics", created.QuestionID)
	require.NoError(t, err)

	updated, err := s.UpdateQuestion(ctx, "Physics", created.QuestionID, dto.QuestionForm{
		Question:      "second, reworded",
		Options:       `["w","x","y","z"]`,
		CorrectAnswer: "4",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Order)

	after, err := f.questions.FindByID(ctx, "Physics", created.QuestionID)
	require.NoError(t, err)
	assert.Equal(t, "second, reworded", after.Question)
	assert.Equal(t, []string{"w", "x", "y", "z"}, after.Options)
	assert.Equal(t, 4, after.CorrectAnswer)
	assert.Equal(t, 2, after.Order)
	assert.Equal(t, before.Image, after.Image)
	assert.True(t, before.CreatedAt.Equal(after.CreatedAt))
	assert.True(t, after.UpdatedAt.After(before.CreatedAt))
}

func TestUpdateMissingQuestion(t *testing.T) {
	s := newQuestionServiceForTest(newFixture(t))
	_, err := s.UpdateQuestion(context.Background(), "Physics", "nope", validForm("q"))
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestAddQuestionInterleavedExamsKeepSeparateOrders(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newQuestionServiceForTest(f)

	exams := []string{"Physics", "Biology", "Physics", "Physics", "Biology", "Chemistry", "Biology", "Physics"}
	var wg sync.WaitGroup
	errs := make([]error, len(exams))
	for i, exam := range exams {
		wg.Add(1)
		go func(i int, exam string) {
			defer wg.Done()
			_, errs[i] = s.AddQuestion(ctx, exam, validForm(fmt.Sprintf("%s-%d", exam, i)))
		}(i, exam)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	want := map[string]int{"Physics": 4, "Biology": 3, "Chemistry": 1}
	for exam, n := range want {
		questions, err := f.questions.FindByExam(ctx, exam)
		require.NoError(t, err)
		require.Len(t, questions, n, exam)
		for i, q := range questions {
			assert.Equal(t, i+1, q.Order, exam)
		}
	}
}

func TestAddQuestionRejectsUnstorableTitle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := newQuestionServiceForTest(f)

	for _, title := range []string{"Class 10.5", "Q#1", "a$b", "[draft]", "   "} {
		_, err := s.AddQuestion(ctx, title, validForm("q"))
		var vErr *ValidationError
		assert.ErrorAs(t, err, &vErr, title)
	}

	exams, err := f.exams.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, exams)
}
