package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewNotificationService(repository.NewNotificationRepository(f.tree)).(*notificationService)
	s.now = steppingClock(examDay)

	empty, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first, err := s.Create(ctx, dto.NotificationRequest{Title: "Venue", Message: "Hall A"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("notification_%d", examDay.UnixMilli()), first.ID)
	second, err := s.Create(ctx, dto.NotificationRequest{Title: "Bring ID", Message: "Photo ID required"})
	require.NoError(t, err)

	msg := "Hall B"
	updated, err := s.Update(ctx, first.ID, dto.NotificationPatch{Message: &msg})
	require.NoError(t, err)
	assert.Equal(t, "Venue", updated.Title)
	assert.Equal(t, "Hall B", updated.Message)
	assert.True(t, updated.UpdatedAt.After(first.UpdatedAt))

	list, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "Hall B", list[0].Message)
	assert.Equal(t, second.ID, list[1].ID)

	require.NoError(t, s.Delete(ctx, first.ID))
	list, err = s.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = s.Update(ctx, first.ID, dto.NotificationPatch{Message: &msg})
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestSyllabusGetByID(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewSyllabusService(repository.NewSyllabusRepository(f.tree)).(*syllabusService)
	s.now = fixedClock(examDay)

	created, err := s.Create(ctx, dto.SyllabusRequest{ExamName: "Physics", Link: "https://example.org/physics.pdf"})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.ExamName)

	_, err = s.GetByID(ctx, "syllabus_0")
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestExamQACreateAndDelete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewExamQAService(repository.NewExamQARepository(f.tree)).(*examQAService)
	s.now = fixedClock(time.UnixMilli(42))

	qa, err := s.Create(ctx, dto.ExamQARequest{ExamName: "Physics", Link: "https://example.org/qa"})
	require.NoError(t, err)
	assert.Equal(t, "qa_42", qa.ID)

	require.NoError(t, s.Delete(ctx, qa.ID))
	list, err := s.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestConcernLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewConcernService(repository.NewConcernRepository(f.docs, f.cfg)).(*concernService)
	s.now = steppingClock(examDay)

	c, err := s.Create(ctx, dto.ConcernRequest{RegistrationNumber: "R1", Name: "Ada", Message: "Screen froze"})
	require.NoError(t, err)

	got, err := s.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Screen froze", got.Message)

	require.NoError(t, s.Delete(ctx, c.ID))
	_, err = s.GetByID(ctx, c.ID)
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}
