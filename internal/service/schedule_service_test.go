package service

import (
	"context"
	"testing"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func scheduleRequest(date, start, end string) dto.ScheduleRequest {
	return dto.ScheduleRequest{Date: date, StartTime: start, EndTime: end, Marks: floatPtr(100), Price: floatPtr(25.5)}
}

func TestValidClockTime(t *testing.T) {
	for _, s := range []string{"9:30 AM", "09:30 AM", "12:00PM", "1:05 pm", " 11:59 am "} {
		assert.True(t, validClockTime(s), s)
	}
	for _, s := range []string{"13:00 PM", "0:30 AM", "9:60 AM", "9:30", "09:30  AM", "9.30 AM", "21:00", ""} {
		assert.False(t, validClockTime(s), s)
	}
}

func TestSetScheduleWritesBothStores(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewScheduleService(f.schedules, f.exams).(*scheduleService)
	s.now = fixedClock(time.UnixMilli(1_700_000_000_000))

	saved, err := s.SetSchedule(ctx, "Physics", scheduleRequest("2025-03-01", "9:00 AM", "11:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000_000), saved.UpdatedAt)

	fromTree, err := s.GetSchedule(ctx, "Physics")
	require.NoError(t, err)
	assert.Equal(t, *saved, *fromTree)

	exam, err := f.exams.FindByID(ctx, "Physics")
	require.NoError(t, err)
	require.NotNil(t, exam.DateTime)
	assert.Equal(t, *saved, *exam.DateTime)
}

func TestSetScheduleKeepsExistingExamFields(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.docs.Set(ctx, "Exams", "Physics", map[string]any{"description": "mechanics"}))

	s := NewScheduleService(f.schedules, f.exams)
	_, err := s.SetSchedule(ctx, "Physics", scheduleRequest("2025-03-01", "9:00 AM", "11:00 AM"))
	require.NoError(t, err)

	doc, err := f.docs.Get(ctx, "Exams", "Physics")
	require.NoError(t, err)
	assert.Equal(t, "mechanics", doc.Data["description"])
	assert.Contains(t, doc.Data, "dateTime")
}

func TestSetScheduleRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	s := NewScheduleService(f.schedules, f.exams)

	cases := map[string]dto.ScheduleRequest{
		"24h start":     scheduleRequest("2025-03-01", "13:00", "2:00 PM"),
		"missing am/pm": scheduleRequest("2025-03-01", "9:00 AM", "11:00"),
		"missing date":  scheduleRequest("", "9:00 AM", "11:00 AM"),
		"missing marks": {Date: "2025-03-01", StartTime: "9:00 AM", EndTime: "11:00 AM", Price: floatPtr(1)},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.SetSchedule(context.Background(), "Physics", req)
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestSetScheduleOlderWriteLoses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewScheduleService(f.schedules, f.exams).(*scheduleService)

	s.now = fixedClock(time.UnixMilli(2_000))
	_, err := s.SetSchedule(ctx, "Physics", scheduleRequest("2025-03-02", "10:00 AM", "12:00 PM"))
	require.NoError(t, err)

	s.now = fixedClock(time.UnixMilli(1_000))
	_, err = s.SetSchedule(ctx, "Physics", scheduleRequest("2025-03-01", "9:00 AM", "11:00 AM"))
	require.NoError(t, err)

	fromTree, err := s.GetSchedule(ctx, "Physics")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", fromTree.Date)

	exam, err := f.exams.FindByID(ctx, "Physics")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-02", exam.DateTime.Date)
}

func TestGetScheduleNotSet(t *testing.T) {
	f := newFixture(t)
	_, err := NewScheduleService(f.schedules, f.exams).GetSchedule(context.Background(), "Physics")
	var nf *NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestScheduleRejectsUnstorableTitle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	s := NewScheduleService(f.schedules, f.exams)

	var vErr *ValidationError
	_, err := s.SetSchedule(ctx, "Class 10.5", scheduleRequest("2025-03-01", "9:00 AM", "11:00 AM"))
	assert.ErrorAs(t, err, &vErr)

	_, err = s.GetSchedule(ctx, "Class 10.5")
	assert.ErrorAs(t, err, &vErr)
}
