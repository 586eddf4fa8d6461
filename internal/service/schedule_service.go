package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
)

// H:MM with hour 1-12 and an AM/PM suffix, optionally separated by one space.
var clockPattern = regexp.MustCompile(`(?i)^(0?[1-9]|1[0-2]):[0-5][0-9] ?(AM|PM)$`)

func validClockTime(s string) bool {
	return clockPattern.MatchString(strings.TrimSpace(s))
}

type ScheduleService interface {
	SetSchedule(ctx context.Context, examID string, req dto.ScheduleRequest) (*model.ExamSchedule, error)
	GetSchedule(ctx context.Context, examID string) (*model.ExamSchedule, error)
}

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	examRepo     repository.ExamRepository
	now          func() time.Time
}

func NewScheduleService(scheduleRepo repository.ScheduleRepository, examRepo repository.ExamRepository) ScheduleService {
	return &scheduleService{scheduleRepo: scheduleRepo, examRepo: examRepo, now: time.Now}
}

// SetSchedule writes the schedule to the key-tree store and merges it into the
// exam document. Each copy is only replaced by a write that is not older than
// what it already holds, so the two writes can land in any order.
func (s *scheduleService) SetSchedule(ctx context.Context, examID string, req dto.ScheduleRequest) (*model.ExamSchedule, error) {
	if err := validateKey("exam title", examID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Date) == "" || req.Marks == nil || req.Price == nil {
		return nil, newValidationError("date, startTime, endTime, marks and price are required")
	}
	if !validClockTime(req.StartTime) || !validClockTime(req.EndTime) {
		return nil, newValidationError("startTime and endTime must look like H:MM AM/PM")
	}

	schedule := model.ExamSchedule{
		Date:      strings.TrimSpace(req.Date),
		StartTime: strings.TrimSpace(req.StartTime),
		EndTime:   strings.TrimSpace(req.EndTime),
		Marks:     *req.Marks,
		Price:     *req.Price,
		UpdatedAt: s.now().UnixMilli(),
	}

	current, err := s.scheduleRepo.FindByExam(ctx, examID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		current = nil
	case err != nil:
		return nil, translate(err, "schedule", "read schedule")
	}
	if current == nil || current.UpdatedAt <= schedule.UpdatedAt {
		if err := s.scheduleRepo.Save(ctx, examID, schedule); err != nil {
			log.Error().Err(err).Str("examID", examID).Msg("Failed to write schedule to key-tree store")
			return nil, translate(err, "schedule", "save schedule")
		}
	} else {
		log.Warn().Str("examID", examID).Int64("stored", current.UpdatedAt).Msg("Newer schedule already stored, skipping key-tree write")
	}

	exam, err := s.examRepo.FindByID(ctx, examID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		exam = nil
	case err != nil:
		return nil, translate(err, "exam", "read exam")
	}
	if exam == nil || exam.DateTime == nil || exam.DateTime.UpdatedAt <= schedule.UpdatedAt {
		if err := s.examRepo.SaveSchedule(ctx, examID, schedule); err != nil {
			log.Error().Err(err).Str("examID", examID).Msg("Failed to merge schedule into exam document")
			return nil, translate(err, "exam", "save exam schedule")
		}
	} else {
		log.Warn().Str("examID", examID).Int64("stored", exam.DateTime.UpdatedAt).Msg("Newer schedule already on exam document, skipping")
	}

	log.Info().Str("examID", examID).Str("date", schedule.Date).Msg("Exam schedule saved")
	return &schedule, nil
}

func (s *scheduleService) GetSchedule(ctx context.Context, examID string) (*model.ExamSchedule, error) {
	if err := validateKey("exam title", examID); err != nil {
		return nil, err
	}
	schedule, err := s.scheduleRepo.FindByExam(ctx, examID)
	if err != nil {
		return nil, translate(err, "exam schedule", "read schedule")
	}
	return schedule, nil
}
