package service

import (
	"context"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
)

type NotificationService interface {
	Create(ctx context.Context, req dto.NotificationRequest) (*model.Notification, error)
	GetAll(ctx context.Context) ([]model.Notification, error)
	Update(ctx context.Context, id string, patch dto.NotificationPatch) (*model.Notification, error)
	Delete(ctx context.Context, id string) error
}

type notificationService struct {
	repo repository.NotificationRepository
	now  func() time.Time
}

func NewNotificationService(repo repository.NotificationRepository) NotificationService {
	return &notificationService{repo: repo, now: time.Now}
}

func (s *notificationService) Create(ctx context.Context, req dto.NotificationRequest) (*model.Notification, error) {
	now := s.now()
	n := model.Notification{
		ID:        newRecordID("notification", now),
		Title:     req.Title,
		Message:   req.Message,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, n.ID, &n); err != nil {
		log.Error().Err(err).Msg("Failed to create notification")
		return nil, translate(err, "notification", "create notification")
	}
	return &n, nil
}

func (s *notificationService) GetAll(ctx context.Context) ([]model.Notification, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translate(err, "notifications", "list notifications")
	}
	return list, nil
}

func (s *notificationService) Update(ctx context.Context, id string, patch dto.NotificationPatch) (*model.Notification, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "notification", "find notification")
	}
	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Message != nil {
		n.Message = *patch.Message
	}
	n.ID = id
	n.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, id, n); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to update notification")
		return nil, translate(err, "notification", "update notification")
	}
	return n, nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "notification", "delete notification")
	}
	return nil
}

type SyllabusService interface {
	Create(ctx context.Context, req dto.SyllabusRequest) (*model.Syllabus, error)
	GetAll(ctx context.Context) ([]model.Syllabus, error)
	GetByID(ctx context.Context, id string) (*model.Syllabus, error)
	Update(ctx context.Context, id string, patch dto.SyllabusPatch) (*model.Syllabus, error)
	Delete(ctx context.Context, id string) error
}

type syllabusService struct {
	repo repository.SyllabusRepository
	now  func() time.Time
}

func NewSyllabusService(repo repository.SyllabusRepository) SyllabusService {
	return &syllabusService{repo: repo, now: time.Now}
}

func (s *syllabusService) Create(ctx context.Context, req dto.SyllabusRequest) (*model.Syllabus, error) {
	now := s.now()
	sy := model.Syllabus{
		ID:        newRecordID("syllabus", now),
		ExamName:  req.ExamName,
		Link:      req.Link,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, sy.ID, &sy); err != nil {
		log.Error().Err(err).Msg("Failed to create syllabus")
		return nil, translate(err, "syllabus", "create syllabus")
	}
	return &sy, nil
}

func (s *syllabusService) GetAll(ctx context.Context) ([]model.Syllabus, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translate(err, "syllabus", "list syllabus")
	}
	return list, nil
}

func (s *syllabusService) GetByID(ctx context.Context, id string) (*model.Syllabus, error) {
	sy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "syllabus", "find syllabus")
	}
	return sy, nil
}

func (s *syllabusService) Update(ctx context.Context, id string, patch dto.SyllabusPatch) (*model.Syllabus, error) {
	sy, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "syllabus", "find syllabus")
	}
	if patch.ExamName != nil {
		sy.ExamName = *patch.ExamName
	}
	if patch.Link != nil {
		sy.Link = *patch.Link
	}
	sy.ID = id
	sy.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, id, sy); err != nil {
		log.Error().Err(err).Str("id", id).Msg("Failed to update syllabus")
		return nil, translate(err, "syllabus", "update syllabus")
	}
	return sy, nil
}

func (s *syllabusService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "syllabus", "delete syllabus")
	}
	return nil
}

type ExamQAService interface {
	Create(ctx context.Context, req dto.ExamQARequest) (*model.ExamQA, error)
	GetAll(ctx context.Context) ([]model.ExamQA, error)
	Delete(ctx context.Context, id string) error
}

type examQAService struct {
	repo repository.ExamQARepository
	now  func() time.Time
}

func NewExamQAService(repo repository.ExamQARepository) ExamQAService {
	return &examQAService{repo: repo, now: time.Now}
}

func (s *examQAService) Create(ctx context.Context, req dto.ExamQARequest) (*model.ExamQA, error) {
	now := s.now()
	qa := model.ExamQA{
		ID:        newRecordID("qa", now),
		ExamName:  req.ExamName,
		Link:      req.Link,
		UpdatedAt: now,
	}
	if err := s.repo.Save(ctx, qa.ID, &qa); err != nil {
		log.Error().Err(err).Msg("Failed to create exam Q&A link")
		return nil, translate(err, "exam Q&A", "create exam Q&A")
	}
	return &qa, nil
}

func (s *examQAService) GetAll(ctx context.Context) ([]model.ExamQA, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, translate(err, "exam Q&A", "list exam Q&A")
	}
	return list, nil
}

func (s *examQAService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "exam Q&A", "delete exam Q&A")
	}
	return nil
}
