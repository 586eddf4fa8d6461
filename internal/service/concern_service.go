package service

import (
	"context"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
)

type ConcernService interface {
	Create(ctx context.Context, req dto.ConcernRequest) (*model.Concern, error)
	GetAll(ctx context.Context) ([]model.Concern, error)
	GetByID(ctx context.Context, id string) (*model.Concern, error)
	Delete(ctx context.Context, id string) error
}

type concernService struct {
	repo repository.ConcernRepository
	now  func() time.Time
}

func NewConcernService(repo repository.ConcernRepository) ConcernService {
	return &concernService{repo: repo, now: time.Now}
}

func (s *concernService) Create(ctx context.Context, req dto.ConcernRequest) (*model.Concern, error) {
	now := s.now()
	c := model.Concern{
		ID:                 newRecordID("concern", now),
		RegistrationNumber: req.RegistrationNumber,
		Name:               req.Name,
		Exam:               req.Exam,
		Message:            req.Message,
		CreatedAt:          now,
	}
	if err := s.repo.Save(ctx, &c); err != nil {
		log.Error().Err(err).Msg("Failed to create concern")
		return nil, translate(err, "concern", "create concern")
	}
	return &c, nil
}

func (s *concernService) GetAll(ctx context.Context) ([]model.Concern, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list concerns")
		return nil, translate(err, "concerns", "list concerns")
	}
	return list, nil
}

func (s *concernService) GetByID(ctx context.Context, id string) (*model.Concern, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "concern", "find concern")
	}
	return c, nil
}

func (s *concernService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err, "concern", "delete concern")
	}
	return nil
}
