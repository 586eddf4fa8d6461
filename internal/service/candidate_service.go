package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
)

type CandidateService interface {
	GetAll(ctx context.Context) ([]model.Candidate, error)
	SubmitAnswer(ctx context.Context, candidateID string, req dto.AnswerRequest) (*model.Answer, error)
	// PurgeAll deletes every candidate and everything nested under them.
	// Progress is checkpointed, so a call after a failure resumes the
	// previous run before starting a new one.
	PurgeAll(ctx context.Context) (*dto.PurgeResponse, error)
}

type candidateService struct {
	candidateRepo   repository.CandidateRepository
	maintenanceRepo repository.MaintenanceRepository
	now             func() time.Time
}

func NewCandidateService(candidateRepo repository.CandidateRepository, maintenanceRepo repository.MaintenanceRepository) CandidateService {
	return &candidateService{candidateRepo: candidateRepo, maintenanceRepo: maintenanceRepo, now: time.Now}
}

func (s *candidateService) GetAll(ctx context.Context) ([]model.Candidate, error) {
	candidates, err := s.candidateRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list candidates")
		return nil, translate(err, "candidates", "list candidates")
	}
	return candidates, nil
}

func (s *candidateService) SubmitAnswer(ctx context.Context, candidateID string, req dto.AnswerRequest) (*model.Answer, error) {
	if !req.Skipped && req.Answer == nil {
		return nil, newValidationError("answer is required unless skipped is true")
	}
	if _, err := s.candidateRepo.FindByID(ctx, candidateID); err != nil {
		return nil, translate(err, "candidate", "find candidate")
	}
	answer := model.Answer{Order: req.Order, Skipped: req.Skipped, SubmittedAt: s.now()}
	if req.Answer != nil {
		answer.Answer = *req.Answer
	}
	if err := s.candidateRepo.CreateAnswer(ctx, candidateID, &answer); err != nil {
		log.Error().Err(err).Str("candidateID", candidateID).Msg("Failed to store answer")
		return nil, translate(err, "answer", "create answer")
	}
	return &answer, nil
}

func (s *candidateService) PurgeAll(ctx context.Context) (*dto.PurgeResponse, error) {
	resp := &dto.PurgeResponse{Collection: s.candidateRepo.PurgeCollection()}

	plan, err := s.maintenanceRepo.LoadPurgePlan(ctx)
	if err != nil {
		return nil, translate(err, "purge plan", "load purge plan")
	}
	if plan != nil {
		log.Warn().Int("cursor", plan.Cursor).Int("total", len(plan.Paths)).Msg("Resuming unfinished candidate purge")
		resp.Resumed = true
		if err := s.runPurge(ctx, plan, resp); err != nil {
			return nil, err
		}
	}

	paths, err := s.candidateRepo.PurgeTargets(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to collect candidate documents")
		return nil, translate(err, "candidates", "collect candidate documents")
	}
	if len(paths) > 0 {
		plan = &model.PurgePlan{Collection: resp.Collection, Paths: paths, StartedAt: s.now()}
		if err := s.maintenanceRepo.SavePurgePlan(ctx, plan); err != nil {
			return nil, translate(err, "purge plan", "save purge plan")
		}
		if err := s.runPurge(ctx, plan, resp); err != nil {
			return nil, err
		}
	}

	resp.Message = "Candidates deleted successfully"
	log.Info().Str("collection", resp.Collection).Int("candidates", resp.DeletedCandidates).Int("documents", resp.DeletedDocuments).Msg("Candidate purge finished")
	return resp, nil
}

func (s *candidateService) runPurge(ctx context.Context, plan *model.PurgePlan, resp *dto.PurgeResponse) error {
	for i := plan.Cursor; i < len(plan.Paths); i++ {
		p := plan.Paths[i]
		if err := s.candidateRepo.DeleteDocument(ctx, p); err != nil {
			log.Error().Err(err).Str("path", p).Int("cursor", i).Msg("Candidate purge interrupted")
			return translate(err, "document", "delete "+p)
		}
		if err := s.maintenanceRepo.AdvancePurgeCursor(ctx, i+1); err != nil {
			return translate(err, "purge plan", "advance purge cursor")
		}
		resp.DeletedDocuments++
		if isTopLevelDocument(p) {
			resp.DeletedCandidates++
		}
	}
	if err := s.maintenanceRepo.ClearPurgePlan(ctx); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return translate(err, "purge plan", "clear purge plan")
	}
	return nil
}

func isTopLevelDocument(path string) bool {
	return strings.Count(path, "/") == 1
}
