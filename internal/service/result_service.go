package service

import (
	"context"
	"sort"
	"time"

	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
)

const dateLayout = "2006-01-02"

type ResultService interface {
	// ComputeTodayResults scores every candidate of the exam scheduled for
	// today (server local date) and overwrites their stored results.
	ComputeTodayResults(ctx context.Context) (*dto.TodayResultsResponse, error)
	GetAllResults(ctx context.Context) ([]dto.ExamResultGroup, error)
	ExportResults(ctx context.Context) ([]byte, error)
}

type resultService struct {
	examRepo      repository.ExamRepository
	questionRepo  repository.QuestionRepository
	candidateRepo repository.CandidateRepository
	resultRepo    repository.ResultRepository
	now           func() time.Time
}

func NewResultService(
	examRepo repository.ExamRepository,
	questionRepo repository.QuestionRepository,
	candidateRepo repository.CandidateRepository,
	resultRepo repository.ResultRepository,
) ResultService {
	return &resultService{
		examRepo:      examRepo,
		questionRepo:  questionRepo,
		candidateRepo: candidateRepo,
		resultRepo:    resultRepo,
		now:           time.Now,
	}
}

func (s *resultService) ComputeTodayResults(ctx context.Context) (*dto.TodayResultsResponse, error) {
	now := s.now()
	today := now.Format(dateLayout)

	exams, err := s.examRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams for results")
		return nil, translate(err, "exams", "list exams")
	}
	var exam *model.Exam
	for i := range exams {
		if exams[i].DateTime != nil && exams[i].DateTime.Date == today {
			exam = &exams[i]
			break
		}
	}
	if exam == nil {
		log.Info().Str("date", today).Msg("No exam scheduled today")
		return nil, &NotFoundError{Resource: "exam scheduled for " + today}
	}

	if err := validateKey("exam title", exam.ID); err != nil {
		log.Error().Str("examID", exam.ID).Msg("Exam title cannot address stored results")
		return nil, err
	}

	questions, err := s.questionRepo.FindByExam(ctx, exam.ID)
	if err != nil {
		return nil, translate(err, "questions", "list questions")
	}
	candidates, err := s.candidateRepo.FindByExam(ctx, exam.ID)
	if err != nil {
		return nil, translate(err, "candidates", "list candidates")
	}

	results := make([]model.ExamResult, 0, len(candidates))
	var skipped []string
	for _, c := range candidates {
		if !repository.ValidKey(c.ID) {
			log.Warn().Str("examID", exam.ID).Str("candidateID", c.ID).Msg("Skipping candidate whose id cannot be stored as a result key")
			skipped = append(skipped, c.ID)
			continue
		}
		answers, err := s.candidateRepo.FindAnswers(ctx, c.ID)
		if err != nil {
			log.Error().Err(err).Str("candidateID", c.ID).Msg("Failed to load answers")
			return nil, translate(err, "answers", "list answers")
		}
		result := ScoreAnswers(questions, answers)
		result.RegistrationNumber = c.ID
		result.CandidateName = c.Name
		result.Phone = c.Phone
		result.Timestamp = now

		if err := s.resultRepo.Save(ctx, exam.ID, c.ID, result); err != nil {
			log.Error().Err(err).Str("examID", exam.ID).Str("candidateID", c.ID).Msg("Failed to store result")
			return nil, translate(err, "result", "save result")
		}
		results = append(results, result)
	}

	log.Info().Str("examID", exam.ID).Int("candidates", len(results)).Int("skipped", len(skipped)).Int("questions", len(questions)).Msg("Results computed")
	return &dto.TodayResultsResponse{
		ExamDetails: dto.ExamDetails{
			ExamID:    exam.ID,
			Date:      exam.DateTime.Date,
			StartTime: exam.DateTime.StartTime,
			EndTime:   exam.DateTime.EndTime,
			Marks:     exam.DateTime.Marks,
		},
		Results:           results,
		SkippedCandidates: skipped,
	}, nil
}

// GetAllResults reshapes the stored results tree; it never recomputes.
func (s *resultService) GetAllResults(ctx context.Context) ([]dto.ExamResultGroup, error) {
	all, err := s.resultRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read results")
		return nil, translate(err, "results", "read results")
	}
	return groupResults(all), nil
}

func groupResults(all map[string]map[string]model.ExamResult) []dto.ExamResultGroup {
	examIDs := make([]string, 0, len(all))
	for id := range all {
		examIDs = append(examIDs, id)
	}
	sort.Strings(examIDs)

	groups := make([]dto.ExamResultGroup, 0, len(examIDs))
	for _, examID := range examIDs {
		byCandidate := all[examID]
		candidateIDs := make([]string, 0, len(byCandidate))
		for id := range byCandidate {
			candidateIDs = append(candidateIDs, id)
		}
		sort.Strings(candidateIDs)

		group := dto.ExamResultGroup{ExamID: examID, Candidates: make([]dto.CandidateResult, 0, len(candidateIDs))}
		correct := 0
		for _, id := range candidateIDs {
			r := byCandidate[id]
			correct += r.CorrectAnswers
			group.Candidates = append(group.Candidates, dto.CandidateResult{CandidateID: id, ExamResult: r})
		}
		group.TotalCandidates = len(group.Candidates)
		if group.TotalCandidates > 0 {
			group.AverageCorrect = float64(correct) / float64(group.TotalCandidates)
		}
		groups = append(groups, group)
	}
	return groups
}
