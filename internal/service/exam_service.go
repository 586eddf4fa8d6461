package service

import (
	"context"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
)

type ExamService interface {
	GetAllExams(ctx context.Context) ([]dto.ExamResponse, error)
}

type examService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
}

func NewExamService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository) ExamService {
	return &examService{examRepo: examRepo, questionRepo: questionRepo}
}

// GetAllExams returns every exam with its questions nested in order.
func (s *examService) GetAllExams(ctx context.Context) ([]dto.ExamResponse, error) {
	exams, err := s.examRepo.FindAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list exams")
		return nil, translate(err, "exams", "list exams")
	}

	resp := make([]dto.ExamResponse, 0, len(exams))
	for _, exam := range exams {
		questions, err := s.questionRepo.FindByExam(ctx, exam.ID)
		if err != nil {
			log.Error().Err(err).Str("examID", exam.ID).Msg("Failed to list exam questions")
			return nil, translate(err, "questions", "list questions")
		}
		item := dto.ExamResponse{ID: exam.ID, Questions: []dto.QuestionResponse{}}
		if exam.DateTime != nil {
			item.DateTime = &dto.ScheduleResponse{}
			copier.Copy(item.DateTime, exam.DateTime)
		}
		if len(questions) > 0 {
			copier.Copy(&item.Questions, &questions)
		}
		item.QuestionCount = len(item.Questions)
		resp = append(resp, item)
	}
	return resp, nil
}
