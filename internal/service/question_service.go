package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/examadmin/internal/dto"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/rs/zerolog/log"
)

const optionsPerQuestion = 4

type QuestionService interface {
	AddQuestion(ctx context.Context, examID string, form dto.QuestionForm) (*dto.QuestionCreatedResponse, error)
	UpdateQuestion(ctx context.Context, examID, questionID string, form dto.QuestionForm) (*dto.QuestionResponse, error)
	DeleteQuestion(ctx context.Context, examID, questionID string) error
}

type questionService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	sequencer    *keyedMutex
	now          func() time.Time
}

func NewQuestionService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		sequencer:    newKeyedMutex(),
		now:          time.Now,
	}
}

type parsedQuestion struct {
	text          string
	options       []string
	correctAnswer int
}

func parseQuestionForm(form dto.QuestionForm) (*parsedQuestion, error) {
	if strings.TrimSpace(form.Question) == "" || strings.TrimSpace(form.Options) == "" || strings.TrimSpace(form.CorrectAnswer) == "" {
		return nil, newValidationError("question, options and correctAnswer are required")
	}
	var options []string
	if err := json.Unmarshal([]byte(form.Options), &options); err != nil || len(options) != optionsPerQuestion {
		return nil, newValidationError("options must be a JSON array of exactly %d strings", optionsPerQuestion)
	}
	correct, err := strconv.Atoi(strings.TrimSpace(form.CorrectAnswer))
	if err != nil {
		return nil, newValidationError("correctAnswer must be an integer")
	}
	return &parsedQuestion{text: form.Question, options: options, correctAnswer: correct}, nil
}

// imageDataURI renders an upload as data:{mime};base64,{payload}.
func imageDataURI(img *dto.ImageUpload) string {
	return "data:" + img.MimeType + ";base64," + base64.StdEncoding.EncodeToString(img.Data)
}

func (s *questionService) AddQuestion(ctx context.Context, examID string, form dto.QuestionForm) (*dto.QuestionCreatedResponse, error) {
	if err := validateKey("exam title", examID); err != nil {
		return nil, err
	}
	parsed, err := parseQuestionForm(form)
	if err != nil {
		return nil, err
	}

	// count-then-write must not interleave with another create on this exam
	unlock := s.sequencer.Lock(examID)
	defer unlock()

	if err := s.examRepo.Ensure(ctx, examID); err != nil {
		log.Error().Err(err).Str("examID", examID).Msg("Failed to ensure exam document")
		return nil, translate(err, "exam", "ensure exam")
	}
	count, err := s.questionRepo.Count(ctx, examID)
	if err != nil {
		log.Error().Err(err).Str("examID", examID).Msg("Failed to count questions")
		return nil, translate(err, "exam", "count questions")
	}

	question := model.Question{
		Question:      parsed.text,
		Options:       parsed.options,
		CorrectAnswer: parsed.correctAnswer,
		Order:         count + 1,
		CreatedAt:     s.now(),
	}
	if form.Image != nil {
		question.Image = imageDataURI(form.Image)
	}

	if err := s.questionRepo.Create(ctx, examID, &question); err != nil {
		log.Error().Err(err).Str("examID", examID).Msg("Failed to create question")
		return nil, translate(err, "question", "create question")
	}
	log.Info().Str("examID", examID).Str("questionID", question.ID).Int("order", question.Order).Msg("Question added")
	return &dto.QuestionCreatedResponse{
		Message:    "Question added successfully",
		QuestionID: question.ID,
		Order:      question.Order,
	}, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, examID, questionID string, form dto.QuestionForm) (*dto.QuestionResponse, error) {
	parsed, err := parseQuestionForm(form)
	if err != nil {
		return nil, err
	}
	question, err := s.questionRepo.FindByID(ctx, examID, questionID)
	if err != nil {
		return nil, translate(err, "question", "find question")
	}

	// order and createdAt survive; the image only changes when a new one is sent
	question.Question = parsed.text
	question.Options = parsed.options
	question.CorrectAnswer = parsed.correctAnswer
	question.UpdatedAt = s.now()
	if form.Image != nil {
		question.Image = imageDataURI(form.Image)
	}

	if err := s.questionRepo.Update(ctx, examID, question); err != nil {
		log.Error().Err(err).Str("examID", examID).Str("questionID", questionID).Msg("Failed to update question")
		return nil, translate(err, "question", "update question")
	}
	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

// DeleteQuestion leaves the order of the remaining questions untouched.
func (s *questionService) DeleteQuestion(ctx context.Context, examID, questionID string) error {
	if err := s.questionRepo.Delete(ctx, examID, questionID); err != nil {
		log.Error().Err(err).Str("examID", examID).Str("questionID", questionID).Msg("Failed to delete question")
		return translate(err, "question", "delete question")
	}
	return nil
}
