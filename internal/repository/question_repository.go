package repository

import (
	"context"
	"errors"
	"sort"

	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/docstore"
)

type QuestionRepository interface {
	Create(ctx context.Context, examID string, question *model.Question) error
	FindByID(ctx context.Context, examID, questionID string) (*model.Question, error)
	FindByExam(ctx context.Context, examID string) ([]model.Question, error)
	Count(ctx context.Context, examID string) (int, error)
	Update(ctx context.Context, examID string, question *model.Question) error
	Delete(ctx context.Context, examID, questionID string) error
}

type questionRepository struct {
	docs          *docstore.Store
	exams         string
	subcollection string
}

func NewQuestionRepository(docs *docstore.Store, cfg *config.Config) QuestionRepository {
	return &questionRepository{docs: docs, exams: cfg.Collections.Exams, subcollection: cfg.Collections.Questions}
}

func (r *questionRepository) path(examID string) string {
	return docstore.Path(r.exams, examID, r.subcollection)
}

func (r *questionRepository) Create(ctx context.Context, examID string, question *model.Question) error {
	doc, err := r.docs.Add(ctx, r.path(examID), question)
	if err != nil {
		return err
	}
	question.ID = doc.ID
	return nil
}

func (r *questionRepository) FindByID(ctx context.Context, examID, questionID string) (*model.Question, error) {
	doc, err := r.docs.Get(ctx, r.path(examID), questionID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toQuestion(*doc)
}

// FindByExam returns the exam's questions in ascending order.
func (r *questionRepository) FindByExam(ctx context.Context, examID string) ([]model.Question, error) {
	docs, err := r.docs.List(ctx, r.path(examID))
	if err != nil {
		return nil, err
	}
	questions := make([]model.Question, 0, len(docs))
	for _, doc := range docs {
		q, err := toQuestion(doc)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	sort.SliceStable(questions, func(i, j int) bool { return questions[i].Order < questions[j].Order })
	return questions, nil
}

func (r *questionRepository) Count(ctx context.Context, examID string) (int, error) {
	return r.docs.Count(ctx, r.path(examID))
}

func (r *questionRepository) Update(ctx context.Context, examID string, question *model.Question) error {
	stored := *question
	stored.ID = ""
	return r.docs.Set(ctx, r.path(examID), question.ID, stored)
}

func (r *questionRepository) Delete(ctx context.Context, examID, questionID string) error {
	return r.docs.Delete(ctx, r.path(examID), questionID)
}

func toQuestion(doc docstore.Document) (*model.Question, error) {
	var q model.Question
	if err := doc.DataTo(&q); err != nil {
		return nil, err
	}
	q.ID = doc.ID
	return &q, nil
}
