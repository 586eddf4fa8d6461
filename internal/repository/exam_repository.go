package repository

import (
	"context"
	"errors"

	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/docstore"
)

type ExamRepository interface {
	FindAll(ctx context.Context) ([]model.Exam, error)
	FindByID(ctx context.Context, examID string) (*model.Exam, error)
	// Ensure creates the exam document if it does not exist yet.
	Ensure(ctx context.Context, examID string) error
	SaveSchedule(ctx context.Context, examID string, schedule model.ExamSchedule) error
}

type examRepository struct {
	docs       *docstore.Store
	collection string
}

func NewExamRepository(docs *docstore.Store, cfg *config.Config) ExamRepository {
	return &examRepository{docs: docs, collection: cfg.Collections.Exams}
}

func (r *examRepository) FindAll(ctx context.Context) ([]model.Exam, error) {
	docs, err := r.docs.List(ctx, r.collection)
	if err != nil {
		return nil, err
	}
	exams := make([]model.Exam, 0, len(docs))
	for _, doc := range docs {
		exam, err := toExam(doc)
		if err != nil {
			return nil, err
		}
		exams = append(exams, *exam)
	}
	return exams, nil
}

func (r *examRepository) FindByID(ctx context.Context, examID string) (*model.Exam, error) {
	doc, err := r.docs.Get(ctx, r.collection, examID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toExam(*doc)
}

func (r *examRepository) Ensure(ctx context.Context, examID string) error {
	return r.docs.Set(ctx, r.collection, examID, map[string]any{}, docstore.MergeAll)
}

func (r *examRepository) SaveSchedule(ctx context.Context, examID string, schedule model.ExamSchedule) error {
	return r.docs.Set(ctx, r.collection, examID, map[string]any{"dateTime": schedule}, docstore.MergeAll)
}

func toExam(doc docstore.Document) (*model.Exam, error) {
	var exam model.Exam
	if err := doc.DataTo(&exam); err != nil {
		return nil, err
	}
	exam.ID = doc.ID
	return &exam, nil
}
