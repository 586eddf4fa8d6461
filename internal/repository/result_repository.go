package repository

import (
	"context"

	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/keytree"
)

const resultsRoot = "Results"

// ResultRepository stores computed results under Results/{examId}/{candidateId}.
type ResultRepository interface {
	Save(ctx context.Context, examID, candidateID string, result model.ExamResult) error
	// FindAll returns results grouped by exam id, then candidate id.
	FindAll(ctx context.Context) (map[string]map[string]model.ExamResult, error)
	FindByExam(ctx context.Context, examID string) (map[string]model.ExamResult, error)
}

type resultRepository struct {
	tree *keytree.Store
}

func NewResultRepository(tree *keytree.Store) ResultRepository {
	return &resultRepository{tree: tree}
}

func (r *resultRepository) Save(ctx context.Context, examID, candidateID string, result model.ExamResult) error {
	return r.tree.Set(ctx, resultsRoot+"/"+examID+"/"+candidateID, result)
}

func (r *resultRepository) FindAll(ctx context.Context) (map[string]map[string]model.ExamResult, error) {
	all := map[string]map[string]model.ExamResult{}
	if _, err := r.tree.GetInto(ctx, resultsRoot, &all); err != nil {
		return nil, err
	}
	return all, nil
}

func (r *resultRepository) FindByExam(ctx context.Context, examID string) (map[string]model.ExamResult, error) {
	results := map[string]model.ExamResult{}
	ok, err := r.tree.GetInto(ctx, resultsRoot+"/"+examID, &results)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return results, nil
}
