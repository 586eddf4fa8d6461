package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/docstore"
)

type CandidateRepository interface {
	FindAll(ctx context.Context) ([]model.Candidate, error)
	FindByID(ctx context.Context, candidateID string) (*model.Candidate, error)
	FindByExam(ctx context.Context, examID string) ([]model.Candidate, error)
	FindAnswers(ctx context.Context, candidateID string) ([]model.Answer, error)
	CreateAnswer(ctx context.Context, candidateID string, answer *model.Answer) error

	// PurgeTargets lists every document path under the purge collection in
	// delete order: per candidate, its answers first, then the documents of its
	// other sub-collections (deepest first), then the candidate itself.
	PurgeTargets(ctx context.Context) ([]string, error)
	DeleteDocument(ctx context.Context, path string) error
	PurgeCollection() string
}

type candidateRepository struct {
	docs *docstore.Store
	cols config.Collections
}

func NewCandidateRepository(docs *docstore.Store, cfg *config.Config) CandidateRepository {
	return &candidateRepository{docs: docs, cols: cfg.Collections}
}

func (r *candidateRepository) answersPath(candidateID string) string {
	return docstore.Path(r.cols.Candidates, candidateID, r.cols.Answers)
}

func (r *candidateRepository) FindAll(ctx context.Context) ([]model.Candidate, error) {
	docs, err := r.docs.List(ctx, r.cols.Candidates)
	if err != nil {
		return nil, err
	}
	return toCandidates(docs)
}

func (r *candidateRepository) FindByID(ctx context.Context, candidateID string) (*model.Candidate, error) {
	doc, err := r.docs.Get(ctx, r.cols.Candidates, candidateID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var c model.Candidate
	if err := doc.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = doc.ID
	return &c, nil
}

func (r *candidateRepository) FindByExam(ctx context.Context, examID string) ([]model.Candidate, error) {
	docs, err := r.docs.Where(ctx, r.cols.Candidates, "exam", examID)
	if err != nil {
		return nil, err
	}
	return toCandidates(docs)
}

func (r *candidateRepository) FindAnswers(ctx context.Context, candidateID string) ([]model.Answer, error) {
	docs, err := r.docs.List(ctx, r.answersPath(candidateID))
	if err != nil {
		return nil, err
	}
	answers := make([]model.Answer, 0, len(docs))
	for _, doc := range docs {
		var a model.Answer
		if err := doc.DataTo(&a); err != nil {
			return nil, err
		}
		a.ID = doc.ID
		answers = append(answers, a)
	}
	return answers, nil
}

func (r *candidateRepository) CreateAnswer(ctx context.Context, candidateID string, answer *model.Answer) error {
	doc, err := r.docs.Add(ctx, r.answersPath(candidateID), answer)
	if err != nil {
		return err
	}
	answer.ID = doc.ID
	return nil
}

func (r *candidateRepository) PurgeCollection() string {
	return r.cols.CandidatesPurge
}

func (r *candidateRepository) PurgeTargets(ctx context.Context) ([]string, error) {
	candidates, err := r.docs.List(ctx, r.cols.CandidatesPurge)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, c := range candidates {
		subs, err := r.docs.Collections(ctx, r.cols.CandidatesPurge, c.ID)
		if err != nil {
			return nil, err
		}
		answersCol := docstore.Path(r.cols.CandidatesPurge, c.ID, r.cols.Answers)
		// answers go first, the rest in the order they were listed
		ordered := make([]string, 0, len(subs))
		for _, sub := range subs {
			if sub == answersCol {
				ordered = append([]string{sub}, ordered...)
			} else {
				ordered = append(ordered, sub)
			}
		}
		for _, sub := range ordered {
			below, err := r.subtree(ctx, sub)
			if err != nil {
				return nil, err
			}
			paths = append(paths, below...)
		}
		paths = append(paths, c.Path)
	}
	return paths, nil
}

// subtree returns the documents of a collection and everything nested below
// them, children before parents.
func (r *candidateRepository) subtree(ctx context.Context, collection string) ([]string, error) {
	docs, err := r.docs.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, doc := range docs {
		subs, err := r.docs.Collections(ctx, collection, doc.ID)
		if err != nil {
			return nil, err
		}
		for _, sub := range subs {
			below, err := r.subtree(ctx, sub)
			if err != nil {
				return nil, err
			}
			paths = append(paths, below...)
		}
		paths = append(paths, doc.Path)
	}
	return paths, nil
}

func (r *candidateRepository) DeleteDocument(ctx context.Context, path string) error {
	i := strings.LastIndex(path, "/")
	if i <= 0 {
		return errors.New("invalid document path " + path)
	}
	return r.docs.Delete(ctx, path[:i], path[i+1:])
}

func toCandidates(docs []docstore.Document) ([]model.Candidate, error) {
	candidates := make([]model.Candidate, 0, len(docs))
	for _, doc := range docs {
		var c model.Candidate
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = doc.ID
		candidates = append(candidates, c)
	}
	return candidates, nil
}
