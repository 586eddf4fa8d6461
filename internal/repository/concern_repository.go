package repository

import (
	"context"
	"errors"

	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/docstore"
)

type ConcernRepository interface {
	Save(ctx context.Context, concern *model.Concern) error
	FindAll(ctx context.Context) ([]model.Concern, error)
	FindByID(ctx context.Context, id string) (*model.Concern, error)
	Delete(ctx context.Context, id string) error
}

type concernRepository struct {
	docs       *docstore.Store
	collection string
}

func NewConcernRepository(docs *docstore.Store, cfg *config.Config) ConcernRepository {
	return &concernRepository{docs: docs, collection: cfg.Collections.Concerns}
}

func (r *concernRepository) Save(ctx context.Context, concern *model.Concern) error {
	return r.docs.Set(ctx, r.collection, concern.ID, concern)
}

func (r *concernRepository) FindAll(ctx context.Context) ([]model.Concern, error) {
	docs, err := r.docs.List(ctx, r.collection)
	if err != nil {
		return nil, err
	}
	concerns := make([]model.Concern, 0, len(docs))
	for _, doc := range docs {
		var c model.Concern
		if err := doc.DataTo(&c); err != nil {
			return nil, err
		}
		c.ID = doc.ID
		concerns = append(concerns, c)
	}
	return concerns, nil
}

func (r *concernRepository) FindByID(ctx context.Context, id string) (*model.Concern, error) {
	doc, err := r.docs.Get(ctx, r.collection, id)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var c model.Concern
	if err := doc.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = doc.ID
	return &c, nil
}

func (r *concernRepository) Delete(ctx context.Context, id string) error {
	return r.docs.Delete(ctx, r.collection, id)
}
