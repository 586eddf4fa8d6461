package repository

import (
	"context"
	"errors"

	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/docstore"
)

type AdminRepository interface {
	FindCredential(ctx context.Context) (*model.AdminCredential, error)
}

type adminRepository struct {
	docs         *docstore.Store
	collection   string
	credentialID string
}

func NewAdminRepository(docs *docstore.Store, cfg *config.Config) AdminRepository {
	return &adminRepository{docs: docs, collection: cfg.Collections.Admin, credentialID: cfg.AdminCredentialID}
}

func (r *adminRepository) FindCredential(ctx context.Context) (*model.AdminCredential, error) {
	doc, err := r.docs.Get(ctx, r.collection, r.credentialID)
	if errors.Is(err, docstore.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var cred model.AdminCredential
	if err := doc.DataTo(&cred); err != nil {
		return nil, err
	}
	return &cred, nil
}
