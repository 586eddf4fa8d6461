package repository

import (
	"context"

	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/keytree"
)

const purgePlanPath = "Maintenance/candidatePurge"

// MaintenanceRepository persists progress markers for multi-step operations.
type MaintenanceRepository interface {
	LoadPurgePlan(ctx context.Context) (*model.PurgePlan, error)
	SavePurgePlan(ctx context.Context, plan *model.PurgePlan) error
	AdvancePurgeCursor(ctx context.Context, cursor int) error
	ClearPurgePlan(ctx context.Context) error
}

type maintenanceRepository struct {
	tree *keytree.Store
}

func NewMaintenanceRepository(tree *keytree.Store) MaintenanceRepository {
	return &maintenanceRepository{tree: tree}
}

// LoadPurgePlan returns nil when no purge is in progress.
func (r *maintenanceRepository) LoadPurgePlan(ctx context.Context) (*model.PurgePlan, error) {
	var plan model.PurgePlan
	ok, err := r.tree.GetInto(ctx, purgePlanPath, &plan)
	if err != nil || !ok {
		return nil, err
	}
	return &plan, nil
}

func (r *maintenanceRepository) SavePurgePlan(ctx context.Context, plan *model.PurgePlan) error {
	return r.tree.Set(ctx, purgePlanPath, plan)
}

func (r *maintenanceRepository) AdvancePurgeCursor(ctx context.Context, cursor int) error {
	return r.tree.Update(ctx, purgePlanPath, map[string]any{"cursor": cursor})
}

func (r *maintenanceRepository) ClearPurgePlan(ctx context.Context) error {
	return r.tree.Remove(ctx, purgePlanPath)
}
