package repository

import (
	"context"

	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/keytree"
)

const scheduleRoot = "examDateTime"

// ScheduleRepository keeps the key-tree copy of exam schedules, keyed by exam title.
type ScheduleRepository interface {
	Save(ctx context.Context, examID string, schedule model.ExamSchedule) error
	FindByExam(ctx context.Context, examID string) (*model.ExamSchedule, error)
}

type scheduleRepository struct {
	tree *keytree.Store
}

func NewScheduleRepository(tree *keytree.Store) ScheduleRepository {
	return &scheduleRepository{tree: tree}
}

func (r *scheduleRepository) Save(ctx context.Context, examID string, schedule model.ExamSchedule) error {
	return r.tree.Set(ctx, scheduleRoot+"/"+examID, schedule)
}

func (r *scheduleRepository) FindByExam(ctx context.Context, examID string) (*model.ExamSchedule, error) {
	var schedule model.ExamSchedule
	ok, err := r.tree.GetInto(ctx, scheduleRoot+"/"+examID, &schedule)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &schedule, nil
}
