package repository

import (
	"context"
	"sort"

	"github.com/lshigami/examadmin/internal/model"
	"github.com/lshigami/examadmin/internal/store/keytree"
)

// RecordRepository stores flat records under a single key-tree root.
type RecordRepository[T any] interface {
	Save(ctx context.Context, id string, record *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	// FindAll returns records ordered by id. Ids embed their creation time,
	// so this is also creation order.
	FindAll(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id string) error
}

type (
	NotificationRepository = RecordRepository[model.Notification]
	SyllabusRepository     = RecordRepository[model.Syllabus]
	ExamQARepository       = RecordRepository[model.ExamQA]
)

type keyTreeRecordRepository[T any] struct {
	tree *keytree.Store
	root string
}

func NewNotificationRepository(tree *keytree.Store) NotificationRepository {
	return &keyTreeRecordRepository[model.Notification]{tree: tree, root: "notifications"}
}

func NewSyllabusRepository(tree *keytree.Store) SyllabusRepository {
	return &keyTreeRecordRepository[model.Syllabus]{tree: tree, root: "syllabus"}
}

func NewExamQARepository(tree *keytree.Store) ExamQARepository {
	return &keyTreeRecordRepository[model.ExamQA]{tree: tree, root: "examQA"}
}

func (r *keyTreeRecordRepository[T]) Save(ctx context.Context, id string, record *T) error {
	return r.tree.Set(ctx, r.root+"/"+id, record)
}

func (r *keyTreeRecordRepository[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var record T
	ok, err := r.tree.GetInto(ctx, r.root+"/"+id, &record)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return &record, nil
}

func (r *keyTreeRecordRepository[T]) FindAll(ctx context.Context) ([]T, error) {
	byID := map[string]T{}
	if _, err := r.tree.GetInto(ctx, r.root, &byID); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	records := make([]T, 0, len(ids))
	for _, id := range ids {
		records = append(records, byID[id])
	}
	return records, nil
}

func (r *keyTreeRecordRepository[T]) Delete(ctx context.Context, id string) error {
	return r.tree.Remove(ctx, r.root+"/"+id)
}
