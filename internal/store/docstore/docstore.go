// Package docstore is a hierarchical document database kept in a single SQL
// table. Collections hold documents addressed by id; any document may own
// nested sub-collections ("Exams/Physics/Questions"). Deleting a document does
// not delete its sub-collections.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrNotFound = errors.New("docstore: document not found")

type record struct {
	Path       string `gorm:"primaryKey;size:768"`
	Collection string `gorm:"index;size:768;not null"`
	Owner      string `gorm:"index;size:768"`
	DocID      string `gorm:"size:255;not null"`
	Data       datatypes.JSONMap
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (record) TableName() string { return "documents" }

// Document is a snapshot of a stored document.
type Document struct {
	ID         string
	Path       string
	Data       map[string]any
	CreateTime time.Time
	UpdateTime time.Time
}

// DataTo decodes the document fields into out, which must be a pointer.
func (d *Document) DataTo(out any) error {
	raw, err := json.Marshal(d.Data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

type setOptions struct {
	merge bool
}

type SetOption func(*setOptions)

// MergeAll deep-merges the written fields into an existing document instead of
// replacing it.
func MergeAll(o *setOptions) { o.merge = true }

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&record{})
}

// Path joins segments into a collection or document path.
func Path(segments ...string) string {
	return strings.Join(segments, "/")
}

func (s *Store) Get(ctx context.Context, collection, id string) (*Document, error) {
	p, _, err := documentPath(collection, id)
	if err != nil {
		return nil, err
	}
	var rec record
	err = s.db.WithContext(ctx).Where("path = ?", p).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", p, err)
	}
	return toDocument(rec)
}

func (s *Store) Set(ctx context.Context, collection, id string, data any, opts ...SetOption) error {
	p, owner, err := documentPath(collection, id)
	if err != nil {
		return err
	}
	fields, err := toMap(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", p, err)
	}
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if o.merge {
			var existing record
			err := tx.Where("path = ?", p).Take(&existing).Error
			switch {
			case err == nil:
				current, err := normalize(existing.Data)
				if err != nil {
					return err
				}
				fields = deepMerge(current, fields)
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return fmt.Errorf("read %s: %w", p, err)
			}
		}
		rec := record{
			Path:       p,
			Collection: collection,
			Owner:      owner,
			DocID:      id,
			Data:       datatypes.JSONMap(fields),
		}
		if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error; err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
		return nil
	})
}

// Add stores data under a freshly generated id.
func (s *Store) Add(ctx context.Context, collection string, data any) (*Document, error) {
	id := uuid.NewString()
	if err := s.Set(ctx, collection, id, data); err != nil {
		return nil, err
	}
	return s.Get(ctx, collection, id)
}

// Delete removes a single document. Deleting a missing document is not an error.
func (s *Store) Delete(ctx context.Context, collection, id string) error {
	p, _, err := documentPath(collection, id)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Where("path = ?", p).Delete(&record{}).Error; err != nil {
		return fmt.Errorf("delete %s: %w", p, err)
	}
	return nil
}

// List returns every document of a collection ordered by id.
func (s *Store) List(ctx context.Context, collection string) ([]Document, error) {
	var recs []record
	if err := s.db.WithContext(ctx).Where("collection = ?", collection).Order("doc_id ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	docs := make([]Document, 0, len(recs))
	for _, rec := range recs {
		doc, err := toDocument(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, nil
}

// Where returns the documents of a collection whose top-level field equals value.
func (s *Store) Where(ctx context.Context, collection, field string, value any) ([]Document, error) {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	want, err := normalizeValue(value)
	if err != nil {
		return nil, err
	}
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if got, ok := doc.Data[field]; ok && reflect.DeepEqual(got, want) {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&record{}).Where("collection = ?", collection).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return int(n), nil
}

// Collections lists the full paths of the sub-collections owned by a document.
func (s *Store) Collections(ctx context.Context, collection, id string) ([]string, error) {
	p, _, err := documentPath(collection, id)
	if err != nil {
		return nil, err
	}
	var names []string
	if err := s.db.WithContext(ctx).Model(&record{}).Where("owner = ?", p).Distinct().Pluck("collection", &names).Error; err != nil {
		return nil, fmt.Errorf("list collections of %s: %w", p, err)
	}
	sort.Strings(names)
	return names, nil
}

func documentPath(collection, id string) (path, owner string, err error) {
	if collection == "" {
		return "", "", errors.New("docstore: empty collection path")
	}
	segs := strings.Split(collection, "/")
	if len(segs)%2 == 0 {
		return "", "", fmt.Errorf("docstore: %q is a document path, not a collection", collection)
	}
	for _, seg := range segs {
		if seg == "" {
			return "", "", fmt.Errorf("docstore: empty segment in %q", collection)
		}
	}
	if id == "" || strings.Contains(id, "/") {
		return "", "", fmt.Errorf("docstore: invalid document id %q", id)
	}
	return collection + "/" + id, strings.Join(segs[:len(segs)-1], "/"), nil
}

func toDocument(rec record) (*Document, error) {
	data, err := normalize(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", rec.Path, err)
	}
	return &Document{
		ID:         rec.DocID,
		Path:       rec.Path,
		Data:       data,
		CreateTime: rec.CreatedAt,
		UpdateTime: rec.UpdatedAt,
	}, nil
}

// normalize re-decodes stored JSON so numbers are float64 regardless of how
// the column was scanned.
func normalize(m map[string]any) (map[string]any, error) {
	if m == nil {
		return map[string]any{}, nil
	}
	return toMap(m)
}

func toMap(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	out := map[string]any{}
	if string(raw) == "null" {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func normalizeValue(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	err = json.Unmarshal(raw, &out)
	return out, err
}

func deepMerge(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		if sm, ok := v.(map[string]any); ok {
			if dm, ok := out[k].(map[string]any); ok {
				out[k] = deepMerge(dm, sm)
				continue
			}
		}
		out[k] = v
	}
	return out
}
