// Package keytree is a path-addressed JSON tree ("Results/Physics/REG001").
// Writing a path replaces its whole subtree; reading a path assembles the
// subtree from whatever rows hold it.
//
// Each row holds the JSON value of one path. No row ever has another row as an
// ancestor: a write below an existing row is applied inside that row's value.
package keytree

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type node struct {
	Path      string         `gorm:"primaryKey;size:768"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (node) TableName() string { return "keytree_nodes" }

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(&node{})
}

// Get returns the value at path. The boolean is false when nothing is stored
// there.
func (s *Store) Get(ctx context.Context, path string) (any, bool, error) {
	segs, err := split(path)
	if err != nil {
		return nil, false, err
	}
	return get(s.db.WithContext(ctx), segs)
}

// GetInto decodes the value at path into out.
func (s *Store) GetInto(ctx context.Context, path string, out any) (bool, error) {
	v, ok, err := s.Get(ctx, path)
	if err != nil || !ok {
		return ok, err
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}

// Set replaces the subtree at path. A nil value removes it.
func (s *Store) Set(ctx context.Context, path string, value any) error {
	segs, err := split(path)
	if err != nil {
		return err
	}
	generic, err := toGeneric(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return set(tx, segs, generic)
	})
}

// Update writes each child of path without touching siblings that are not
// named in fields.
func (s *Store) Update(ctx context.Context, path string, fields map[string]any) error {
	segs, err := split(path)
	if err != nil {
		return err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			child, err := split(k)
			if err != nil {
				return err
			}
			generic, err := toGeneric(fields[k])
			if err != nil {
				return fmt.Errorf("encode %s/%s: %w", path, k, err)
			}
			if err := set(tx, append(append([]string{}, segs...), child...), generic); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) Remove(ctx context.Context, path string) error {
	return s.Set(ctx, path, nil)
}

func get(tx *gorm.DB, segs []string) (any, bool, error) {
	anc, err := findAncestor(tx, segs, true)
	if err != nil {
		return nil, false, err
	}
	if anc != nil {
		root, err := decode(anc.Value)
		if err != nil {
			return nil, false, err
		}
		v, ok := lookup(root, segs[len(strings.Split(anc.Path, "/")):])
		return v, ok, nil
	}

	desc, err := descendants(tx, join(segs))
	if err != nil {
		return nil, false, err
	}
	if len(desc) == 0 {
		return nil, false, nil
	}
	tree := map[string]any{}
	for _, d := range desc {
		v, err := decode(d.Value)
		if err != nil {
			return nil, false, err
		}
		rel := strings.Split(d.Path, "/")[len(segs):]
		assign(tree, rel, v)
	}
	return tree, true, nil
}

func set(tx *gorm.DB, segs []string, value any) error {
	p := join(segs)
	anc, err := findAncestor(tx, segs, false)
	if err != nil {
		return err
	}
	if anc != nil {
		root, err := decode(anc.Value)
		if err != nil {
			return err
		}
		rel := segs[len(strings.Split(anc.Path, "/")):]
		m, ok := root.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		if value == nil {
			unassign(m, rel)
			if len(m) == 0 {
				return tx.Where("path = ?", anc.Path).Delete(&node{}).Error
			}
		} else {
			assign(m, rel, value)
		}
		return save(tx, anc.Path, m)
	}

	desc, err := descendants(tx, p)
	if err != nil {
		return err
	}
	stale := []string{p}
	for _, d := range desc {
		stale = append(stale, d.Path)
	}
	if err := tx.Where("path IN ?", stale).Delete(&node{}).Error; err != nil {
		return fmt.Errorf("clear %s: %w", p, err)
	}
	if value == nil {
		return nil
	}
	return save(tx, p, value)
}

func save(tx *gorm.DB, path string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := tx.Save(&node{Path: path, Value: datatypes.JSON(raw)}).Error; err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// descendants returns the rows strictly below p. LIKE is case-insensitive on
// some drivers, so matches are re-checked here.
func descendants(tx *gorm.DB, p string) ([]node, error) {
	var rows []node
	if err := tx.Where("path LIKE ? ESCAPE '\\'", escapeLike(p)+"/%").Order("path ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	out := rows[:0]
	for _, r := range rows {
		if strings.HasPrefix(r.Path, p+"/") {
			out = append(out, r)
		}
	}
	return out, nil
}

// findAncestor returns the row stored at a prefix of segs, if any.
func findAncestor(tx *gorm.DB, segs []string, includeSelf bool) (*node, error) {
	n := len(segs)
	if !includeSelf {
		n--
	}
	if n <= 0 {
		return nil, nil
	}
	prefixes := make([]string, 0, n)
	for i := 1; i <= n; i++ {
		prefixes = append(prefixes, join(segs[:i]))
	}
	var rows []node
	if err := tx.Where("path IN ?", prefixes).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("read ancestors of %s: %w", join(segs), err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	top := rows[0]
	for _, r := range rows[1:] {
		if len(r.Path) < len(top.Path) {
			top = r
		}
	}
	return &top, nil
}

func lookup(v any, rel []string) (any, bool) {
	for _, seg := range rel {
		m, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		if v, ok = m[seg]; !ok {
			return nil, false
		}
	}
	return v, v != nil
}

func assign(m map[string]any, rel []string, value any) {
	for _, seg := range rel[:len(rel)-1] {
		child, ok := m[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			m[seg] = child
		}
		m = child
	}
	m[rel[len(rel)-1]] = value
}

func unassign(m map[string]any, rel []string) {
	for _, seg := range rel[:len(rel)-1] {
		child, ok := m[seg].(map[string]any)
		if !ok {
			return
		}
		m = child
	}
	delete(m, rel[len(rel)-1])
}

func decode(raw datatypes.JSON) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func toGeneric(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// reservedChars may not appear inside a key segment.
const reservedChars = ".#$[]/"

// ValidKey reports whether s can be stored as a single key segment.
func ValidKey(s string) bool {
	return s != "" && !strings.ContainsAny(s, reservedChars)
}

func split(path string) ([]string, error) {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil, errors.New("keytree: empty path")
	}
	segs := strings.Split(path, "/")
	for _, seg := range segs {
		if !ValidKey(seg) {
			return nil, fmt.Errorf("keytree: invalid key %q in %q", seg, path)
		}
	}
	return segs, nil
}

func join(segs []string) string { return strings.Join(segs, "/") }

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
