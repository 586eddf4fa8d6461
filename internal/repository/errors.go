package repository

import (
	"errors"

	"github.com/lshigami/examadmin/internal/store/keytree"
)

// ErrNotFound is returned when the requested record does not exist in either store.
var ErrNotFound = errors.New("record not found")

// ValidKey reports whether an exam title or candidate id can address a
// key-tree record such as a schedule or a result.
func ValidKey(id string) bool {
	return keytree.ValidKey(id)
}
