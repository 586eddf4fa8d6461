package service

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/examadmin/internal/repository"
)

// newRecordID builds "<prefix>_<epoch ms>". Two creates in the same
// millisecond get the same id and the second overwrites the first.
func newRecordID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%d", prefix, now.UnixMilli())
}

// validateKey rejects exam titles and ids that the key-tree store cannot hold.
func validateKey(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return newValidationError("%s is required", field)
	}
	if !repository.ValidKey(value) {
		return newValidationError("%s %q must not contain any of . # $ [ ] /", field, value)
	}
	return nil
}

// keyedMutex serialises work per key, e.g. question creation per exam.
// It only orders callers inside this process.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyedLock
}

type keyedLock struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*keyedLock)}
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &keyedLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
