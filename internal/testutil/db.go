// Package testutil opens throwaway sqlite-backed stores for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/examadmin/internal/store/docstore"
	"github.com/lshigami/examadmin/internal/store/keytree"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a sqlite database in a per-test temp directory.
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

// NewStores returns migrated document and key-tree stores sharing one database.
func NewStores(t testing.TB) (*docstore.Store, *keytree.Store) {
	t.Helper()
	db := NewDB(t)
	docs := docstore.New(db)
	tree := keytree.New(db)
	require.NoError(t, docs.AutoMigrate())
	require.NoError(t, tree.AutoMigrate())
	return docs, tree
}
