package service

import (
	"sync"
	"testing"
	"time"

	"github.com/lshigami/examadmin/config"
	"github.com/lshigami/examadmin/internal/repository"
	"github.com/lshigami/examadmin/internal/store/docstore"
	"github.com/lshigami/examadmin/internal/store/keytree"
	"github.com/lshigami/examadmin/internal/testutil"
)

type fixture struct {
	cfg  *config.Config
	docs *docstore.Store
	tree *keytree.Store

	exams       repository.ExamRepository
	questions   repository.QuestionRepository
	schedules   repository.ScheduleRepository
	candidates  repository.CandidateRepository
	results     repository.ResultRepository
	maintenance repository.MaintenanceRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cfg := &config.Config{Collections: config.DefaultCollections(), AdminCredentialID: "credentials"}
	return newFixtureWithConfig(t, cfg)
}

func newFixtureWithConfig(t *testing.T, cfg *config.Config) *fixture {
	t.Helper()
	docs, tree := testutil.NewStores(t)
	return &fixture{
		cfg:         cfg,
		docs:        docs,
		tree:        tree,
		exams:       repository.NewExamRepository(docs, cfg),
		questions:   repository.NewQuestionRepository(docs, cfg),
		schedules:   repository.NewScheduleRepository(tree),
		candidates:  repository.NewCandidateRepository(docs, cfg),
		results:     repository.NewResultRepository(tree),
		maintenance: repository.NewMaintenanceRepository(tree),
	}
}

// steppingClock returns a clock that advances by one second per call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now := next
		next = next.Add(time.Second)
		return now
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
