package docstore_test

import (
	"context"
	"testing"

	"github.com/lshigami/examadmin/internal/store/docstore"
	"github.com/lshigami/examadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetGetAndMerge(t *testing.T) {
	ctx := context.Background()
	docs, _ := testutil.NewStores(t)

	require.NoError(t, docs.Set(ctx, "Exams", "Physics", map[string]any{"title": "Physics", "meta": map[string]any{"a": 1}}))
	require.NoError(t, docs.Set(ctx, "Exams", "Physics", map[string]any{"meta": map[string]any{"b": 2}}, docstore.MergeAll))

	doc, err := docs.Get(ctx, "Exams", "Physics")
	require.NoError(t, err)
	assert.Equal(t, "Physics", doc.ID)
	assert.Equal(t, "Physics", doc.Data["title"])
	assert.Equal(t, map[string]any{"a": float64(1), "b": float64(2)}, doc.Data["meta"])

	require.NoError(t, docs.Set(ctx, "Exams", "Physics", map[string]any{"only": true}))
	doc, err = docs.Get(ctx, "Exams", "Physics")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"only": true}, doc.Data)
}

func TestGetMissing(t *testing.T) {
	docs, _ := testutil.NewStores(t)
	_, err := docs.Get(context.Background(), "Exams", "nope")
	assert.ErrorIs(t, err, docstore.ErrNotFound)
}

func TestSubCollectionsAreIndependent(t *testing.T) {
	ctx := context.Background()
	docs, _ := testutil.NewStores(t)
	questions := docstore.Path("Exams", "Physics", "Questions")

	require.NoError(t, docs.Set(ctx, "Exams", "Physics", map[string]any{}))
	_, err := docs.Add(ctx, questions, map[string]any{"order": 1})
	require.NoError(t, err)
	_, err = docs.Add(ctx, questions, map[string]any{"order": 2})
	require.NoError(t, err)
	require.NoError(t, docs.Set(ctx, docstore.Path("Exams", "Physics", "Notes"), "n1", map[string]any{}))

	n, err := docs.Count(ctx, questions)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cols, err := docs.Collections(ctx, "Exams", "Physics")
	require.NoError(t, err)
	assert.Equal(t, []string{"Exams/Physics/Notes", "Exams/Physics/Questions"}, cols)

	// deleting the owner leaves its sub-collections behind
	require.NoError(t, docs.Delete(ctx, "Exams", "Physics"))
	n, err = docs.Count(ctx, questions)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestWhereAndDataTo(t *testing.T) {
	ctx := context.Background()
	docs, _ := testutil.NewStores(t)
	require.NoError(t, docs.Set(ctx, "candidates", "R1", map[string]any{"name": "Asha", "exam": "Physics"}))
	require.NoError(t, docs.Set(ctx, "candidates", "R2", map[string]any{"name": "Ben", "exam": "Chemistry"}))
	require.NoError(t, docs.Set(ctx, "candidates", "R3", map[string]any{"name": "Cai", "exam": "Physics"}))

	matched, err := docs.Where(ctx, "candidates", "exam", "Physics")
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "R1", matched[0].ID)
	assert.Equal(t, "R3", matched[1].ID)

	var c struct {
		Name string `json:"name"`
	}
	require.NoError(t, matched[1].DataTo(&c))
	assert.Equal(t, "Cai", c.Name)
}

func TestInvalidPaths(t *testing.T) {
	ctx := context.Background()
	docs, _ := testutil.NewStores(t)
	assert.Error(t, docs.Set(ctx, "Exams/Physics", "x", map[string]any{}))
	assert.Error(t, docs.Set(ctx, "Exams", "a/b", map[string]any{}))
	assert.Error(t, docs.Set(ctx, "", "a", map[string]any{}))
}
