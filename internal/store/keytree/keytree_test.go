package keytree_test

import (
	"context"
	"testing"

	"github.com/lshigami/examadmin/internal/store/keytree"
	"github.com/lshigami/examadmin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGetSubtree(t *testing.T) {
	ctx := context.Background()
	_, tree := testutil.NewStores(t)

	require.NoError(t, tree.Set(ctx, "Results/Physics/R1", map[string]any{"correctAnswers": 3}))
	require.NoError(t, tree.Set(ctx, "Results/Physics/R2", map[string]any{"correctAnswers": 1}))
	require.NoError(t, tree.Set(ctx, "Results/Chemistry/R9", map[string]any{"correctAnswers": 0}))

	v, ok, err := tree.Get(ctx, "Results")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"Physics": map[string]any{
			"R1": map[string]any{"correctAnswers": float64(3)},
			"R2": map[string]any{"correctAnswers": float64(1)},
		},
		"Chemistry": map[string]any{
			"R9": map[string]any{"correctAnswers": float64(0)},
		},
	}, v)

	v, ok, err = tree.Get(ctx, "Results/Physics/R2/correctAnswers")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, float64(1), v)
}

func TestSetReplacesSubtree(t *testing.T) {
	ctx := context.Background()
	_, tree := testutil.NewStores(t)

	require.NoError(t, tree.Set(ctx, "Results/Physics/R1", map[string]any{"a": 1, "b": 2}))
	require.NoError(t, tree.Set(ctx, "Results/Physics/R1", map[string]any{"a": 5}))

	v, ok, err := tree.Get(ctx, "Results/Physics/R1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"a": float64(5)}, v)

	// a write above existing rows replaces all of them
	require.NoError(t, tree.Set(ctx, "Results", map[string]any{"Bio": map[string]any{"R7": 1}}))
	_, ok, err = tree.Get(ctx, "Results/Physics")
	require.NoError(t, err)
	assert.False(t, ok)

	// a write below an existing row lands inside it
	require.NoError(t, tree.Set(ctx, "Results/Bio/R8", 2))
	v, ok, err = tree.Get(ctx, "Results/Bio")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"R7": float64(1), "R8": float64(2)}, v)
}

func TestUpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	_, tree := testutil.NewStores(t)

	require.NoError(t, tree.Set(ctx, "syllabus/s1", map[string]any{"link": "a", "examName": "Physics"}))
	require.NoError(t, tree.Update(ctx, "syllabus/s1", map[string]any{"link": "b"}))

	var got struct {
		Link     string `json:"link"`
		ExamName string `json:"examName"`
	}
	ok, err := tree.GetInto(ctx, "syllabus/s1", &got)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "b", got.Link)
	assert.Equal(t, "Physics", got.ExamName)

	require.NoError(t, tree.Remove(ctx, "syllabus/s1"))
	_, ok, err = tree.Get(ctx, "syllabus")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestKeyNamesWithLikeWildcards(t *testing.T) {
	ctx := context.Background()
	_, tree := testutil.NewStores(t)

	require.NoError(t, tree.Set(ctx, "examDateTime/a_b", "x"))
	require.NoError(t, tree.Set(ctx, "examDateTime/aXb/child", "y"))

	v, ok, err := tree.Get(ctx, "examDateTime/a_b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", v)

	require.NoError(t, tree.Remove(ctx, "examDateTime/a_b"))
	v, ok, err = tree.Get(ctx, "examDateTime/aXb/child")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestInvalidKeys(t *testing.T) {
	_, tree := testutil.NewStores(t)
	assert.Error(t, tree.Set(context.Background(), "", 1))
	assert.Error(t, tree.Set(context.Background(), "a/b.c", 1))
}

func TestValidKey(t *testing.T) {
	for _, k := range []string{"Physics", "Class 10", "REG-001", "notification_1700000000000"} {
		assert.True(t, keytree.ValidKey(k), k)
	}
	for _, k := range []string{"", "Class 10.5", "a#b", "a$b", "a[0]", "a/b"} {
		assert.False(t, keytree.ValidKey(k), k)
	}
}
