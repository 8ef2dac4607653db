package persona

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreSaveGetRemove(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := newTestBuilder()

	p := b.Build("Casey", sampleText, ContentPosts, nil)
	require.NoError(t, store.Save(ctx, p))

	t.Run("get is case-insensitive", func(t *testing.T) {
		got, err := store.Get(ctx, "casey")
		require.NoError(t, err)
		assert.Equal(t, "Casey", got.Name)

		got, err = store.Get(ctx, "CASEY")
		require.NoError(t, err)
		assert.Equal(t, sampleText, got.RawTrainingText)
	})

	t.Run("get miss returns ErrNotFound", func(t *testing.T) {
		_, err := store.Get(ctx, "ghost")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("remove reports whether anything existed", func(t *testing.T) {
		ok, err := store.Remove(ctx, "CASEY")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Remove(ctx, "casey")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestMemoryStoreSaveReplacesWholeProfile(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := newTestBuilder()

	first := b.Build("casey", sampleText, ContentPosts, &Metadata{Instructions: "short"})
	require.NoError(t, store.Save(ctx, first))

	second := b.Build("casey", "Entirely new training text here.", ContentBlogs, nil)
	require.NoError(t, store.Save(ctx, second))

	got, err := store.Get(ctx, "casey")
	require.NoError(t, err)
	assert.Equal(t, "Entirely new training text here.", got.RawTrainingText)
	assert.Equal(t, ContentBlogs, got.ContentType)
	assert.Empty(t, got.Instructions, "save is a full replace, not a merge")
}

func TestMemoryStoreRejectsReservedNames(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := newTestBuilder()

	for _, name := range BuiltinNames() {
		p := b.Build(name, sampleText, ContentPosts, nil) // BuiltIn stays false
		err := store.Save(ctx, p)
		assert.True(t, errors.Is(err, ErrNameReserved), "name %q must be rejected", name)
	}

	// The built-in profiles themselves are allowed in.
	p := b.BuildBuiltin("bap", sampleText, ContentPosts)
	assert.NoError(t, store.Save(ctx, p))
}

func TestMemoryStoreListSortedByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := newTestBuilder()

	for _, name := range []string{"zora", "Alex", "mira"} {
		require.NoError(t, store.Save(ctx, b.Build(name, sampleText, ContentMixed, nil)))
	}

	profiles, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, "Alex", profiles[0].Name)
	assert.Equal(t, "mira", profiles[1].Name)
	assert.Equal(t, "zora", profiles[2].Name)
}
