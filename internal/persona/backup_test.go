package persona

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupRoundTrip(t *testing.T) {
	b := newTestBuilder()
	original := b.Build("casey", sampleText, ContentPosts, &Metadata{
		Instructions: "keep it short",
	})

	data, err := Export(original)
	require.NoError(t, err)

	restored, err := Import(data, b)
	require.NoError(t, err)

	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.RawTrainingText, restored.RawTrainingText)
	assert.Equal(t, original.Instructions, restored.Instructions)
	assert.Equal(t, original.ContentType, restored.ContentType)
	assert.True(t, original.CreatedAt.Equal(restored.CreatedAt))

	// Metrics are recomputed on import; recomputation from the same
	// text must reproduce them field for field.
	assert.Equal(t, original.Metrics, restored.Metrics)
}

func TestExportRecordShape(t *testing.T) {
	b := newTestBuilder()
	p := b.Build("casey", "some text", ContentBlogs, nil)

	data, err := Export(p)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(data, &rec))
	assert.Equal(t, "casey", rec["name"])
	assert.Equal(t, "some text", rec["rawContent"])
	assert.Equal(t, "blogs", rec["contentType"])
	assert.EqualValues(t, 1, rec["version"])
	_, hasInstructions := rec["instructions"]
	assert.False(t, hasInstructions, "empty instructions are omitted")
}

func TestImportRejectsBadRecords(t *testing.T) {
	b := newTestBuilder()

	t.Run("not json", func(t *testing.T) {
		_, err := Import([]byte("not json"), b)
		assert.Error(t, err)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := Import([]byte(`{"rawContent":"x","version":1}`), b)
		assert.Error(t, err)
	})

	t.Run("future version", func(t *testing.T) {
		_, err := Import([]byte(`{"name":"x","rawContent":"x","version":99}`), b)
		assert.Error(t, err)
	})

	t.Run("unknown content type", func(t *testing.T) {
		_, err := Import([]byte(`{"name":"x","rawContent":"x","contentType":"poems","version":1}`), b)
		assert.Error(t, err)
	})

	t.Run("missing content type defaults to mixed", func(t *testing.T) {
		p, err := Import([]byte(`{"name":"x","rawContent":"hello there","version":1}`), b)
		require.NoError(t, err)
		assert.Equal(t, ContentMixed, p.ContentType)
	})
}

func TestImportReappliesBuiltinMetadata(t *testing.T) {
	b := newTestBuilder()
	original := b.BuildBuiltin("bap", sampleText, ContentPosts)

	data, err := Export(original)
	require.NoError(t, err)

	restored, err := Import(data, b)
	require.NoError(t, err)

	assert.True(t, restored.BuiltIn)
	assert.Equal(t, original.Description, restored.Description)
	assert.Equal(t, original.Instructions, restored.Instructions)
}
