package platform

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	spec, err := Lookup("linkedin")
	require.NoError(t, err)
	assert.Equal(t, "linkedin", spec.ID)
	assert.False(t, spec.MarkdownLinks)
	assert.NotEmpty(t, spec.Guidelines)
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("myspace")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
}

func TestIDsCoverAllSpecs(t *testing.T) {
	ids := IDs()
	assert.Len(t, ids, len(specs))
	for _, id := range ids {
		spec, err := Lookup(id)
		require.NoError(t, err)
		assert.Equal(t, id, spec.ID)
		assert.NotEmpty(t, spec.DisplayName)
		assert.NotEmpty(t, spec.Guidelines, "platform %s must carry guidelines", id)
	}
}
