package kudos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

func testTypes() []model.RecognitionType {
	return []model.RecognitionType{
		{ID: "silent_soldier", Title: "Silent Soldier", Emoji: "🥷"},
		{ID: "helping_hand", Title: "Helping Hand", Emoji: "🤝"},
		{ID: "problem_solver", Title: "Problem Solver", Emoji: "🎯"},
	}
}

func TestNewCatalogEmpty(t *testing.T) {
	_, err := NewCatalog(nil)
	require.Error(t, err)

	_, err = NewCatalog([]model.RecognitionType{})
	require.Error(t, err)
}

func TestNewCatalogDuplicateID(t *testing.T) {
	types := append(testTypes(), model.RecognitionType{ID: "helping_hand", Title: "Dup", Emoji: "x"})
	_, err := NewCatalog(types)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "helping_hand")
}

func TestCatalogPreservesOrder(t *testing.T) {
	catalog, err := NewCatalog(testTypes())
	require.NoError(t, err)

	all := catalog.All()
	require.Len(t, all, 3)
	assert.Equal(t, "silent_soldier", all[0].ID)
	assert.Equal(t, "helping_hand", all[1].ID)
	assert.Equal(t, "problem_solver", all[2].ID)
}

func TestCatalogGet(t *testing.T) {
	catalog, err := NewCatalog(testTypes())
	require.NoError(t, err)

	rt, ok := catalog.Get("helping_hand")
	require.True(t, ok)
	assert.Equal(t, "Helping Hand", rt.Title)
	assert.Equal(t, "🤝", rt.Emoji)

	_, ok = catalog.Get("nonexistent")
	assert.False(t, ok)
}
