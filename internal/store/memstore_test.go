package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"micattix/internal/room"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.GetRoom("ABCDEF")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Count())

	r := &room.Room{ID: "id-1", Code: "ABCDEF"}
	s.SaveRoom(r)

	got, ok := s.GetRoom("ABCDEF")
	assert.True(t, ok)
	assert.Same(t, r, got)
	assert.Equal(t, 1, s.Count())

	// Saving under the same code replaces, not duplicates.
	s.SaveRoom(&room.Room{ID: "id-2", Code: "ABCDEF"})
	got, _ = s.GetRoom("ABCDEF")
	assert.Equal(t, "id-2", got.ID)
	assert.Equal(t, 1, s.Count())
}
