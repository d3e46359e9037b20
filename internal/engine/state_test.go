package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDimensions_TileSize(t *testing.T) {
	assert.Equal(t, 32, Dimensions{TileCount: 25, WindowSize: 800}.TileSize())
	assert.Equal(t, 80, Dimensions{TileCount: 25, WindowSize: 2000}.TileSize())
	assert.Equal(t, 100, Dimensions{WindowSize: 100}.TileSize())
}

func TestKeySet_IsCaseInsensitive(t *testing.T) {
	keys := NewKeySet('H', 'c')
	assert.True(t, keys.IsDown('h'))
	assert.True(t, keys.IsDown('C'))
	assert.False(t, keys.IsDown('x'))
}

func TestSnapshot_NilKeysAreEmpty(t *testing.T) {
	s := &Snapshot{Tick: 7}
	assert.False(t, s.Keys().IsDown('h'))
	assert.Equal(t, 7, s.Frame())
	assert.False(t, s.Mouse().IsDown())
}
