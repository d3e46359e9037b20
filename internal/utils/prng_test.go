package utils

import (
	"testing"

	"go-bean-farm/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(42)

	assert.Equal(t, rune(0), rng.ChooseWeighted(nil))
	assert.Equal(t, 'g', rng.ChooseWeighted([]defs.TileWeight{{Tile: 'g', Weight: 0}, {Tile: 'd', Weight: 0}}))

	only := []defs.TileWeight{{Tile: 'g', Weight: 0}, {Tile: 'd', Weight: 5}}
	for i := 0; i < 50; i++ {
		assert.Equal(t, 'd', rng.ChooseWeighted(only))
	}
}

func TestChooseWeighted_Deterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.ChooseWeighted(defs.GeneratedTiles), b.ChooseWeighted(defs.GeneratedTiles))
	}
}
