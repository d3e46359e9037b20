package npc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNpc_Move(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		speed     float64
		wantX     int
		wantY     int
	}{
		{"east", 0, 1, 1, 0},
		{"south", 90, 4, 0, 4},
		{"north", -90, 3, 0, -3},
		{"west", 180, 1, -1, 0},
		{"diagonal", 45, 2, 1, 1},
		{"rounds half up", 135, 3, -2, 2},
		{"not normalized", 450, 2, 0, 2},
		{"still", 33, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNpc(0, 0)
			n.SetDirection(tt.direction)
			n.SetSpeed(tt.speed)
			n.Move()
			assert.Equal(t, tt.wantX, n.X())
			assert.Equal(t, tt.wantY, n.Y())
			assert.Equal(t, tt.direction, n.Direction())
		})
	}
}

func TestNpc_DefaultTickMoves(t *testing.T) {
	n := NewNpc(10, 10)
	n.Tick(frame(nil), nil)
	assert.Equal(t, 11, n.X())
	assert.Equal(t, 10, n.Y())
}

func TestNpc_DistanceIsSymmetric(t *testing.T) {
	a := NewNpc(0, 0)
	b := NewNpc(3, 4)
	assert.Equal(t, 5, a.DistanceTo(&b))
	assert.Equal(t, 5, b.DistanceTo(&a))
	assert.Equal(t, 5, a.DistanceFrom(-3, -4))

	c := NewNpc(1, 1)
	assert.Equal(t, 1, a.DistanceTo(&c), "truncated")
}

func TestNpc_FaceToward(t *testing.T) {
	n := NewNpc(100, 100)
	assert.Equal(t, -50, n.FaceToward(100, 50))
	assert.Equal(t, -90, n.Direction())

	n.FaceToward(50, 100)
	assert.Equal(t, 180, n.Direction())

	n.FaceToward(100, 100)
	assert.Equal(t, 0, n.Direction())
}
