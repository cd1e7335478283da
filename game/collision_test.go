package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/piece"
)

// tDown is the T piece pointing down:
//
//	0 0 0
//	1 1 1
//	0 1 0
var tDown = piece.Piece{Kind: piece.T, Rotation: 2}

func stateWith(stack board.Matrix, p piece.Piece) State {
	return State{
		Level:  1,
		SpawnX: SpawnX,
		SpawnY: SpawnY,
		Active: p,
		Stack:  stack,
	}
}

func at(s State, x, y int) State {
	s.X, s.Y = x, y
	return s
}

func TestClassifyWalls(t *testing.T) {
	s := stateWith(board.New(3, 3, board.Empty), tDown)

	tests := []struct {
		x, y   int
		expect Collision
	}{
		{0, 2, WallBottom},
		{-1, 0, WallLeft},
		{1, 0, WallRight},
		{0, 1, NoCollision},
		{0, 0, NoCollision},
		// left is checked before bottom
		{-1, 2, WallLeft},
		// right is checked before bottom
		{1, 2, WallRight},
	}
	for _, test := range tests {
		assert.Equal(t, test.expect, Classify(at(s, test.x, test.y)), "at (%d, %d)", test.x, test.y)
	}
}

func TestClassifyBricks(t *testing.T) {
	s := stateWith(board.Matrix{
		{0, 0, 0},
		{0, 0, 0},
		{1, 1, 1},
	}, tDown)

	assert.Equal(t, BrickOther, Classify(at(s, 0, 1)))
	assert.Equal(t, NoCollision, Classify(at(s, 0, 0)))
}

func TestClassifyAroundHole(t *testing.T) {
	s := stateWith(board.Matrix{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 0},
		{1, 1, 1, 0, 1, 1, 1},
	}, tDown)

	assert.Equal(t, NoCollision, Classify(at(s, 2, 1)))
	assert.Equal(t, BrickOther, Classify(at(s, 1, 1)))
}

func TestClassifyGameOver(t *testing.T) {
	s := stateWith(board.New(3, 3, 1), tDown)
	s.SpawnX, s.SpawnY = 0, 0

	assert.Equal(t, GameOver, Classify(at(s, 0, 0)))
	// the same overlap away from the spawn coordinates is an ordinary brick collision
	assert.Equal(t, BrickOther, Classify(at(s, 0, 1)))
}

func TestClassifyGameOverIsKeyedOnCoordinates(t *testing.T) {
	stack := board.Clear()
	stack[1][SpawnX+1] = 1
	s := stateWith(stack, tDown)

	assert.Equal(t, GameOver, Classify(at(s, SpawnX, SpawnY)))
	assert.Equal(t, BrickOther, Classify(at(s, SpawnX, SpawnY+1)))
}

func TestCollisionString(t *testing.T) {
	assert.Equal(t, "WallBottom", WallBottom.String())
	assert.Equal(t, "Collision(17)", Collision(17).String())
}
