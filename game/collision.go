package game

import (
	"fmt"

	"github.com/deitrix/blocks/board"
)

// Collision classifies where the active piece sits relative to the walls and the stack.
type Collision int

const (
	NoCollision Collision = iota
	// WallLeft means the piece sticks out left of column 0
	WallLeft
	// WallRight means the piece sticks out right of the last column
	WallRight
	// WallBottom means the piece sticks out below the last row
	WallBottom
	// BrickOther means the piece overlaps an occupied cell of the stack
	BrickOther
	// GameOver means the piece overlaps the stack while on the spawn coordinates
	GameOver
)

var collisionNames = [...]string{
	NoCollision: "NoCollision",
	WallLeft:    "WallLeft",
	WallRight:   "WallRight",
	WallBottom:  "WallBottom",
	BrickOther:  "BrickOther",
	GameOver:    "GameOver",
}

func (c Collision) String() string {
	if c < 0 || int(c) >= len(collisionNames) {
		return fmt.Sprintf("Collision(%d)", int(c))
	}
	return collisionNames[c]
}

// Classify reports how the active piece of s collides at (s.X, s.Y).
func Classify(s State) Collision {
	return classify(s.Stack, s.Shape(), s.X, s.Y, s.SpawnX, s.SpawnY)
}

// classify checks the walls before the stack. The stack is only indexed once the bounding box is
// known to lie inside it.
func classify(stack, shape board.Matrix, x, y, spawnX, spawnY int) Collision {
	b := board.BoundsOf(shape)

	switch {
	case x < 0:
		return WallLeft
	case x+b.Width > stack.Cols():
		return WallRight
	case y+b.Height > stack.Rows():
		return WallBottom
	}

	for row, rs := y, b.RowStart; row < y+b.Height; row, rs = row+1, rs+1 {
		for col, cs := x, b.ColStart; col < x+b.Width; col, cs = col+1, cs+1 {
			if stack[row][col] == board.Empty || shape[rs][cs] == board.Empty {
				continue
			}
			if x == spawnX && y == spawnY {
				return GameOver
			}
			return BrickOther
		}
	}
	return NoCollision
}
