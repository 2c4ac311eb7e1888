package fields

import (
	"testing"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
	"github.com/stretchr/testify/assert"
)

func TestQueue_PopsCheapestFirst(t *testing.T) {
	q := NewQueue()
	q.Push(5, core.NewPosition(0, 0))
	q.Push(1, core.NewPosition(9, 9))
	q.Push(3, core.NewPosition(4, 4))

	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 1, q.Pop().Cost)
	assert.Equal(t, 3, q.Pop().Cost)
	assert.Equal(t, 5, q.Pop().Cost)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_TiesPopLargerPositionFirst(t *testing.T) {
	q := NewQueue()
	q.Push(2, core.NewPosition(1, 5))
	q.Push(2, core.NewPosition(3, 0))
	q.Push(2, core.NewPosition(1, 7))
	q.Push(2, core.NewPosition(0, 9))

	var got []core.Position
	for q.Len() > 0 {
		got = append(got, q.Pop().Pos)
	}
	assert.Equal(t, []core.Position{{Row: 3, Col: 0}, {Row: 1, Col: 7}, {Row: 1, Col: 5}, {Row: 0, Col: 9}}, got)
}
