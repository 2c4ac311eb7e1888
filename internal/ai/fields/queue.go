package fields

import (
	"container/heap"

	"github.com/mitchelldurbincs/DesertWarsAI/internal/game/core"
)

// Item is a position queued at a tentative cost
type Item struct {
	Cost int
	Pos  core.Position
}

// before orders items cheapest first. Equal costs pop the larger row, then the
// larger column, first; search results depend on this order.
func before(a, b Item) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.Pos.Row != b.Pos.Row {
		return a.Pos.Row > b.Pos.Row
	}
	return a.Pos.Col > b.Pos.Col
}

type itemHeap []Item

func (h itemHeap) Len() int           { return len(h) }
func (h itemHeap) Less(i, j int) bool { return before(h[i], h[j]) }
func (h itemHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *itemHeap) Push(x interface{}) {
	*h = append(*h, x.(Item))
}
func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// Queue is a min-cost priority queue of positions. Decrease-key is done by
// pushing again; consumers skip popped items whose cost is stale.
type Queue struct {
	h itemHeap
}

func NewQueue() *Queue {
	q := &Queue{h: make(itemHeap, 0, 64)}
	heap.Init(&q.h)
	return q
}

func (q *Queue) Len() int { return q.h.Len() }

func (q *Queue) Push(cost int, p core.Position) {
	heap.Push(&q.h, Item{Cost: cost, Pos: p})
}

func (q *Queue) Pop() Item {
	return heap.Pop(&q.h).(Item)
}
