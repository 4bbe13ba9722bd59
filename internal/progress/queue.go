package progress

import "github.com/ytget/ytfetch/internal/model"

type queued struct {
	event model.ProgressEvent
	seq   uint64
}

// eventQueue is a min-heap on (fraction, arrival)
type eventQueue []queued

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].event.Fraction != q[j].event.Fraction {
		return q[i].event.Fraction < q[j].event.Fraction
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) {
	*q = append(*q, x.(queued))
}

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
