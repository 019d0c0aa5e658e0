package dijkstra

import "container/heap"

// frontier yields the unsettled vertex with the smallest (distance, index)
// among those with a finite distance.
type frontier interface {
	// update announces that vertex v now has distance d.
	update(v int, d int64)

	// next returns the next vertex to settle, or false when no unsettled
	// vertex has a finite distance.
	next(dist []int64, settled []bool) (int, bool)
}

// heapFrontier is a lazy decrease-key min-heap: update pushes a new entry,
// stale entries are discarded when popped.
type heapFrontier struct {
	pq nodePQ
}

func newHeapFrontier(capacity int) *heapFrontier {
	f := &heapFrontier{pq: make(nodePQ, 0, capacity)}
	heap.Init(&f.pq)

	return f
}

func (f *heapFrontier) update(v int, d int64) {
	heap.Push(&f.pq, nodeItem{id: v, dist: d})
}

func (f *heapFrontier) next(dist []int64, settled []bool) (int, bool) {
	for f.pq.Len() > 0 {
		item := heap.Pop(&f.pq).(nodeItem)
		// Skip stale entries: already settled, or superseded by a shorter distance.
		if settled[item.id] || item.dist != dist[item.id] {
			continue
		}

		return item.id, true
	}

	return 0, false
}

// scanFrontier examines every vertex on each call: O(V) per selection.
type scanFrontier struct{}

func (scanFrontier) update(int, int64) {}

func (scanFrontier) next(dist []int64, settled []bool) (int, bool) {
	best := -1
	for v, d := range dist {
		if settled[v] || d == Infinity {
			continue
		}
		// Strict < keeps the lowest index among equal distances.
		if best < 0 || d < dist[best] {
			best = v
		}
	}

	return best, best >= 0
}

// nodeItem represents a vertex index and its distance when pushed.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by (dist, id) ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist first, then smaller index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to nodeItem.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
