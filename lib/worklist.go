package lib

// worklist - LIFO stack of triangles waiting for edge legalization.
type worklist struct {
	items []triangleIndex
}

func (w *worklist) Reset() {
	w.items = w.items[:0]
}
func (w *worklist) Empty() bool {
	return len(w.items) == 0
}
func (w *worklist) Push(t triangleIndex) {
	w.items = append(w.items, t)
}
func (w *worklist) Pop() triangleIndex {
	n := len(w.items)
	if n == 0 {
		panic("Empty worklist")
	}
	t := w.items[n-1]
	w.items = w.items[:n-1]
	return t
}
