package mines

// cellTodo is the cascade worklist: a FIFO of flat cell indices. Each
// index is added at most once, so a slice with a moving head is
// enough — no need to reclaim space.
type cellTodo struct {
	items []int
	head  int
}

func newCellTodo(capacity int) *cellTodo {
	return &cellTodo{items: make([]int, 0, capacity)}
}

func (td *cellTodo) add(i int) {
	td.items = append(td.items, i)
}

func (td *cellTodo) next() (int, bool) {
	if td.head == len(td.items) {
		return 0, false
	}
	i := td.items[td.head]
	td.head++
	return i, true
}
