package flux

import (
	"slices"
	"sort"
)

type lesser[E any] interface {
	less(v E) bool
}

// spawnQueue keeps its elements sorted by their less method, giving
// a [Scheduler] its fixed iteration order.
type spawnQueue[E lesser[E]] struct {
	items []E
}

func (q *spawnQueue[E]) Insert(v E) {
	i := sort.Search(len(q.items), func(i int) bool { return v.less(q.items[i]) })
	q.items = slices.Insert(q.items, i, v)
}

func (q *spawnQueue[E]) Items() []E {
	return q.items
}

func (q *spawnQueue[E]) DeleteFunc(del func(E) bool) {
	q.items = slices.DeleteFunc(q.items, del)
}

func compare[Int intType](x, y Int) int {
	if x < y {
		return -1
	}
	if x > y {
		return +1
	}
	return 0
}

type intType interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
