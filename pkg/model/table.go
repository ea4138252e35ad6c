package model

import "slices"

// table keeps rows keyed by id while remembering insertion order for listings
type table[T any] struct {
	ids  []uint64
	rows map[uint64]T
}

func newTable[T any](capacity int) table[T] {
	return table[T]{
		ids:  make([]uint64, 0, capacity),
		rows: make(map[uint64]T, capacity),
	}
}

func (t *table[T]) get(id uint64) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *table[T]) has(id uint64) bool {
	_, ok := t.rows[id]
	return ok
}

// put replaces the row in place or appends it at the end of the listing order
func (t *table[T]) put(id uint64, row T) {
	if _, ok := t.rows[id]; !ok {
		t.ids = append(t.ids, id)
	}
	t.rows[id] = row
}

func (t *table[T]) remove(id uint64) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	t.ids = slices.DeleteFunc(t.ids, func(other uint64) bool { return other == id })
	return true
}

func (t *table[T]) all() []T {
	rows := make([]T, 0, len(t.ids))
	for _, id := range t.ids {
		rows = append(rows, t.rows[id])
	}
	return rows
}

func (t *table[T]) len() int {
	return len(t.ids)
}
