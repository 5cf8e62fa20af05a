package RBMap

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Iterator walks A RBMap in ascending key order. It keeps the pending
// ancestors on an explicit stack, so it can be stepped from outside and
// several iterators can walk the same map at once.
// The map must not be modified while an Iterator is in use.
//
//	for it := m.Iter(); it.Next(); {
//		use(it.Key(), it.Value())
//	}
type Iterator[K, V any, S constraints.Unsigned] struct {
	u   *RBMap[K, V, S]
	st  []S
	cur S
}

// Iter returns an Iterator positioned before the smallest key.
func (u *RBMap[K, V, S]) Iter() *Iterator[K, V, S] {
	it := &Iterator[K, V, S]{u: u}
	it.Reset()
	return it
}

// Reset positions it before the smallest key again, reusing its stack.
func (it *Iterator[K, V, S]) Reset() {
	it.st, it.cur = it.st[:0], 0
	it.pushLefts(it.u.root)
}

func (it *Iterator[K, V, S]) pushLefts(curI S) {
	for ; curI != 0; curI = it.u.ns[curI].c[left] {
		it.st = append(it.st, curI)
	}
}

// Next advances to the next entry, returns false when there is none left.
// Time: amortized O(1)
func (it *Iterator[K, V, S]) Next() bool {
	if len(it.st) == 0 {
		it.cur = 0
		return false
	}
	it.cur, it.st = it.st[len(it.st)-1], it.st[:len(it.st)-1]
	it.pushLefts(it.u.ns[it.cur].c[right])
	return true
}

// Key of the current entry. Only meaningful after Next returned true.
func (it *Iterator[K, V, S]) Key() K {
	return it.u.ns[it.cur].k
}

// Value of the current entry. Only meaningful after Next returned true.
func (it *Iterator[K, V, S]) Value() V {
	return it.u.ns[it.cur].v
}

// All entries in ascending key order.
func (u *RBMap[K, V, S]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for it := u.Iter(); it.Next(); {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Keys in ascending order.
func (u *RBMap[K, V, S]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for it := u.Iter(); it.Next(); {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Values in ascending order of their keys.
func (u *RBMap[K, V, S]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for it := u.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
