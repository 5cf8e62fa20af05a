// Package SegTree implements A segment tree over A fixed array of numbers that
// answers range sums and applies range additions, both in O(log n), by
// deferring additions to sub-ranges with lazy tags.
package SegTree

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// A seg covers A range of the array. tag is an addition already counted in sum
// but not yet passed down to the children.
type seg[T Number] struct {
	sum, tag T
}

// SegTree is stored as an implicit binary tree in A slice: the root is segs[1],
// the children of segs[i] are segs[2i] and segs[2i+1].
type SegTree[T Number] struct {
	segs []seg[T]
	n    int
}

// RangeError is returned for A range that is empty or not inside the array.
type RangeError struct {
	L, R, Size int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d] invalid for size %d", e.L, e.R, e.Size)
}

// New builds A SegTree over A copy of base.
// Time: O(n)
func New[T Number](base []T) *SegTree[T] {
	u := &SegTree[T]{segs: make([]seg[T], 4*len(base)), n: len(base)}
	if u.n > 0 {
		u.build(base, 0, u.n-1, 1)
	}
	return u
}

func (u *SegTree[T]) build(base []T, start, end, id int) T {
	var sum T
	if start == end {
		sum = base[start]
	} else {
		mid := (start + end) / 2
		sum = u.build(base, start, mid, id*2) + u.build(base, mid+1, end, id*2+1)
	}
	u.segs[id] = seg[T]{sum: sum}
	return sum
}

// Size of the array.
func (u *SegTree[T]) Size() int {
	return u.n
}

func (u *SegTree[T]) check(l, r int) error {
	if l < 0 || r >= u.n || l > r {
		return &RangeError{l, r, u.n}
	}
	return nil
}

// pushDown the tag of segs[id], which covers [start, end], to its children.
func (u *SegTree[T]) pushDown(id, start, end, mid int) {
	s := &u.segs[id]
	if s.tag == 0 {
		return
	}
	lc, rc := &u.segs[id*2], &u.segs[id*2+1]
	lc.tag += s.tag
	lc.sum += s.tag * T(mid-start+1)
	rc.tag += s.tag
	rc.sum += s.tag * T(end-mid)
	s.tag = 0
}

// Query the sum of the elements in [l, r], 0 based and inclusive.
// Time: O(log n)
func (u *SegTree[T]) Query(l, r int) (T, error) {
	if err := u.check(l, r); err != nil {
		return 0, err
	}
	return u.query(l, r, 0, u.n-1, 1), nil
}

func (u *SegTree[T]) query(ql, qr, start, end, id int) T {
	if ql <= start && end <= qr {
		return u.segs[id].sum
	}
	mid := (start + end) / 2
	u.pushDown(id, start, end, mid)
	var sum T
	if ql <= mid {
		sum += u.query(ql, qr, start, mid, id*2)
	}
	if qr > mid {
		sum += u.query(ql, qr, mid+1, end, id*2+1)
	}
	return sum
}

// Add inc to every element in [l, r], 0 based and inclusive.
// Time: O(log n)
func (u *SegTree[T]) Add(l, r int, inc T) error {
	if err := u.check(l, r); err != nil {
		return err
	}
	u.add(l, r, inc, 0, u.n-1, 1)
	return nil
}

func (u *SegTree[T]) add(ql, qr int, inc T, start, end, id int) {
	s := &u.segs[id]
	if ql <= start && end <= qr {
		s.tag += inc
		s.sum += inc * T(end-start+1)
		return
	}
	mid := (start + end) / 2
	u.pushDown(id, start, end, mid)
	if ql <= mid {
		u.add(ql, qr, inc, start, mid, id*2)
	}
	if qr > mid {
		u.add(ql, qr, inc, mid+1, end, id*2+1)
	}
	s.sum = u.segs[id*2].sum + u.segs[id*2+1].sum
}
