package RBMap

import (
	"golang.org/x/exp/constraints"
)

const (
	left  = 0
	right = 1
)

// A node in the arena. Index 0 is the nil node: its fields are never written
// and its colour is always black.
// For nodes in the free list, c[left] is the next free index.
type node[K, V any, S constraints.Unsigned] struct {
	k K
	v V
	c [2]S // children
	p S    // parent, 0 for the root
}

// ArenaFullError is the panic value when the tree needs more nodes than S can address.
type ArenaFullError struct {
	Max uint64
}

func (e ArenaFullError) Error() string {
	return "RBMap: arena index type exhausted"
}

func (u *RBMap[K, V, S]) isRed(i S) bool {
	return u.red.Get(int(i))
}

func (u *RBMap[K, V, S]) setRed(i S) {
	u.red.Up(int(i))
}

func (u *RBMap[K, V, S]) setBlack(i S) {
	u.red.Down(int(i))
}

// dir of i relative to its parent. i mustn't be the root.
func (u *RBMap[K, V, S]) dir(i S) int {
	if u.ns[u.ns[i].p].c[left] == i {
		return left
	}
	return right
}

// alloc a red node, reusing a free index if there's one.
func (u *RBMap[K, V, S]) alloc(k K, v V, p S) S {
	i := u.free
	if i != 0 {
		u.free = u.ns[i].c[left]
		u.ns[i] = node[K, V, S]{k: k, v: v, p: p}
	} else {
		if i = S(len(u.ns)); uint64(i) != uint64(len(u.ns)) {
			panic(ArenaFullError{uint64(^S(0))})
		}
		u.ns = append(u.ns, node[K, V, S]{k: k, v: v, p: p})
		u.red.Grow(len(u.ns))
	}
	u.setRed(i)
	return i
}

// release index i to the free list. Key and value are zeroed so that they can be collected.
func (u *RBMap[K, V, S]) release(i S) {
	u.ns[i] = node[K, V, S]{}
	u.ns[i].c[left] = u.free
	u.free = i
	u.setBlack(i)
}

// replace old with rep in the eyes of old's parent. rep may be 0.
func (u *RBMap[K, V, S]) replace(old, rep S) {
	p := u.ns[old].p
	if p == 0 {
		u.root = rep
	} else {
		u.ns[p].c[u.dir(old)] = rep
	}
	if rep != 0 {
		u.ns[rep].p = p
	}
}

// rotate n towards d, promoting its child on the other side into n's position.
// rotate(n, left) is a left rotation:
//
//	    n              r
//	   / \            / \
//	  a   r    →     n   c
//	     / \        / \
//	    b   c      a   b
//
// Time: O(1); Space: O(1)
func (u *RBMap[K, V, S]) rotate(n S, d int) {
	r := u.ns[n].c[1-d]
	u.replace(n, r)
	u.ns[n].p = r
	b := u.ns[r].c[d]
	u.ns[n].c[1-d] = b
	if b != 0 {
		u.ns[b].p = n
	}
	u.ns[r].c[d] = n
}

// extreme returns the descendant of i reached by always stepping towards d.
func (u *RBMap[K, V, S]) extreme(i S, d int) S {
	for u.ns[i].c[d] != 0 {
		i = u.ns[i].c[d]
	}
	return i
}
