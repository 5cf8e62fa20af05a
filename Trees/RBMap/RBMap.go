// Package RBMap implements an ordered map on a red-black tree whose nodes live
// in a slice and are addressed by index. Children are owned through their index
// in the parent, the parent index of a node is only used for lookups during
// rebalancing. Node colours are packed in a BitArray next to the slice.
//
// After every completed mutation the tree satisfies:
//  1. The root is black.
//  2. No red node has a red child.
//  3. Every path from a node down to a nil child has the same number of black nodes.
//  4. The in-order sequence of keys is strictly increasing.
//
// So Get, GetOrInsert and Remove are O(log n) in the worst case.
package RBMap

import (
	"cmp"

	Go_Trees "github.com/g-m-twostay/go-trees"
	"golang.org/x/exp/constraints"
)

// RBMap is an ordered map from K to V. S is the type of the indexes used to
// address nodes, it bounds the number of entries the map can hold at once.
// It must be created with New or NewFunc. It isn't safe for concurrent use.
type RBMap[K, V any, S constraints.Unsigned] struct {
	root, free, size S
	ns               []node[K, V, S] // ns[0] is nil
	red              Go_Trees.BitArray
	cmp              func(a, b K) int
}

// New returns an empty map ordering keys by cmp.Compare. hint is the number of
// entries to preallocate room for.
func New[K cmp.Ordered, V any, S constraints.Unsigned](hint S) *RBMap[K, V, S] {
	return NewFunc[K, V](hint, cmp.Compare[K])
}

// NewFunc returns an empty map ordering keys by compare, which must be a total
// order returning a negative number when a<b, 0 when a==b and a positive number otherwise.
func NewFunc[K, V any, S constraints.Unsigned](hint S, compare func(a, b K) int) *RBMap[K, V, S] {
	ns := make([]node[K, V, S], 1, int(hint)+1)
	return &RBMap[K, V, S]{ns: ns, red: Go_Trees.NewBitArray(cap(ns)), cmp: compare}
}

// Size returns the number of entries.
// Time: O(1); Space: O(1)
func (u *RBMap[K, V, S]) Size() S {
	return u.size
}

func (u *RBMap[K, V, S]) Empty() bool {
	return u.size == 0
}

// Clear removes every entry. The arena keeps its capacity.
func (u *RBMap[K, V, S]) Clear() {
	clear(u.ns)
	u.ns = u.ns[:1]
	u.red.Reset()
	u.root, u.free, u.size = 0, 0, 0
}

// find returns the index of key or 0.
// Time: O(log n); Space: O(1)
func (u *RBMap[K, V, S]) find(key K) S {
	for curI := u.root; curI != 0; {
		if c := u.cmp(key, u.ns[curI].k); c < 0 {
			curI = u.ns[curI].c[left]
		} else if c > 0 {
			curI = u.ns[curI].c[right]
		} else {
			return curI
		}
	}
	return 0
}

// Get returns the value of key, or a *KeyNotFoundError when key is absent.
func (u *RBMap[K, V, S]) Get(key K) (V, error) {
	if i := u.find(key); i != 0 {
		return u.ns[i].v, nil
	}
	return *new(V), &KeyNotFoundError[K]{key}
}

func (u *RBMap[K, V, S]) Lookup(key K) (V, bool) {
	i := u.find(key)
	return u.ns[i].v, i != 0
}

// GetOr returns the value of key, or fallback() when key is absent.
func (u *RBMap[K, V, S]) GetOr(key K, fallback func() V) V {
	if i := u.find(key); i != 0 {
		return u.ns[i].v
	}
	return fallback()
}

func (u *RBMap[K, V, S]) GetOrElse(key K, def V) V {
	if i := u.find(key); i != 0 {
		return u.ns[i].v
	}
	return def
}

func (u *RBMap[K, V, S]) Has(key K) bool {
	return u.find(key) != 0
}

// GetOrInsert returns A pointer to the value of key. If key is absent, an entry
// with value factory() is inserted first; factory is called at most once and
// mustn't modify u. The pointer is valid until the next mutation of u.
// Time: O(log n)
func (u *RBMap[K, V, S]) GetOrInsert(key K, factory func() V) *V {
	i, _ := u.getOrInsert(key, factory)
	return &u.ns[i].v
}

// Set the value of key, returns true if key wasn't present before.
func (u *RBMap[K, V, S]) Set(key K, val V) bool {
	i, added := u.getOrInsert(key, func() V { return val })
	if !added {
		u.ns[i].v = val
	}
	return added
}

// At is the writable indexed accessor: GetOrInsert with the zero value of V.
func (u *RBMap[K, V, S]) At(key K) *V {
	i, _ := u.getOrInsert(key, func() (v V) { return })
	return &u.ns[i].v
}

func (u *RBMap[K, V, S]) getOrInsert(key K, factory func() V) (S, bool) {
	p, d := S(0), left
	for curI := u.root; curI != 0; {
		c := u.cmp(key, u.ns[curI].k)
		if c == 0 {
			return curI, false
		}
		if p, d = curI, left; c > 0 {
			d = right
		}
		curI = u.ns[curI].c[d]
	}
	i := u.alloc(key, factory(), p)
	if p == 0 {
		u.root = i
	} else {
		u.ns[p].c[d] = i
	}
	u.size++
	u.fixInsert(i)
	return i, true
}

// fixInsert restores the red-black properties after the red node n was linked.
// Time: O(log n) recolourings, at most 2 rotations.
func (u *RBMap[K, V, S]) fixInsert(n S) {
	for {
		p := u.ns[n].p
		if p == 0 { // n is the root
			u.setBlack(n)
			return
		}
		if !u.isRed(p) {
			return
		}
		g := u.ns[p].p
		if g == 0 { // red root
			u.setBlack(p)
			return
		}
		pd := u.dir(p)
		if uncle := u.ns[g].c[1-pd]; u.isRed(uncle) {
			u.setBlack(p)
			u.setBlack(uncle)
			u.setRed(g)
			n = g
			continue
		}
		if u.dir(n) != pd {
			u.rotate(p, pd)
			p = n
		}
		u.rotate(g, 1-pd)
		u.setBlack(p)
		u.setRed(g)
		return
	}
}

// Remove key from u, returns false if it wasn't present.
// Time: O(log n)
func (u *RBMap[K, V, S]) Remove(key K) bool {
	i := u.find(key)
	if i == 0 {
		return false
	}
	u.removeNode(i)
	u.size--
	return true
}

func (u *RBMap[K, V, S]) removeNode(n S) {
	if u.size == 1 {
		u.release(n)
		u.root = 0
		return
	}
	if l := u.ns[n].c[left]; l != 0 && u.ns[n].c[right] != 0 {
		pre := u.extreme(l, right)
		u.ns[n].k, u.ns[n].v = u.ns[pre].k, u.ns[pre].v
		n = pre
	}
	child := u.ns[n].c[left]
	if child == 0 {
		child = u.ns[n].c[right]
	}
	if child != 0 {
		if u.isRed(n) || !u.isRed(child) {
			panic("RBMap: node with a single child must be black with a red child")
		}
		u.replace(n, child)
		u.setBlack(child)
		u.release(n)
		return
	}
	if !u.isRed(n) {
		u.fixRemove(n)
	}
	u.replace(n, 0)
	u.release(n)
}

// fixRemove restores the black height around the black leaf n, which is still
// linked and is going to be detached. Walks up while the deficit can't be
// resolved locally.
// Time: O(log n) recolourings, at most 3 rotations.
func (u *RBMap[K, V, S]) fixRemove(n S) {
	if u.ns[n].c[left] != 0 || u.ns[n].c[right] != 0 || u.isRed(n) {
		panic("RBMap: remove fix-up must start at a black leaf")
	}
	for {
		p := u.ns[n].p
		if p == 0 {
			return
		}
		d := u.dir(n)
		s := u.ns[p].c[1-d]
		if u.isRed(s) {
			u.rotate(p, d)
			u.setBlack(s)
			u.setRed(p)
			s = u.ns[p].c[1-d]
		}
		near, far := u.ns[s].c[d], u.ns[s].c[1-d]
		if !u.isRed(near) && !u.isRed(far) {
			u.setRed(s)
			if u.isRed(p) {
				u.setBlack(p)
				return
			}
			n = p
			continue
		}
		if !u.isRed(far) {
			u.rotate(s, 1-d)
			u.setBlack(near)
			u.setRed(s)
			far, s = s, near
		}
		u.rotate(p, d)
		u.red.Set(int(s), u.isRed(p))
		u.setBlack(p)
		u.setBlack(far)
		return
	}
}

// Minimum key and its value.
// Time: O(log n); Space: O(1)
func (u *RBMap[K, V, S]) Minimum() (K, V, bool) {
	if u.root == 0 {
		return *new(K), *new(V), false
	}
	i := u.extreme(u.root, left)
	return u.ns[i].k, u.ns[i].v, true
}

// Maximum key and its value.
// Time: O(log n); Space: O(1)
func (u *RBMap[K, V, S]) Maximum() (K, V, bool) {
	if u.root == 0 {
		return *new(K), *new(V), false
	}
	i := u.extreme(u.root, right)
	return u.ns[i].k, u.ns[i].v, true
}

// Predecessor returns the entry with the greatest key less than key.
// Time: O(log n); Space: O(1)
func (u *RBMap[K, V, S]) Predecessor(key K) (K, V, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(key, u.ns[curI].k) <= 0 {
			curI = u.ns[curI].c[left]
		} else {
			p = curI
			curI = u.ns[curI].c[right]
		}
	}
	return u.ns[p].k, u.ns[p].v, p != 0
}

// Successor returns the entry with the smallest key greater than key.
// Time: O(log n); Space: O(1)
func (u *RBMap[K, V, S]) Successor(key K) (K, V, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if u.cmp(key, u.ns[curI].k) < 0 {
			p = curI
			curI = u.ns[curI].c[left]
		} else {
			curI = u.ns[curI].c[right]
		}
	}
	return u.ns[p].k, u.ns[p].v, p != 0
}
