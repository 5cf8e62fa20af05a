// Package BST implements an unbalanced binary search tree that counts repeated
// insertions of the same value instead of storing them twice.
package BST

import (
	"cmp"
	"io"
	"iter"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/list"
)

// BST is a binary search tree with no balancing. Operations are O(D) where D
// is the depth of the tree, which is O(n) in the worst case (sorted input).
// This struct holds a root pointer and a corresponding nilPtr used
// as nil described in nodePtr. It must be created with New or NewFunc.
type BST[T any] struct {
	root, nilPtr nodePtr[T]
	size, length uint
	cmp          func(a, b T) int
}

// New returns an empty BST ordering values by cmp.Compare.
func New[T cmp.Ordered]() *BST[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty BST ordering values by compare, which must be a total order.
func NewFunc[T any](compare func(a, b T) int) *BST[T] {
	z := new(node[T])
	z.l, z.r = z, z
	return &BST[T]{root: z, nilPtr: z, cmp: compare}
}

// Size returns the number of distinct values.
// Time: O(1); Space: O(1)
func (u *BST[T]) Size() uint {
	return u.size
}

// Len returns the number of values counting repetitions.
// Time: O(1); Space: O(1)
func (u *BST[T]) Len() uint {
	return u.length
}

// insert v to the subtree rooting at cur recursively. Returns true if A node was created.
func (u *BST[T]) insert(curPtr *nodePtr[T], v T) bool {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T]{v, 1, u.nilPtr, u.nilPtr}
		return true
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.insert(&cur.l, v)
	} else if c > 0 {
		return u.insert(&cur.r, v)
	}
	cur.n++
	return false
}

// Insert [Trees.Tree.Insert]. Repeated values increase the count of their node. Recursive.
// Time: O(D)
func (u *BST[T]) Insert(v T) bool {
	u.length++
	if u.insert(&u.root, v) {
		u.size++
		return true
	}
	return false
}

// remove one occurrence of v from the subtree rooting at cur recursively.
// Returns the number of occurrences v had before removal, 0 if absent.
func (u *BST[T]) remove(curPtr *nodePtr[T], v T) uint {
	cur := *curPtr
	if cur == u.nilPtr {
		return 0
	}
	if c := u.cmp(v, cur.v); c < 0 {
		return u.remove(&cur.l, v)
	} else if c > 0 {
		return u.remove(&cur.r, v)
	}
	n := cur.n
	if n > 1 {
		cur.n--
		return n
	}
	if cur.l == u.nilPtr {
		*curPtr = cur.r
	} else if cur.r == u.nilPtr {
		*curPtr = cur.l
	} else { // splice out the successor and put it in cur's place
		t := &cur.r
		for (*t).l != u.nilPtr {
			t = &(*t).l
		}
		succ := *t
		*t = succ.r
		succ.l, succ.r = cur.l, cur.r
		*curPtr = succ
	}
	cur.l, cur.r = u.nilPtr, u.nilPtr
	return n
}

// Remove one occurrence of v. The node of v is removed once its count reaches 0. Recursive.
// Time: O(D)
func (u *BST[T]) Remove(v T) bool {
	switch u.remove(&u.root, v) {
	case 0:
		return false
	case 1:
		u.size--
	}
	u.length--
	return true
}

func (u *BST[T]) find(v T) nodePtr[T] {
	cur := u.root
	for cur != u.nilPtr {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			break
		}
	}
	return cur
}

// Count returns how many times v was inserted and not removed.
// Time: O(D); Space: O(1)
func (u *BST[T]) Count(v T) uint {
	return u.find(v).n
}

// Has [Trees.Tree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T]) Has(v T) bool {
	return u.find(v) != u.nilPtr
}

// Minimum [Trees.Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Minimum() (T, bool) {
	cur := u.root
	if cur == u.nilPtr {
		return cur.v, false
	}
	for cur.l != u.nilPtr {
		cur = cur.l
	}
	return cur.v, true
}

// Maximum [Trees.Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T]) Maximum() (T, bool) {
	cur := u.root
	if cur == u.nilPtr {
		return cur.v, false
	}
	for cur.r != u.nilPtr {
		cur = cur.r
	}
	return cur.v, true
}

// Predecessor [Trees.Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Predecessor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p = cur
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// Successor [Trees.Tree.Successor]
// Time: O(D); Space: O(1)
func (u *BST[T]) Successor(v T) (T, bool) {
	cur, p := u.root, u.nilPtr
	for cur != u.nilPtr {
		if u.cmp(v, cur.v) < 0 {
			p = cur
			cur = cur.l
		} else {
			cur = cur.r
		}
	}
	return p.v, p != u.nilPtr
}

// InOrder yields every distinct value in ascending order with its count.
// The tree must not be modified during the iteration.
// Time: amortized O(1) per value; Space: O(D)
func (u *BST[T]) InOrder() iter.Seq2[T, uint] {
	return func(yield func(T, uint) bool) {
		var st []nodePtr[T]
		for cur := u.root; cur != u.nilPtr || len(st) > 0; cur = cur.r {
			for ; cur != u.nilPtr; cur = cur.l {
				st = append(st, cur)
			}
			cur, st = st[len(st)-1], st[:len(st)-1]
			if !yield(cur.v, cur.n) {
				return
			}
		}
	}
}

// Depth of the tree, 0 when empty. Recursive.
// Time: O(n)
func (u *BST[T]) Depth() uint {
	return u.depth(u.root)
}

func (u *BST[T]) depth(c nodePtr[T]) uint {
	if c == u.nilPtr {
		return 0
	}
	return max(u.depth(c.l), u.depth(c.r)) + 1
}

func (u *BST[T]) appendNode(l list.Writer, c nodePtr[T], format func(T) string) {
	if c == u.nilPtr {
		return
	}
	s := format(c.v)
	if c.n > 1 {
		s += " (* " + strconv.FormatUint(uint64(c.n), 10) + ")"
	}
	l.AppendItem(s)
	if c.l != u.nilPtr || c.r != u.nilPtr {
		l.Indent()
		u.appendNode(l, c.l, format)
		u.appendNode(l, c.r, format)
		l.UnIndent()
	}
}

// Print the tree to w in pre-order, children indented below their parent,
// values formatted by format. Counts above 1 are shown as "(* n)". Recursive.
func (u *BST[T]) Print(w io.Writer, format func(T) string) error {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)
	u.appendNode(l, u.root, format)
	_, err := io.WriteString(w, l.Render()+"\n")
	return err
}
