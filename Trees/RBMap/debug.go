package RBMap

import (
	"fmt"
	"io"

	"github.com/g-m-twostay/go-trees/Queues"
	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/exp/constraints"
)

// Check returns A descriptive error for the first violated red-black
// property it finds, or for an inconsistent parent link or size.
// Time: O(n); Space: O(log n) for A valid tree
func (u *RBMap[K, V, S]) Check() error {
	if u.root == 0 {
		if u.size != 0 {
			return fmt.Errorf("empty tree has size %d", u.size)
		}
		return nil
	}
	if u.ns[u.root].p != 0 {
		return fmt.Errorf("root %v has parent %d", u.ns[u.root].k, u.ns[u.root].p)
	}
	if u.isRed(u.root) {
		return fmt.Errorf("root %v is red", u.ns[u.root].k)
	}
	c := checker[K, V, S]{u: u}
	if _, err := c.walk(u.root); err != nil {
		return err
	}
	if c.count != uint64(u.size) {
		return fmt.Errorf("tree holds %d nodes, size is %d", c.count, u.size)
	}
	return nil
}

// Corrupt reports whether Check finds A problem.
func (u *RBMap[K, V, S]) Corrupt() bool {
	return u.Check() != nil
}

type checker[K, V any, S constraints.Unsigned] struct {
	u     *RBMap[K, V, S]
	count uint64
	prev  S // last node visited in order
}

// walk the subtree at i in order, returning its black height counted from nil (nil is 1).
func (c *checker[K, V, S]) walk(i S) (int, error) {
	if i == 0 {
		return 1, nil
	}
	u := c.u
	n := u.ns[i]
	for d, ci := range n.c {
		if ci == 0 {
			continue
		}
		if u.ns[ci].p != i {
			return 0, fmt.Errorf("child %d of %v has parent %d, want %d", d, n.k, u.ns[ci].p, i)
		}
		if u.isRed(i) && u.isRed(ci) {
			return 0, fmt.Errorf("red node %v has red child %v", n.k, u.ns[ci].k)
		}
	}
	lh, err := c.walk(n.c[left])
	if err != nil {
		return 0, err
	}
	if c.prev != 0 && u.cmp(u.ns[c.prev].k, n.k) >= 0 {
		return 0, fmt.Errorf("keys out of order: %v before %v", u.ns[c.prev].k, n.k)
	}
	c.prev = i
	c.count++
	rh, err := c.walk(n.c[right])
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, fmt.Errorf("node %v has black heights %d and %d", n.k, lh, rh)
	}
	if !u.isRed(i) {
		lh++
	}
	return lh, nil
}

// Height is the number of nodes on the longest path from the root to A leaf.
// Time: O(n); Space: O(n)
func (u *RBMap[K, V, S]) Height() int {
	if u.root == 0 {
		return 0
	}
	q := Queues.NewRing[S](uint(u.size)/2 + 1)
	q.Push(u.root)
	h := 0
	for !q.Empty() {
		for range q.Size() {
			i, _ := q.Pop()
			for _, ci := range u.ns[i].c {
				if ci != 0 {
					q.Push(ci)
				}
			}
		}
		h++
	}
	return h
}

// BlackHeight is the number of black nodes on A path from the root down to A
// nil child, the root included. It's only meaningful when Check returns nil.
// Time: O(log n); Space: O(1)
func (u *RBMap[K, V, S]) BlackHeight() (h int) {
	for i := u.root; i != 0; i = u.ns[i].c[left] {
		if !u.isRed(i) {
			h++
		}
	}
	return
}

const nilMark = "∅"

func (u *RBMap[K, V, S]) label(i S, colored bool) string {
	switch {
	case !colored && u.isRed(i):
		return fmt.Sprintf("%v(R)", u.ns[i].k)
	case !colored:
		return fmt.Sprintf("%v(B)", u.ns[i].k)
	case u.isRed(i):
		return text.FgRed.Sprint(u.ns[i].k)
	default:
		return text.FgHiBlack.Sprint(u.ns[i].k)
	}
}

func (u *RBMap[K, V, S]) appendNode(l list.Writer, i S, colored bool) {
	if i == 0 {
		if colored {
			l.AppendItem(text.FgHiBlack.Sprint(nilMark))
		} else {
			l.AppendItem(nilMark)
		}
		return
	}
	l.AppendItem(u.label(i, colored))
	if n := u.ns[i]; n.c[left] != 0 || n.c[right] != 0 {
		l.Indent()
		u.appendNode(l, n.c[left], colored)
		u.appendNode(l, n.c[right], colored)
		l.UnIndent()
	}
}

func (u *RBMap[K, V, S]) render(colored bool) string {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedRounded)
	u.appendNode(l, u.root, colored)
	return l.Render()
}

// Print A dump of the tree to w, one key per line with children indented
// below their parent, left child first. Red keys are printed in red, black
// ones in grey, and A missing child of an inner node as ∅.
// Recursive.
func (u *RBMap[K, V, S]) Print(w io.Writer) error {
	_, err := io.WriteString(w, u.render(true)+"\n")
	return err
}

// String is the uncoloured form of Print, tagging every key with (R) or (B).
func (u *RBMap[K, V, S]) String() string {
	return u.render(false)
}
