package BST

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-trees/Trees"
	"github.com/google/btree"
	"github.com/stretchr/testify/require"
)

var _ Trees.Tree[int] = (*BST[int])(nil)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 20000
	tAddValRange = 4000
)

func TestBST_Random(t *testing.T) {
	tree := New[int]()
	content := make(map[int]uint)
	ref := btree.NewOrderedG[int](4)
	for range tAddN {
		v := rg.Intn(tAddValRange)
		if rg.Intn(3) == 0 {
			in := content[v] > 0
			if tree.Remove(v) != in {
				t.Fatalf("Remove(%d) disagrees with the model", v)
			}
			if in {
				if content[v]--; content[v] == 0 {
					delete(content, v)
					ref.Delete(v)
				}
			}
		} else {
			if created := tree.Insert(v); created != (content[v] == 0) {
				t.Fatalf("Insert(%d) returned %v", v, created)
			}
			content[v]++
			ref.ReplaceOrInsert(v)
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	var total uint
	for v, n := range content {
		total += n
		if tree.Count(v) != n {
			t.Errorf("count of %d is %d, want %d", v, tree.Count(v), n)
		}
	}
	if tree.Len() != total {
		t.Errorf("tree len is %d, want %d", tree.Len(), total)
	}
	var want []int
	ref.Ascend(func(v int) bool {
		want = append(want, v)
		return true
	})
	i := 0
	for v, n := range tree.InOrder() {
		if i >= len(want) || want[i] != v || n != content[v] {
			t.Fatalf("in-order gives %d (* %d) at position %d", v, n, i)
		}
		i++
	}
	if i != len(want) {
		t.Errorf("in-order gives %d values, btree has %d", i, len(want))
	}
	t.Logf("depth: %d, size: %d.\n", tree.Depth(), tree.Size())
}

type point struct{ x, y int }

func comparePoints(a, b point) int {
	if a.x != b.x {
		return a.x - b.x
	}
	return a.y - b.y
}

func TestBST_Points(t *testing.T) {
	tree := NewFunc(comparePoints)
	for _, p := range []point{{2, 3}, {3, 4}, {1, 2}, {4, 5}} {
		tree.Insert(p)
	}
	mn, ok := tree.Minimum()
	require.True(t, ok)
	require.Equal(t, point{1, 2}, mn)
	mx, ok := tree.Maximum()
	require.True(t, ok)
	require.Equal(t, point{4, 5}, mx)

	require.True(t, tree.Remove(point{2, 3}))
	require.False(t, tree.Has(point{2, 3}))
	require.False(t, tree.Remove(point{2, 3}))
	var got []point
	for p := range tree.InOrder() {
		got = append(got, p)
	}
	require.Equal(t, []point{{1, 2}, {3, 4}, {4, 5}}, got)
}

func TestBST_Neighbours(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{50, 30, 70, 20, 40, 60, 80, 30} {
		tree.Insert(v)
	}
	require.Equal(t, uint(7), tree.Size())
	require.Equal(t, uint(8), tree.Len())
	require.Equal(t, uint(2), tree.Count(30))
	p, ok := tree.Predecessor(50)
	require.True(t, ok)
	require.Equal(t, 40, p)
	s, ok := tree.Successor(50)
	require.True(t, ok)
	require.Equal(t, 60, s)
	_, ok = tree.Predecessor(20)
	require.False(t, ok)
	_, ok = tree.Successor(80)
	require.False(t, ok)

	require.True(t, tree.Remove(30))
	require.Equal(t, uint(1), tree.Count(30))
	require.Equal(t, uint(7), tree.Size())
	require.True(t, tree.Remove(50))
	require.Equal(t, uint(6), tree.Size())
	require.Equal(t, 60, tree.root.v)
	require.Equal(t, uint(3), tree.Depth())

	empty := New[string]()
	_, ok = empty.Minimum()
	require.False(t, ok)
	_, ok = empty.Maximum()
	require.False(t, ok)
	require.Zero(t, empty.Depth())
}

func TestBST_Print(t *testing.T) {
	tree := New[int]()
	for _, v := range []int{2, 1, 3, 3} {
		tree.Insert(v)
	}
	var sb strings.Builder
	require.NoError(t, tree.Print(&sb, func(v int) string { return fmt.Sprint(v) }))
	out := sb.String()
	require.Contains(t, out, "3 (* 2)")
	require.Equal(t, 3, strings.Count(out, "\n"), out)
}
