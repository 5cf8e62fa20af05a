package SegTree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var rg = *rand.New(rand.NewSource(0))

func TestSegTree_Random(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 1000} {
		base := make([]int64, n)
		for i := range base {
			base[i] = rg.Int63n(1000) - 500
		}
		u := New(base)
		model := append([]int64(nil), base...)
		for i := range 2000 {
			l := rg.Intn(n)
			r := l + rg.Intn(n-l)
			if i%2 == 0 {
				inc := rg.Int63n(100) - 50
				if err := u.Add(l, r, inc); err != nil {
					t.Fatal(err)
				}
				for j := l; j <= r; j++ {
					model[j] += inc
				}
				continue
			}
			var want int64
			for j := l; j <= r; j++ {
				want += model[j]
			}
			if got, err := u.Query(l, r); err != nil || got != want {
				t.Fatalf("n=%d: Query(%d, %d) = %d, %v; want %d", n, l, r, got, err, want)
			}
		}
	}
}

func TestSegTree_Example(t *testing.T) {
	u := New([]int{1, 5, 4, 2, 3})
	require.Equal(t, 5, u.Size())
	sum, err := u.Query(1, 3)
	require.NoError(t, err)
	require.Equal(t, 11, sum)
	require.NoError(t, u.Add(1, 3, 2))
	sum, err = u.Query(2, 4)
	require.NoError(t, err)
	require.Equal(t, 13, sum)
	require.NoError(t, u.Add(0, 4, -1))
	sum, err = u.Query(0, 4)
	require.NoError(t, err)
	require.Equal(t, 16, sum)
	sum, err = u.Query(4, 4)
	require.NoError(t, err)
	require.Equal(t, 2, sum)
}

func TestSegTree_Float(t *testing.T) {
	u := New([]float64{0.5, 1.5, 2})
	require.NoError(t, u.Add(0, 1, 0.25))
	sum, err := u.Query(0, 2)
	require.NoError(t, err)
	require.InDelta(t, 4.5, sum, 1e-9)
}

func TestSegTree_Range(t *testing.T) {
	u := New([]int{1, 2, 3})
	for _, r := range [][2]int{{-1, 1}, {0, 3}, {2, 1}} {
		_, err := u.Query(r[0], r[1])
		var re *RangeError
		if !errors.As(err, &re) || re.L != r[0] || re.R != r[1] || re.Size != 3 {
			t.Errorf("Query(%d, %d) returned %v", r[0], r[1], err)
		}
		if err := u.Add(r[0], r[1], 1); err == nil {
			t.Errorf("Add(%d, %d) succeeded", r[0], r[1])
		}
	}
	if _, err := New[int](nil).Query(0, 0); err == nil {
		t.Error("query on an empty tree succeeded")
	}
}
