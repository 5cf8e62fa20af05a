package Go_Trees

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestBitArray_UpDown(t *testing.T) {
	rg := rand.New(rand.NewSource(0))
	var u BitArray
	want := make(map[int]bool)
	for range 1000 {
		i := rg.Intn(3000)
		u.Grow(i + 1)
		b := rg.Intn(2) == 1
		u.Set(i, b)
		want[i] = b
	}
	for i, b := range want {
		if u.Get(i) != b {
			t.Errorf("bit %d is %v, want %v", i, u.Get(i), b)
		}
	}
	u.Reset()
	for i := range want {
		if u.Get(i) {
			t.Errorf("bit %d still up after Reset", i)
		}
	}
}

func TestBitArray_Grow(t *testing.T) {
	u := NewBitArray(1)
	if u.Len() != bits.UintSize {
		t.Errorf("len is %d, want %d", u.Len(), bits.UintSize)
	}
	u.Up(3)
	u.Grow(bits.UintSize*4 + 1)
	if u.Len() != bits.UintSize*5 {
		t.Errorf("len is %d, want %d", u.Len(), bits.UintSize*5)
	}
	if !u.Get(3) {
		t.Error("Grow lost bit 3")
	}
	if u.Get(bits.UintSize * 4) {
		t.Error("grown bit is up")
	}
	u.Grow(1)
	if u.Len() != bits.UintSize*5 {
		t.Error("Grow shrank the array")
	}
}
