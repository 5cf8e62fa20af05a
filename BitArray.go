package Go_Trees

import (
	"math/bits"
)

// NewBitArray returns a BitArray able to hold at least size bits, all down.
func NewBitArray(size int) BitArray {
	return BitArray{bits: make([]uint, (size+bits.UintSize-1)/bits.UintSize)}
}

// BitArray is a packed set of bits addressed by index. The zero value is an empty array;
// use Grow before touching an index past Len.
type BitArray struct {
	bits []uint
}

func (u *BitArray) Len() int {
	return len(u.bits) * bits.UintSize
}

func (u *BitArray) Get(i int) bool {
	return (u.bits[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

func (u *BitArray) Up(i int) {
	u.bits[i/bits.UintSize] |= 1 << (i % bits.UintSize)
}

func (u *BitArray) Down(i int) {
	u.bits[i/bits.UintSize] &^= 1 << (i % bits.UintSize)
}

// Set bit i to b.
func (u *BitArray) Set(i int, b bool) {
	if b {
		u.Up(i)
	} else {
		u.Down(i)
	}
}

// Grow the array so that index n-1 is addressable. New bits are down. Never shrinks.
func (u *BitArray) Grow(n int) {
	if need := (n + bits.UintSize - 1) / bits.UintSize; need > len(u.bits) {
		if need <= cap(u.bits) {
			u.bits = u.bits[:need]
		} else {
			nb := make([]uint, need, need+need>>1)
			copy(nb, u.bits)
			u.bits = nb
		}
	}
}

// Reset puts every bit down, keeping the allocated words.
func (u *BitArray) Reset() {
	clear(u.bits)
}
