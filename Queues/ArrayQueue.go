package Queues

// Ring is a Queue backed by a circular slice. It grows by half its length when full.
// The zero value is not usable; create it with NewRing.
type Ring[T any] struct {
	sz, head, tail uint
	content        []T
}

// NewRing returns an empty Ring with room for initCap items before it has to grow.
func NewRing[T any](initCap uint) *Ring[T] {
	return &Ring[T]{0, 0, 0, make([]T, initCap|1)}
}

func (u *Ring[T]) Empty() bool {
	return u.sz == 0
}

func (u *Ring[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail {
		copy(nc, u.content[u.head:u.tail])
	} else if u.sz > 0 {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.head, u.tail = 0, u.sz%newLen
	u.content = nc
}

// Clear the queue, keeping its capacity. Held items are zeroed.
func (u *Ring[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *Ring[T]) Size() uint {
	return u.sz
}

func (u *Ring[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + l>>1 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

func (u *Ring[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *Ring[T]) Peek() (item T, ok bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
