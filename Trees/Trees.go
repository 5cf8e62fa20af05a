package Trees

import (
	"iter"

	"golang.org/x/exp/constraints"
)

// Tree represents A tree like structure holding keys of type T.
// Receivers that has A bool as A second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case the value of x should be undefined and it's advised that x not to be used.
// Methods implemented recursively should be noted, otherwise functions are
// implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if A new node was created.
	//Exact behavior for repeated values depend on implementation.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if successful, false otherwise.
	//Exact behavior for repeated values depend on implementation.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree, counting each distinct element once.
	Size() uint
}

// OrderedMap is an associative container that keeps its keys sorted.
// K is the key type, V the value type and S the unsigned type used to
// address entries internally; S bounds the number of live entries.
//
// Pointers returned by GetOrInsert and At point into storage owned by
// the map and stay valid only until the next mutation of the map.
// None of the implementations are safe for concurrent mutation, the
// caller must provide mutual exclusion. Iterating while mutating gives
// unspecified results but never corrupts the map.
type OrderedMap[K, V any, S constraints.Unsigned] interface {
	//Get the value stored under key. The error matches ErrKeyNotFound
	//of the implementation when key is absent.
	Get(key K) (V, error)
	//Lookup is Get with A bool instead of an error.
	Lookup(key K) (V, bool)
	//GetOr returns the value of key, or the result of fallback if key is absent.
	GetOr(key K, fallback func() V) V
	//GetOrElse returns the value of key, or def if key is absent.
	GetOrElse(key K, def V) V
	//GetOrInsert returns the value of key, inserting factory() first if
	//key is absent. factory is only called when an entry is created.
	GetOrInsert(key K, factory func() V) *V
	//Set the value of key, returning true if A new entry was created.
	Set(key K, val V) bool
	//At is GetOrInsert with the zero value of V.
	At(key K) *V
	//Remove key, returning false if it wasn't present.
	Remove(key K) bool
	Has(key K) bool
	Size() S
	Empty() bool
	//All entries in ascending key order.
	All() iter.Seq2[K, V]
	Keys() iter.Seq[K]
	Values() iter.Seq[V]
	//Corrupt returns whether the structure violates the properties of
	//that specific implementation.
	Corrupt() bool
}
