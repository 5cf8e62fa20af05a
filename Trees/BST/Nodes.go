package BST

// A node in the BST. The zero value is meaningless.
type node[T any] struct {
	v    T
	n    uint // multiplicity of v
	l, r nodePtr[T]
}

// Pointer to a node.
// A nodePtr is considered to be nil if it's equal to the nilPtr of its BST. The nilPtr has
// both l and r pointing to itself and n=0.
type nodePtr[T any] *node[T]
