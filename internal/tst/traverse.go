package tst

import (
	"iter"
	"slices"
)

// TraverseFunc is called for each stored string during Traverse.
// If it returns false, the traversal stops.
type TraverseFunc func(word string) bool

// All returns an iterator over every stored string in ascending order.
func (t *Tree) All() iter.Seq[string] {
	return t.WithPrefix("")
}

// AllStrings returns every stored string in ascending order
func (t *Tree) AllStrings() []string {
	return slices.Collect(t.All())
}

// WithPrefix returns an iterator over the stored strings that start with
// prefix, in ascending order.
func (t *Tree) WithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if prefix == "" {
			if t.hasEmpty && !yield("") {
				return
			}
			walk(t.root, nil, yield)
			return
		}

		n := t.findNode(prefix)
		if n == nil {
			return
		}
		if n.endOfWord && !yield(prefix) {
			return
		}
		walk(n.equal, []byte(prefix), yield)
	}
}

// KeysWithPrefix returns all stored strings that start with prefix
func (t *Tree) KeysWithPrefix(prefix string) []string {
	return slices.Collect(t.WithPrefix(prefix))
}

// Traverse calls f for each stored string starting with prefix, in
// lexicographical order, until f returns false.
func (t *Tree) Traverse(prefix string, f TraverseFunc) {
	for word := range t.WithPrefix(prefix) {
		if !f(word) {
			return
		}
	}
}

// frame states of the in-order walk
const (
	visitLow = iota
	visitSelf
	visitHigh
)

type frame struct {
	n     *node
	state int
	// mark is the path length before this node's character was appended
	mark int
}

// walk emits the strings of the subtree rooted at start in order. path holds
// the bytes leading to start. Each node visits its low subtree, then
// itself and its equal subtree with its character on the path, then its high
// subtree. It returns false if yield asked to stop.
func walk(start *node, path []byte, yield func(string) bool) bool {
	if start == nil {
		return true
	}

	stack := []frame{{n: start}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		n := top.n

		switch top.state {
		case visitLow:
			top.state = visitSelf
			if n.low != nil {
				stack = append(stack, frame{n: n.low})
			}
		case visitSelf:
			top.state = visitHigh
			top.mark = len(path)
			path = appendKey(path, n.char)
			if n.endOfWord && !yield(string(path)) {
				return false
			}
			if n.equal != nil {
				stack = append(stack, frame{n: n.equal})
			}
		case visitHigh:
			path = path[:top.mark]
			stack = stack[:len(stack)-1]
			if n.high != nil {
				stack = append(stack, frame{n: n.high})
			}
		}
	}
	return true
}
