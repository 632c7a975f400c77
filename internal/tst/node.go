// Package tst implements a ternary search tree: a character-indexed trie
// variant that stores a set of strings and answers exact membership and
// prefix-existence queries. Each node holds one character and three children,
// so memory overhead stays close to a binary search tree instead of a trie's
// fixed fan-out per node.
//
// A Tree is not safe for concurrent use. Wrap it in a Locked when it is shared
// between goroutines.
package tst

import "unicode/utf8"

// invalidBase is the first key past the Unicode range. A byte that is not
// part of valid UTF-8 is keyed as invalidBase plus its value, so it never
// collides with a real character, U+FFFD included.
const invalidBase = utf8.MaxRune + 1

// decodeKey returns the key of the first character of s and its width in
// bytes. s must not be empty.
func decodeKey(s string) (rune, int) {
	ch, size := utf8.DecodeRuneInString(s)
	if ch == utf8.RuneError && size == 1 {
		return invalidBase + rune(s[0]), 1
	}
	return ch, size
}

// appendKey appends the bytes that ch was decoded from
func appendKey(b []byte, ch rune) []byte {
	if ch >= invalidBase {
		return append(b, byte(ch-invalidBase))
	}
	return utf8.AppendRune(b, ch)
}

// node represents one character position on the path of one or more stored
// strings.
type node struct {
	// char is the character at this position, or the key of an invalid
	// byte. It never changes once set.
	char rune

	// endOfWord marks that the path from the root to this node spells a
	// stored string
	endOfWord bool

	// low holds alternatives ordinally less than char at the same position,
	// high the greater ones, and equal advances to the next position.
	low, equal, high *node
}

// newNode creates a new tree node for the given character
func newNode(ch rune) *node {
	return &node{char: ch}
}

// Tree is a ternary search tree holding a set of strings.
// The zero value is an empty tree ready to use.
type Tree struct {
	root *node

	// hasEmpty records whether the empty string was inserted. It lives on
	// the tree rather than on a node so that "" never shares a marker with a
	// one-character word.
	hasEmpty bool

	// count is the number of distinct stored strings, not the node count
	count int
}

// New creates a tree containing the given words
func New(words ...string) *Tree {
	t := &Tree{}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Len returns the number of distinct strings stored in the tree
func (t *Tree) Len() int {
	return t.count
}

// IsEmpty reports whether the tree holds no strings at all
func (t *Tree) IsEmpty() bool {
	return t.root == nil && !t.hasEmpty
}

// Clear discards every stored string
func (t *Tree) Clear() {
	t.root = nil
	t.hasEmpty = false
	t.count = 0
}

// Stats describes the shape of a tree.
type Stats struct {
	// Words is the number of stored strings, counted from the end-of-word
	// markers rather than taken from Len
	Words int
	// Nodes is the number of character nodes
	Nodes int
	// MaxDepth is the number of edges on the longest path from the root,
	// counting low, equal and high links alike
	MaxDepth int
}

// Stats walks the tree and reports its size and depth
func (t *Tree) Stats() Stats {
	var s Stats
	if t.hasEmpty {
		s.Words++
	}
	if t.root == nil {
		return s
	}

	type item struct {
		n     *node
		depth int
	}
	stack := []item{{t.root, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.Nodes++
		if it.n.endOfWord {
			s.Words++
		}
		if it.depth > s.MaxDepth {
			s.MaxDepth = it.depth
		}
		for _, child := range [...]*node{it.n.low, it.n.equal, it.n.high} {
			if child != nil {
				stack = append(stack, item{child, it.depth + 1})
			}
		}
	}
	return s
}
