package tst

import "slices"

// Insert adds word to the tree. Inserting a word that is already stored
// leaves the tree unchanged. The empty string is stored as a marker on the
// tree itself.
func (t *Tree) Insert(word string) {
	if word == "" {
		if !t.hasEmpty {
			t.hasEmpty = true
			t.count++
		}
		return
	}

	slot := &t.root
	pos := 0
	for {
		ch, size := decodeKey(word[pos:])
		if *slot == nil {
			*slot = newNode(ch)
		}
		n := *slot

		switch {
		case ch < n.char:
			slot = &n.low
		case ch > n.char:
			slot = &n.high
		case pos+size == len(word):
			if !n.endOfWord {
				n.endOfWord = true
				t.count++
			}
			return
		default:
			slot = &n.equal
			pos += size
		}
	}
}

// InsertBalanced inserts a sorted, deduplicated copy of words, medians first,
// so that the low and high chains at each position stay shallow. The input
// slice is not modified.
func (t *Tree) InsertBalanced(words []string) {
	sorted := slices.Clone(words)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	type span struct{ lo, hi int }
	queue := []span{{0, len(sorted)}}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.lo >= s.hi {
			continue
		}
		mid := s.lo + (s.hi-s.lo)/2
		t.Insert(sorted[mid])
		queue = append(queue, span{s.lo, mid}, span{mid + 1, s.hi})
	}
}

// Search reports whether word is in the tree. With exact set, word must have
// been inserted as a complete string; otherwise it is enough for word to be a
// prefix of a stored string.
//
// The empty string is only found by a non-exact search, and only after it
// was inserted.
func (t *Tree) Search(word string, exact bool) bool {
	if word == "" {
		return t.hasEmpty && !exact
	}

	n := t.findNode(word)
	if n == nil {
		return false
	}
	return !exact || n.endOfWord
}

// Contains reports whether word was inserted as a complete string
func (t *Tree) Contains(word string) bool {
	return t.Search(word, true)
}

// HasPrefix reports whether some stored string starts with prefix
func (t *Tree) HasPrefix(prefix string) bool {
	return t.Search(prefix, false)
}

// findNode returns the node holding the last character of key, or nil if the
// path does not exist. key must not be empty.
func (t *Tree) findNode(key string) *node {
	n := t.root
	pos := 0
	for n != nil {
		ch, size := decodeKey(key[pos:])
		switch {
		case ch < n.char:
			n = n.low
		case ch > n.char:
			n = n.high
		case pos+size == len(key):
			return n
		default:
			n = n.equal
			pos += size
		}
	}
	return nil
}
