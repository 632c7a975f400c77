package tst

import "sync"

// Locked is a Tree guarded by a read/write mutex. Insert, InsertBalanced and
// Clear take the write lock; queries share the read lock.
type Locked struct {
	mu   sync.RWMutex
	tree Tree
}

// NewLocked creates a guarded tree containing the given words
func NewLocked(words ...string) *Locked {
	l := &Locked{}
	for _, w := range words {
		l.tree.Insert(w)
	}
	return l
}

// Insert adds word to the tree under the write lock
func (l *Locked) Insert(word string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.Insert(word)
}

// InsertBalanced inserts words medians first under the write lock
func (l *Locked) InsertBalanced(words []string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.InsertBalanced(words)
}

// Clear discards every stored string under the write lock
func (l *Locked) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.tree.Clear()
}

// Search reports whether word is stored, or with exact unset whether it
// is a prefix of a stored string
func (l *Locked) Search(word string, exact bool) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Search(word, exact)
}

// Len returns the number of distinct stored strings
func (l *Locked) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// IsEmpty reports whether the tree holds no strings at all
func (l *Locked) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.IsEmpty()
}

// AllStrings returns a snapshot of the stored strings in ascending order
func (l *Locked) AllStrings() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.AllStrings()
}

// KeysWithPrefix returns a snapshot of the stored strings starting with prefix
func (l *Locked) KeysWithPrefix(prefix string) []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.KeysWithPrefix(prefix)
}

// Stats walks the tree under the read lock and reports its size and depth
func (l *Locked) Stats() Stats {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Stats()
}

// String renders the node structure for debugging
func (l *Locked) String() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.String()
}
