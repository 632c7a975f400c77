package tst

import (
	"fmt"
	"strings"
)

// String renders the node structure for debugging. Every node is printed with
// its character and end-of-word flag, labelled with its relation to the
// parent. The format is not stable.
func (t *Tree) String() string {
	if t.IsEmpty() {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "terminates: %t", t.hasEmpty)

	type item struct {
		n     *node
		label string
		depth int
	}
	var stack []item
	if t.root != nil {
		stack = append(stack, item{n: t.root})
	}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.WriteByte('\n')
		b.WriteString(strings.Repeat("  ", it.depth))
		if it.label != "" {
			b.WriteString(it.label)
			b.WriteString(": ")
		}
		if ch := it.n.char; ch >= invalidBase {
			fmt.Fprintf(&b, "char: \\x%02x, terminates: %t", ch-invalidBase, it.n.endOfWord)
		} else {
			fmt.Fprintf(&b, "char: %c, terminates: %t", ch, it.n.endOfWord)
		}

		// pushed in reverse so low prints first
		if it.n.high != nil {
			stack = append(stack, item{it.n.high, "high", it.depth + 1})
		}
		if it.n.equal != nil {
			stack = append(stack, item{it.n.equal, "equal", it.depth + 1})
		}
		if it.n.low != nil {
			stack = append(stack, item{it.n.low, "low", it.depth + 1})
		}
	}
	return b.String()
}
