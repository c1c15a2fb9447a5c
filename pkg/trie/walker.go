package trie

// Walker produces the stored entries reachable from a starting node,
// depth-first over an explicit stack. Each call to Trie.Words or
// Trie.WordsWithPrefix creates a fresh walker; a drained walker cannot be
// replayed. Sibling order follows map iteration and is unspecified, so
// callers must not rely on lexicographic output.
type Walker struct {
	stack []*Node
}

func newWalker(head *Node) *Walker {
	w := &Walker{stack: make([]*Node, 0, len(head.children))}
	for _, child := range head.children {
		w.stack = append(w.stack, child)
	}
	return w
}

// Next returns the next complete entry, or false when the walk is done.
// Nodes with children are pass-through prefixes and are never yielded.
func (w *Walker) Next() (string, bool) {
	for len(w.stack) > 0 {
		head := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		for _, child := range head.children {
			w.stack = append(w.stack, child)
		}
		if len(head.children) == 0 {
			return head.value, true
		}
	}
	return "", false
}

// Collect drains the walker into a slice.
func (w *Walker) Collect() []string {
	var words []string
	for {
		word, ok := w.Next()
		if !ok {
			return words
		}
		words = append(words, word)
	}
}
