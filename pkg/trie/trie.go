// Package trie is the core, providing the prefix tree that stores accepted
// input history and answers prefix queries for completion.
//
// Each inserted entry is stored one rune per node. A node keeps the full
// string spelled by the path from the root to itself, so walking the tree
// yields complete entries without path reconstruction. A node with no
// children marks the end of a stored entry; an entry that is a strict prefix
// of another stored entry is therefore not reported by iteration, even
// though Find still locates its path.
package trie

// Node represents one rune position of some stored entry.
type Node struct {
	key      rune
	value    string
	children map[rune]*Node
}

func newNode(key rune, value string) *Node {
	return &Node{
		key:      key,
		value:    value,
		children: make(map[rune]*Node),
	}
}

// Value returns the full entry prefix spelled by the path from the root to
// this node.
func (n *Node) Value() string {
	return n.value
}

// Find walks the children matching word one rune at a time and returns the
// node reached after consuming all of it. The empty string returns n itself.
func (n *Node) Find(word string) (*Node, bool) {
	return n.find([]rune(word))
}

func (n *Node) find(word []rune) (*Node, bool) {
	if len(word) == 0 {
		return n, true
	}
	child, ok := n.children[word[0]]
	if !ok {
		return nil, false
	}
	return child.find(word[1:])
}

func (n *Node) insert(word []rune) {
	if len(word) == 0 {
		return
	}
	child, ok := n.children[word[0]]
	if !ok {
		child = newNode(word[0], n.value+string(word[0]))
		n.children[word[0]] = child
	}
	child.insert(word[1:])
}

// delete removes the tail of word not shared with any other stored entry,
// working bottom-up. A childless immediate child is an exclusive tail and is
// unlinked directly; otherwise the child prunes its own tail first and is
// unlinked afterwards if that left it childless.
func (n *Node) delete(word []rune) {
	if len(word) == 0 {
		return
	}
	child, ok := n.children[word[0]]
	if !ok {
		return
	}
	if len(child.children) == 0 {
		delete(n.children, word[0])
		return
	}
	child.delete(word[1:])
	if len(child.children) == 0 {
		delete(n.children, word[0])
	}
}

// Trie owns the root sentinel node. The root's key and value are
// placeholders and never read.
type Trie struct {
	root *Node
}

// New creates an empty trie.
func New() *Trie {
	return &Trie{root: newNode(' ', "")}
}

// Insert adds word to the trie, extending only the part not already present.
// Inserting the empty string or an already stored word changes nothing.
func (t *Trie) Insert(word string) {
	t.root.insert([]rune(word))
}

// Find returns the node reached by walking word from the root, or false when
// any rune along the way is missing. A present path does not imply word was
// ever inserted as a complete entry.
func (t *Trie) Find(word string) (*Node, bool) {
	return t.root.Find(word)
}

// Delete removes word from the trie. Any leading part that is shared with
// another stored entry is left intact.
func (t *Trie) Delete(word string) {
	t.root.delete([]rune(word))
}

// DeleteAfterPrefix removes word from the subtree rooted at prefix, leaving
// the prefix path itself intact. No-op when prefix is absent.
func (t *Trie) DeleteAfterPrefix(prefix, word string) {
	if head, ok := t.root.Find(prefix); ok {
		head.delete([]rune(word))
	}
}

// Words returns a fresh walker over every stored entry.
func (t *Trie) Words() *Walker {
	return newWalker(t.root)
}

// WordsWithPrefix returns a fresh walker over the stored entries that have
// prefix as a leading part. An absent prefix yields an exhausted walker.
func (t *Trie) WordsWithPrefix(prefix string) *Walker {
	head, ok := t.Find(prefix)
	if !ok {
		return &Walker{}
	}
	return newWalker(head)
}
