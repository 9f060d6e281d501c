package radix

import "iter"

// KeyView is a live view of the keys stored in a subtree of a Trie. A view
// with a nil root is empty. Removals through the view write through to the
// trie.
type KeyView[S, T any] struct {
	trie *Trie[S, T]
	root *Node[S, T]
}

// Size returns the number of keys in the view.
func (v KeyView[S, T]) Size() int {
	if v.root == nil {
		return 0
	}
	return v.root.size
}

// IsEmpty reports whether the view holds no keys.
func (v KeyView[S, T]) IsEmpty() bool { return v.Size() == 0 }

// Contains reports whether the exact given key is in the view.
func (v KeyView[S, T]) Contains(query S) bool {
	if v.root == nil {
		return false
	}
	return v.trie.search(v.root, query, Exact) != nil
}

// Remove deletes the exact given key from the underlying trie.
func (v KeyView[S, T]) Remove(query S) (removed T, ok bool) {
	if v.root == nil {
		return removed, false
	}
	return v.trie.removeAfter(v.root, query)
}

// All ranges over the keys in depth-first order.
func (v KeyView[S, T]) All() iter.Seq[S] {
	return func(yield func(S) bool) {
		for it := newIterator(v.trie, v.root, false); ; {
			n, ok := it.Next()
			if !ok || !yield(n.sequence) {
				return
			}
		}
	}
}

// Iterator returns a stateful iterator over the view.
func (v KeyView[S, T]) Iterator() *Iterator[S, T] {
	return newIterator(v.trie, v.root, false)
}

// ValueView is a live view of the values stored in a subtree of a Trie.
type ValueView[S, T any] struct {
	trie *Trie[S, T]
	root *Node[S, T]
}

// Size returns the number of values in the view.
func (v ValueView[S, T]) Size() int {
	if v.root == nil {
		return 0
	}
	return v.root.size
}

// IsEmpty reports whether the view holds no values.
func (v ValueView[S, T]) IsEmpty() bool { return v.Size() == 0 }

// All ranges over the values in depth-first order.
func (v ValueView[S, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := newIterator(v.trie, v.root, false); ; {
			n, ok := it.Next()
			if !ok || !yield(n.value) {
				return
			}
		}
	}
}

// Iterator returns a stateful iterator over the view.
func (v ValueView[S, T]) Iterator() *Iterator[S, T] {
	return newIterator(v.trie, v.root, false)
}

// EntryView is a live view of the key-value pairs stored in a subtree of a
// Trie.
type EntryView[S, T any] struct {
	trie *Trie[S, T]
	root *Node[S, T]
}

// Size returns the number of entries in the view.
func (v EntryView[S, T]) Size() int {
	if v.root == nil {
		return 0
	}
	return v.root.size
}

// IsEmpty reports whether the view holds no entries.
func (v EntryView[S, T]) IsEmpty() bool { return v.Size() == 0 }

// Contains reports whether a value is stored under the exact given key.
func (v EntryView[S, T]) Contains(query S) bool {
	if v.root == nil {
		return false
	}
	return v.trie.search(v.root, query, Exact) != nil
}

// Remove deletes the entry stored under the exact given key.
func (v EntryView[S, T]) Remove(query S) (removed T, ok bool) {
	if v.root == nil {
		return removed, false
	}
	return v.trie.removeAfter(v.root, query)
}

// All ranges over the entries in depth-first order.
func (v EntryView[S, T]) All() iter.Seq2[S, T] {
	return func(yield func(S, T) bool) {
		for it := newIterator(v.trie, v.root, false); ; {
			n, ok := it.Next()
			if !ok || !yield(n.sequence, n.value) {
				return
			}
		}
	}
}

// Iterator returns a stateful iterator over the view.
func (v EntryView[S, T]) Iterator() *Iterator[S, T] {
	return newIterator(v.trie, v.root, false)
}

// NodeView is a live view of the nodes of a subtree of a Trie. By default it
// exposes the valued nodes only; a view built by NodeSetAll also exposes
// naked branches.
type NodeView[S, T any] struct {
	trie *Trie[S, T]
	root *Node[S, T]
	all  bool
}

// Size returns the number of valued nodes in the view. Naked branches are
// not counted even when the view reports them.
func (v NodeView[S, T]) Size() int {
	if v.root == nil {
		return 0
	}
	return v.root.size
}

// IsEmpty reports whether the view holds no valued nodes.
func (v NodeView[S, T]) IsEmpty() bool { return v.Size() == 0 }

// Contains reports whether a valued node exists for the exact given key.
func (v NodeView[S, T]) Contains(query S) bool {
	if v.root == nil {
		return false
	}
	return v.trie.search(v.root, query, Exact) != nil
}

// ContainsNode reports whether the given node belongs to the viewed trie.
func (v NodeView[S, T]) ContainsNode(node *Node[S, T]) bool {
	if node == nil || v.trie == nil {
		return false
	}
	// a removed node may still point at its former parent, so check that
	// every parent on the way up still lists the node in its child table
	cur := node
	for cur.parent != nil {
		p := cur.parent
		if p.children == nil || p.children.get(v.trie.sequencer.HashOf(cur.sequence, cur.start)) != cur {
			return false
		}
		cur = p
	}
	return cur == v.trie.root
}

// Remove deletes the node stored under the exact given key.
func (v NodeView[S, T]) Remove(query S) (removed T, ok bool) {
	if v.root == nil {
		return removed, false
	}
	return v.trie.removeAfter(v.root, query)
}

// RemoveNode removes the given node from the viewed trie if it belongs to
// it.
func (v NodeView[S, T]) RemoveNode(node *Node[S, T]) bool {
	if !v.ContainsNode(node) || !node.hasValue {
		return false
	}
	node.remove(v.trie.sequencer)
	return true
}

// All ranges over the nodes in depth-first order.
func (v NodeView[S, T]) All() iter.Seq[*Node[S, T]] {
	return func(yield func(*Node[S, T]) bool) {
		for it := newIterator(v.trie, v.root, v.all); ; {
			n, ok := it.Next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Iterator returns a stateful iterator over the view.
func (v NodeView[S, T]) Iterator() *Iterator[S, T] {
	return newIterator(v.trie, v.root, v.all)
}

// KeySet returns a view of every key in the trie.
func (t *Trie[S, T]) KeySet() KeyView[S, T] {
	return KeyView[S, T]{trie: t, root: t.root}
}

// SubKeySet returns a view of the keys in the subtree matching the query.
// The optional match argument overrides the trie's default match mode; a
// miss yields an empty view.
func (t *Trie[S, T]) SubKeySet(query S, match ...Match) KeyView[S, T] {
	return KeyView[S, T]{trie: t, root: t.search(t.root, query, t.match(match))}
}

// Values returns a view of every value in the trie.
func (t *Trie[S, T]) Values() ValueView[S, T] {
	return ValueView[S, T]{trie: t, root: t.root}
}

// SubValues returns a view of the values in the subtree matching the query.
func (t *Trie[S, T]) SubValues(query S, match ...Match) ValueView[S, T] {
	return ValueView[S, T]{trie: t, root: t.search(t.root, query, t.match(match))}
}

// EntrySet returns a view of every key-value pair in the trie.
func (t *Trie[S, T]) EntrySet() EntryView[S, T] {
	return EntryView[S, T]{trie: t, root: t.root}
}

// SubEntrySet returns a view of the pairs in the subtree matching the query.
func (t *Trie[S, T]) SubEntrySet(query S, match ...Match) EntryView[S, T] {
	return EntryView[S, T]{trie: t, root: t.search(t.root, query, t.match(match))}
}

// NodeSet returns a view of every valued node in the trie.
func (t *Trie[S, T]) NodeSet() NodeView[S, T] {
	return NodeView[S, T]{trie: t, root: t.root}
}

// SubNodeSet returns a view of the valued nodes in the subtree matching the
// query.
func (t *Trie[S, T]) SubNodeSet(query S, match ...Match) NodeView[S, T] {
	return NodeView[S, T]{trie: t, root: t.search(t.root, query, t.match(match))}
}

// NodeSetAll returns a view of every node in the trie except the root,
// naked branches included.
func (t *Trie[S, T]) NodeSetAll() NodeView[S, T] {
	return NodeView[S, T]{trie: t, root: t.root, all: true}
}

// SubNodeSetAll returns a view of every node in the subtree matching the
// query, naked branches included.
func (t *Trie[S, T]) SubNodeSetAll(query S, match ...Match) NodeView[S, T] {
	return NodeView[S, T]{trie: t, root: t.search(t.root, query, t.match(match)), all: true}
}
