// Package radix implements a generic compact (radix) trie that maps
// variable-length sequences to arbitrary values.
//
// The trie is generic in two dimensions: the key type S and the value type T.
// The core never inspects sequence elements itself - all interrogation goes
// through a Sequencer, which measures length, hashes single elements and
// counts leading matches between two sequence windows. Ready-made sequencers
// exist for string, []byte and []rune keys.
//
// Node layout:
// -----------
//
// Every node represents one edge label, a window [start,end) into some full
// key sequence. Chains of single-child nodes are collapsed into one node with
// a multi-element label, so a node either carries a value, or branches into
// two or more children, or both:
//
//	            ,-- [lo]  ("hello" -> 1)
//	[hel] ----+
//	            `-- [p]   ("help"  -> 2)
//
// The [hel] node above is naked - it exists only because two keys diverge
// there. Naked nodes always have at least two children; a naked node left
// with a single child after a removal is merged into that child.
//
// Children are kept in a dense direct-indexed table keyed by the hash of the
// first element of each child's label. Traversal order of iterators follows
// the stable slot order of that table - it is neither lexicographic nor
// insertion order.
//
// Match modes:
// -----------
//
//   - Exact       - the stored key must equal the query element for element.
//   - StartsWith  - at least one stored key starts with the query.
//   - Partial     - StartsWith, plus queries that run past their deepest
//     match (the returned node's label is then a prefix of the query).
//   - Subtree     - StartsWith, intended for whole-subtree enumeration.
//
// Key sets, value collections, entry sets and node sets - over the whole trie
// or any subtree - are live views: removals through a view mutate the owning
// trie.
//
// A Trie is not safe for concurrent use. Concurrent readers are fine as long
// as there is no writer; any mutation needs exclusive access.
package radix
