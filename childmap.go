package radix

import (
	"math/bits"

	"github.com/hideo55/go-popcount"
)

// childMap is a direct-indexed map from an element hash to a child node.
// Slot h holds the child whose label starts with an element hashing to h, so
// a lookup is a single bounds check. Occupancy is mirrored in a bitmap and
// size is a popcount over it. Positional enumeration via valueAt follows the
// slot order, which is stable between mutations.
type childMap[S, T any] struct {
	nodes []*Node[S, T]
	words []uint64
}

func newChildMap[S, T any](hash int, child *Node[S, T]) *childMap[S, T] {
	m := &childMap[S, T]{}
	m.put(hash, child)
	return m
}

func (m *childMap[S, T]) get(hash int) *Node[S, T] {
	if hash < 0 || hash >= len(m.nodes) {
		return nil
	}
	return m.nodes[hash]
}

func (m *childMap[S, T]) put(hash int, child *Node[S, T]) {
	if hash >= len(m.nodes) {
		nodes := make([]*Node[S, T], hash+1)
		copy(nodes, m.nodes)
		m.nodes = nodes

		words := make([]uint64, hash>>6+1)
		copy(words, m.words)
		m.words = words
	}
	m.nodes[hash] = child
	m.words[hash>>6] |= 1 << (uint(hash) & 63)
}

func (m *childMap[S, T]) remove(hash int) {
	if hash < 0 || hash >= len(m.nodes) {
		return
	}
	m.nodes[hash] = nil
	m.words[hash>>6] &^= 1 << (uint(hash) & 63)
}

func (m *childMap[S, T]) size() int {
	return int(popcount.CountSlice64(m.words))
}

// capacity is 1 + the greatest hash ever inserted. It never shrinks, so
// iterator position arrays stay valid across removals.
func (m *childMap[S, T]) capacity() int { return len(m.nodes) }

func (m *childMap[S, T]) valueAt(i int) *Node[S, T] { return m.nodes[i] }

// first returns the occupied slot with the lowest hash, or nil.
func (m *childMap[S, T]) first() *Node[S, T] {
	for i, w := range m.words {
		if w != 0 {
			return m.nodes[i<<6|bits.TrailingZeros64(w)]
		}
	}
	return nil
}

func (m *childMap[S, T]) clear() {
	for i := range m.nodes {
		m.nodes[i] = nil
	}
	for i := range m.words {
		m.words[i] = 0
	}
}
