package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildMap(t *testing.T) {
	t.Parallel()

	var (
		a = &Node[string, int]{sequence: "a"}
		b = &Node[string, int]{sequence: "b"}
		c = &Node[string, int]{sequence: "c"}
	)

	m := newChildMap(int('b'), b)

	assert.Equal(t, 1, m.size())
	assert.Equal(t, int('b')+1, m.capacity())
	assert.Same(t, b, m.get(int('b')))
	assert.Nil(t, m.get(int('a')))
	assert.Nil(t, m.get(-1))
	assert.Nil(t, m.get(m.capacity()))

	m.put(int('a'), a)
	m.put(int('c'), c)

	assert.Equal(t, 3, m.size())
	assert.Equal(t, int('c')+1, m.capacity())
	assert.Same(t, a, m.first())

	m.remove(int('a'))

	assert.Equal(t, 2, m.size())
	assert.Nil(t, m.get(int('a')))
	assert.Same(t, b, m.first())

	// capacity never shrinks
	assert.Equal(t, int('c')+1, m.capacity())

	m.remove(-1)
	m.remove(m.capacity())

	assert.Equal(t, 2, m.size())

	m.clear()

	assert.Equal(t, 0, m.size())
	assert.Nil(t, m.first())
	assert.Equal(t, int('c')+1, m.capacity())
}

func TestChildMap_ValueAt(t *testing.T) {
	t.Parallel()

	var (
		a = &Node[string, int]{sequence: "a"}
		z = &Node[string, int]{sequence: "z"}
	)

	m := newChildMap(int('z'), z)
	m.put(int('a'), a)

	var nodes []*Node[string, int]
	for i := 0; i < m.capacity(); i++ {
		if n := m.valueAt(i); n != nil {
			nodes = append(nodes, n)
		}
	}

	require.Len(t, nodes, 2)
	assert.Same(t, a, nodes[0]) // slot order follows the element hash
	assert.Same(t, z, nodes[1])
}

func TestChildMap_WideHash(t *testing.T) {
	t.Parallel()

	// force a second occupancy word
	n := &Node[string, int]{}
	m := newChildMap(200, n)

	assert.Equal(t, 1, m.size())
	assert.Equal(t, 201, m.capacity())
	assert.Same(t, n, m.get(200))
	assert.Same(t, n, m.first())
}
