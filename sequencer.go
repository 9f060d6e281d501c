package radix

// Sequencer lets a Trie use keys of type S. A sequence is a finite ordered
// list of elements; the trie never touches elements directly and relies on
// the three operations below instead.
type Sequencer[S any] interface {
	// LengthOf returns the number of elements in seq.
	LengthOf(seq S) int

	// HashOf returns a non-negative hash of the element at index in seq.
	// The hash keys the dense child table of a node, so dense values waste
	// less space (character sequencers typically return the byte value).
	// Equal elements must hash equally; unequal elements may collide -
	// collisions are resolved by Matches.
	HashOf(seq S, index int) int

	// Matches counts the leading elements of a[ia..] and b[ib..] that are
	// equal, up to max. It is the only element-equality primitive the trie
	// trusts.
	Matches(a S, ia int, b S, ib int, max int) int
}

// StringSequencer treats a string as a sequence of bytes.
type StringSequencer struct{}

func (StringSequencer) LengthOf(seq string) int { return len(seq) }

func (StringSequencer) HashOf(seq string, index int) int { return int(seq[index]) }

func (StringSequencer) Matches(a string, ia int, b string, ib int, max int) int {
	for i := 0; i < max; i++ {
		if a[ia+i] != b[ib+i] {
			return i
		}
	}
	return max
}

// CaseInsensitiveStringSequencer treats a string as a sequence of bytes with
// ASCII letters compared case insensitively.
type CaseInsensitiveStringSequencer struct{}

func (CaseInsensitiveStringSequencer) LengthOf(seq string) int { return len(seq) }

func (CaseInsensitiveStringSequencer) HashOf(seq string, index int) int {
	return int(lowerASCII(seq[index]))
}

func (CaseInsensitiveStringSequencer) Matches(a string, ia int, b string, ib int, max int) int {
	for i := 0; i < max; i++ {
		if lowerASCII(a[ia+i]) != lowerASCII(b[ib+i]) {
			return i
		}
	}
	return max
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// BytesSequencer treats a []byte as a sequence of bytes. The trie keeps
// references to inserted slices; mutating a slice after insertion corrupts
// the structure.
type BytesSequencer struct{}

func (BytesSequencer) LengthOf(seq []byte) int { return len(seq) }

func (BytesSequencer) HashOf(seq []byte, index int) int { return int(seq[index]) }

func (BytesSequencer) Matches(a []byte, ia int, b []byte, ib int, max int) int {
	for i := 0; i < max; i++ {
		if a[ia+i] != b[ib+i] {
			return i
		}
	}
	return max
}

// RuneSequencer treats a []rune as a sequence of runes. The rune value is
// used as the element hash, so keys drawn from a compact alphabet keep the
// child tables dense.
type RuneSequencer struct{}

func (RuneSequencer) LengthOf(seq []rune) int { return len(seq) }

func (RuneSequencer) HashOf(seq []rune, index int) int { return int(seq[index]) }

func (RuneSequencer) Matches(a []rune, ia int, b []rune, ib int, max int) int {
	for i := 0; i < max; i++ {
		if a[ia+i] != b[ib+i] {
			return i
		}
	}
	return max
}
