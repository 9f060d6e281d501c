package radix

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringSequencer(t *testing.T) {
	t.Parallel()

	var seq StringSequencer

	assert.Equal(t, 0, seq.LengthOf(""))
	assert.Equal(t, 5, seq.LengthOf("hello"))
	assert.Equal(t, int('h'), seq.HashOf("hello", 0))
	assert.Equal(t, int('o'), seq.HashOf("hello", 4))

	for _, tcase := range []*struct {
		A, B   string
		IA, IB int
		Max    int
		Exp    int
	}{
		{"hello", "hello", 0, 0, 5, 5},
		{"hello", "help", 0, 0, 4, 3},
		{"hello", "yellow", 1, 1, 4, 4},
		{"hello", "world", 0, 0, 0, 0},
		{"abc", "xbc", 1, 1, 2, 2},
	} {
		var (
			tcase = tcase
			name  = fmt.Sprintf("%#v,%#v", tcase.A, tcase.B)
		)

		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tcase.Exp, seq.Matches(tcase.A, tcase.IA, tcase.B, tcase.IB, tcase.Max))
		})
	}
}

func TestCaseInsensitiveStringSequencer(t *testing.T) {
	t.Parallel()

	var seq CaseInsensitiveStringSequencer

	assert.Equal(t, seq.HashOf("HELLO", 0), seq.HashOf("hello", 0))
	assert.Equal(t, int('h'), seq.HashOf("HELLO", 0))
	assert.Equal(t, int('1'), seq.HashOf("123", 0)) // non-letters pass through

	assert.Equal(t, 5, seq.Matches("HELLO", 0, "hello", 0, 5))
	assert.Equal(t, 3, seq.Matches("HELp", 0, "helLO", 0, 4))
}

func TestBytesSequencer(t *testing.T) {
	t.Parallel()

	var seq BytesSequencer

	assert.Equal(t, 3, seq.LengthOf([]byte{1, 2, 3}))
	assert.Equal(t, 255, seq.HashOf([]byte{255}, 0))
	assert.Equal(t, 2, seq.Matches([]byte{1, 2, 3}, 0, []byte{1, 2, 4}, 0, 3))
}

func TestRuneSequencer(t *testing.T) {
	t.Parallel()

	var seq RuneSequencer

	assert.Equal(t, 6, seq.LengthOf([]rune("привет")))
	assert.Equal(t, int('п'), seq.HashOf([]rune("привет"), 0))
	assert.Equal(t, 3, seq.Matches([]rune("привет"), 0, []rune("природа"), 0, 6))
}
