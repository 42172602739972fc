package cosimgen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := newRNG(42), newRNG(42)
	for i := 0; i < 1000; i++ {
		require.Equal(t, a.upto(1000), b.upto(1000))
	}
	c := newRNG(43)
	same := true
	for i := 0; i < 16; i++ {
		if a.upto(1<<30) != c.upto(1<<30) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge")
}

func TestRNGBetween(t *testing.T) {
	r := newRNG(7)
	seen := map[uint32]bool{}
	for i := 0; i < 2000; i++ {
		v := r.between(2, 8)
		require.GreaterOrEqual(t, v, uint32(2))
		require.LessOrEqual(t, v, uint32(8))
		seen[v] = true
	}
	assert.Len(t, seen, 7)
	assert.Equal(t, uint32(0), r.upto(0))
}

func TestRNGTrace(t *testing.T) {
	var buf bytes.Buffer
	r := newRNG(5)
	r.traceTo(&buf, 5)
	r.upto(10)
	r.next32()
	require.NoError(t, r.flush())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "# seed=5", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "1 U 10 -> "))
	assert.True(t, strings.HasPrefix(lines[2], "2 W 4294967295 -> "))
}
