package cosimgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelCounterCycles(t *testing.T) {
	l := newLabelCounter()
	var got []int
	for i := 0; i < 13; i++ {
		got = append(got, l.next())
	}
	assert.Equal(t, []int{2, 3, 4, 5, 6, 1, 2, 3, 4, 5, 6, 1, 2}, got)
}

func TestLandingPadsCoverEveryLabel(t *testing.T) {
	pads := landingPads()
	assert.Len(t, pads, labelCycle)
	for i, p := range pads {
		assert.Equal(t, i+1, p.Label)
		assert.Equal(t, "nop", p.Mnemonic)
	}
}
