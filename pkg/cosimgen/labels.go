package cosimgen

// labelCounter hands out local label numbers in [1, labelCycle]. Every body
// instruction takes the next one, so any forward target in that range is at
// most one cycle away.
type labelCounter struct {
	idx int
}

// newLabelCounter starts a strand body. The first instruction is labeled 2.
func newLabelCounter() *labelCounter {
	return &labelCounter{idx: 1}
}

func (l *labelCounter) next() int {
	n := l.idx + 1
	l.idx = n % labelCycle
	return n
}

// landingPads returns one nop per label value so every pending forward
// branch has a target before the strand's completion sequence.
func landingPads() []Instruction {
	pads := make([]Instruction, labelCycle)
	for i := range pads {
		pads[i] = nop(i + 1)
	}
	return pads
}
