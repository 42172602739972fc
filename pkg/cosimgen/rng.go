package cosimgen

import (
	"bufio"
	"fmt"
	"io"
)

const (
	lcgA    uint64 = 0x5DEECE66D
	lcgC    uint64 = 0xB
	lcgMask uint64 = (1 << 48) - 1
)

// rng follows the srand48/lrand48 recurrence. One instance is owned by a
// generation run and every draw goes through it, in program order.
type rng struct {
	state    uint64
	trace    *bufio.Writer
	tracePos uint64
}

func newRNG(seed uint64) *rng {
	// srand48 semantics.
	return &rng{state: ((seed << 16) + 0x330E) & lcgMask}
}

// traceTo records every subsequent draw on w. Call flush before discarding w.
func (r *rng) traceTo(w io.Writer, seed uint64) {
	r.trace = bufio.NewWriter(w)
	_, _ = fmt.Fprintf(r.trace, "# seed=%d\n", seed)
}

func (r *rng) flush() error {
	if r.trace == nil {
		return nil
	}
	return r.trace.Flush()
}

func (r *rng) next31() uint32 {
	r.state = (lcgA*r.state + lcgC) & lcgMask
	return uint32(r.state >> 17)
}

// next32 returns the full upper 32 bits of the next state (mrand48 width).
func (r *rng) next32() uint32 {
	r.state = (lcgA*r.state + lcgC) & lcgMask
	x := uint32(r.state >> 16)
	r.traceDraw("W", 1<<32-1, x)
	return x
}

func (r *rng) upto(n uint32) uint32 {
	if n == 0 {
		return 0
	}
	x := r.next31() % n
	r.traceDraw("U", uint64(n), x)
	return x
}

// between returns a value in the closed range [lo, hi].
func (r *rng) between(lo, hi uint32) uint32 {
	return lo + r.upto(hi-lo+1)
}

func (r *rng) traceDraw(kind string, n uint64, x uint32) {
	if r.trace == nil {
		return
	}
	r.tracePos++
	_, _ = fmt.Fprintf(r.trace, "%d %s %d -> %d\n", r.tracePos, kind, n, x)
}
