package cosimgen

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Program shape constants. These describe the target machine and the layout of
// the bootstrap block, so they are not configurable.
const (
	DefaultInstructions = 0x8000

	StrandCount   = 4
	DataWords     = 4096
	DataAlignment = 64

	pointerStep     = 64
	maxPointerSteps = 16
	maxImmediate    = 0x1ff
	labelCycle      = 6
	drainNops       = 2
	paddingNops     = 8
	wordsPerLine    = 8
	strandDoneCR    = 29
)

// ErrInvalidConfig is returned (wrapped) for options that cannot produce a program.
var ErrInvalidConfig = errors.New("invalid configuration")

// Options is the API-level configuration for a generation run.
type Options struct {
	Seed uint64

	// Instructions is the number of synthesized instructions per strand body.
	Instructions int

	// Output
	OutputPath string
	// GeneratorName is written into the leading comment line.
	GeneratorName string

	// Diagnostics
	Stats             bool
	DumpDistributions bool
	// Trace receives one line per random draw when non-nil. The caller
	// owns it; Generate only flushes what it buffered.
	Trace io.Writer
}

func Defaults() Options {
	return Options{
		Instructions:      DefaultInstructions,
		OutputPath:        "",
		GeneratorName:     "cosimgen",
		Stats:             false,
		DumpDistributions: false,
		Trace:             nil,
	}
}

func (o Options) Validate() error {
	if o.Instructions <= 0 {
		return fmt.Errorf("%w: instructions must be positive, got %d", ErrInvalidConfig, o.Instructions)
	}
	if strings.ContainsAny(o.GeneratorName, "\r\n") {
		return fmt.Errorf("%w: generator name must be a single line", ErrInvalidConfig)
	}
	return nil
}

func (o Options) normalize() Options {
	if strings.TrimSpace(o.GeneratorName) == "" {
		o.GeneratorName = "cosimgen"
	}
	return o
}
