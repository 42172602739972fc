package cosimgen

import (
	"fmt"
	"log/slog"
	"strings"
)

// defaultProgramGenerator runs the fixed pipeline:
// initialize -> outputHeader -> generateStrands -> outputData.
// Every random draw comes from g.r in that order.
type defaultProgramGenerator struct {
	opts  Options
	r     *rng
	stats *Stats
	b     strings.Builder
}

func newDefaultProgramGenerator(opts Options) *defaultProgramGenerator {
	return &defaultProgramGenerator{opts: opts}
}

func (g *defaultProgramGenerator) initialize() error {
	g.r = newRNG(g.opts.Seed)
	g.stats = newStats(g.opts.Seed)
	if g.opts.Trace != nil {
		g.r.traceTo(g.opts.Trace, g.opts.Seed)
	}
	return nil
}

func (g *defaultProgramGenerator) outputHeader() {
	g.b.WriteString("# This file auto-generated by ")
	g.b.WriteString(g.opts.GeneratorName)
	g.b.WriteByte('\n')
	g.b.WriteString(bootstrap)
	g.b.WriteString(branchTable(StrandCount))
}

func (g *defaultProgramGenerator) generateStrands() {
	asm := &strandAssembler{
		synth:        newSynthesizer(g.r, g.stats),
		instructions: g.opts.Instructions,
	}
	for i := 0; i < StrandCount; i++ {
		asm.emit(&g.b, i)
		slog.Debug("strand emitted", "strand", i, "instructions", g.opts.Instructions)
	}
	g.stats.Strands = StrandCount
}

func (g *defaultProgramGenerator) outputData() {
	emitDataSegment(&g.b, g.r, DataWords)
	g.stats.DataWords = DataWords
}

func (g *defaultProgramGenerator) finish() error {
	if err := g.r.flush(); err != nil {
		return fmt.Errorf("write rng trace: %w", err)
	}
	return nil
}

func (g *defaultProgramGenerator) goGenerator() (Result, error) {
	if err := g.initialize(); err != nil {
		return Result{}, err
	}
	g.outputHeader()
	g.generateStrands()
	g.outputData()
	if err := g.finish(); err != nil {
		return Result{}, err
	}
	return Result{Program: g.b.String(), Stats: g.stats}, nil
}
