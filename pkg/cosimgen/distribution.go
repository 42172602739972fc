package cosimgen

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

type outcome[T any] struct {
	name   string
	value  T
	weight uint32
}

// distribution is a named discrete decision table. pick consumes exactly one
// draw of upto(total), so a table of equal weights draws exactly like upto(n).
type distribution[T any] struct {
	name     string
	outcomes []outcome[T]
	total    uint32
}

func newDistribution[T any](name string, outcomes ...outcome[T]) *distribution[T] {
	d := &distribution[T]{name: name, outcomes: outcomes}
	for _, o := range outcomes {
		if o.weight == 0 {
			panic(fmt.Sprintf("distribution %s: zero weight for %s", name, o.name))
		}
		d.total += o.weight
	}
	return d
}

func uniform[T any](name string, values []T, label func(T) string) *distribution[T] {
	outcomes := make([]outcome[T], len(values))
	for i, v := range values {
		outcomes[i] = outcome[T]{name: label(v), value: v, weight: 1}
	}
	return newDistribution(name, outcomes...)
}

func (d *distribution[T]) pick(r *rng) T {
	x := r.upto(d.total)
	for _, o := range d.outcomes {
		if x < o.weight {
			return o.value
		}
		x -= o.weight
	}
	panic("unreachable: draw exceeds total weight of " + d.name)
}

func (d *distribution[T]) appendRows(t table.Writer) {
	for _, o := range d.outcomes {
		t.AppendRow(table.Row{d.name, o.name, o.weight, fmt.Sprintf("%d/%d", o.weight, d.total)})
	}
	t.AppendSeparator()
}

type instKind int

const (
	instArithmetic instKind = iota
	instBranch
	instMemory
)

type branchKind int

const (
	branchGoto branchKind = iota
	branchTrue
	branchFalse
)

type addrMode int

const (
	addrBlock addrMode = iota
	addrScatterGather
	addrScalar
)

// Decision tables, in the order the synthesizer consults them.
var (
	pointerUpdateDist = newDistribution("pointer-update",
		outcome[bool]{name: "update", value: true, weight: 1},
		outcome[bool]{name: "regular", value: false, weight: 7},
	)
	pointerClassDist = newDistribution("pointer-class",
		outcome[RegClass]{name: "scalar", value: Scalar, weight: 1},
		outcome[RegClass]{name: "vector", value: Vector, weight: 1},
	)
	kindDist = newDistribution("kind",
		outcome[instKind]{name: "arithmetic", value: instArithmetic, weight: 1},
		outcome[instKind]{name: "branch", value: instBranch, weight: 1},
		outcome[instKind]{name: "memory", value: instMemory, weight: 1},
	)
	formDist   = uniform("form", Forms, OperandForm.String)
	opcodeDist = uniform("opcode", BinaryOpcodes, func(s string) string { return s })
	branchDist = newDistribution("branch",
		outcome[branchKind]{name: "goto", value: branchGoto, weight: 1},
		outcome[branchKind]{name: "btrue", value: branchTrue, weight: 1},
		outcome[branchKind]{name: "bfalse", value: branchFalse, weight: 1},
	)
	addrModeDist = newDistribution("addressing",
		outcome[addrMode]{name: "block", value: addrBlock, weight: 1},
		outcome[addrMode]{name: "scatter-gather", value: addrScatterGather, weight: 1},
		outcome[addrMode]{name: "scalar", value: addrScalar, weight: 1},
	)
	pointerRegDist = newDistribution("pointer-reg",
		outcome[int]{name: "base", value: BasePtrReg, weight: 1},
		outcome[int]{name: "computed", value: ComputedPtrReg, weight: 1},
	)
	loadDist = newDistribution("direction",
		outcome[bool]{name: "store", value: false, weight: 1},
		outcome[bool]{name: "load", value: true, weight: 1},
	)
)

type tableRows interface {
	appendRows(t table.Writer)
}

// DistributionTable renders every decision table with its weights.
func DistributionTable() string {
	t := table.NewWriter()
	t.SetTitle("Decision tables")
	t.AppendHeader(table.Row{"Decision", "Outcome", "Weight", "P"})
	for _, d := range []tableRows{
		pointerUpdateDist, pointerClassDist, kindDist, formDist, opcodeDist,
		branchDist, addrModeDist, pointerRegDist, loadDist,
	} {
		d.appendRows(t)
	}
	return t.Render()
}
