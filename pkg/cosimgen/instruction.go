package cosimgen

import (
	"strconv"
	"strings"
)

// Operand is one rendered operand of an instruction.
type Operand interface {
	operand() string
}

func (r Register) operand() string { return r.String() }

// Immediate is an unsigned literal operand.
type Immediate uint32

func (i Immediate) operand() string { return strconv.FormatUint(uint64(i), 10) }

// Indirect is a memory operand addressed through a pointer register.
type Indirect struct {
	Ptr Register
}

func (m Indirect) operand() string { return "(" + m.Ptr.String() + ")" }

// Direction tells the assembler which way to search for a local label.
type Direction byte

const (
	Forward  Direction = 'f'
	Backward Direction = 'b'
)

// LabelRef targets the nearest local label N in the given direction.
type LabelRef struct {
	N   int
	Dir Direction
}

func (l LabelRef) operand() string { return strconv.Itoa(l.N) + string(rune(l.Dir)) }

// Category groups instructions for invariants and statistics.
type Category int

const (
	CatPointerUpdate Category = iota
	CatArithmetic
	CatBranch
	CatMemory
	CatControl
)

func (c Category) String() string {
	switch c {
	case CatPointerUpdate:
		return "pointer-update"
	case CatArithmetic:
		return "arithmetic"
	case CatBranch:
		return "branch"
	case CatMemory:
		return "memory"
	default:
		return "control"
	}
}

// Instruction is one emitted line. Label 0 means the line carries no local label.
type Instruction struct {
	Label    int
	Mnemonic string
	Operands []Operand
	Category Category
}

func (in Instruction) String() string {
	var b strings.Builder
	if in.Label > 0 {
		b.WriteString(strconv.Itoa(in.Label))
		b.WriteByte(':')
	}
	b.WriteString("\t\t")
	b.WriteString(in.Mnemonic)
	for i, op := range in.Operands {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(op.operand())
	}
	return b.String()
}

// Registers lists the register operands, including memory pointers.
func (in Instruction) Registers() []Register {
	var regs []Register
	for _, op := range in.Operands {
		switch o := op.(type) {
		case Register:
			regs = append(regs, o)
		case Indirect:
			regs = append(regs, o.Ptr)
		}
	}
	return regs
}

func nop(label int) Instruction {
	return Instruction{Label: label, Mnemonic: "nop", Category: CatControl}
}
