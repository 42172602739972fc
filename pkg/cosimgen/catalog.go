package cosimgen

// OperandKind is the class of a single arithmetic operand.
type OperandKind int

const (
	KindScalar OperandKind = iota
	KindVector
	KindImmediate
)

func (k OperandKind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindImmediate:
		return "immediate"
	default:
		return "unknown"
	}
}

// MaskVariant selects predicated execution for vector forms.
type MaskVariant int

const (
	MaskNone MaskVariant = iota
	MaskPlain
	MaskInverted
)

// Suffix is appended to the opcode name to form the mnemonic.
func (m MaskVariant) Suffix() string {
	switch m {
	case MaskPlain:
		return "_mask"
	case MaskInverted:
		return "_invmask"
	default:
		return ""
	}
}

func (m MaskVariant) String() string {
	switch m {
	case MaskPlain:
		return "mask"
	case MaskInverted:
		return "invmask"
	default:
		return "none"
	}
}

// OperandForm is a legal (dest, srcA, srcB, mask) combination for a binary op.
// Dest is never KindImmediate.
type OperandForm struct {
	Dest MaskedDest
	SrcA OperandKind
	SrcB OperandKind
}

// MaskedDest pairs the destination kind with its predication mode, since the
// mask operand is rendered right after the destination.
type MaskedDest struct {
	Kind OperandKind
	Mask MaskVariant
}

func (f OperandForm) Masked() bool { return f.Dest.Mask != MaskNone }

func (f OperandForm) String() string {
	return kindLetter(f.Dest.Kind) + kindLetter(f.SrcA) + kindLetter(f.SrcB) + f.Dest.Mask.Suffix()
}

func kindLetter(k OperandKind) string {
	switch k {
	case KindScalar:
		return "s"
	case KindVector:
		return "v"
	default:
		return "i"
	}
}

func form(d, a, b OperandKind, m MaskVariant) OperandForm {
	return OperandForm{Dest: MaskedDest{Kind: d, Mask: m}, SrcA: a, SrcB: b}
}

// Forms is the closed catalog of arithmetic operand forms. Order matters: the
// synthesizer picks by index.
var Forms = []OperandForm{
	form(KindScalar, KindScalar, KindScalar, MaskNone),
	form(KindVector, KindVector, KindScalar, MaskNone),
	form(KindVector, KindVector, KindScalar, MaskPlain),
	form(KindVector, KindVector, KindScalar, MaskInverted),
	form(KindVector, KindVector, KindVector, MaskNone),
	form(KindVector, KindVector, KindVector, MaskPlain),
	form(KindVector, KindVector, KindVector, MaskInverted),
	form(KindScalar, KindScalar, KindImmediate, MaskNone),
	form(KindVector, KindVector, KindImmediate, MaskNone),
	form(KindVector, KindVector, KindImmediate, MaskPlain),
	form(KindVector, KindVector, KindImmediate, MaskInverted),
	form(KindVector, KindScalar, KindImmediate, MaskNone),
	form(KindVector, KindScalar, KindImmediate, MaskPlain),
	form(KindVector, KindScalar, KindImmediate, MaskInverted),
}

// BinaryOpcodes covers the logical, integer arithmetic and shift families.
var BinaryOpcodes = []string{
	"or",
	"and",
	"xor",
	"add_i",
	"sub_i",
	"ashr",
	"shr",
	"shl",
}
