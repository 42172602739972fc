package cosimgen

// synthesizer builds one random body instruction per call. It keeps no state
// of its own besides the shared rng; statistics are recorded as a side channel.
type synthesizer struct {
	r     *rng
	stats *Stats
}

func newSynthesizer(r *rng, stats *Stats) *synthesizer {
	return &synthesizer{r: r, stats: stats}
}

// next returns the instruction for one body slot, labeled with label.
func (s *synthesizer) next(label int) Instruction {
	var in Instruction
	if pointerUpdateDist.pick(s.r) {
		in = s.pointerUpdate()
	} else {
		switch kindDist.pick(s.r) {
		case instArithmetic:
			in = s.arithmetic()
		case instBranch:
			in = s.branch()
		default:
			in = s.memory()
		}
	}
	in.Label = label
	s.stats.record(in)
	return in
}

// pointerUpdate moves a computed pointer to base + k*64, k in [0, 16]. The
// offset never accumulates, which keeps every strand inside the data segment.
func (s *synthesizer) pointerUpdate() Instruction {
	class := pointerClassDist.pick(s.r)
	offset := s.r.between(0, maxPointerSteps) * pointerStep
	s.stats.pointerOffset(class, offset)
	return Instruction{
		Mnemonic: "add_i",
		Operands: []Operand{reg(class, ComputedPtrReg), reg(class, BasePtrReg), Immediate(offset)},
		Category: CatPointerUpdate,
	}
}

func (s *synthesizer) arithmetic() Instruction {
	f := formDist.pick(s.r)
	op := opcodeDist.pick(s.r)
	// All four registers are drawn regardless of form to keep the draw
	// sequence independent of which operands end up used.
	dest := allocate(s.r)
	srcA := allocate(s.r)
	srcB := allocate(s.r)
	mask := allocate(s.r)

	ops := make([]Operand, 0, 4)
	ops = append(ops, reg(classOf(f.Dest.Kind), dest))
	if f.Masked() {
		ops = append(ops, reg(Scalar, mask))
	}
	ops = append(ops, reg(classOf(f.SrcA), srcA))
	if f.SrcB == KindImmediate {
		ops = append(ops, Immediate(s.r.between(0, maxImmediate)))
	} else {
		ops = append(ops, reg(classOf(f.SrcB), srcB))
	}
	s.stats.form(f)
	return Instruction{
		Mnemonic: op + f.Dest.Mask.Suffix(),
		Operands: ops,
		Category: CatArithmetic,
	}
}

// branch only ever targets forward labels; the landing pads after the body
// catch whatever the body did not reach.
func (s *synthesizer) branch() Instruction {
	kind := branchDist.pick(s.r)
	var in Instruction
	in.Category = CatBranch
	switch kind {
	case branchGoto:
		in.Mnemonic = "goto"
	case branchTrue:
		in.Mnemonic = "btrue"
		in.Operands = append(in.Operands, reg(Scalar, allocate(s.r)))
	default:
		in.Mnemonic = "bfalse"
		in.Operands = append(in.Operands, reg(Scalar, allocate(s.r)))
	}
	in.Operands = append(in.Operands, LabelRef{N: int(s.r.between(1, labelCycle)), Dir: Forward})
	s.stats.branch(in.Mnemonic)
	return in
}

func (s *synthesizer) memory() Instruction {
	mode := addrModeDist.pick(s.r)
	ptr := pointerRegDist.pick(s.r)
	load := loadDist.pick(s.r)

	mnemonic := "store"
	if load {
		mnemonic = "load"
	}
	var data, base Register
	switch mode {
	case addrBlock:
		mnemonic += "_v"
		data, base = reg(Vector, allocate(s.r)), reg(Scalar, ptr)
	case addrScatterGather:
		if load {
			mnemonic += "_gath"
		} else {
			mnemonic += "_scat"
		}
		data, base = reg(Vector, allocate(s.r)), reg(Vector, ptr)
	default:
		mnemonic += "_32"
		data, base = reg(Scalar, allocate(s.r)), reg(Scalar, ptr)
	}
	s.stats.memory(mnemonic)
	return Instruction{
		Mnemonic: mnemonic,
		Operands: []Operand{data, Indirect{Ptr: base}},
		Category: CatMemory,
	}
}
