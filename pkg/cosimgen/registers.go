package cosimgen

import "fmt"

// RegClass is the register file a register belongs to.
type RegClass int

const (
	Scalar RegClass = iota
	Vector
)

func (c RegClass) letter() string {
	if c == Vector {
		return "v"
	}
	return "s"
}

// Register ids 0 and 1 of each class hold the base and computed data pointers.
// Operation registers come from [firstFreeReg, lastFreeReg].
const (
	BasePtrReg     = 0
	ComputedPtrReg = 1
	firstFreeReg   = 2
	lastFreeReg    = 8
)

type Register struct {
	Class RegClass
	ID    int
}

func (r Register) String() string {
	return fmt.Sprintf("%s%d", r.Class.letter(), r.ID)
}

func (r Register) IsPointer() bool {
	return r.ID == BasePtrReg || r.ID == ComputedPtrReg
}

func reg(c RegClass, id int) Register { return Register{Class: c, ID: id} }

// allocate draws an operation register id. Pointer registers are never
// returned; there is no liveness tracking, so reuse is expected.
func allocate(r *rng) int {
	return int(r.between(firstFreeReg, lastFreeReg))
}

func classOf(k OperandKind) RegClass {
	if k == KindVector {
		return Vector
	}
	return Scalar
}
