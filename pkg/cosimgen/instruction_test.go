package cosimgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionString(t *testing.T) {
	cases := []struct {
		in   Instruction
		want string
	}{
		{
			Instruction{Label: 3, Mnemonic: "add_i_mask", Operands: []Operand{reg(Vector, 2), reg(Scalar, 5), reg(Vector, 7), Immediate(17)}},
			"3:\t\tadd_i_mask v2, s5, v7, 17",
		},
		{
			Instruction{Label: 6, Mnemonic: "btrue", Operands: []Operand{reg(Scalar, 4), LabelRef{N: 2, Dir: Forward}}},
			"6:\t\tbtrue s4, 2f",
		},
		{
			Instruction{Label: 1, Mnemonic: "load_gath", Operands: []Operand{reg(Vector, 8), Indirect{Ptr: reg(Vector, 1)}}},
			"1:\t\tload_gath v8, (v1)",
		},
		{nop(0), "\t\tnop"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.in.String())
	}
}

func TestInstructionRegisters(t *testing.T) {
	in := Instruction{Mnemonic: "store_32", Operands: []Operand{reg(Scalar, 3), Indirect{Ptr: reg(Scalar, 0)}}}
	assert.Equal(t, []Register{reg(Scalar, 3), reg(Scalar, 0)}, in.Registers())
	assert.True(t, reg(Vector, 1).IsPointer())
	assert.False(t, reg(Vector, 2).IsPointer())
}

func TestFormsCatalog(t *testing.T) {
	assert.Len(t, Forms, 14)
	for _, f := range Forms {
		assert.NotEqual(t, KindImmediate, f.Dest.Kind, f.String())
		assert.NotEqual(t, KindImmediate, f.SrcA, f.String())
	}
	assert.Equal(t, "vsi_mask", Forms[12].String())
}
