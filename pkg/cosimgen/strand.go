package cosimgen

import (
	"fmt"
	"strings"
)

// bootstrap is shared by all strands. It starts the hardware threads, seeds
// the operation registers, loads the data pointers into s0/v0 (one 8-byte
// stride per vector lane), copies them into the computed pointers s1/v1, and
// jumps to the entry point of the current strand through branch_addrs.
const bootstrap = `
			.globl _start
_start:		move s1, 15
			setcr s1, 30	; start all threads

			; Initialize registers
			move s3, 4051
			move s4, s3
			move s5, s3
			xor s6, s5, s4
			move s7, s6
			move s8, 0
			move v2, 0
			move v3, s3
			move v4, s4
			move v5, s5
			move v6, s6
			move v7, s7
			move_mask v3, s7, v4
			move_mask v4, s6, v5
			move_mask v5, s5, v6
			move_mask v6, s4, v7
			move_mask v7, s3, v3
			move v8, 0

			; Load memory pointers
			load_32 s0, _data_ptr
			move v0, s0

			move s8, 1
			shl s8, s8, 16
			sub_i s8, s8, 1
	loop0: 	add_i_mask v0, s8, v0, 8
			shr s8, s8, 1
			btrue s8, loop0

			; Duplicate into computed register addresses
			move v1, v0
			move s1, s0

			; Compute initial code branch address
			getcr s2, 0
			shl s2, s2, 2
			lea s3, branch_addrs
			add_i s2, s2, s3
			load_32 s2, (s2)
			move pc, s2
_data_ptr:	.long data

`

func strandLabel(i int) string {
	return fmt.Sprintf("start_strand%d", i)
}

func branchTable(strands int) string {
	names := make([]string, strands)
	for i := range names {
		names[i] = strandLabel(i)
	}
	return "branch_addrs: .long " + strings.Join(names, ", ") + "\n\n"
}

// strandAssembler writes one strand at a time:
// entry label, body, landing pads, completion signal, padding, self-loop.
type strandAssembler struct {
	synth        *synthesizer
	instructions int
}

func (a *strandAssembler) emit(b *strings.Builder, index int) {
	b.WriteString(strandLabel(index))
	b.WriteString(":\n")

	labels := newLabelCounter()
	for i := 0; i < a.instructions; i++ {
		writeInstruction(b, a.synth.next(labels.next()))
	}
	for _, in := range terminationBlock() {
		writeInstruction(b, in)
	}
}

// terminationBlock parks a strand after its body: landing pads for every
// forward label, a drained strand-done write to control register 29, padding
// for the write to become visible, then a branch to itself.
func terminationBlock() []Instruction {
	block := landingPads()
	for i := 0; i < drainNops; i++ {
		block = append(block, nop(0))
	}
	block = append(block, Instruction{
		Mnemonic: "setcr",
		Operands: []Operand{reg(Scalar, BasePtrReg), Immediate(strandDoneCR)},
		Category: CatControl,
	})
	for i := 0; i < paddingNops; i++ {
		block = append(block, nop(0))
	}
	block = append(block, Instruction{
		Label:    1,
		Mnemonic: "goto",
		Operands: []Operand{LabelRef{N: 1, Dir: Backward}},
		Category: CatControl,
	})
	return block
}

func writeInstruction(b *strings.Builder, in Instruction) {
	b.WriteString(in.String())
	b.WriteByte('\n')
}
