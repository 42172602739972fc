package cosimgen

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Stats summarizes what a run emitted. A nil *Stats ignores all records.
type Stats struct {
	Seed         uint64
	Strands      int
	Instructions int
	DataWords    int

	ByCategory map[Category]int
	Forms      map[string]int
	Branches   map[string]int
	Memory     map[string]int

	// MaxPointerOffset is the largest computed-pointer offset seen per class.
	MaxPointerOffset map[RegClass]uint32
}

func newStats(seed uint64) *Stats {
	return &Stats{
		Seed:             seed,
		ByCategory:       map[Category]int{},
		Forms:            map[string]int{},
		Branches:         map[string]int{},
		Memory:           map[string]int{},
		MaxPointerOffset: map[RegClass]uint32{},
	}
}

func (s *Stats) record(in Instruction) {
	if s == nil {
		return
	}
	s.Instructions++
	s.ByCategory[in.Category]++
}

func (s *Stats) pointerOffset(c RegClass, off uint32) {
	if s == nil {
		return
	}
	if off > s.MaxPointerOffset[c] {
		s.MaxPointerOffset[c] = off
	}
}

func (s *Stats) form(f OperandForm) {
	if s == nil {
		return
	}
	s.Forms[f.String()]++
}

func (s *Stats) branch(mnemonic string) {
	if s == nil {
		return
	}
	s.Branches[mnemonic]++
}

func (s *Stats) memory(mnemonic string) {
	if s == nil {
		return
	}
	s.Memory[mnemonic]++
}

// Table renders the summary for humans.
func (s *Stats) Table() string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Generation summary (seed %d)", s.Seed))
	t.AppendHeader(table.Row{"Group", "Item", "Count"})
	t.AppendRow(table.Row{"program", "strands", s.Strands})
	t.AppendRow(table.Row{"program", "body instructions", s.Instructions})
	t.AppendRow(table.Row{"program", "data words", s.DataWords})
	t.AppendSeparator()
	for c := CatPointerUpdate; c <= CatMemory; c++ {
		t.AppendRow(table.Row{"category", c.String(), s.ByCategory[c]})
	}
	t.AppendSeparator()
	appendCounts(t, "form", s.Forms)
	appendCounts(t, "branch", s.Branches)
	appendCounts(t, "memory", s.Memory)
	t.AppendRow(table.Row{"pointer", "max scalar offset", s.MaxPointerOffset[Scalar]})
	t.AppendRow(table.Row{"pointer", "max vector offset", s.MaxPointerOffset[Vector]})
	return t.Render()
}

func appendCounts(t table.Writer, group string, counts map[string]int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.AppendRow(table.Row{group, k, counts[k]})
	}
	t.AppendSeparator()
}
