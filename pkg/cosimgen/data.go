package cosimgen

import (
	"strconv"
	"strings"
)

// emitDataSegment writes the scratch memory every strand reads and writes.
// The computed pointers reach at most base + 1024 plus one 64-byte vector, so
// the segment is far larger than the addressed window.
func emitDataSegment(b *strings.Builder, r *rng, words int) {
	b.WriteString(".align ")
	b.WriteString(strconv.Itoa(DataAlignment))
	b.WriteString("\ndata:")
	for i := 0; i < words; i++ {
		if i%wordsPerLine == 0 {
			b.WriteString("\n.long ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString("0x")
		b.WriteString(strconv.FormatUint(uint64(r.next32()), 16))
	}
	b.WriteByte('\n')
}
