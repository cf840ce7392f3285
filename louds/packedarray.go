package louds

import (
	"bytes"
	"encoding/binary"
)

// PackedArray is a rank-addressable sequence of variable-length byte
// entries: Add appends entries in order, Build finalizes the structure,
// and Image is the byte encoding written out as the token-array section.
//
// Internally it is a single concatenated byte buffer plus a parallel bit
// vector with one bit per byte, set wherever an entry starts. That bit
// vector's rank lets the (out-of-scope) runtime recover the byte offset
// of the i-th entry without storing an explicit offset table — the same
// rank-on-a-bit-vector trick bitVector provides for the DAWG
// builder's intersection table, repurposed here for entry addressing
// rather than node deduplication.
//
// Add requires non-empty entries: the token codec always emits at least
// one flags byte per token list, and the termination entry is a single
// byte, so this is never a real constraint in practice.
type PackedArray struct {
	buf   bytes.Buffer
	bits  *bitVector
	n     int
	built bool
}

func NewPackedArray() *PackedArray {
	return &PackedArray{bits: newBitVector()}
}

func (p *PackedArray) Add(entry []byte) {
	start := p.buf.Len()
	for range entry {
		p.bits.extend()
	}
	p.bits.set(start, true)
	p.buf.Write(entry)
	p.n++
}

func (p *PackedArray) Build() {
	p.bits.build()
	p.built = true
}

// Image lays out, in order: the entry count, the byte length of the
// packed data, the bit-vector words, then the packed data itself.
func (p *PackedArray) Image() []byte {
	data := p.buf.Bytes()
	out := bytes.NewBuffer(make([]byte, 0, 8+len(p.bits.units)*4+len(data)))
	_ = binary.Write(out, binary.LittleEndian, uint32(p.n))
	_ = binary.Write(out, binary.LittleEndian, uint32(len(data)))
	for _, u := range p.bits.units {
		_ = binary.Write(out, binary.LittleEndian, u)
	}
	out.Write(data)
	return out.Bytes()
}
