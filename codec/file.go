package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Logical section names the image writer uses; SectionTag turns each
// into the fixed-width on-disk tag.
const (
	SectionValue   = "value"
	SectionKey     = "key"
	SectionTokens  = "tokens"
	SectionFreqPos = "freq_pos"
)

const tagSize = 8

// SectionTag pads or truncates a logical name into the fixed-width tag
// written ahead of each section, so the container format is self
// describing without needing a separate table of contents.
func SectionTag(name string) [tagSize]byte {
	var tag [tagSize]byte
	copy(tag[:], name)
	return tag
}

// Section is one named, already-encoded byte string ready to be written
// by WriteSections.
type Section struct {
	Name string
	Data []byte
}

// WriteSections writes each section as a fixed-width tag, a little-endian
// uint64 length, then the raw bytes, in the order given.
func WriteSections(w io.Writer, sections []Section) error {
	for _, s := range sections {
		tag := SectionTag(s.Name)
		if _, err := w.Write(tag[:]); err != nil {
			return fmt.Errorf("codec: write section %q tag: %w", s.Name, err)
		}
		if err := binary.Write(w, binary.LittleEndian, uint64(len(s.Data))); err != nil {
			return fmt.Errorf("codec: write section %q length: %w", s.Name, err)
		}
		if _, err := w.Write(s.Data); err != nil {
			return fmt.Errorf("codec: write section %q data: %w", s.Name, err)
		}
	}
	return nil
}

// ReadSections reverses WriteSections. It is used by cmd/printdic and by
// tests to verify the round-trip property; the builder itself never
// reads its own output.
func ReadSections(r io.Reader) ([]Section, error) {
	var sections []Section
	for {
		var tagBytes [tagSize]byte
		_, err := io.ReadFull(r, tagBytes[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("codec: read section tag: %w", err)
		}

		var length uint64
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return nil, fmt.Errorf("codec: read section length: %w", err)
		}

		data := make([]byte, length)
		if _, err := io.ReadFull(r, data); err != nil {
			return nil, fmt.Errorf("codec: read section data: %w", err)
		}

		name := string(bytes.TrimRight(tagBytes[:], "\x00"))
		sections = append(sections, Section{Name: name, Data: data})
	}
	return sections, nil
}
