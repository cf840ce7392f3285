package codec

import (
	"bytes"
	"testing"
)

func TestWriteReadSectionsRoundTrip(t *testing.T) {
	sections := []Section{
		{Name: SectionValue, Data: []byte("value-bytes")},
		{Name: SectionKey, Data: []byte("key-bytes")},
		{Name: SectionTokens, Data: []byte("tokens-bytes")},
		{Name: SectionFreqPos, Data: make([]byte, 256*4)},
	}

	var buf bytes.Buffer
	if err := WriteSections(&buf, sections); err != nil {
		t.Fatalf("WriteSections: %v", err)
	}

	got, err := ReadSections(&buf)
	if err != nil {
		t.Fatalf("ReadSections: %v", err)
	}
	if len(got) != len(sections) {
		t.Fatalf("got %d sections, want %d", len(got), len(sections))
	}
	for i, s := range sections {
		if got[i].Name != s.Name {
			t.Errorf("section %d: name = %q, want %q", i, got[i].Name, s.Name)
		}
		if !bytes.Equal(got[i].Data, s.Data) {
			t.Errorf("section %d: data mismatch", i)
		}
	}
}
