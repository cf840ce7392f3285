package dictionary

import "testing"

func TestHeaderRoundTrip(t *testing.T) {
	h := NewHeader(SystemDictVersion, 1700000000, "built for testing")
	b, err := h.ToBytes()
	if err != nil {
		t.Fatalf("ToBytes: %v", err)
	}
	if len(b) != HeaderStorageSize {
		t.Fatalf("len(b) = %d, want %d", len(b), HeaderStorageSize)
	}

	got, err := ParseHeader(b)
	if err != nil {
		t.Fatalf("ParseHeader: %v", err)
	}
	if got.Version != h.Version || got.CreateTime != h.CreateTime || got.Description != h.Description {
		t.Fatalf("ParseHeader = %+v, want %+v", got, h)
	}
}

func TestParseHeaderRejectsTruncatedInput(t *testing.T) {
	if _, err := ParseHeader(make([]byte, 4)); err == nil {
		t.Fatal("ParseHeader on truncated input succeeded, want error")
	}
}

func TestHeaderRejectsOverlongDescription(t *testing.T) {
	h := NewHeader(SystemDictVersion, 0, string(make([]byte, DescriptionSize+1)))
	if _, err := h.ToBytes(); err == nil {
		t.Fatal("ToBytes with overlong description succeeded, want error")
	}
}
