package dictionary

import (
	"encoding/binary"
	"testing"

	"github.com/kuromoji-go/sysdicbuilder/codec"
	"github.com/kuromoji-go/sysdicbuilder/louds"
)

// TestBuildRoundTripWithRealCollaborators runs the full pipeline with the
// actual louds trie and packed-array builders, not the fakes the other
// builder tests use, and checks that what comes out the other end is
// internally consistent: every key gets exactly one token-array entry,
// the right number of them, and decoding every entry recovers exactly as
// many records as went in.
func TestBuildRoundTripWithRealCollaborators(t *testing.T) {
	tokens := []*Token{
		tok("あ", "あ", 1, 1, 0),
		tok("か", "カ", 1, 1, 0),
		tok("き", "木", 1, 1, 100),
		tok("き", "木", 2, 2, 200),
		tok("すし", "寿司", 9, 9, 321),
		tok("すし", "スシ", 9, 9, 50),
	}

	builder := NewBuilder(NewConfig(),
		func() TrieBuilder { return louds.NewTrie() },
		func() PackedArrayBuilder { return louds.NewPackedArray() })

	img, err := builder.Build(tokens)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var keySection, valueSection, tokensSection []byte
	for _, s := range img.Sections {
		switch s.Name {
		case codec.SectionKey:
			keySection = s.Data
		case codec.SectionValue:
			valueSection = s.Data
		case codec.SectionTokens:
			tokensSection = s.Data
		}
	}
	if len(keySection) != img.Stats.KeyTrieBytes {
		t.Fatalf("key section length %d != reported KeyTrieBytes %d", len(keySection), img.Stats.KeyTrieBytes)
	}
	if len(valueSection) != img.Stats.ValueTrieBytes {
		t.Fatalf("value section length %d != reported ValueTrieBytes %d", len(valueSection), img.Stats.ValueTrieBytes)
	}
	if len(tokensSection) != img.Stats.TokenArrayBytes {
		t.Fatalf("tokens section length %d != reported TokenArrayBytes %d", len(tokensSection), img.Stats.TokenArrayBytes)
	}

	// 4 distinct keys: あ, か, き, すし.
	if img.Stats.NumKeys != 4 {
		t.Fatalf("NumKeys = %d, want 4", img.Stats.NumKeys)
	}

	entries := decodePackedArrayEntries(t, tokensSection)
	// One real entry per key plus the termination entry.
	if len(entries) != img.Stats.NumKeys+1 {
		t.Fatalf("decoded %d packed-array entries, want %d (NumKeys+1)", len(entries), img.Stats.NumKeys+1)
	}

	term := entries[len(entries)-1]
	if len(term) != 1 || term[0] != codec.TokensTerminationFlag() {
		t.Fatalf("last entry = %v, want the single-byte termination flag", term)
	}

	totalRecords := 0
	for _, e := range entries[:len(entries)-1] {
		records, err := codec.DecodeTokens(e)
		if err != nil {
			t.Fatalf("DecodeTokens: %v", err)
		}
		totalRecords += len(records)
	}
	if totalRecords != len(tokens) {
		t.Fatalf("decoded %d total token records, want %d", totalRecords, len(tokens))
	}

	// The key trie, rebuilt independently from the same key set, must
	// assign dense ids 0..N-1: Build is a pure function of the sorted,
	// deduplicated key set, so re-running it here reproduces the ids the
	// builder's internal trie assigned.
	keyTrie := louds.NewTrie()
	for _, k := range []string{"あ", "か", "き", "すし"} {
		keyTrie.Add(codec.EncodeKey(k))
	}
	if err := keyTrie.Build(); err != nil {
		t.Fatalf("keyTrie.Build: %v", err)
	}
	seen := make(map[uint32]bool)
	for _, k := range []string{"あ", "か", "き", "すし"} {
		id, ok := keyTrie.GetID(codec.EncodeKey(k))
		if !ok {
			t.Fatalf("GetID(%q): not found", k)
		}
		if id >= uint32(img.Stats.NumKeys) {
			t.Fatalf("GetID(%q) = %d, out of range for %d keys", k, id, img.Stats.NumKeys)
		}
		if seen[id] {
			t.Fatalf("GetID(%q) = %d, collides with another key's id", k, id)
		}
		seen[id] = true
	}
}

// decodePackedArrayEntries re-derives the entry boundaries of a
// louds.PackedArray.Image() encoding from its bit vector, independently
// of the louds package's own (unexported) reader.
func decodePackedArrayEntries(t *testing.T, image []byte) [][]byte {
	t.Helper()
	if len(image) < 8 {
		t.Fatalf("packed array image too short: %d bytes", len(image))
	}
	n := binary.LittleEndian.Uint32(image[0:4])
	dataLen := binary.LittleEndian.Uint32(image[4:8])
	numWords := (int(dataLen) + 31) / 32
	wordsEnd := 8 + numWords*4
	if len(image) < wordsEnd+int(dataLen) {
		t.Fatalf("packed array image truncated: have %d bytes, want at least %d", len(image), wordsEnd+int(dataLen))
	}

	starts := make([]int, 0, n)
	for i := 0; i < int(dataLen); i++ {
		word := binary.LittleEndian.Uint32(image[8+(i/32)*4 : 12+(i/32)*4])
		if (word>>(uint(i)%32))&1 == 1 {
			starts = append(starts, i)
		}
	}
	if len(starts) != int(n) {
		t.Fatalf("found %d entry starts, want %d", len(starts), n)
	}

	data := image[wordsEnd : wordsEnd+int(dataLen)]
	entries := make([][]byte, 0, n)
	for i, start := range starts {
		end := int(dataLen)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		entries = append(entries, data[start:end])
	}
	return entries
}
