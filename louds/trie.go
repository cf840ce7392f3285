package louds

import (
	"bytes"
	"encoding/binary"
	"sort"
)

// Trie builds a LOUDS-equivalent succinct trie: Add before Build, then
// Image and GetID are defined for anything that was added.
//
// Add does not need to be called in sorted order and duplicate keys
// collapse to a single entry — both the key trie and the value trie rely
// on this: the value trie only stores each distinct encoded value once,
// and both tries need dense ids assigned in lexicographic order of the
// keys, not insertion order.
type Trie struct {
	pending [][]byte
	built   bool
	array   []uint32
	size    int
}

func NewTrie() *Trie {
	return &Trie{}
}

func (t *Trie) Add(key []byte) {
	t.pending = append(t.pending, append([]byte(nil), key...))
}

// Build sorts and deduplicates every added key, assigns dense ids
// 0..N-1 in that sorted order, and arranges the result into a double
// array. It must be called exactly once, after every Add.
func (t *Trie) Build() error {
	sort.Slice(t.pending, func(i, j int) bool {
		return bytes.Compare(t.pending[i], t.pending[j]) < 0
	})

	keys := make([][]byte, 0, len(t.pending))
	values := make([]int, 0, len(t.pending))
	for i, key := range t.pending {
		if i > 0 && bytes.Equal(key, t.pending[i-1]) {
			continue
		}
		keys = append(keys, key)
		values = append(values, len(keys)-1)
	}
	t.pending = nil
	t.size = len(keys)

	if len(keys) == 0 {
		t.built = true
		return nil
	}

	dab := &doubleArrayBuilder{}
	array, err := dab.build(keys, values)
	if err != nil {
		return err
	}
	t.array = array
	t.built = true
	return nil
}

// GetID returns the dense id assigned to key by Build. It is only defined
// for keys that were previously Add-ed; ok is false otherwise.
func (t *Trie) GetID(key []byte) (uint32, bool) {
	if len(t.array) == 0 {
		return 0, false
	}
	id, ok := exactMatchSearch(t.array, key)
	if !ok {
		return 0, false
	}
	return uint32(id), true
}

// Len reports how many distinct keys the trie holds, after Build.
func (t *Trie) Len() int {
	return t.size
}

// Image is the byte encoding of the built trie — one of the sections
// concatenated by the file codec.
func (t *Trie) Image() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, len(t.array)*4))
	for _, u := range t.array {
		_ = binary.Write(buf, binary.LittleEndian, u)
	}
	return buf.Bytes()
}
