package dictionary

import (
	"fmt"

	"github.com/kuromoji-go/sysdicbuilder/codec"
)

// Builder runs the full pipeline: group tokens by key, find the frequent
// POS set, build the value and key tries, classify every token, emit the
// token array, and lay out the four image sections. One Builder build is
// single-threaded and synchronous; nothing here suspends or retries.
type Builder struct {
	Config Config

	// NewTrieBuilder and NewPackedArrayBuilder construct fresh, empty
	// collaborators for each Build call — Builder owns their lifetime
	// exclusively for the duration of the call.
	NewTrieBuilder        func() TrieBuilder
	NewPackedArrayBuilder func() PackedArrayBuilder
}

// NewBuilder wires a Builder to the given trie and packed-array
// constructors. Passing louds.NewTrie and louds.NewPackedArray (adapted
// for the function-value signatures) gives the production collaborators;
// tests can pass fakes instead.
func NewBuilder(config Config, newTrieBuilder func() TrieBuilder, newPackedArrayBuilder func() PackedArrayBuilder) *Builder {
	return &Builder{
		Config:                config,
		NewTrieBuilder:        newTrieBuilder,
		NewPackedArrayBuilder: newPackedArrayBuilder,
	}
}

// Stats summarizes one Build call for diagnostics.
type Stats struct {
	NumTokens      int
	NumKeys        int
	NumValues      int
	NumFrequentPos int
	ValueTrieBytes int
	KeyTrieBytes   int
	TokenArrayBytes int
}

// Image is the set of sections a Builder produces, in the fixed order
// the image writer concatenates them.
type Image struct {
	Sections []codec.Section
	Stats    Stats
}

// Build runs C2 through C7 over tokens and returns the four sections
// ready for the image writer (C8) to concatenate.
func (b *Builder) Build(tokens []*Token) (*Image, error) {
	keyInfoList, err := groupByKey(tokens)
	if err != nil {
		return nil, err
	}

	frequentPos, err := buildFrequentPos(keyInfoList)
	if err != nil {
		return nil, err
	}

	valueTrieImage, numValues, err := b.buildValueTrie(keyInfoList)
	if err != nil {
		return nil, err
	}

	keyTrieImage, err := b.buildKeyTrie(keyInfoList)
	if err != nil {
		return nil, err
	}

	sortTokenInfo(keyInfoList)
	setCostType(keyInfoList, b.Config.MinKeyLengthToUseSmallCostEncoding)
	setPosType(keyInfoList, frequentPos)
	setValueType(keyInfoList)

	tokenArrayImage, err := b.buildTokenArray(keyInfoList)
	if err != nil {
		return nil, err
	}

	freqPosImage := encodeFrequentPosTable(frequentPos)

	stats := Stats{
		NumTokens:       len(tokens),
		NumKeys:         len(keyInfoList),
		NumValues:       numValues,
		NumFrequentPos:  len(frequentPos),
		ValueTrieBytes:  len(valueTrieImage),
		KeyTrieBytes:    len(keyTrieImage),
		TokenArrayBytes: len(tokenArrayImage),
	}

	return &Image{
		Sections: []codec.Section{
			{Name: codec.SectionValue, Data: valueTrieImage},
			{Name: codec.SectionKey, Data: keyTrieImage},
			{Name: codec.SectionTokens, Data: tokenArrayImage},
			{Name: codec.SectionFreqPos, Data: freqPosImage},
		},
		Stats: stats,
	}, nil
}

// buildValueTrie implements C4: insert every DEFAULT_VALUE token's
// encoded value, finalize, then record id_in_value_trie on a second
// pass.
func (b *Builder) buildValueTrie(keyInfoList []KeyInfo) ([]byte, int, error) {
	trie := b.NewTrieBuilder()

	for i := range keyInfoList {
		tokens := keyInfoList[i].Tokens
		for j := range tokens {
			if tokens[j].ValueType != ValueDefault {
				continue
			}
			trie.Add(codec.EncodeValue(tokens[j].Token.Value))
		}
	}

	if err := trie.Build(); err != nil {
		return nil, 0, fmt.Errorf("dictionary: value trie: %w", err)
	}

	numValues := 0
	for i := range keyInfoList {
		tokens := keyInfoList[i].Tokens
		for j := range tokens {
			if tokens[j].ValueType != ValueDefault {
				continue
			}
			id, ok := trie.GetID(codec.EncodeValue(tokens[j].Token.Value))
			if !ok {
				return nil, 0, fmt.Errorf("dictionary: value trie: lost id for value %q", tokens[j].Token.Value)
			}
			tokens[j].IDInValueTrie = id
			numValues++
		}
	}

	return trie.Image(), numValues, nil
}

// buildKeyTrie implements C5: insert every KeyInfo's encoded key,
// finalize, then record id_in_key_trie on a second pass.
func (b *Builder) buildKeyTrie(keyInfoList []KeyInfo) ([]byte, error) {
	trie := b.NewTrieBuilder()

	for i := range keyInfoList {
		trie.Add(codec.EncodeKey(keyInfoList[i].Key))
	}

	if err := trie.Build(); err != nil {
		return nil, fmt.Errorf("dictionary: key trie: %w", err)
	}

	for i := range keyInfoList {
		id, ok := trie.GetID(codec.EncodeKey(keyInfoList[i].Key))
		if !ok {
			return nil, fmt.Errorf("dictionary: key trie: lost id for key %q", keyInfoList[i].Key)
		}
		keyInfoList[i].IDInKeyTrie = id
	}

	return trie.Image(), nil
}

// buildTokenArray implements C7: address KeyInfo by id_in_key_trie,
// confirm that addressing is a genuine permutation of [0, N), encode
// each KeyInfo's token list in that order, and append the termination
// entry.
func (b *Builder) buildTokenArray(keyInfoList []KeyInfo) ([]byte, error) {
	n := len(keyInfoList)
	byID := make([]*KeyInfo, n)
	for i := range keyInfoList {
		id := keyInfoList[i].IDInKeyTrie
		if int(id) >= n {
			return nil, fmt.Errorf("dictionary: key-trie id %d out of range for %d keys", id, n)
		}
		if byID[id] != nil {
			return nil, fmt.Errorf("dictionary: key-trie id %d assigned to more than one key", id)
		}
		byID[id] = &keyInfoList[i]
	}
	for id, ki := range byID {
		if ki == nil {
			return nil, fmt.Errorf("dictionary: key-trie id %d never assigned", id)
		}
	}

	arr := b.NewPackedArrayBuilder()
	for _, ki := range byID {
		records := make([]codec.TokenRecord, len(ki.Tokens))
		for j, ti := range ki.Tokens {
			records[j] = toTokenRecord(ti)
		}
		entry, err := codec.EncodeTokens(records)
		if err != nil {
			return nil, fmt.Errorf("dictionary: key %q: %w", ki.Key, err)
		}
		arr.Add(entry)
	}
	arr.Add([]byte{codec.TokensTerminationFlag()})
	arr.Build()

	return arr.Image(), nil
}

func toTokenRecord(ti TokenInfo) codec.TokenRecord {
	r := codec.TokenRecord{
		LID:         ti.Token.LID,
		RID:         ti.Token.RID,
		Cost:        ti.Token.Cost,
		Attributes:  uint8(ti.Token.Attributes),
		ValueTrieID: ti.IDInValueTrie,
	}

	switch ti.CostType {
	case CostCanUseSmallEncoding:
		r.CostType = codec.CostCanUseSmallEncoding
	case CostDefault:
		r.CostType = codec.CostDefault
	}

	switch ti.PosType {
	case PosDefault:
		r.PosType = codec.PosDefault
	case PosFrequent:
		r.PosType = codec.PosFrequent
		r.FrequentPosID = uint8(ti.IDInFrequentPosMap)
	case PosSameAsPrev:
		r.PosType = codec.PosSameAsPrev
	}

	switch ti.ValueType {
	case ValueDefault:
		r.ValueType = codec.ValueDefault
	case ValueAsIsHiragana:
		r.ValueType = codec.ValueAsIsHiragana
	case ValueAsIsKatakana:
		r.ValueType = codec.ValueAsIsKatakana
	case ValueSameAsPrev:
		r.ValueType = codec.ValueSameAsPrev
	}

	return r
}

// encodeFrequentPosTable implements the frequent-POS side table of C8:
// exactly 256 32-bit little-endian words, slot d holding the combined
// POS assigned dense id d, zero elsewhere.
func encodeFrequentPosTable(frequentPos FrequentPosMap) []byte {
	const numSlots = MaxFrequentPos + 1
	table := make([]uint32, numSlots)
	for pos, id := range frequentPos {
		table[id] = pos
	}

	out := make([]byte, numSlots*4)
	for i, v := range table {
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v >> 16)
		out[i*4+3] = byte(v >> 24)
	}
	return out
}
