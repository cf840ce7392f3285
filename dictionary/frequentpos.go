package dictionary

import (
	"fmt"
	"math"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// MaxFrequentPos is the hard ceiling on the number of combined-POS values
// that can be replaced by a dense 1-byte id.
const MaxFrequentPos = 255

// FrequentPosMap maps a combined POS to the dense id the token codec
// substitutes for it.
type FrequentPosMap map[uint32]int

// buildFrequentPos implements the frequent-POS analyzer (C3). It counts
// every combined POS across all tokens, builds a histogram of those
// counts, and greedily admits whole frequency buckets — from most to
// least frequent — as long as doing so keeps the running total of
// selected POS at or under MaxFrequentPos. Dense ids are then assigned in
// ascending order of the combined POS key, which is why both maps below
// are ordered red-black trees rather than Go's built-in (unordered) map:
// an unordered container here would make the assignment depend on map
// iteration order and break image determinism across runs.
func buildFrequentPos(keyInfoList []KeyInfo) (FrequentPosMap, error) {
	posCounts := redblacktree.NewWith(utils.UInt32Comparator)
	for _, keyInfo := range keyInfoList {
		for i := range keyInfo.Tokens {
			pos := CombinedPos(keyInfo.Tokens[i].Token.LID, keyInfo.Tokens[i].Token.RID)
			if v, ok := posCounts.Get(pos); ok {
				posCounts.Put(pos, v.(int)+1)
			} else {
				posCounts.Put(pos, 1)
			}
		}
	}

	histogram := redblacktree.NewWith(utils.IntComparator)
	it := posCounts.Iterator()
	for it.Next() {
		count := it.Value().(int)
		if v, ok := histogram.Get(count); ok {
			histogram.Put(count, v.(int)+1)
		} else {
			histogram.Put(count, 1)
		}
	}

	// Walk the histogram from the most frequent bucket down, admitting a
	// bucket whole or not at all.
	numFreqPos := 0
	threshold := math.MaxInt32
	hit := histogram.Iterator()
	hit.End()
	for hit.Prev() {
		bucketSize := hit.Value().(int)
		if numFreqPos+bucketSize > MaxFrequentPos {
			break
		}
		threshold = hit.Key().(int)
		numFreqPos += bucketSize
	}

	frequentPos := make(FrequentPosMap, numFreqPos)
	freqPosIdx := 0
	pit := posCounts.Iterator()
	for pit.Next() {
		if pit.Value().(int) >= threshold {
			frequentPos[pit.Key().(uint32)] = freqPosIdx
			freqPosIdx++
		}
	}
	if freqPosIdx != numFreqPos {
		return nil, fmt.Errorf("dictionary: inconsistent result to find frequent pos: selected %d, expected %d", freqPosIdx, numFreqPos)
	}

	return frequentPos, nil
}
