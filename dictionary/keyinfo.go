package dictionary

import (
	"fmt"
	"sort"
)

// KeyInfo is the set of tokens sharing a single reading.
type KeyInfo struct {
	Key         string
	IDInKeyTrie uint32
	Tokens      []TokenInfo
}

// groupByKey implements the key grouper (C2): stably sort tokens by key,
// then fold the sorted run into a sequence of KeyInfo groups.
//
// Step 1. Create an array of Token, stably sorted by Token.Key.
//
//	[Token 1(key:aaa)][Token 2(key:aaa)][Token 3(key:abc)][...]
//
// Step 2. Group Token(s) by Token.Key and convert them into KeyInfo.
//
//	[KeyInfo(key:aaa)[Token 1][Token 2]][KeyInfo(key:abc)[Token 3]][...]
func groupByKey(tokens []*Token) ([]KeyInfo, error) {
	sorted := make([]*Token, len(tokens))
	for i, t := range tokens {
		if t.Key == "" {
			return nil, fmt.Errorf("dictionary: empty key string in input at index %d", i)
		}
		if t.Value == "" {
			return nil, fmt.Errorf("dictionary: empty value string in input at index %d", i)
		}
		sorted[i] = t
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})

	if len(sorted) == 0 {
		return nil, nil
	}

	var keyInfoList []KeyInfo
	current := KeyInfo{Key: sorted[0].Key}
	for _, token := range sorted {
		if current.Key != token.Key {
			keyInfoList = append(keyInfoList, current)
			current = KeyInfo{Key: token.Key}
		}
		current.Tokens = append(current.Tokens, newTokenInfo(token))
	}
	keyInfoList = append(keyInfoList, current)

	return keyInfoList, nil
}
