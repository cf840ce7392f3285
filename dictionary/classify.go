package dictionary

import "sort"

// sortTokenInfo orders the TokenInfo within each KeyInfo. TokenInfo a > b
// iff:
//  1. a.lid > b.lid
//  2. else a.rid > b.rid
//  3. else a.id_in_value_trie < b.id_in_value_trie (ascending, inside the
//     descending POS order)
//  4. else a.token.attributes < b.token.attributes
//
// The grouping-by-descending-POS maximizes SAME_AS_PREV_POS opportunities;
// the inner ascending value-id order maximizes value-trie locality for the
// runtime decoder (not our concern here, but it shapes the comparator).
func sortTokenInfo(keyInfoList []KeyInfo) {
	for i := range keyInfoList {
		tokens := keyInfoList[i].Tokens
		sort.SliceStable(tokens, func(a, b int) bool {
			ta, tb := tokens[a].Token, tokens[b].Token
			if ta.LID != tb.LID {
				return ta.LID > tb.LID
			}
			if ta.RID != tb.RID {
				return ta.RID > tb.RID
			}
			if tokens[a].IDInValueTrie != tokens[b].IDInValueTrie {
				return tokens[a].IDInValueTrie < tokens[b].IDInValueTrie
			}
			return ta.Attributes < tb.Attributes
		})
	}
}

// hasHomonymsInSamePos reports whether two tokens in the same KeyInfo
// share a combined POS.
func hasHomonymsInSamePos(keyInfo *KeyInfo) bool {
	if len(keyInfo.Tokens) == 1 {
		return false
	}
	seen := make(map[uint32]struct{}, len(keyInfo.Tokens))
	for i := range keyInfo.Tokens {
		pos := CombinedPos(keyInfo.Tokens[i].Token.LID, keyInfo.Tokens[i].Token.RID)
		if _, ok := seen[pos]; ok {
			return true
		}
		seen[pos] = struct{}{}
	}
	return false
}

// setCostType runs the cost-type classifier pass. It runs ahead of
// setPosType and is blind to SAME_AS_PREV_POS: hasHomonymsInSamePos reads
// each token's lid/rid directly, never its PosType.
func setCostType(keyInfoList []KeyInfo, minKeyLength int) {
	for i := range keyInfoList {
		keyInfo := &keyInfoList[i]
		if hasHomonymsInSamePos(keyInfo) {
			continue
		}
		for j := range keyInfo.Tokens {
			if runeLen(keyInfo.Key) >= minKeyLength {
				keyInfo.Tokens[j].CostType = CostCanUseSmallEncoding
			}
		}
	}
}

// setPosType runs the POS-type classifier pass.
func setPosType(keyInfoList []KeyInfo, frequentPos FrequentPosMap) {
	for i := range keyInfoList {
		tokens := keyInfoList[i].Tokens
		for j := range tokens {
			pos := CombinedPos(tokens[j].Token.LID, tokens[j].Token.RID)
			if id, ok := frequentPos[pos]; ok {
				tokens[j].PosType = PosFrequent
				tokens[j].IDInFrequentPosMap = id
			}
			if j >= 1 {
				prevPos := CombinedPos(tokens[j-1].Token.LID, tokens[j-1].Token.RID)
				if prevPos == pos {
					// Overwrites FREQUENT_POS.
					tokens[j].PosType = PosSameAsPrev
				}
			}
		}
	}
}

// setValueType runs the value-type classifier pass.
func setValueType(keyInfoList []KeyInfo) {
	for i := range keyInfoList {
		tokens := keyInfoList[i].Tokens
		for j := 1; j < len(tokens); j++ {
			if tokens[j].ValueType != ValueAsIsHiragana &&
				tokens[j].ValueType != ValueAsIsKatakana &&
				tokens[j].Token.Value == tokens[j-1].Token.Value {
				tokens[j].ValueType = ValueSameAsPrev
			}
		}
	}
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
