package dictionary

import "strings"

// hiraganaToKatakanaShift is the fixed codepoint offset between the
// Hiragana block (U+3041–U+3096) and the Katakana block (U+30A1–U+30F6).
// No available library does kana transliteration, so this one small
// range shift is implemented directly against Unicode code points rather
// than pulled in as a dependency.
const (
	hiraganaStart           = 0x3041
	hiraganaEnd             = 0x3096
	hiraganaToKatakanaShift = 0x60
)

// hiraganaToKatakana shifts every rune in the Hiragana block into the
// Katakana block; everything else passes through unchanged.
func hiraganaToKatakana(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= hiraganaStart && r <= hiraganaEnd {
			r += hiraganaToKatakanaShift
		}
		b.WriteRune(r)
	}
	return b.String()
}

// classifyInitialValue checks whether a value can skip the value trie
// entirely: a value byte-identical to its key, or to its key's katakana
// form, does not need its own value-trie entry — it is reconstructed at
// read time.
func classifyInitialValue(token *Token) ValueType {
	if token.Value == token.Key {
		return ValueAsIsHiragana
	}
	if token.Value == hiraganaToKatakana(token.Key) {
		return ValueAsIsKatakana
	}
	return ValueDefault
}
