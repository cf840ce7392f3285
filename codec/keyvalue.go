package codec

// EncodeKey turns a reading into the bytes the key trie indexes. The
// LOUDS trie disambiguates values on its own, so the encoding does not
// need to be prefix-free — plain UTF-8 bytes are enough.
func EncodeKey(key string) []byte {
	return []byte(key)
}

// EncodeValue turns a surface form into the bytes the value trie
// indexes. Same reasoning as EncodeKey.
func EncodeValue(value string) []byte {
	return []byte(value)
}

// DecodeKey and DecodeValue invert EncodeKey/EncodeValue; nothing in this
// module calls them.
func DecodeKey(b []byte) string   { return string(b) }
func DecodeValue(b []byte) string { return string(b) }
