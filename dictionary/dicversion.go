package dictionary

// SystemDictVersion identifies the on-disk layout produced by
// Builder and WriteImage: a header, followed by the value-trie, key-trie,
// token-array and frequent-POS sections in that order.
const SystemDictVersion uint64 = 0x7366d3f18bd111e8
