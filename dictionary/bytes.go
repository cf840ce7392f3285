package dictionary

import (
	"bytes"
	"encoding/binary"
)

func bufferToInt64(bytebuffer []byte, offset int) (int, int64) {
	var ret int64
	offsetend := offset + 8
	_ = binary.Read(bytes.NewBuffer(bytebuffer[offset:offsetend]), binary.LittleEndian, &ret)
	return offsetend, ret
}

func bufferToUint64(bytebuffer []byte, offset int) (int, uint64) {
	var ret uint64
	offsetend := offset + 8
	_ = binary.Read(bytes.NewBuffer(bytebuffer[offset:offsetend]), binary.LittleEndian, &ret)
	return offsetend, ret
}
