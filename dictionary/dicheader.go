package dictionary

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	DescriptionSize   = 256
	HeaderStorageSize = 8 + 8 + DescriptionSize
)

// Header is the fixed-size preamble written ahead of the four sections
// produced by the builder.
type Header struct {
	Version     uint64
	CreateTime  int64
	Description string
}

func NewHeader(version uint64, createTime int64, description string) *Header {
	return &Header{
		Version:     version,
		CreateTime:  createTime,
		Description: description,
	}
}

func ParseHeader(input []byte) (*Header, error) {
	if len(input) < HeaderStorageSize {
		return nil, errors.New("dictionary: truncated header")
	}
	offset, version := bufferToUint64(input, 0)
	offset, createTime := bufferToInt64(input, offset)

	i := offset
	for ; i < HeaderStorageSize; i++ {
		if input[i] == 0 {
			break
		}
	}
	// UTF-8
	description := string(input[offset:i])

	return &Header{
		Version:     version,
		CreateTime:  createTime,
		Description: description,
	}, nil
}

func (h *Header) ToBytes() ([]byte, error) {
	desc := []byte(h.Description)
	if len(desc) > DescriptionSize {
		return nil, errors.New("dictionary: description is too long")
	}

	buf := bytes.NewBuffer(make([]byte, 0, HeaderStorageSize))
	err := binary.Write(buf, binary.LittleEndian, h.Version)
	if err != nil {
		return nil, err
	}
	err = binary.Write(buf, binary.LittleEndian, uint64(h.CreateTime))
	if err != nil {
		return nil, err
	}
	_, err = buf.Write(desc)
	if err != nil {
		return nil, err
	}

	if len(desc) < DescriptionSize {
		padding := make([]byte, DescriptionSize-len(desc))
		_, err = buf.Write(padding)
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
