// Package codec implements the key, value, token and file codecs: the
// concrete byte encodings the builder hands to the trie and packed-array
// builders, and the container format the final image is written in.
//
// The package is deliberately ignorant of the dictionary package's
// TokenInfo/KeyInfo model — it only knows about plain records — so that
// dictionary can depend on codec for encoding without codec depending
// back on dictionary.
package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// CostType mirrors dictionary.CostType without importing it.
type CostType uint8

const (
	CostDefault CostType = iota
	CostCanUseSmallEncoding
)

// PosType mirrors dictionary.PosType without importing it.
type PosType uint8

const (
	PosDefault PosType = iota
	PosFrequent
	PosSameAsPrev
)

// ValueType mirrors dictionary.ValueType without importing it.
type ValueType uint8

const (
	ValueDefault ValueType = iota
	ValueAsIsHiragana
	ValueAsIsKatakana
	ValueSameAsPrev
)

// TokenRecord is one token's worth of fields, already reduced to exactly
// what the wire encoding needs: the caller has already run the
// classifier passes and resolved ids.
type TokenRecord struct {
	LID, RID      uint16
	Cost          int16
	CostType      CostType
	Attributes    uint8
	PosType       PosType
	FrequentPosID uint8
	ValueType     ValueType
	ValueTrieID   uint32
}

const (
	flagCost1Byte  = 1 << 0
	flagPosShift   = 1
	flagPosMask    = 0x3 << flagPosShift
	flagValueShift = 3
	flagValueMask  = 0x3 << flagValueShift
)

// tokensTerminationFlag is the sole byte of the sentinel entry appended
// once, after the last key's real token-list entry in the packed array. Every
// real entry is at least 3 bytes long (a 2-byte record count plus one
// record's flags byte), so a 1-byte entry equal to this value is never
// ambiguous with a real one.
const tokensTerminationFlag = 0xFF

func TokensTerminationFlag() byte {
	return tokensTerminationFlag
}

// EncodeTokens packs a non-empty list of TokenRecord sharing one key into
// a single byte string: a little-endian uint16 record count, followed by
// each record in order.
func EncodeTokens(records []TokenRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("codec: empty token list")
	}
	if len(records) > 0xFFFF {
		return nil, fmt.Errorf("codec: token list too long: %d", len(records))
	}

	buf := new(bytes.Buffer)
	if err := binary.Write(buf, binary.LittleEndian, uint16(len(records))); err != nil {
		return nil, err
	}
	for i, r := range records {
		if err := encodeTokenRecord(buf, r); err != nil {
			return nil, fmt.Errorf("codec: token %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func encodeTokenRecord(buf *bytes.Buffer, r TokenRecord) error {
	// The 1-byte cost encoding is only available when the cost-type
	// classifier pass permitted it for this token's KeyInfo (no in-group
	// POS homonyms, key long enough) — a cost that happens to fit in a
	// byte is not by itself sufficient, matching the classifier's
	// KeyInfo-level permission rather than the raw numeric value.
	cost1byte := r.CostType == CostCanUseSmallEncoding && r.Cost >= -128 && r.Cost <= 127

	flags := byte(r.PosType)<<flagPosShift | byte(r.ValueType)<<flagValueShift
	if cost1byte {
		flags |= flagCost1Byte
	}
	buf.WriteByte(flags)

	switch r.PosType {
	case PosDefault:
		if err := binary.Write(buf, binary.LittleEndian, r.LID); err != nil {
			return err
		}
		if err := binary.Write(buf, binary.LittleEndian, r.RID); err != nil {
			return err
		}
	case PosFrequent:
		buf.WriteByte(r.FrequentPosID)
	case PosSameAsPrev:
		// Nothing: recovered from the predecessor record.
	default:
		return fmt.Errorf("unknown pos type %d", r.PosType)
	}

	if cost1byte {
		buf.WriteByte(byte(int8(r.Cost)))
	} else {
		if err := binary.Write(buf, binary.LittleEndian, r.Cost); err != nil {
			return err
		}
	}

	buf.WriteByte(r.Attributes)

	switch r.ValueType {
	case ValueDefault:
		if err := binary.Write(buf, binary.LittleEndian, r.ValueTrieID); err != nil {
			return err
		}
	case ValueAsIsHiragana, ValueAsIsKatakana, ValueSameAsPrev:
		// Nothing: recovered from the key or the predecessor record.
	default:
		return fmt.Errorf("unknown value type %d", r.ValueType)
	}

	return nil
}

// DecodeTokens is the inverse of EncodeTokens, used by round-trip tests.
func DecodeTokens(data []byte) ([]TokenRecord, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("codec: token entry too short: %d bytes", len(data))
	}
	count := int(binary.LittleEndian.Uint16(data[:2]))
	r := bytes.NewReader(data[2:])

	records := make([]TokenRecord, count)
	for i := 0; i < count; i++ {
		rec, err := decodeTokenRecord(r)
		if err != nil {
			return nil, fmt.Errorf("codec: token %d: %w", i, err)
		}
		records[i] = rec
	}
	return records, nil
}

func decodeTokenRecord(r *bytes.Reader) (TokenRecord, error) {
	var rec TokenRecord

	flags, err := r.ReadByte()
	if err != nil {
		return rec, err
	}
	cost1byte := flags&flagCost1Byte != 0
	rec.PosType = PosType((flags & flagPosMask) >> flagPosShift)
	rec.ValueType = ValueType((flags & flagValueMask) >> flagValueShift)

	switch rec.PosType {
	case PosDefault:
		if err := binary.Read(r, binary.LittleEndian, &rec.LID); err != nil {
			return rec, err
		}
		if err := binary.Read(r, binary.LittleEndian, &rec.RID); err != nil {
			return rec, err
		}
	case PosFrequent:
		id, err := r.ReadByte()
		if err != nil {
			return rec, err
		}
		rec.FrequentPosID = id
	case PosSameAsPrev:
	default:
		return rec, fmt.Errorf("unknown pos type %d", rec.PosType)
	}

	if cost1byte {
		b, err := r.ReadByte()
		if err != nil {
			return rec, err
		}
		rec.Cost = int16(int8(b))
		rec.CostType = CostCanUseSmallEncoding
	} else {
		if err := binary.Read(r, binary.LittleEndian, &rec.Cost); err != nil {
			return rec, err
		}
		rec.CostType = CostDefault
	}

	attr, err := r.ReadByte()
	if err != nil {
		return rec, err
	}
	rec.Attributes = attr

	switch rec.ValueType {
	case ValueDefault:
		if err := binary.Read(r, binary.LittleEndian, &rec.ValueTrieID); err != nil {
			return rec, err
		}
	case ValueAsIsHiragana, ValueAsIsKatakana, ValueSameAsPrev:
	default:
		return rec, fmt.Errorf("unknown value type %d", rec.ValueType)
	}

	return rec, nil
}
