// Package lexicon reads a CSV-like text dictionary into the plain Token
// records the builder consumes, satisfying the "external text-dictionary
// loader" input contract: key, value, lid, rid, cost, and an optional
// attribute column.
package lexicon

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kuromoji-go/sysdicbuilder/dictionary"
	"github.com/kuromoji-go/sysdicbuilder/internal/lnreader"
	"golang.org/x/text/encoding/unicode"
)

const (
	numColumns         = 5
	numColumnsWithAttr = 6
)

// Reader parses one token per non-comment, non-blank line:
// key,value,lid,rid,cost[,attributes]. attributes, when present, is a
// '|'-separated list of USER_DICTIONARY and OOV.
type Reader struct {
	lr *lnreader.LineNumberReader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{lr: lnreader.NewLineNumberReader(r)}
}

// NewUTF16Reader wraps r so the lexicon source can be the legacy
// UTF-16 (with optional byte-order mark) text Config.UTF16String opts
// into, instead of plain UTF-8.
func NewUTF16Reader(r io.Reader) *Reader {
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
	return NewReader(decoder.Reader(r))
}

// ReadAll consumes the remainder of the input and returns every parsed
// Token, in file order.
func (r *Reader) ReadAll() ([]*dictionary.Token, error) {
	var tokens []*dictionary.Token
	for {
		line, err := r.lr.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lexicon: %w", err)
		}
		if lnreader.IsSkipLine(line) || lnreader.IsEmptyLine(line) {
			continue
		}

		cols := strings.Split(string(line), ",")
		if len(cols) != numColumns && len(cols) != numColumnsWithAttr {
			return nil, fmt.Errorf("lexicon: invalid format at line %d: want %d or %d columns, got %d",
				r.lr.NumLine, numColumns, numColumnsWithAttr, len(cols))
		}

		tok, err := parseRecord(cols, r.lr.NumLine)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func parseRecord(cols []string, lineNum int) (*dictionary.Token, error) {
	key, value := cols[0], cols[1]

	lid, err := parseUint16(cols[2])
	if err != nil {
		return nil, fmt.Errorf("%s: column 2 at line %d", err, lineNum)
	}
	rid, err := parseUint16(cols[3])
	if err != nil {
		return nil, fmt.Errorf("%s: column 3 at line %d", err, lineNum)
	}
	cost, err := strconv.ParseInt(cols[4], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%s: column 4 at line %d", err, lineNum)
	}

	var attrs dictionary.Attributes
	if len(cols) == numColumnsWithAttr && cols[5] != "" {
		for _, name := range strings.Split(cols[5], "|") {
			switch name {
			case "USER_DICTIONARY":
				attrs |= dictionary.AttrUserDictionary
			case "OOV":
				attrs |= dictionary.AttrOov
			default:
				return nil, fmt.Errorf("unknown attribute %q: column 5 at line %d", name, lineNum)
			}
		}
	}

	return &dictionary.Token{
		Key:        key,
		Value:      value,
		LID:        lid,
		RID:        rid,
		Cost:       int16(cost),
		Attributes: attrs,
	}, nil
}

func parseUint16(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(v), nil
}
