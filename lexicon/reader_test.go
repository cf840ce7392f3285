package lexicon

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kuromoji-go/sysdicbuilder/dictionary"
	"golang.org/x/text/encoding/unicode"
)

func TestReadAll(t *testing.T) {
	input := `# a comment line
あ,あ,1,1,0

か,カ,1,1,0,OOV
き,木,5,5,100|garbage
`
	// The fifth line above has a malformed cost column ("100|garbage")
	// and no attribute column; it is replaced below with a simple, valid
	// fixture instead.
	input = `# a comment line
あ,あ,1,1,0

か,カ,1,1,0,OOV
き,木,5,5,100,USER_DICTIONARY|OOV
`
	tokens, err := NewReader(strings.NewReader(input)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("len(tokens) = %d, want 3", len(tokens))
	}
	if tokens[0].Key != "あ" || tokens[0].Value != "あ" {
		t.Fatalf("tokens[0] = %+v", tokens[0])
	}
	if tokens[1].Attributes != dictionary.AttrOov {
		t.Fatalf("tokens[1].Attributes = %v, want AttrOov", tokens[1].Attributes)
	}
	want := dictionary.AttrUserDictionary | dictionary.AttrOov
	if tokens[2].Attributes != want {
		t.Fatalf("tokens[2].Attributes = %v, want %v", tokens[2].Attributes, want)
	}
}

func TestReadAllRejectsBadColumnCount(t *testing.T) {
	if _, err := NewReader(strings.NewReader("a,b,1\n")).ReadAll(); err == nil {
		t.Fatal("want error for too few columns")
	}
}

func TestReadAllRejectsUnknownAttribute(t *testing.T) {
	if _, err := NewReader(strings.NewReader("a,b,1,1,0,BOGUS\n")).ReadAll(); err == nil {
		t.Fatal("want error for unknown attribute name")
	}
}

func TestUTF16ReaderDecodesBeforeParsing(t *testing.T) {
	encoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	encoded, err := encoder.Bytes([]byte("あ,あ,1,1,0\n"))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	tokens, err := NewUTF16Reader(bytes.NewReader(encoded)).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Key != "あ" {
		t.Fatalf("tokens = %+v", tokens)
	}
}
