package dictionary

import (
	"fmt"
	"io"
	"os"

	"github.com/kuromoji-go/sysdicbuilder/codec"
)

// WriteImage implements C8's handoff to the file codec: the header,
// immediately followed by the four sections in their fixed order.
func WriteImage(w io.Writer, header *Header, img *Image) error {
	headerBytes, err := header.ToBytes()
	if err != nil {
		return fmt.Errorf("dictionary: header: %w", err)
	}
	if _, err := w.Write(headerBytes); err != nil {
		return fmt.Errorf("dictionary: write header: %w", err)
	}
	if err := codec.WriteSections(w, img.Sections); err != nil {
		return err
	}
	return nil
}

// WriteDebugSections writes each section to its own raw file,
// <basePath>.value, .key, .tokens, .freq_pos, for Config.
// PreserveIntermediateDictionary.
func WriteDebugSections(basePath string, img *Image) error {
	ext := map[string]string{
		codec.SectionValue:   ".value",
		codec.SectionKey:     ".key",
		codec.SectionTokens:  ".tokens",
		codec.SectionFreqPos: ".freq_pos",
	}
	for _, s := range img.Sections {
		suffix, ok := ext[s.Name]
		if !ok {
			suffix = "." + s.Name
		}
		path := basePath + suffix
		if err := os.WriteFile(path, s.Data, 0o644); err != nil {
			return fmt.Errorf("dictionary: write debug section %q: %w", s.Name, err)
		}
	}
	return nil
}
