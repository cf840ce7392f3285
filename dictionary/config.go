package dictionary

import "encoding/json"

// DefaultMinKeyLengthToUseSmallCostEncoding is the default threshold T
// used by the cost-type classifier pass.
const DefaultMinKeyLengthToUseSmallCostEncoding = 6

// Config carries every option the builder and its collaborators need,
// replacing the process-wide singleton lookups the surrounding tooling
// this was adapted from used to reach for.
type Config struct {
	// MinKeyLengthToUseSmallCostEncoding is T in the cost-type classifier
	// pass: a KeyInfo with no in-group POS homonyms only gets
	// CAN_USE_SMALL_ENCODING once its key is at least this many runes.
	MinKeyLengthToUseSmallCostEncoding int

	// PreserveIntermediateDictionary, when true, additionally writes each
	// section to its own debug file alongside the final image.
	PreserveIntermediateDictionary bool

	// Description is copied verbatim into the image header.
	Description string

	// UTF16String, when true, tells the lexicon reader that the source
	// files are UTF-16 text (little-endian unless a byte-order mark says
	// otherwise) rather than plain UTF-8 text.
	UTF16String bool
}

// NewConfig returns a Config with every default filled in.
func NewConfig() Config {
	return Config{
		MinKeyLengthToUseSmallCostEncoding: DefaultMinKeyLengthToUseSmallCostEncoding,
	}
}

// jsonOverlay mirrors Config field-for-field with pointers, so a JSON
// document that omits a field leaves the corresponding Config field
// untouched instead of zeroing it out.
type jsonOverlay struct {
	MinKeyLengthToUseSmallCostEncoding *int
	PreserveIntermediateDictionary     *bool
	Description                       *string
	UTF16String                        *bool
}

// ApplyJSONOverlay decodes data as a jsonOverlay and copies every field it
// sets onto c, leaving fields the document omits at their current value.
// A field the document sets replaces whatever c holds, including a value
// copied in from a CLI flag: cmd/sysdicbuilder applies its flags first, so
// the overlay wins over them.
func (c *Config) ApplyJSONOverlay(data []byte) error {
	var overlay jsonOverlay
	if err := json.Unmarshal(data, &overlay); err != nil {
		return err
	}
	if overlay.MinKeyLengthToUseSmallCostEncoding != nil {
		c.MinKeyLengthToUseSmallCostEncoding = *overlay.MinKeyLengthToUseSmallCostEncoding
	}
	if overlay.PreserveIntermediateDictionary != nil {
		c.PreserveIntermediateDictionary = *overlay.PreserveIntermediateDictionary
	}
	if overlay.Description != nil {
		c.Description = *overlay.Description
	}
	if overlay.UTF16String != nil {
		c.UTF16String = *overlay.UTF16String
	}
	return nil
}
