package packing

import (
	"github.com/dargueta/textpack/symbols"
)

// ParsedText is a sequence of symbol groups, in the same order as the text
// they came from.
type ParsedText []Group

// Build converts text into groups of symbols.
//
// An Enter symbol is always appended after the last character, and the final
// group is padded with spaces. If any character isn't in the alphabet, Build
// fails with [errors.ErrUnknownCharacter] and returns nothing.
func Build(text string) (ParsedText, error) {
	// Most characters are a single symbol.
	buffer := make([]symbols.Symbol, 0, len(text)+1)
	for _, character := range text {
		expansion, err := symbols.ForCharacter(character)
		if err != nil {
			return nil, err
		}
		buffer = append(buffer, expansion...)
	}
	buffer = append(buffer, symbols.Enter)

	totalGroups := (len(buffer) + SymbolsPerGroup - 1) / SymbolsPerGroup
	parsed := make(ParsedText, totalGroups)
	for i := range parsed {
		// Anything past the end of the buffer stays Space, the zero value.
		copy(parsed[i][:], buffer[i*SymbolsPerGroup:])
	}
	return parsed, nil
}

// Equal reports whether two parsed texts hold the same groups in the same
// order.
func (parsed ParsedText) Equal(other ParsedText) bool {
	if len(parsed) != len(other) {
		return false
	}
	for i := range parsed {
		if parsed[i] != other[i] {
			return false
		}
	}
	return true
}
