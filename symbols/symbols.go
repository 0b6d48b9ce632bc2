// Package symbols defines the closed alphabet the codec works with.
//
// Every symbol has a 5-bit ordinal. Plain letters, the space, comma and newline
// stand for themselves; two control markers change the meaning of the symbols
// after them:
//
//   - NextIsAccented: the next letter carries a Czech diacritic. "é" is the one
//     exception and is written with the marker twice, [NextIsAccented,
//     NextIsAccented, E], to keep it apart from "ě" = [NextIsAccented, E].
//   - Chord: the next symbol is an escaped literal, optionally highlighted when
//     rendered.
//
// A period has no symbol of its own; it is written as two commas.
package symbols

import (
	"fmt"
	"unicode"

	"github.com/boljen/go-bitmap"
	"github.com/dargueta/textpack/errors"
)

// Symbol is a single 5-bit unit of the alphabet. The zero value is Space.
type Symbol uint8

const (
	Space Symbol = iota
	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z
	NextIsAccented
	Chord
	Comma
	Enter
)

// BitsPerSymbol is the width of a symbol's ordinal when packed.
const BitsPerSymbol = 5

// MaxOrdinal is the largest value that fits in [BitsPerSymbol] bits. It is
// not necessarily a defined symbol.
const MaxOrdinal = 1<<BitsPerSymbol - 1

// definedOrdinals has a bit set for every ordinal naming a real symbol.
// Reserved ordinals are excluded by leaving their bits unset.
var definedOrdinals bitmap.Bitmap

func init() {
	definedOrdinals = bitmap.New(MaxOrdinal + 1)
	for ordinal := Space; ordinal <= Enter; ordinal++ {
		definedOrdinals.Set(int(ordinal), true)
	}
}

// FromOrdinal converts a raw 5-bit value back into a Symbol. Values that don't
// name a symbol, including anything too wide for 5 bits, give
// [errors.ErrInvalidSymbolOrdinal].
func FromOrdinal(ordinal uint8) (Symbol, error) {
	if ordinal > MaxOrdinal || !definedOrdinals.Get(int(ordinal)) {
		return Space, errors.ErrInvalidSymbolOrdinal.WithMessage(
			fmt.Sprintf("%d is not a defined symbol", ordinal))
	}
	return Symbol(ordinal), nil
}

// IsDefined reports whether the symbol's ordinal names a member of the
// alphabet.
func (s Symbol) IsDefined() bool {
	return s <= MaxOrdinal && definedOrdinals.Get(int(s))
}

// IsLetter reports whether the symbol is one of A through Z.
func (s Symbol) IsLetter() bool {
	return s >= A && s <= Z
}

// Text returns the literal text a symbol stands for on its own. The control
// markers only make sense together with the symbols after them, so asking
// for their text fails with [errors.ErrNotDirectlyRenderable].
func (s Symbol) Text() (string, error) {
	switch {
	case s == Space:
		return " ", nil
	case s.IsLetter():
		return string(rune('a' + s - A)), nil
	case s == Comma:
		return ",", nil
	case s == Enter:
		return "\n", nil
	case s == NextIsAccented || s == Chord:
		return "", errors.ErrNotDirectlyRenderable.WithMessage(s.String())
	}
	return "", errors.ErrInvalidSymbolOrdinal.WithMessage(
		fmt.Sprintf("%d is not a defined symbol", uint8(s)))
}

func (s Symbol) String() string {
	switch {
	case s == Space:
		return "Space"
	case s.IsLetter():
		return string(rune('A' + s - A))
	case s == NextIsAccented:
		return "NextIsAccented"
	case s == Chord:
		return "Chord"
	case s == Comma:
		return "Comma"
	case s == Enter:
		return "Enter"
	}
	return fmt.Sprintf("Symbol(%d)", uint8(s))
}

// accentedExpansions maps each lower-case accented letter to the symbols
// that encode it.
var accentedExpansions = map[rune][]Symbol{
	'ě': {NextIsAccented, E},
	'š': {NextIsAccented, S},
	'č': {NextIsAccented, C},
	'ř': {NextIsAccented, R},
	'ž': {NextIsAccented, Z},
	'ď': {NextIsAccented, D},
	'ý': {NextIsAccented, Y},
	'á': {NextIsAccented, A},
	'í': {NextIsAccented, I},
	'é': {NextIsAccented, NextIsAccented, E},
	'ó': {NextIsAccented, O},
	'ú': {NextIsAccented, U},
	'ů': {NextIsAccented, U},
}

// accentedGlyphs is the reverse of accentedExpansions for everything written
// with a single marker. ů shares its encoding with ú and decodes as ú.
var accentedGlyphs = map[Symbol]string{
	E: "ě",
	S: "š",
	C: "č",
	R: "ř",
	Z: "ž",
	D: "ď",
	Y: "ý",
	A: "á",
	I: "í",
	O: "ó",
	U: "ú",
}

// AcuteE is the text for [NextIsAccented, NextIsAccented, E].
const AcuteE = "é"

// ForCharacter returns the symbols encoding a single character. Letters are
// case-insensitive. Characters outside the alphabet give
// [errors.ErrUnknownCharacter].
func ForCharacter(c rune) ([]Symbol, error) {
	switch c {
	case ' ':
		return []Symbol{Space}, nil
	case '\n':
		return []Symbol{Enter}, nil
	case ',':
		return []Symbol{Comma}, nil
	case '.':
		return []Symbol{Comma, Comma}, nil
	case '#':
		return []Symbol{Chord}, nil
	}

	if c < unicode.MaxASCII && unicode.IsLetter(c) {
		return []Symbol{A + Symbol(unicode.ToUpper(c)-'A')}, nil
	}

	expansion, ok := accentedExpansions[unicode.ToLower(c)]
	if ok {
		result := make([]Symbol, len(expansion))
		copy(result, expansion)
		return result, nil
	}
	return nil, errors.ErrUnknownCharacter.WithMessage(fmt.Sprintf("%q", c))
}

// AccentedGlyph returns the accented letter for a base letter following a
// single NextIsAccented marker. Letters the alphabet never accents give
// [errors.ErrUnsupportedAccentBase].
func AccentedGlyph(base Symbol) (string, error) {
	glyph, ok := accentedGlyphs[base]
	if !ok {
		return "", errors.ErrUnsupportedAccentBase.WithMessage(
			fmt.Sprintf("NextIsAccented followed by %s", base))
	}
	return glyph, nil
}
