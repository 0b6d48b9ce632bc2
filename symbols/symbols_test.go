package symbols_test

import (
	"testing"

	"github.com/dargueta/textpack/errors"
	s "github.com/dargueta/textpack/symbols"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type characterTestCase struct {
	Input    rune
	Expected []s.Symbol
	Name     string
}

var characterTestCases = []characterTestCase{
	{'a', []s.Symbol{s.A}, "lower case"},
	{'Q', []s.Symbol{s.Q}, "upper case"},
	{'z', []s.Symbol{s.Z}, "last letter"},
	{' ', []s.Symbol{s.Space}, "space"},
	{'\n', []s.Symbol{s.Enter}, "newline"},
	{',', []s.Symbol{s.Comma}, "comma"},
	{'.', []s.Symbol{s.Comma, s.Comma}, "period"},
	{'#', []s.Symbol{s.Chord}, "chord"},
	{'š', []s.Symbol{s.NextIsAccented, s.S}, "s caron"},
	{'Š', []s.Symbol{s.NextIsAccented, s.S}, "upper s caron"},
	{'ě', []s.Symbol{s.NextIsAccented, s.E}, "e caron"},
	{'é', []s.Symbol{s.NextIsAccented, s.NextIsAccented, s.E}, "e acute"},
	{'É', []s.Symbol{s.NextIsAccented, s.NextIsAccented, s.E}, "upper e acute"},
	{'ů', []s.Symbol{s.NextIsAccented, s.U}, "u ring"},
	{'ú', []s.Symbol{s.NextIsAccented, s.U}, "u acute"},
	{'Ř', []s.Symbol{s.NextIsAccented, s.R}, "upper r caron"},
}

func TestForCharacter__Basic(t *testing.T) {
	for _, test := range characterTestCases {
		t.Run(
			test.Name,
			func(t *testing.T) {
				result, err := s.ForCharacter(test.Input)
				require.NoError(t, err)
				assert.Equal(t, test.Expected, result)
			},
		)
	}
}

func TestForCharacter__Unknown(t *testing.T) {
	for _, c := range []rune{'1', '?', 'ß', '\t', 'ö', '-'} {
		result, err := s.ForCharacter(c)
		assert.ErrorIs(t, err, errors.ErrUnknownCharacter, "character %q", c)
		assert.Nil(t, result)
	}
}

// Callers own the returned slice; changing it must not affect later calls.
func TestForCharacter__ReturnsCopy(t *testing.T) {
	first, err := s.ForCharacter('é')
	require.NoError(t, err)
	first[2] = s.Z

	second, err := s.ForCharacter('é')
	require.NoError(t, err)
	assert.Equal(t, []s.Symbol{s.NextIsAccented, s.NextIsAccented, s.E}, second)
}

func TestText(t *testing.T) {
	expected := map[s.Symbol]string{
		s.Space: " ",
		s.A:     "a",
		s.M:     "m",
		s.Z:     "z",
		s.Comma: ",",
		s.Enter: "\n",
	}
	for symbol, text := range expected {
		result, err := symbol.Text()
		require.NoError(t, err, "symbol %s", symbol)
		assert.Equal(t, text, result, "symbol %s", symbol)
	}
}

func TestText__Markers(t *testing.T) {
	for _, symbol := range []s.Symbol{s.NextIsAccented, s.Chord} {
		_, err := symbol.Text()
		assert.ErrorIs(t, err, errors.ErrNotDirectlyRenderable, "symbol %s", symbol)
	}
}

func TestFromOrdinal(t *testing.T) {
	for ordinal := uint8(0); ordinal <= 30; ordinal++ {
		symbol, err := s.FromOrdinal(ordinal)
		require.NoError(t, err, "ordinal %d", ordinal)
		assert.EqualValues(t, ordinal, symbol)
		assert.True(t, symbol.IsDefined())
	}

	enter, err := s.FromOrdinal(30)
	require.NoError(t, err)
	assert.Equal(t, s.Enter, enter)
}

func TestFromOrdinal__Undefined(t *testing.T) {
	for _, ordinal := range []uint8{31, 32, 200, 255} {
		_, err := s.FromOrdinal(ordinal)
		assert.ErrorIs(t, err, errors.ErrInvalidSymbolOrdinal, "ordinal %d", ordinal)
	}
	assert.False(t, s.Symbol(31).IsDefined())
}

func TestAccentedGlyph(t *testing.T) {
	expected := map[s.Symbol]string{
		s.S: "š", s.C: "č", s.R: "ř", s.Z: "ž", s.D: "ď",
		s.Y: "ý", s.I: "í", s.O: "ó", s.U: "ú", s.E: "ě", s.A: "á",
	}
	for base, glyph := range expected {
		result, err := s.AccentedGlyph(base)
		require.NoError(t, err, "base %s", base)
		assert.Equal(t, glyph, result)
	}

	for _, base := range []s.Symbol{s.B, s.Q, s.Space, s.Comma, s.Chord} {
		_, err := s.AccentedGlyph(base)
		assert.ErrorIs(t, err, errors.ErrUnsupportedAccentBase, "base %s", base)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "Space", s.Space.String())
	assert.Equal(t, "K", s.K.String())
	assert.Equal(t, "NextIsAccented", s.NextIsAccented.String())
	assert.Equal(t, "Enter", s.Enter.String())
	assert.Equal(t, "Symbol(31)", s.Symbol(31).String())
}
