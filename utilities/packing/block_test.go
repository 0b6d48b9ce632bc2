package packing_test

import (
	"math/rand"
	"testing"

	"github.com/dargueta/textpack/errors"
	s "github.com/dargueta/textpack/symbols"
	p "github.com/dargueta/textpack/utilities/packing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var boobiesGroup = p.Group{s.B, s.O, s.O, s.B, s.I, s.E, s.NextIsAccented, s.S}
var boobiesBlock = p.Block{0b01110011, 0b10010111, 0b00100100, 0b11011110, 0b00010011}

func TestPack__KnownGroup(t *testing.T) {
	block, err := p.Pack(boobiesGroup)
	require.NoError(t, err)
	assert.Equal(t, p.Block{0x73, 0x97, 0x24, 0xDE, 0x13}, block)
	assert.Equal(t, boobiesBlock, block)
}

func TestUnpack__KnownBlock(t *testing.T) {
	group, err := p.Unpack(boobiesBlock)
	require.NoError(t, err)
	assert.Equal(t, boobiesGroup, group)
}

type blockTestCase struct {
	Group p.Group
	Block p.Block
	Name  string
}

var blockTestCases = []blockTestCase{
	{p.Group{}, p.Block{}, "all spaces"},
	{
		p.Group{s.Space, s.Space, s.Space, s.Space, s.Space, s.Space, s.Space, s.Enter},
		p.Block{0x1E, 0, 0, 0, 0},
		"enter in last field",
	},
	{
		p.Group{s.Enter},
		p.Block{0, 0, 0, 0, 0xF0},
		"enter in first field",
	},
	{
		p.Group{s.Space, s.Space, s.Space, s.Space, s.Space, s.Space, s.A, s.Space},
		p.Block{0x20, 0, 0, 0, 0},
		"low field",
	},
	{
		p.Group{s.Space, s.Space, s.Space, s.Space, s.Space, s.Space, s.Comma, s.Space},
		p.Block{0xA0, 0x03, 0, 0, 0},
		"field crossing a byte boundary",
	},
	{
		p.Group{s.Space, s.Space, s.Space, s.Space, s.Space, s.Comma, s.Space, s.Space},
		p.Block{0, 0x74, 0, 0, 0},
		"field inside the second byte",
	},
}

func TestPackUnpack__Table(t *testing.T) {
	for _, test := range blockTestCases {
		t.Run(
			test.Name,
			func(t *testing.T) {
				block, err := p.Pack(test.Group)
				require.NoError(t, err, "pack failed")
				assert.Equal(t, test.Block, block, "packed block is wrong")

				group, err := p.Unpack(test.Block)
				require.NoError(t, err, "unpack failed")
				assert.Equal(t, test.Group, group, "unpacked group is wrong")
			},
		)
	}
}

// Round-trip test of random groups of every defined symbol.
func TestPackUnpack__RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(8675309))

	for i := 0; i < 500; i++ {
		var group p.Group
		for j := range group {
			group[j] = s.Symbol(rng.Intn(int(s.Enter) + 1))
		}

		block, err := p.Pack(group)
		require.NoError(t, err, "failed to pack %v", group)
		unpacked, err := p.Unpack(block)
		require.NoError(t, err, "failed to unpack % x", block)
		assert.Equal(t, group, unpacked)
	}
}

func TestPack__UndefinedSymbol(t *testing.T) {
	group := p.Group{s.A, s.B, s.Symbol(31)}
	_, err := p.Pack(group)
	assert.ErrorIs(t, err, errors.ErrInvalidSymbolOrdinal)

	group = p.Group{s.Symbol(200)}
	_, err = p.Pack(group)
	assert.ErrorIs(t, err, errors.ErrInvalidSymbolOrdinal)
}

func TestUnpack__UndefinedOrdinal(t *testing.T) {
	tests := []struct {
		Block p.Block
		Name  string
	}{
		{p.Block{0x1F, 0, 0, 0, 0}, "last field"},
		{p.Block{0, 0, 0, 0, 0xF8}, "first field"},
		{p.Block{0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, "every field"},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				_, err := p.Unpack(test.Block)
				assert.ErrorIs(t, err, errors.ErrInvalidSymbolOrdinal)
			},
		)
	}
}

func TestPackAll__Order(t *testing.T) {
	parsed := p.ParsedText{boobiesGroup, {}, {s.Enter}}
	blocks, err := p.PackAll(parsed)
	require.NoError(t, err)
	assert.Equal(t, []p.Block{boobiesBlock, {}, {0, 0, 0, 0, 0xF0}}, blocks)

	roundTripped, err := p.UnpackAll(blocks)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(roundTripped))
}

func TestUnpackAll__BadBlockReturnsNothing(t *testing.T) {
	blocks := []p.Block{boobiesBlock, {0x1F, 0, 0, 0, 0}}
	parsed, err := p.UnpackAll(blocks)
	assert.ErrorIs(t, err, errors.ErrInvalidSymbolOrdinal)
	assert.Nil(t, parsed)
}

func TestSizes(t *testing.T) {
	assert.Equal(t, 5, p.BytesPerBlock)
	assert.Equal(t, 8, p.SymbolsPerGroup)
	assert.Len(t, p.Block{}, 5)
	assert.Len(t, p.Group{}, 8)
}
