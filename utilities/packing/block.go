package packing

import (
	"fmt"

	"github.com/dargueta/textpack/errors"
	"github.com/dargueta/textpack/symbols"
)

// SymbolsPerGroup is the number of symbols packed into a single block.
const SymbolsPerGroup = 8

// BytesPerBlock is the size of a packed group, in bytes.
const BytesPerBlock = SymbolsPerGroup * symbols.BitsPerSymbol / 8

// maxPackedValue is the largest integer a block can hold.
const maxPackedValue = uint64(1)<<(SymbolsPerGroup*symbols.BitsPerSymbol) - 1

// Group is one unit of (de)compression: exactly eight symbols.
type Group [SymbolsPerGroup]symbols.Symbol

// Block is the packed form of a [Group].
type Block [BytesPerBlock]byte

// Pack converts a group of symbols into its 5-byte block.
//
// Symbol i of the group is stored in bits (7-i)*5 through (7-i)*5+4 of a 40-bit
// integer, which is then written least significant byte first. See the
// package documentation for an example.
func Pack(group Group) (Block, error) {
	value := uint64(0)
	for i, symbol := range group {
		if !symbol.IsDefined() {
			return Block{}, errors.ErrInvalidSymbolOrdinal.WithMessage(
				fmt.Sprintf("can't pack %s at index %d", symbol, i))
		}
		shift := uint((SymbolsPerGroup - 1 - i) * symbols.BitsPerSymbol)
		value |= uint64(symbol) << shift
	}

	if value > maxPackedValue {
		return Block{}, errors.ErrPackedValueOverflow.WithMessage(
			fmt.Sprintf("%#x", value))
	}

	var block Block
	for i := range block {
		block[i] = byte(value >> (8 * i))
	}
	return block, nil
}

// Unpack is the inverse of [Pack]. It fails with
// [errors.ErrInvalidSymbolOrdinal] if any 5-bit field doesn't name a symbol.
func Unpack(block Block) (Group, error) {
	value := uint64(0)
	for i, b := range block {
		value |= uint64(b) << (8 * i)
	}

	var group Group
	for i := range group {
		shift := uint((SymbolsPerGroup - 1 - i) * symbols.BitsPerSymbol)
		ordinal := uint8(value>>shift) & symbols.MaxOrdinal

		symbol, err := symbols.FromOrdinal(ordinal)
		if err != nil {
			return Group{}, errors.ErrInvalidSymbolOrdinal.WithMessage(
				fmt.Sprintf("field %d of block % x holds %d", i, block[:], ordinal))
		}
		group[i] = symbol
	}
	return group, nil
}

// PackAll packs every group of parsed text, in order.
func PackAll(parsed ParsedText) ([]Block, error) {
	blocks := make([]Block, len(parsed))
	for i, group := range parsed {
		block, err := Pack(group)
		if err != nil {
			return nil, err
		}
		blocks[i] = block
	}
	return blocks, nil
}

// UnpackAll unpacks every block, in order. Nothing is returned if any block is
// invalid.
func UnpackAll(blocks []Block) (ParsedText, error) {
	parsed := make(ParsedText, len(blocks))
	for i, block := range blocks {
		group, err := Unpack(block)
		if err != nil {
			return nil, err
		}
		parsed[i] = group
	}
	return parsed, nil
}
