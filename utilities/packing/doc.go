// Package packing converts text into 5-bit symbols packed eight to a block,
// and back.
//
// Most text we care about uses a tiny alphabet: 26 letters, a space, a couple
// of punctuation marks, a newline, and a handful of Czech accented letters.
// Thirty-one values fit in five bits, so storing one character per byte wastes
// three bits of every byte. Eight 5-bit symbols fill exactly 40 bits, or five
// bytes, which is where the block size comes from. For plain text this is a
// flat 37.5% reduction; accented letters and periods take two symbols each
// and eat into that.
//
// A block is built by treating the eight symbols as a single 40-bit integer.
// The first symbol occupies the most significant five bits and the last symbol
// the least significant, but the integer is then written out least significant
// byte first. For example, the group
//
//	B  O  O  B  I  E  NextIsAccented  S
//	2 15 15  2  9  5  27             19
//
// is the integer 0x13DE249773, stored as the bytes
//
//	73 97 24 DE 13
//
// Don't "fix" this to be consistently big- or little-endian; existing data
// depends on it.
//
// The stream builder always appends an Enter symbol after the input and pads
// the final group with spaces, so rendered text ends with a newline followed
// by zero or more spaces. Callers wanting the original text back need to trim
// trailing whitespace themselves.
//
// By default the renderer decodes "é" only in the form the builder writes it,
// NextIsAccented NextIsAccented E.

package packing
