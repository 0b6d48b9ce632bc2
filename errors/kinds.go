// Error kinds shared by every stage of the codec. Each kind has a default
// message, so callers that only care about the category can compare kinds
// instead of matching message text.

package errors

import (
	"fmt"
)

type Kind int

var errorMessagesByKind map[Kind]string

const (
	KindUnknownCharacter Kind = iota + 1
	KindNotDirectlyRenderable
	KindInvalidSymbolOrdinal
	KindUnsupportedAccentBase
	KindPackedValueOverflow
	KindTruncatedSequence
	KindMalformedArtifact
	KindIOFailed
)

var ErrUnknownCharacter = New(KindUnknownCharacter)
var ErrNotDirectlyRenderable = New(KindNotDirectlyRenderable)
var ErrInvalidSymbolOrdinal = New(KindInvalidSymbolOrdinal)
var ErrUnsupportedAccentBase = New(KindUnsupportedAccentBase)
var ErrPackedValueOverflow = New(KindPackedValueOverflow)
var ErrTruncatedSequence = New(KindTruncatedSequence)
var ErrMalformedArtifact = New(KindMalformedArtifact)
var ErrIOFailed = New(KindIOFailed)

func init() {
	errorMessagesByKind = make(map[Kind]string, 8)
	errorMessagesByKind[KindUnknownCharacter] = "Character not in alphabet"
	errorMessagesByKind[KindNotDirectlyRenderable] = "Symbol has no standalone text form"
	errorMessagesByKind[KindInvalidSymbolOrdinal] = "Invalid symbol ordinal"
	errorMessagesByKind[KindUnsupportedAccentBase] = "Letter cannot carry an accent"
	errorMessagesByKind[KindPackedValueOverflow] = "Packed value exceeds 40 bits"
	errorMessagesByKind[KindTruncatedSequence] = "Symbol sequence ends in the middle of a marker"
	errorMessagesByKind[KindMalformedArtifact] = "Artifact length is not a multiple of the block size"
	errorMessagesByKind[KindIOFailed] = "Input/output error"
}

// StrError returns the default message for an error kind.
func StrError(kind Kind) string {
	message, ok := errorMessagesByKind[kind]
	if ok {
		return message
	}
	return fmt.Sprintf("error kind %d not recognized.", int(kind))
}

func (kind Kind) String() string {
	return StrError(kind)
}
