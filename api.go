// Package textpack packs text written in a small alphabet into five bits per
// character.
//
// [Encode] and [Decode] are all most callers need. The binary form of an
// [Artifact] is just its blocks concatenated, five bytes each, with no header.
package textpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dargueta/textpack/errors"
	"github.com/dargueta/textpack/utilities/packing"
)

// Artifact is packed text: a sequence of 5-byte blocks in the same order as
// the text they encode.
type Artifact struct {
	blocks []packing.Block
}

// Encode packs text into an [Artifact]. It fails with
// [errors.ErrUnknownCharacter] if the text has a character outside the
// alphabet.
func Encode(text string) (Artifact, error) {
	parsed, err := packing.Build(text)
	if err != nil {
		return Artifact{}, err
	}

	blocks, err := packing.PackAll(parsed)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{blocks: blocks}, nil
}

// Decode unpacks an artifact back into text, without highlighting chorded
// symbols.
//
// The result ends with the newline and padding spaces added during encoding.
// Callers that want the original text must trim trailing whitespace.
func Decode(artifact Artifact) (string, error) {
	return DecodeWith(artifact, packing.NewRenderer())
}

// DecodeWith is [Decode] with a custom renderer.
func DecodeWith(artifact Artifact, renderer packing.Renderer) (string, error) {
	return renderer.Render(artifact.blocks)
}

// NewArtifact creates an artifact from existing blocks. The blocks are copied.
func NewArtifact(blocks []packing.Block) Artifact {
	copied := make([]packing.Block, len(blocks))
	copy(copied, blocks)
	return Artifact{blocks: copied}
}

// ParseArtifact reads the binary form of an artifact. The length must be an
// exact multiple of [packing.BytesPerBlock], otherwise it fails with
// [errors.ErrMalformedArtifact]. Blocks aren't validated until decoding.
func ParseArtifact(raw []byte) (Artifact, error) {
	if len(raw)%packing.BytesPerBlock != 0 {
		return Artifact{}, errors.NewWithMessage(
			errors.KindMalformedArtifact,
			fmt.Sprintf(
				"got %d bytes, %d left over",
				len(raw),
				len(raw)%packing.BytesPerBlock,
			),
		)
	}

	blocks := make([]packing.Block, len(raw)/packing.BytesPerBlock)
	for i := range blocks {
		copy(blocks[i][:], raw[i*packing.BytesPerBlock:])
	}
	return Artifact{blocks: blocks}, nil
}

// ReadArtifact reads an entire artifact from a stream, up to EOF. Failures of
// the stream itself are wrapped in [errors.ErrIOFailed].
func ReadArtifact(input io.Reader) (Artifact, error) {
	raw, err := io.ReadAll(input)
	if err != nil {
		return Artifact{}, errors.ErrIOFailed.Wrap(err)
	}
	return ParseArtifact(raw)
}

// Blocks returns a copy of the artifact's blocks.
func (artifact Artifact) Blocks() []packing.Block {
	copied := make([]packing.Block, len(artifact.blocks))
	copy(copied, artifact.blocks)
	return copied
}

// Len gives the size of the artifact's binary form, in bytes.
func (artifact Artifact) Len() int {
	return len(artifact.blocks) * packing.BytesPerBlock
}

// Equal reports whether both artifacts hold the same blocks in the same order.
func (artifact Artifact) Equal(other Artifact) bool {
	if len(artifact.blocks) != len(other.blocks) {
		return false
	}
	for i := range artifact.blocks {
		if artifact.blocks[i] != other.blocks[i] {
			return false
		}
	}
	return true
}

// MarshalBinary implements [encoding.BinaryMarshaler].
func (artifact Artifact) MarshalBinary() ([]byte, error) {
	raw := make([]byte, 0, artifact.Len())
	for _, block := range artifact.blocks {
		raw = append(raw, block[:]...)
	}
	return raw, nil
}

// UnmarshalBinary implements [encoding.BinaryUnmarshaler].
func (artifact *Artifact) UnmarshalBinary(raw []byte) error {
	parsed, err := ParseArtifact(raw)
	if err != nil {
		return err
	}
	*artifact = parsed
	return nil
}

// WriteTo writes the binary form of the artifact to the output. The returned
// int64 gives the number of bytes written. Write failures are wrapped in
// [errors.ErrIOFailed].
func (artifact Artifact) WriteTo(output io.Writer) (int64, error) {
	raw, _ := artifact.MarshalBinary()
	n, err := io.Copy(output, bytes.NewReader(raw))
	if err != nil {
		return n, errors.ErrIOFailed.Wrap(err)
	}
	return n, nil
}

// String shows the artifact's bytes in hex, five to a group.
func (artifact Artifact) String() string {
	var out bytes.Buffer
	for i, block := range artifact.blocks {
		if i > 0 {
			out.WriteByte(' ')
		}
		fmt.Fprintf(&out, "%x", block[:])
	}
	return out.String()
}
