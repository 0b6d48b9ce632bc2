package testing

import (
	"encoding/hex"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadArtifact returns a stream over a copy of the given packed bytes.
//
//   - Writes to the stream do not affect `packed`.
//   - The stream's size is fixed to `len(packed)`. Writing past the end of it
//     triggers an error.
func LoadArtifact(t *testing.T, packed []byte) io.ReadWriteSeeker {
	require.Zero(
		t, len(packed)%5, "packed artifact has a partial block (%d bytes)", len(packed))

	buffer := make([]byte, len(packed))
	copy(buffer, packed)
	return bytesextra.NewReadWriteSeeker(buffer)
}

// MustDecodeHex converts a hex string to bytes, failing the test if it's
// malformed.
func MustDecodeHex(t *testing.T, encoded string) []byte {
	raw, err := hex.DecodeString(encoded)
	require.NoErrorf(t, err, "bad hex string in test: %q", encoded)
	return raw
}
