package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMagic is returned when data does not start with a block header.
	ErrInvalidMagic = errors.New("codec: invalid block magic")

	// ErrUnsupportedVersion is returned for block versions this package cannot read.
	ErrUnsupportedVersion = errors.New("codec: unsupported block version")

	// ErrChecksumMismatch is returned when the decoded payload fails its CRC32C check.
	ErrChecksumMismatch = errors.New("codec: checksum mismatch")

	// ErrTruncated is returned when data ends before the declared content.
	ErrTruncated = errors.New("codec: truncated block")

	// ErrCorruptBody is returned when a block body cannot be decompressed into
	// the payload its header declares.
	ErrCorruptBody = errors.New("codec: corrupt block body")

	// ErrTupleCount is returned when a block decodes to a different number of
	// tuples than the destination holds.
	ErrTupleCount = errors.New("codec: unexpected tuple count")
)

// ErrUnsupportedCompression indicates an unknown compression type.
type ErrUnsupportedCompression struct {
	Compression CompressionType
}

func (e *ErrUnsupportedCompression) Error() string {
	return fmt.Sprintf("codec: unsupported compression type: %d", e.Compression)
}

// ErrUnsupportedType indicates a value the binary codec cannot encode or
// decode into.
type ErrUnsupportedType struct {
	Value any
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("codec: unsupported type %T", e.Value)
}
