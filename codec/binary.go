package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hupe1980/raygo/internal/conv"
	"github.com/hupe1980/raygo/internal/hash"
	"github.com/hupe1980/raygo/tuple"
)

// Block layout, little-endian:
//
//	[0:4]   magic "RGTB"
//	[4]     version
//	[5]     compression type
//	[6:8]   reserved
//	[8:12]  tuple count
//	[12:16] CRC32C of the uncompressed payload
//	[16:]   body (see compressBody)
//
// The payload is count × 16 bytes: X, Y, Z, W as float32 bits.
const (
	blockMagic      = "RGTB"
	blockVersion    = 1
	blockHeaderSize = 16
	tupleSize       = 16
)

// EncodeTuples packs ts into a binary block.
func EncodeTuples(ts []tuple.Tuple, optFns ...Option) ([]byte, error) {
	o := applyOptions(optFns)
	if !o.compression.valid() {
		return nil, &ErrUnsupportedCompression{Compression: o.compression}
	}

	count, err := conv.IntToUint32(len(ts))
	if err != nil {
		return nil, err
	}
	if _, err := conv.MulUint32(count, tupleSize); err != nil {
		return nil, err
	}

	payload := make([]byte, len(ts)*tupleSize)
	for i, t := range ts {
		off := i * tupleSize
		for j, c := range t.Array() {
			binary.LittleEndian.PutUint32(payload[off+j*4:], math.Float32bits(c))
		}
	}

	body, err := compressBody(payload, o.compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, blockHeaderSize, blockHeaderSize+len(body))
	copy(out[0:4], blockMagic)
	out[4] = blockVersion
	out[5] = byte(o.compression)
	binary.LittleEndian.PutUint32(out[8:], count)
	binary.LittleEndian.PutUint32(out[12:], hash.CRC32C(payload))

	return append(out, body...), nil
}

// DecodeTuples unpacks a block produced by EncodeTuples. The compression type
// is read from the header.
func DecodeTuples(data []byte) ([]tuple.Tuple, error) {
	if len(data) < blockHeaderSize {
		return nil, fmt.Errorf("%w: header", ErrTruncated)
	}
	if string(data[0:4]) != blockMagic {
		return nil, ErrInvalidMagic
	}
	if data[4] != blockVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}

	ct := CompressionType(data[5])
	if !ct.valid() {
		return nil, &ErrUnsupportedCompression{Compression: ct}
	}

	count := binary.LittleEndian.Uint32(data[8:])
	checksum := binary.LittleEndian.Uint32(data[12:])

	size, err := conv.MulUint32(count, tupleSize)
	if err != nil {
		return nil, err
	}

	payload, err := decompressBody(data[blockHeaderSize:], ct, size)
	if err != nil {
		return nil, err
	}

	if hash.CRC32C(payload) != checksum {
		return nil, ErrChecksumMismatch
	}

	n, err := conv.Uint32ToInt(count)
	if err != nil {
		return nil, err
	}

	ts := make([]tuple.Tuple, n)
	for i := range ts {
		off := i * tupleSize
		var c [4]float32
		for j := range c {
			c[j] = math.Float32frombits(binary.LittleEndian.Uint32(payload[off+j*4:]))
		}
		ts[i] = tuple.FromArray(c)
	}

	return ts, nil
}

// Binary is a Codec for tuple.Tuple and []tuple.Tuple values using the block
// format of EncodeTuples.
type Binary struct {
	Compression CompressionType
}

// Marshal encodes a tuple.Tuple, *tuple.Tuple or []tuple.Tuple.
func (b Binary) Marshal(v any) ([]byte, error) {
	switch x := v.(type) {
	case tuple.Tuple:
		return EncodeTuples([]tuple.Tuple{x}, WithCompression(b.Compression))
	case *tuple.Tuple:
		if x == nil {
			return nil, &ErrUnsupportedType{Value: v}
		}
		return EncodeTuples([]tuple.Tuple{*x}, WithCompression(b.Compression))
	case []tuple.Tuple:
		return EncodeTuples(x, WithCompression(b.Compression))
	default:
		return nil, &ErrUnsupportedType{Value: v}
	}
}

// Unmarshal decodes into a *tuple.Tuple (the block must hold exactly one
// tuple) or a *[]tuple.Tuple.
func (Binary) Unmarshal(data []byte, v any) error {
	switch x := v.(type) {
	case *tuple.Tuple:
		if x == nil {
			return &ErrUnsupportedType{Value: v}
		}
		ts, err := DecodeTuples(data)
		if err != nil {
			return err
		}
		if len(ts) != 1 {
			return fmt.Errorf("%w: block holds %d tuples, want 1", ErrTupleCount, len(ts))
		}
		*x = ts[0]
		return nil
	case *[]tuple.Tuple:
		if x == nil {
			return &ErrUnsupportedType{Value: v}
		}
		ts, err := DecodeTuples(data)
		if err != nil {
			return err
		}
		*x = ts
		return nil
	default:
		return &ErrUnsupportedType{Value: v}
	}
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
