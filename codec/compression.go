package codec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionType selects how the body of a binary block is compressed.
type CompressionType uint8

const (
	// CompressionNone stores the payload as is.
	CompressionNone CompressionType = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 CompressionType = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD CompressionType = 2
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

func (c CompressionType) valid() bool {
	return c <= CompressionZSTD
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecodeAllCapLimit(true))
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// Body format: [uncompressed uint32][compressed uint32][data...].
// compressed == 0 means data is stored raw.
const bodyHeaderSize = 8

// minSavings is the largest compressed/raw ratio worth keeping.
const minSavings = 0.9

// compressBody wraps data in a body header, compressing it when that saves
// at least 10%.
func compressBody(data []byte, ct CompressionType) ([]byte, error) {
	var compressed []byte
	var err error

	switch ct {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed, err = compressZSTD(data)
	default:
		return nil, &ErrUnsupportedCompression{Compression: ct}
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*minSavings {
		out := make([]byte, bodyHeaderSize+len(data))
		binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(out[4:], 0)
		copy(out[bodyHeaderSize:], data)
		return out, nil
	}

	out := make([]byte, bodyHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(out[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(out[4:], uint32(len(compressed)))
	copy(out[bodyHeaderSize:], compressed)
	return out, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}

	return dst[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// Upper bounds on how far a compressed body can expand. LZ4 match-length
// extension bytes add at most 255 output bytes each. The densest ZSTD form is
// an RLE block: a 3-byte header and 1 byte expanding to a 128 KiB block.
const (
	maxLZ4Ratio  = 255
	maxZSTDRatio = 128 << 10 / 4
)

// decompressBody reverses compressBody. want is the payload size announced by
// the block header. Bodies that disagree with it, or that claim more output
// than their compressed bytes can produce, are rejected before any
// allocation.
func decompressBody(data []byte, ct CompressionType, want uint32) ([]byte, error) {
	if len(data) < bodyHeaderSize {
		return nil, fmt.Errorf("%w: body header", ErrTruncated)
	}

	rawSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	data = data[bodyHeaderSize:]

	if rawSize != want {
		return nil, fmt.Errorf("%w: body holds %d bytes, header declares %d", ErrTruncated, rawSize, want)
	}

	if compressedSize == 0 {
		if uint64(len(data)) < uint64(rawSize) {
			return nil, fmt.Errorf("%w: payload", ErrTruncated)
		}
		return data[:rawSize], nil
	}

	if uint64(len(data)) < uint64(compressedSize) {
		return nil, fmt.Errorf("%w: compressed payload", ErrTruncated)
	}
	data = data[:compressedSize]

	switch ct {
	case CompressionLZ4:
		if uint64(rawSize) > uint64(compressedSize)*maxLZ4Ratio {
			return nil, fmt.Errorf("%w: %d lz4 bytes cannot expand to %d", ErrCorruptBody, compressedSize, rawSize)
		}

		out := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %w", ErrCorruptBody, err)
		}
		if uint32(n) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBody)
		}
		return out, nil

	case CompressionZSTD:
		if uint64(rawSize) > uint64(compressedSize)*maxZSTDRatio {
			return nil, fmt.Errorf("%w: %d zstd bytes cannot expand to %d", ErrCorruptBody, compressedSize, rawSize)
		}

		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer putZstdDecoder(dec)

		// The decoder is capped to cap(dst), so a frame header declaring a
		// larger content size fails instead of allocating it.
		out, err := dec.DecodeAll(data, make([]byte, 0, rawSize))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrCorruptBody, err)
		}
		if uint32(len(out)) != rawSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorruptBody)
		}
		return out, nil

	default:
		// A raw block carries no compressed size.
		return nil, fmt.Errorf("%w: %s block with compressed size %d", ErrCorruptBody, ct, compressedSize)
	}
}
