// Package raygo provides the geometric primitives of a ray tracer.
//
// The core type lives in the tuple package: a homogeneous (x, y, z, w) tuple
// that represents points (w == 1) and vectors (w == 0), with affine-checked
// arithmetic.
//
// # Quick Start
//
//	p := tuple.NewPoint(3, -2, 5)
//	v := tuple.NewVector(-2, 3, 1)
//	q, err := p.Add(v) // point(1, 1, 6)
//
// Invalid combinations are reported as typed errors:
//
//	_, err := p.Add(p)
//	errors.Is(err, tuple.ErrInvalidOperation) // true
//
// # Encoding
//
// The codec package encodes tuples as JSON or as packed binary blocks with
// optional LZ4/ZSTD compression:
//
//	data, _ := codec.EncodeTuples(points, codec.WithCompression(codec.CompressionZSTD))
//	points, _ = codec.DecodeTuples(data)
//
// # Logging
//
// Logger wraps log/slog with helpers for tuple operations:
//
//	logger := raygo.NewTextLogger(slog.LevelDebug)
//	q, err := p.Add(v)
//	logger.LogOperation(ctx, "add", p, v, q, err)
package raygo
