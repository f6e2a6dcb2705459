// Package codec encodes tuples for exchange with other components.
//
// Two families are provided:
//   - JSON codecs (JSON, GoJSON) for any value, including tuple.Tuple and
//     []tuple.Tuple, which encode as {"x":..,"y":..,"z":..,"w":..}.
//   - Binary, a packed block format for tuple slices with an optional
//     LZ4 or ZSTD compressed body and a CRC32C checksum.
//
// Every codec has a stable name usable with ByName, so encoded bytes can be
// tagged with the codec that produced them.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// The binary codec returned here writes uncompressed blocks; decoding reads
// the compression type from the block header regardless.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "binary":
		return Binary{}, true
	default:
		return nil, false
	}
}

// MustMarshal marshals v with c and panics on failure.
// A nil codec selects Default.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
