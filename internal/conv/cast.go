package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
// On 32-bit platforms values above math.MaxInt32 are rejected.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// MulUint32 returns a*b, failing if the product does not fit in uint32.
func MulUint32(a, b uint32) (uint32, error) {
	p := uint64(a) * uint64(b)
	if p > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds uint32", a, b)
	}
	return uint32(p), nil
}
