package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	v, err := IntToUint32(42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	_, err = IntToUint32(-1)
	assert.Error(t, err)

	if math.MaxInt > math.MaxUint32 {
		_, err = IntToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	}
}

func TestUint32ToInt(t *testing.T) {
	v, err := Uint32ToInt(7)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestMulUint32(t *testing.T) {
	v, err := MulUint32(1000, 16)
	require.NoError(t, err)
	assert.Equal(t, uint32(16000), v)

	_, err = MulUint32(math.MaxUint32, 16)
	assert.Error(t, err)
}
