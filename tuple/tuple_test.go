package tuple

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		w        float32
		isPoint  bool
		isVector bool
	}{
		{"Point", 1.0, true, false},
		{"Vector", 0.0, false, true},
		{"Neither", -1.0, false, false},
		{"NearlyPoint", 1.0 - Epsilon, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(4.3, -4.2, 3.1, tt.w)
			assert.Equal(t, float32(4.3), a.X)
			assert.Equal(t, float32(-4.2), a.Y)
			assert.Equal(t, float32(3.1), a.Z)
			assert.Equal(t, tt.w, a.W)
			assert.Equal(t, tt.isPoint, a.IsPoint())
			assert.Equal(t, tt.isVector, a.IsVector())
		})
	}
}

func TestConstructors(t *testing.T) {
	t.Run("NewPoint", func(t *testing.T) {
		p := NewPoint(4.3, -4.2, 3.1)
		assert.Equal(t, float32(1), p.W)
		assert.Equal(t, New(4.3, -4.2, 3.1, 1), p)
	})

	t.Run("NewVector", func(t *testing.T) {
		v := NewVector(4.3, -4.2, 3.1)
		assert.Equal(t, float32(0), v.W)
		assert.Equal(t, New(4.3, -4.2, 3.1, 0), v)
	})

	t.Run("Origin", func(t *testing.T) {
		assert.Equal(t, New(0, 0, 0, 1), Origin())
		assert.Equal(t, Origin(), Zero())
		assert.True(t, Zero().IsPoint())
	})

	t.Run("ZeroVector", func(t *testing.T) {
		assert.Equal(t, New(0, 0, 0, 0), ZeroVector())
		assert.True(t, ZeroVector().IsVector())
	})

	t.Run("Array", func(t *testing.T) {
		a := New(1, 2, 3, 4)
		assert.Equal(t, [4]float32{1, 2, 3, 4}, a.Array())
		assert.Equal(t, a, FromArray(a.Array()))
	})
}

func TestEqual(t *testing.T) {
	a := New(4.3, -4.2, 3.1, 0.0)
	b := New(4.3, -4.2, 3.1, 0.0)
	c := New(4.3, -4.2, 3.1, 1.0)

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, b.Equal(c))

	t.Run("BelowEpsilon", func(t *testing.T) {
		assert.True(t, New(0, 0, 0, 0).Equal(New(Epsilon/2, 0, 0, 0)))
	})

	t.Run("ExactlyEpsilon", func(t *testing.T) {
		// 1 and 1+2^-23 are adjacent float32 values; the comparison is strict.
		x := New(1, 1, 1, 1)
		for i := range 4 {
			arr := x.Array()
			arr[i] += Epsilon
			assert.False(t, x.Equal(FromArray(arr)), "component %d", i)
		}
	})

	t.Run("EachComponent", func(t *testing.T) {
		x := New(1, 2, 3, 4)
		for i := range 4 {
			arr := x.Array()
			arr[i] += 0.5
			assert.False(t, x.Equal(FromArray(arr)), "component %d", i)
		}
	})
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Tuple
		expected Tuple
	}{
		{"PointPlusVector", New(3, -2, 5, 1), New(-2, 3, 1, 0), New(1, 1, 6, 1)},
		{"VectorPlusPoint", NewVector(-2, 3, 1), NewPoint(3, -2, 5), NewPoint(1, 1, 6)},
		{"VectorPlusVector", NewVector(1, 2, 3), NewVector(4, 5, 6), NewVector(5, 7, 9)},
		{"Arbitrary", New(1, 2, 3, 4), New(1, 1, 1, -4), New(2, 3, 4, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Add(tt.b)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s, want %s", got, tt.expected)
		})
	}
}

// One early draft of this type rejected point + vector instead of
// point + point. Translating a point by a vector is the defining use of the
// operation, so point + vector must succeed and only point + point fails.
func TestAdd_PointVectorRule(t *testing.T) {
	p := NewPoint(3, -2, 5)
	v := NewVector(-2, 3, 1)

	got, err := p.Add(v)
	require.NoError(t, err)
	assert.True(t, got.IsPoint())

	_, err = p.Add(NewPoint(-2, 3, 1))
	require.Error(t, err)
}

func TestAdd_TwoPoints(t *testing.T) {
	a := NewPoint(3, -2, 5)
	b := NewPoint(-2, 3, 1)

	got, err := a.Add(b)
	require.Error(t, err)
	assert.Equal(t, Tuple{}, got)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	var ia *ErrInvalidAddition
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, a, ia.LHS)
	assert.Equal(t, b, ia.RHS)
	assert.Equal(t, "cannot add two points: point(3, -2, 5) + point(-2, 3, 1)", err.Error())

	var is *ErrInvalidSubtraction
	assert.False(t, errors.As(err, &is))
}

func TestSub(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Tuple
		expected Tuple
	}{
		{"TwoPoints", NewPoint(3, 2, 1), NewPoint(5, 6, 7), NewVector(-2, -4, -6)},
		{"TwoVectors", NewVector(3, 2, 1), NewVector(5, 6, 7), NewVector(-2, -4, -6)},
		{"VectorFromPoint", NewPoint(3, 2, 1), NewVector(5, 6, 7), NewPoint(-2, -4, -6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.a.Sub(tt.b)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestSub_PointFromVector(t *testing.T) {
	a := NewVector(3, -2, 5)
	b := NewPoint(-2, 3, 1)

	_, err := a.Sub(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidOperation)

	var is *ErrInvalidSubtraction
	require.ErrorAs(t, err, &is)
	assert.Equal(t, a, is.LHS)
	assert.Equal(t, b, is.RHS)
	assert.Equal(t, "cannot subtract a point from a vector: vector(3, -2, 5) - point(-2, 3, 1)", err.Error())
}

func TestMust(t *testing.T) {
	p := NewPoint(1, 2, 3)
	v := NewVector(1, 1, 1)

	assert.Equal(t, NewPoint(2, 3, 4), p.MustAdd(v))
	assert.Equal(t, NewPoint(0, 1, 2), p.MustSub(v))

	assert.PanicsWithError(t, (&ErrInvalidAddition{LHS: p, RHS: p}).Error(), func() {
		p.MustAdd(p)
	})
	assert.PanicsWithError(t, (&ErrInvalidSubtraction{LHS: v, RHS: p}).Error(), func() {
		v.MustSub(p)
	})
}

func TestNegate(t *testing.T) {
	a := New(1, -2, 3, -4)
	assert.True(t, New(-1, 2, -3, 4).Equal(a.Negate()))

	t.Run("Point", func(t *testing.T) {
		n := NewPoint(1, 2, 3).Negate()
		assert.Equal(t, float32(-1), n.W)
		assert.False(t, n.IsPoint())
		assert.False(t, n.IsVector())
	})

	t.Run("Vector", func(t *testing.T) {
		n := NewVector(1, 2, 3).Negate()
		assert.True(t, n.IsVector())
		assert.True(t, NewVector(-1, -2, -3).Equal(n))
	})

	t.Run("DoesNotMutate", func(t *testing.T) {
		b := New(1, 2, 3, 4)
		_ = b.Negate()
		assert.Equal(t, New(1, 2, 3, 4), b)
	})
}

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		in       Tuple
		expected string
	}{
		{"Point", NewPoint(4.3, -4.2, 3.1), "point(4.3, -4.2, 3.1)"},
		{"Vector", NewVector(1, 0, -1), "vector(1, 0, -1)"},
		{"Other", New(1, 2, 3, -1), "tuple(1, 2, 3, -1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.String())
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	p := NewPoint(1, 2, 3)
	v := NewVector(0.5, 0.25, 0.125)

	var sink Tuple
	for b.Loop() {
		sink, _ = p.Add(v)
	}
	_ = sink
}
