package tuple

import "fmt"

// Epsilon is the float32 machine epsilon (2^-23), the tolerance used by Equal.
const Epsilon float32 = 0x1p-23

const (
	pointW  float32 = 1
	vectorW float32 = 0
)

// Tuple is a point or vector in homogeneous coordinates.
//
// Treat a Tuple as immutable; all methods use value receivers and return new
// values.
type Tuple struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
	W float32 `json:"w"`
}

// New returns a tuple with an explicit discriminant. w is not validated.
func New(x, y, z, w float32) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint returns the point (x, y, z).
func NewPoint(x, y, z float32) Tuple {
	return New(x, y, z, pointW)
}

// NewVector returns the vector (x, y, z).
func NewVector(x, y, z float32) Tuple {
	return New(x, y, z, vectorW)
}

// Zero returns the point at the origin. It is identical to Origin.
func Zero() Tuple {
	return Origin()
}

// Origin returns the point (0, 0, 0).
func Origin() Tuple {
	return NewPoint(0, 0, 0)
}

// ZeroVector returns the vector (0, 0, 0).
func ZeroVector() Tuple {
	return NewVector(0, 0, 0)
}

// FromArray is the inverse of Array.
func FromArray(a [4]float32) Tuple {
	return New(a[0], a[1], a[2], a[3])
}

// Array returns the components in X, Y, Z, W order.
func (t Tuple) Array() [4]float32 {
	return [4]float32{t.X, t.Y, t.Z, t.W}
}

// IsPoint reports whether w is exactly 1.
func (t Tuple) IsPoint() bool {
	return t.W == pointW
}

// IsVector reports whether w is exactly 0.
func (t Tuple) IsVector() bool {
	return t.W == vectorW
}

// Equal reports whether every component of t differs from the matching
// component of o by strictly less than Epsilon.
func (t Tuple) Equal(o Tuple) bool {
	return near(t.X, o.X) &&
		near(t.Y, o.Y) &&
		near(t.Z, o.Z) &&
		near(t.W, o.W)
}

// Add returns the component-wise sum of t and o.
// Adding two points is rejected with *ErrInvalidAddition.
func (t Tuple) Add(o Tuple) (Tuple, error) {
	if t.IsPoint() && o.IsPoint() {
		return Tuple{}, &ErrInvalidAddition{LHS: t, RHS: o}
	}

	return New(t.X+o.X, t.Y+o.Y, t.Z+o.Z, t.W+o.W), nil
}

// Sub returns the component-wise difference t - o.
// Subtracting a point from a vector is rejected with *ErrInvalidSubtraction.
//
// The discriminant follows from plain subtraction: point - point is a vector,
// point - vector is a point and vector - vector is a vector.
func (t Tuple) Sub(o Tuple) (Tuple, error) {
	if t.IsVector() && o.IsPoint() {
		return Tuple{}, &ErrInvalidSubtraction{LHS: t, RHS: o}
	}

	return New(t.X-o.X, t.Y-o.Y, t.Z-o.Z, t.W-o.W), nil
}

// MustAdd is like Add but panics on an invalid operation.
func (t Tuple) MustAdd(o Tuple) Tuple {
	r, err := t.Add(o)
	if err != nil {
		panic(err)
	}
	return r
}

// MustSub is like Sub but panics on an invalid operation.
func (t Tuple) MustSub(o Tuple) Tuple {
	r, err := t.Sub(o)
	if err != nil {
		panic(err)
	}
	return r
}

// Negate flips the sign of every component, w included.
// A negated point has w == -1 and is neither a point nor a vector.
func (t Tuple) Negate() Tuple {
	return New(-t.X, -t.Y, -t.Z, -t.W)
}

// String returns a readable form that names the tuple kind.
func (t Tuple) String() string {
	switch {
	case t.IsPoint():
		return fmt.Sprintf("point(%g, %g, %g)", t.X, t.Y, t.Z)
	case t.IsVector():
		return fmt.Sprintf("vector(%g, %g, %g)", t.X, t.Y, t.Z)
	default:
		return fmt.Sprintf("tuple(%g, %g, %g, %g)", t.X, t.Y, t.Z, t.W)
	}
}

func near(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < Epsilon
}
