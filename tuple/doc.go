// Package tuple provides the homogeneous 4-component tuple used for points and
// vectors in 3D space.
//
// A Tuple holds x, y, z and a discriminant w. By convention w == 1 marks a
// point (a location) and w == 0 marks a vector (a direction or displacement).
// Tuples are values: every operation returns a new Tuple and never mutates its
// operands, so they can be shared freely between goroutines.
//
// # Construction
//
//	p := tuple.NewPoint(3, -2, 5)
//	v := tuple.NewVector(-2, 3, 1)
//	o := tuple.Origin()
//
// # Arithmetic
//
// Addition and subtraction enforce affine rules and report violations as
// typed errors:
//
//	q, err := p.Add(v)          // point + vector = point
//	d, err := p.Sub(o)          // point - point = vector
//	_, err = p.Add(o)           // *ErrInvalidAddition
//	_, err = v.Sub(p)           // *ErrInvalidSubtraction
//
// Both errors wrap ErrInvalidOperation. MustAdd and MustSub panic instead.
//
// Negate flips all four components, including w. Negating a point therefore
// yields w == -1, which is neither a point nor a vector.
//
// # Equality
//
// Equal compares component-wise with an absolute tolerance: two components
// match when their difference is strictly less than Epsilon, the float32
// machine epsilon.
package tuple
