package tuple

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is wrapped by every arithmetic precondition failure.
var ErrInvalidOperation = errors.New("invalid tuple operation")

// ErrInvalidAddition indicates an attempt to add two points.
type ErrInvalidAddition struct {
	LHS Tuple
	RHS Tuple
}

func (e *ErrInvalidAddition) Error() string {
	return fmt.Sprintf("cannot add two points: %s + %s", e.LHS, e.RHS)
}

func (e *ErrInvalidAddition) Unwrap() error { return ErrInvalidOperation }

// ErrInvalidSubtraction indicates an attempt to subtract a point from a vector.
type ErrInvalidSubtraction struct {
	LHS Tuple
	RHS Tuple
}

func (e *ErrInvalidSubtraction) Error() string {
	return fmt.Sprintf("cannot subtract a point from a vector: %s - %s", e.LHS, e.RHS)
}

func (e *ErrInvalidSubtraction) Unwrap() error { return ErrInvalidOperation }
