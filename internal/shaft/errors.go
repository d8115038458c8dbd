package shaft

import "fmt"

// ValidationError reports an input that cannot produce a physically meaningful shaft.
type ValidationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (%g): %s", e.Field, e.Value, e.Reason)
}

// ArithmeticError reports a floating-point domain failure (NaN, Inf, negative radicand)
// that slipped past input validation.
type ArithmeticError struct {
	Op    string
	Value float64
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("arithmetic error in %s: result %g is not a finite real number", e.Op, e.Value)
}
