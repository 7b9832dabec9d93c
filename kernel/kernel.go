package kernel

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Eval computes the kernel value k(xi, xj) for the configured Kind.
//
// Contracts:
//   - Pure and deterministic: no side effects, no hidden state.
//   - Symmetric: Eval(xi, xj) == Eval(xj, xi).
//   - xi and xj must have equal length; Eval assumes a validated Config and
//     rectangular data (both enforced upstream) and performs no checks here.
//
// Complexity: O(n) time, O(1) space, where n = len(xi).
func (c Config) Eval(xi, xj []float64) float64 {
	switch c.Kind {
	case Poly:
		return math.Pow(floats.Dot(xi, xj)+c.Coef, float64(c.Degree))
	case RBF:
		// ‖xi−xj‖² accumulated directly; no temporary difference vector.
		var sq float64
		for k := range xi {
			d := xi[k] - xj[k]
			sq += d * d
		}
		return math.Exp(-sq / (2 * c.Sigma * c.Sigma))
	default:
		// Linear; Validate guarantees no other Kind reaches Eval.
		return floats.Dot(xi, xj)
	}
}
