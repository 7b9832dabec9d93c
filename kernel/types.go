package kernel

import "errors"

// Sentinel errors returned by kernel configuration validation.
var (
	// ErrUnknownKernel indicates an unrecognized kernel kind or name.
	ErrUnknownKernel = errors.New("kernel: unknown kernel")

	// ErrBadDegree indicates a polynomial degree below 1.
	ErrBadDegree = errors.New("kernel: polynomial degree must be >= 1")

	// ErrBadSigma indicates a non-positive RBF width.
	ErrBadSigma = errors.New("kernel: sigma must be positive")
)

// Kind selects one of the supported kernel functions.
type Kind int

const (
	// Linear is the plain dot product.
	Linear Kind = iota

	// Poly is the inhomogeneous polynomial kernel (dot + Coef)^Degree.
	Poly

	// RBF is the Gaussian radial-basis kernel exp(−‖xi−xj‖²/(2σ²)).
	RBF
)

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Poly:
		return "poly"
	case RBF:
		return "radial"
	default:
		return "unknown"
	}
}

// ParseKind maps a kernel name to its Kind. Accepted names are
// "linear", "poly", and "radial". Anything else yields ErrUnknownKernel.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "linear":
		return Linear, nil
	case "poly":
		return Poly, nil
	case "radial":
		return RBF, nil
	default:
		return 0, ErrUnknownKernel
	}
}

// Config is a tagged kernel variant: the Kind plus the hyperparameters the
// selected kernel consumes. Parameters irrelevant to the Kind are ignored
// by Eval but still carried, so a Config can be round-tripped unchanged.
//
// Degree — polynomial exponent (Poly only). Must be ≥ 1.
// Coef   — polynomial additive constant (Poly only).
// Sigma  — RBF width (RBF only). Must be > 0.
type Config struct {
	Kind   Kind
	Degree int
	Coef   float64
	Sigma  float64
}

// DefaultConfig returns the default kernel configuration: a linear kernel
// carrying Degree=2, Coef=1, Sigma=1 so that switching Kind alone yields a
// usable polynomial or RBF setup.
func DefaultConfig() Config {
	return Config{
		Kind:   Linear,
		Degree: 2,
		Coef:   1,
		Sigma:  1,
	}
}

// Validate checks the configuration once, before any training state is
// created. Only the parameters consumed by the selected Kind are checked.
//
// Complexity: O(1).
func (c Config) Validate() error {
	switch c.Kind {
	case Linear:
		return nil
	case Poly:
		if c.Degree < 1 {
			return ErrBadDegree
		}
		return nil
	case RBF:
		if c.Sigma <= 0 {
			return ErrBadSigma
		}
		return nil
	default:
		return ErrUnknownKernel
	}
}
