package approx

import (
	"errors"
	"fmt"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/quadrature"
)

// Integration rules a Config may select.
const (
	RuleKronrod  = "kronrod"  // adaptive G7/K15, see quadrature.GaussKronrod
	RuleLegendre = "legendre" // fixed Gauss–Legendre, see quadrature.Legendre
)

// DefaultNodes is the node count of the Legendre rule.
const DefaultNodes = 64

// ErrConfig indicates an unusable configuration.
var ErrConfig = errors.New("invalid configuration")

// Config holds the parameters of an approximation session.
type Config struct {
	Expression      string           // expression of a fresh state
	Domain          fseries.Interval // sampling domain for plots
	Samples         int              // points per curve
	Rule            string           // integration rule for error and fit
	Tolerance       float64          // absolute tolerance of adaptive integration
	MaxSubdivisions int              // bisections of adaptive integration
	Nodes           int              // nodes of the Legendre rule
}

// DefaultConfig returns a config with the settings of the interactive
// application: f(x) = x², curves sampled with 500 points across [-10, 10].
func DefaultConfig() Config {
	return Config{
		Expression:      "x^2",
		Domain:          fseries.Interval{Min: -10, Max: 10},
		Samples:         500,
		Rule:            RuleKronrod,
		Tolerance:       quadrature.DefaultTolerance,
		MaxSubdivisions: quadrature.DefaultMaxSubdivisions,
		Nodes:           DefaultNodes,
	}
}

// Validate checks cfg. Errors returned wrap ErrConfig.
func (cfg Config) Validate() error {
	switch {
	case cfg.Rule != RuleKronrod && cfg.Rule != RuleLegendre:
		return fmt.Errorf("%w: unknown integration rule %q", ErrConfig, cfg.Rule)
	case cfg.Rule == RuleLegendre && cfg.Nodes < 2:
		return fmt.Errorf("%w: Legendre rule needs at least 2 nodes, have %d", ErrConfig, cfg.Nodes)
	case cfg.Samples < 0:
		return fmt.Errorf("%w: negative sample count %d", ErrConfig, cfg.Samples)
	case cfg.Domain.Width() <= 0:
		return fmt.Errorf("%w: empty sampling domain %v", ErrConfig, cfg.Domain)
	}
	return nil
}

// integrator returns the integrator selected by cfg.Rule. Unknown rules
// fall back to the adaptive rule.
func (cfg Config) integrator() quadrature.Integrator {
	if cfg.Rule == RuleLegendre {
		return quadrature.Legendre{N: cfg.Nodes}
	}
	return quadrature.GaussKronrod{
		Tolerance:       cfg.Tolerance,
		MaxSubdivisions: cfg.MaxSubdivisions,
	}
}
