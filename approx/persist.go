package approx

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/coeff"
	"gopkg.in/yaml.v3"
)

// ErrSnapshot indicates a snapshot which cannot be restored.
var ErrSnapshot = errors.New("invalid snapshot")

// Snapshot is the persistent form of a State. Numeric bounds are
// authoritative; bound texts are not stored and are re-derived on restore.
//
// If the expression text does not parse, LastGood holds the source of the
// expression in effect, so a reload keeps the same target function.
type Snapshot struct {
	Expression string      `yaml:"expression"`
	LastGood   string      `yaml:"last_good,omitempty"`
	Cos        SetSnapshot `yaml:"cos"`
	Sin        SetSnapshot `yaml:"sin"`
	L2Error    float64     `yaml:"l2_error"`
}

// SetSnapshot holds a coefficient set as parallel arrays.
type SetSnapshot struct {
	Values []float64 `yaml:"values,flow"`
	Min    []float64 `yaml:"min,flow"`
	Max    []float64 `yaml:"max,flow"`
}

func snapshotOf(set *coeff.Set) SetSnapshot {
	values, mins, maxs := set.Arrays()
	return SetSnapshot{Values: values, Min: mins, Max: maxs}
}

// Snapshot captures the state for persistence.
func (st *State) Snapshot() Snapshot {
	snap := Snapshot{
		Expression: st.text,
		Cos:        snapshotOf(st.cos),
		Sin:        snapshotOf(st.sin),
		L2Error:    st.l2err,
	}
	if src := st.expr.Source(); src != st.text {
		snap.LastGood = src
	}
	return snap
}

// Restore replaces the state's expression and coefficients by the contents
// of snap. If snap is malformed, an error wrapping ErrSnapshot is returned
// and the state is left unchanged. An expression text which does not parse
// is restored as text, with LastGood as target, or the zero function if
// there is none.
func (st *State) Restore(snap Snapshot) error {
	cos, sin := coeff.NewSet(coeff.Cosine), coeff.NewSet(coeff.Sine)
	if err := cos.Restore(snap.Cos.Values, snap.Cos.Min, snap.Cos.Max); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	if err := sin.Restore(snap.Sin.Values, snap.Sin.Min, snap.Sin.Max); err != nil {
		return fmt.Errorf("%w: %v", ErrSnapshot, err)
	}
	st.cos, st.sin = cos, sin
	st.l2err = snap.L2Error
	st.expr, st.target = nil, fseries.Zero
	if snap.LastGood != "" {
		if err := st.CommitExpression(snap.LastGood); err != nil {
			tracer().Errorf("restored fallback expression: %v", err)
		}
	}
	if err := st.CommitExpression(snap.Expression); err != nil {
		tracer().Errorf("restored expression %q does not parse, keeping f(x) = %s",
			snap.Expression, st.expr)
	}
	return nil
}

// Save writes the state to a YAML file, creating its directory if needed.
func (st *State) Save(path string) error {
	directory := filepath.Dir(path)
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	data, err := yaml.Marshal(st.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	tracer().Debugf("saved state to %s", path)
	return nil
}

// Load reads a state saved by Save.
func Load(path string, cfg Config) (*State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal state: %v", ErrSnapshot, err)
	}
	st := New(cfg)
	if err := st.Restore(snap); err != nil {
		return nil, err
	}
	tracer().Debugf("loaded state from %s", path)
	return st, nil
}

// LoadOrNew is Load, but falls back to a fresh state if path does not exist.
func LoadOrNew(path string, cfg Config) (*State, error) {
	st, err := Load(path, cfg)
	if errors.Is(err, os.ErrNotExist) {
		return New(cfg), nil
	}
	return st, err
}
