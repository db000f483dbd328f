package coeff

import "fmt"

// Set is an ordered, resizable collection of coefficients of one kind.
// The zero value is an empty cosine set.
type Set struct {
	kind   Kind
	coeffs []Coefficient
}

// NewSet creates an empty set of the given kind.
func NewSet(kind Kind) *Set {
	return &Set{kind: kind}
}

// Kind returns the kind of terms this set contributes.
func (s *Set) Kind() Kind {
	return s.kind
}

// Len returns the number of coefficients.
func (s *Set) Len() int {
	return len(s.coeffs)
}

// At returns a copy of coefficient i.
func (s *Set) At(i int) (Coefficient, error) {
	if err := s.check(i); err != nil {
		return Coefficient{}, err
	}
	return s.coeffs[i], nil
}

// Append adds a coefficient with value 0 and range [-10, 10] at the end.
func (s *Set) Append() {
	s.coeffs = append(s.coeffs, New(0, DefaultMin, DefaultMax))
	tracer().Debugf("%s set: appended %s", s.kind, s.Label(len(s.coeffs)-1))
}

// RemoveLast removes the last coefficient. It is a no-op for an empty set.
func (s *Set) RemoveLast() {
	if len(s.coeffs) == 0 {
		return
	}
	s.coeffs[len(s.coeffs)-1] = Coefficient{}
	s.coeffs = s.coeffs[:len(s.coeffs)-1]
	tracer().Debugf("%s set: removed %s", s.kind, s.Label(len(s.coeffs)))
}

// Resize appends or removes coefficients until the set has n entries.
func (s *Set) Resize(n int) {
	for len(s.coeffs) < n {
		s.Append()
	}
	for len(s.coeffs) > n && len(s.coeffs) > 0 {
		s.RemoveLast()
	}
}

// Label returns the display label of index i: A0, A1, … for cosine terms
// and B1, B2, … for sine terms.
func (s *Set) Label(i int) string {
	if s.kind == Sine {
		return fmt.Sprintf("B%d", i+1)
	}
	return fmt.Sprintf("A%d", i)
}

// Frequency returns the multiple of x in the term of index i.
func (s *Set) Frequency(i int) int {
	if s.kind == Sine {
		return i + 1
	}
	return i
}

// SetValue sets the value of coefficient i. The value is not clamped to the
// coefficient's range: a drag may momentarily leave it. Use Clamp for
// slider input.
func (s *Set) SetValue(i int, v float64) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.coeffs[i].Value = v
	return nil
}

// Clamp returns v restricted to the range of coefficient i.
func (s *Set) Clamp(i int, v float64) (float64, error) {
	if err := s.check(i); err != nil {
		return v, err
	}
	return s.coeffs[i].Range().Clamp(v), nil
}

// Widen extends the range of coefficient i so that it contains v. Bound
// texts of widened bounds are re-derived.
func (s *Set) Widen(i int, v float64) error {
	if err := s.check(i); err != nil {
		return err
	}
	c := &s.coeffs[i]
	if v < c.Min {
		c.Min, c.MinText = v, FormatBound(v)
	}
	if v > c.Max {
		c.Max, c.MaxText = v, FormatBound(v)
	}
	return nil
}

// SetBoundText stores the text of a bound as typed. The numeric bound is not
// changed before the text is committed.
func (s *Set) SetBoundText(i int, which Bound, text string) error {
	if err := s.check(i); err != nil {
		return err
	}
	_, t := s.coeffs[i].bound(which)
	*t = text
	return nil
}

// CommitBound tries to parse the text of bound which of coefficient i. On
// success the numeric bound is overwritten, on failure it is left unchanged,
// the invalid text is kept for further editing, and an error wrapping
// ErrBound is returned.
func (s *Set) CommitBound(i int, which Bound) error {
	if err := s.check(i); err != nil {
		return err
	}
	return s.coeffs[i].commitBound(which)
}

// CommitBoundText is CommitBound for callers which are only interested in
// whether the bound has been taken over.
func (s *Set) CommitBoundText(i int, which Bound) bool {
	return s.CommitBound(i, which) == nil
}

// CommitBounds commits the bound texts of all coefficients. It is meant to
// run on every tick the set is rendered, as bound texts may become valid
// without an explicit confirm action. It returns the number of bound texts
// which did not parse.
func (s *Set) CommitBounds() int {
	invalid := 0
	for i := range s.coeffs {
		for _, which := range []Bound{Min, Max} {
			if err := s.coeffs[i].commitBound(which); err != nil {
				invalid++
			}
		}
	}
	return invalid
}

// Values copies the coefficient values into buf, growing it if necessary,
// and returns it.
func (s *Set) Values(buf []float64) []float64 {
	buf = buf[:0]
	for _, c := range s.coeffs {
		buf = append(buf, c.Value)
	}
	return buf
}

// Row is what a renderer needs to draw one coefficient widget.
type Row struct {
	Label string
	Coefficient
	Speed float64 // drag speed
}

// Rows returns one Row per coefficient, in index order.
func (s *Set) Rows() []Row {
	rows := make([]Row, len(s.coeffs))
	for i, c := range s.coeffs {
		rows[i] = Row{
			Label:       s.Label(i),
			Coefficient: c,
			Speed:       c.DragSpeed(),
		}
	}
	return rows
}

// Arrays returns values, lower and upper bounds as parallel slices, the form
// a set is persisted in.
func (s *Set) Arrays() (values, mins, maxs []float64) {
	values = make([]float64, len(s.coeffs))
	mins = make([]float64, len(s.coeffs))
	maxs = make([]float64, len(s.coeffs))
	for i, c := range s.coeffs {
		values[i], mins[i], maxs[i] = c.Value, c.Min, c.Max
	}
	return
}

// Restore replaces the contents of the set from persisted arrays. Numeric
// bounds are authoritative, bound texts are re-derived from them. Slices of
// unequal length are an error and leave the set untouched.
func (s *Set) Restore(values, mins, maxs []float64) error {
	if len(mins) != len(values) || len(maxs) != len(values) {
		return fmt.Errorf("cannot restore %s set: %d values, %d minima, %d maxima",
			s.kind, len(values), len(mins), len(maxs))
	}
	coeffs := make([]Coefficient, len(values))
	for i := range values {
		coeffs[i] = New(values[i], mins[i], maxs[i])
	}
	s.coeffs = coeffs
	return nil
}

func (s *Set) check(i int) error {
	if i < 0 || i >= len(s.coeffs) {
		return fmt.Errorf("%w: %s set has %d entries, index %d", ErrIndex, s.kind, len(s.coeffs), i)
	}
	return nil
}
