package coeff

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(kind Kind, values ...float64) *Set {
	s := NewSet(kind)
	for i, v := range values {
		s.Append()
		_ = s.SetValue(i, v)
	}
	return s
}

func TestAppendDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSet(Cosine)
	s.Append()
	require.Equal(t, 1, s.Len())
	c, err := s.At(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, c.Value)
	assert.Equal(t, -10.0, c.Min)
	assert.Equal(t, 10.0, c.Max)
	assert.Equal(t, "-10", c.MinText)
	assert.Equal(t, "10", c.MaxText)
	assert.InDelta(t, 0.2, c.DragSpeed(), 1e-15)
}

func TestRemoveLastOnEmptySet(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := NewSet(Sine)
	s.RemoveLast()
	assert.Equal(t, 0, s.Len())
}

func TestAppendRemoveIsStackDiscipline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Cosine, 1.5, -2, 3.25)
	before := s.Rows()
	s.Append()
	s.RemoveLast()
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, before, s.Rows())
	assert.Equal(t, []float64{1.5, -2, 3.25}, s.Values(nil))
}

func TestResize(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Sine, 1, 2)
	s.Resize(5)
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, []float64{1, 2, 0, 0, 0}, s.Values(nil))
	s.Resize(1)
	assert.Equal(t, []float64{1}, s.Values(nil))
}

func TestLabels(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cos := filled(Cosine, 0, 0, 0)
	sin := filled(Sine, 0, 0, 0)
	assert.Equal(t, "A0", cos.Label(0))
	assert.Equal(t, "A2", cos.Label(2))
	assert.Equal(t, "B1", sin.Label(0))
	assert.Equal(t, "B3", sin.Label(2))
	assert.Equal(t, 0, cos.Frequency(0))
	assert.Equal(t, 1, sin.Frequency(0))
	rows := sin.Rows()
	assert.Equal(t, "B2", rows[1].Label)
}

func TestCommitInvalidBoundKeepsNumericBound(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Cosine, 0)
	require.NoError(t, s.SetBoundText(0, Max, "abc"))
	assert.False(t, s.CommitBoundText(0, Max))
	err := s.CommitBound(0, Max)
	assert.True(t, errors.Is(err, ErrBound))
	c, _ := s.At(0)
	assert.Equal(t, 10.0, c.Max, "numeric bound must be kept")
	assert.Equal(t, "abc", c.MaxText, "invalid text must stay for editing")
}

func TestBoundBecomesValidMidEdit(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Sine, 0, 0)
	require.NoError(t, s.SetBoundText(1, Min, "-"))
	assert.Equal(t, 1, s.CommitBounds())
	c, _ := s.At(1)
	assert.Equal(t, -10.0, c.Min)
	require.NoError(t, s.SetBoundText(1, Min, "-2.5"))
	assert.Equal(t, 0, s.CommitBounds())
	c, _ = s.At(1)
	assert.Equal(t, -2.5, c.Min)
	assert.Equal(t, "-2.5", c.MinText)
}

func TestSetValueIsNotClamped(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Cosine, 0)
	require.NoError(t, s.SetValue(0, 42))
	assert.Equal(t, []float64{42}, s.Values(nil))
	v, err := s.Clamp(0, 42)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestIndexErrors(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Cosine, 1)
	assert.True(t, errors.Is(s.SetValue(1, 0), ErrIndex))
	assert.True(t, errors.Is(s.SetValue(-1, 0), ErrIndex))
	assert.True(t, errors.Is(s.SetBoundText(3, Min, "1"), ErrIndex))
	assert.True(t, errors.Is(s.CommitBound(3, Min), ErrIndex))
	_, err := s.At(2)
	assert.True(t, errors.Is(err, ErrIndex))
}

func TestWiden(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Cosine, 0)
	require.NoError(t, s.Widen(0, 12.5))
	require.NoError(t, s.Widen(0, -1))
	c, _ := s.At(0)
	assert.Equal(t, -10.0, c.Min)
	assert.Equal(t, 12.5, c.Max)
	assert.Equal(t, "12.5", c.MaxText)
}

func TestArraysAndRestore(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := filled(Sine, 1, 2)
	require.NoError(t, s.SetBoundText(0, Min, "-0.5"))
	s.CommitBounds()
	require.NoError(t, s.SetBoundText(1, Max, "junk"))
	values, mins, maxs := s.Arrays()
	r := NewSet(Sine)
	require.NoError(t, r.Restore(values, mins, maxs))
	assert.Equal(t, []float64{1, 2}, r.Values(nil))
	c0, _ := r.At(0)
	assert.Equal(t, "-0.5", c0.MinText)
	c1, _ := r.At(1)
	assert.Equal(t, "10", c1.MaxText, "texts are re-derived from numeric bounds")
	assert.Error(t, r.Restore([]float64{1}, nil, nil))
	assert.Equal(t, 2, r.Len(), "failed restore leaves the set untouched")
}
