package render

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/approx"
	"github.com/npillmayer/fseries/coeff"
	"github.com/npillmayer/fseries/sampler"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var unit = View{
	X: fseries.Interval{Min: -1, Max: 1},
	Y: fseries.Interval{Min: -1, Max: 1},
}

func TestTextGrid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	frame := approx.Frame{
		Target:        sampler.Points{fseries.P(-1, 1), fseries.P(0.5, 0.4)},
		Approximation: sampler.Points{fseries.P(1, -1), fseries.P(0.5, 0.4)},
	}
	lines := strings.Split(strings.TrimSuffix(Text(frame, 21, 11, unit), "\n"), "\n")
	require.Len(t, lines, 11)
	assert.Equal(t, byte(TargetGlyph), lines[0][0], "upper left corner")
	assert.Equal(t, byte(ApproxGlyph), lines[10][20], "lower right corner")
	assert.Equal(t, byte(OverlapGlyph), lines[3][15], "both curves")
	assert.Equal(t, strings.Repeat("-", 10)+"|"+strings.Repeat("-", 10), lines[5], "x-axis")
	assert.Equal(t, byte('|'), lines[8][10], "y-axis")
}

func TestTextSkipsUndrawable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	frame := approx.Frame{
		Target: sampler.Points{
			fseries.P(0.5, math.NaN()),
			fseries.P(0.5, math.Inf(1)),
			fseries.P(0.5, 7),
		},
	}
	out := Text(frame, 21, 11, unit)
	assert.NotContains(t, out, string(TargetGlyph))
	assert.Equal(t, "", Text(frame, 1, 11, unit))
}

func TestTableListsCoefficients(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	st := approx.New(approx.DefaultConfig())
	st.Cos().Resize(2)
	st.Sin().Append()
	require.NoError(t, st.Sin().SetValue(0, 0.5))
	require.NoError(t, st.Sin().SetBoundText(0, coeff.Min, "-"))
	frame := st.Tick()
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, frame))
	out := buf.String()
	assert.Contains(t, out, "f(x) = x^2")
	assert.Contains(t, out, "L2 error: ")
	assert.Contains(t, out, "A0")
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "B1")
	assert.Contains(t, out, `(editing "-", "10")`)
}

func TestPlotWithNonFiniteError(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := approx.DefaultConfig()
	cfg.Expression = "sqrt(x)"
	cfg.Samples = 100
	st := approx.New(cfg)
	frame := st.Tick()
	require.True(t, math.IsNaN(frame.L2Error))
	p, err := Plot(frame, DefaultView())
	require.NoError(t, err)
	assert.Contains(t, p.Title.Text, "L2 error: NaN")
	assert.Equal(t, math.Pi, p.X.Max)
	assert.Equal(t, -5.0, p.Y.Min)
}

func TestPNG(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg := approx.DefaultConfig()
	cfg.Samples = 100
	st := approx.New(cfg)
	st.Cos().Append()
	require.NoError(t, st.Cos().SetValue(0, 3))
	path := filepath.Join(t.TempDir(), "plot.png")
	require.NoError(t, PNG(st.Tick(), path, DefaultOptions()))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDefaultView(t *testing.T) {
	v := DefaultView()
	assert.True(t, v.Contains(fseries.P(0, 0)))
	assert.True(t, v.Contains(fseries.P(-math.Pi, 5)))
	assert.False(t, v.Contains(fseries.P(4, 0)))
}
