package render

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/npillmayer/fseries"
	"github.com/npillmayer/fseries/approx"
	"github.com/npillmayer/fseries/coeff"
	"github.com/npillmayer/fseries/l2"
	"github.com/npillmayer/fseries/sampler"
)

// Glyphs used by Text.
const (
	TargetGlyph  = '*'
	ApproxGlyph  = 'o'
	OverlapGlyph = '#'
)

// grid is a character canvas, row 0 at the top.
type grid struct {
	cells [][]rune
	vp    fseries.AT
}

func newGrid(cols, rows int, view View) *grid {
	g := &grid{cells: make([][]rune, rows)}
	for r := range g.cells {
		g.cells[r] = []rune(strings.Repeat(" ", cols))
	}
	g.vp = fseries.Viewport(view.X, view.Y, float64(cols-1), float64(rows-1))
	return g
}

// cell maps a world point to a grid cell.
func (g *grid) cell(p fseries.Pair) (int, int, bool) {
	d := g.vp.Transform(p)
	col, row := int(math.Round(d.X())), int(math.Round(d.Y()))
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return 0, 0, false
	}
	return col, row, true
}

func (g *grid) axes(view View) {
	if view.Y.Contains(0) {
		if _, row, ok := g.cell(fseries.P(view.X.Min, 0)); ok {
			for c := range g.cells[row] {
				g.cells[row][c] = '-'
			}
		}
	}
	if view.X.Contains(0) {
		if col, _, ok := g.cell(fseries.P(0, view.Y.Min)); ok {
			for r := range g.cells {
				g.cells[r][col] = '|'
			}
		}
	}
}

func (g *grid) plot(pts sampler.Points, glyph, other rune) {
	for _, p := range pts {
		if !fseries.IsFinite(p.Y()) {
			continue
		}
		col, row, ok := g.cell(p)
		if !ok {
			continue
		}
		if g.cells[row][col] == other || g.cells[row][col] == OverlapGlyph {
			g.cells[row][col] = OverlapGlyph
		} else {
			g.cells[row][col] = glyph
		}
	}
}

func (g *grid) String() string {
	var b strings.Builder
	for _, r := range g.cells {
		b.WriteString(strings.TrimRight(string(r), " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// Text draws the curves of frame into a grid of cols × rows characters.
// The target is drawn with TargetGlyph, the partial sum with ApproxGlyph,
// cells hit by both with OverlapGlyph. Samples outside view or not finite
// are skipped.
func Text(frame approx.Frame, cols, rows int, view View) string {
	if cols < 2 || rows < 2 {
		return ""
	}
	g := newGrid(cols, rows, view)
	g.axes(view)
	g.plot(frame.Target, TargetGlyph, ApproxGlyph)
	g.plot(frame.Approximation, ApproxGlyph, TargetGlyph)
	return g.String()
}

// Table writes the L2 error and one line per coefficient: label, value,
// range and bound texts where these differ from the numeric bounds.
func Table(w io.Writer, frame approx.Frame) error {
	if _, err := fmt.Fprintf(w, "f(x) = %s\n%s\n", frame.Text, l2.Format(frame.L2Error)); err != nil {
		return err
	}
	for _, rows := range [][]coeff.Row{frame.Cos, frame.Sin} {
		for _, r := range rows {
			line := fmt.Sprintf("%-4s %12.6f   [%g, %g]", r.Label, r.Value, r.Min, r.Max)
			if r.MinText != coeff.FormatBound(r.Min) || r.MaxText != coeff.FormatBound(r.Max) {
				line += fmt.Sprintf("   (editing %q, %q)", r.MinText, r.MaxText)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
	}
	return nil
}
