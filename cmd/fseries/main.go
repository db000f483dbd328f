/*
Command fseries runs one tick of a Fourier approximation session.

The session is kept in a YAML file between runs. Each run loads it, applies
the edits given by flags, prints the L2 error, a coefficient table and a text
plot, optionally writes a PNG, and saves the session again:

	fseries -expr 'abs(x)' -cos 1.5,0,-0.4 -png abs.png
	fseries -cos-min ,-1 -cos-max ,1 -trim-sin 1
	fseries -fit -rule legendre

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/fseries/approx"
	"github.com/npillmayer/fseries/coeff"
	"github.com/npillmayer/fseries/expression"
	"github.com/npillmayer/fseries/render"
	"github.com/npillmayer/schuko/tracing"
)

func main() {
	cfg := approx.DefaultConfig()
	statePath := "fseries.yaml"
	var expr, cosList, sinList, png string
	var cosMin, cosMax, sinMin, sinMax string
	var trimCos, trimSin int
	var fit, verbose bool
	cols, rows := 78, 24

	flag.StringVar(&statePath, "state", statePath, "session file")
	flag.StringVar(&expr, "expr", "", "target expression in x ("+strings.Join(expression.FunctionNames(), ", ")+")")
	flag.StringVar(&cosList, "cos", "", "comma separated cosine coefficients a0, a1, …")
	flag.StringVar(&sinList, "sin", "", "comma separated sine coefficients b1, b2, …")
	flag.StringVar(&cosMin, "cos-min", "", "comma separated lower bounds of cosine coefficients, empty entries are skipped")
	flag.StringVar(&cosMax, "cos-max", "", "comma separated upper bounds of cosine coefficients")
	flag.StringVar(&sinMin, "sin-min", "", "comma separated lower bounds of sine coefficients")
	flag.StringVar(&sinMax, "sin-max", "", "comma separated upper bounds of sine coefficients")
	flag.IntVar(&trimCos, "trim-cos", 0, "remove this many cosine coefficients from the end")
	flag.IntVar(&trimSin, "trim-sin", 0, "remove this many sine coefficients from the end")
	flag.BoolVar(&fit, "fit", false, "fit all coefficients to the target")
	flag.StringVar(&cfg.Rule, "rule", cfg.Rule, "integration rule ("+approx.RuleKronrod+", "+approx.RuleLegendre+")")
	flag.IntVar(&cfg.Nodes, "nodes", cfg.Nodes, "nodes of the legendre rule")
	flag.StringVar(&png, "png", "", "write a plot to this file")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of curve samples")
	flag.IntVar(&cols, "cols", cols, "width of the text plot")
	flag.IntVar(&rows, "rows", rows, "height of the text plot")
	flag.BoolVar(&verbose, "verbose", false, "trace engine events")
	flag.Parse()

	if verbose {
		tracing.Select("fseries").SetTraceLevel(tracing.LevelInfo)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	st, err := approx.LoadOrNew(statePath, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if expr != "" {
		if err := st.CommitExpression(expr); err != nil {
			fmt.Fprintf(os.Stderr, "keeping previous expression: %v\n", err)
		}
	}
	trim(st.Cos(), trimCos)
	trim(st.Sin(), trimSin)
	edits := []struct {
		flag string
		err  error
	}{
		{"-cos", setValues(st.Cos(), cosList)},
		{"-sin", setValues(st.Sin(), sinList)},
		{"-cos-min", setBoundTexts(st.Cos(), coeff.Min, cosMin)},
		{"-cos-max", setBoundTexts(st.Cos(), coeff.Max, cosMax)},
		{"-sin-min", setBoundTexts(st.Sin(), coeff.Min, sinMin)},
		{"-sin-max", setBoundTexts(st.Sin(), coeff.Max, sinMax)},
	}
	for _, e := range edits {
		if e.err != nil {
			fmt.Fprintf(os.Stderr, "error in %s: %v\n", e.flag, e.err)
			os.Exit(2)
		}
	}
	if fit {
		if err := st.Fit(); err != nil {
			fmt.Fprintf(os.Stderr, "fit: %v\n", err)
		}
	}

	frame := st.Tick()
	if err := render.Table(os.Stdout, frame); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(render.Text(frame, cols, rows, render.DefaultView()))
	if png != "" {
		if err := render.PNG(frame, png, render.DefaultOptions()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
	if err := st.Save(statePath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// setValues grows set to hold all values of a comma separated list and
// assigns them in order. An empty list leaves set alone.
func setValues(set *coeff.Set, list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	fields := strings.Split(list, ",")
	values := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return fmt.Errorf("value #%d: %w", i, err)
		}
		values[i] = v
	}
	if set.Len() < len(values) {
		set.Resize(len(values))
	}
	for i, v := range values {
		if err := set.Widen(i, v); err != nil {
			return err
		}
		if err := set.SetValue(i, v); err != nil {
			return err
		}
	}
	return nil
}

// trim removes n coefficients from the end of set.
func trim(set *coeff.Set, n int) {
	for ; n > 0 && set.Len() > 0; n-- {
		set.RemoveLast()
	}
}

// setBoundTexts stores the entries of a comma separated list as bound texts,
// in index order. Empty entries leave their bound alone. The texts are
// committed by the next tick; texts which do not parse are kept as typed.
func setBoundTexts(set *coeff.Set, which coeff.Bound, list string) error {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	for i, text := range strings.Split(list, ",") {
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := set.SetBoundText(i, which, text); err != nil {
			return err
		}
	}
	return nil
}
