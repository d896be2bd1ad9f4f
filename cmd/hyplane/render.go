package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

// report is anything a subcommand can emit: text for humans, YAML for
// pipelines. Reports hold pre-rendered strings so the digits setting is
// applied once, at build time, for both formats.
type report interface {
	writeText(w io.Writer)
}

// emit writes r in the configured output format.
func emit(w io.Writer, r report) error {
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case formatText:
		r.writeText(w)
		return nil
	case formatYAML:
		var enc = yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q: %w", cfg.Format, errUnknownFormat)
	}
}

// formatFloat renders v with the configured number of significant digits.
// Negative zeros display as plain 0.
func formatFloat(v float64, digits int) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'g', digits, 64)
}

// formatComplex mirrors matrix.FormatEntry (real as-is, pure imaginary as
// "bi", mixed as "a+bi") but rounds both components to digits. Conversion
// between models leaves float dust on entries that are exactly 0 or 1 in
// exact arithmetic; rounding keeps the output readable.
func formatComplex(c complex128, digits int) string {
	var re, im = real(c), imag(c)
	if im > -matrix.Epsilon && im < matrix.Epsilon {
		return formatFloat(re, digits)
	}
	if re > -matrix.Epsilon && re < matrix.Epsilon {
		return formatFloat(im, digits) + "i"
	}
	var s = formatFloat(im, digits)
	if im >= 0 {
		s = "+" + s
	}
	return formatFloat(re, digits) + s + "i"
}

// renderRows renders a matrix as rows of formatted entries. The nested
// shape feeds both the text writer and the YAML encoder.
func renderRows(s matrix.Square, digits int) [][]string {
	var (
		n    = s.Order()
		rows = make([][]string, n)
	)
	for i := 0; i < n; i++ {
		rows[i] = make([]string, n)
		for j := 0; j < n; j++ {
			rows[i][j] = formatComplex(s.At(i, j), digits)
		}
	}
	return rows
}

// writeRows prints rows the way matrix.String does, one bracketed row per
// line.
func writeRows(w io.Writer, rows [][]string) {
	for _, row := range rows {
		fmt.Fprintf(w, "[%s]\n", strings.Join(row, " "))
	}
}

// renderPoint renders p in its native coordinates with rounding.
func renderPoint(p model.Point, digits int) string {
	if p.IsInfinity() {
		return "infinity"
	}
	switch p.Model() {
	case model.UHP, model.PD:
		return formatComplex(p.Complex(), digits)
	case model.KM:
		x, y := p.XY()
		return fmt.Sprintf("(%s, %s)", formatFloat(x, digits), formatFloat(y, digits))
	default:
		v := p.Vec()
		return fmt.Sprintf("(%s, %s, %s)",
			formatFloat(v[0], digits), formatFloat(v[1], digits), formatFloat(v[2], digits))
	}
}

// renderGeodesic renders g as its two ideal endpoints.
func renderGeodesic(g model.Geodesic, digits int) string {
	return fmt.Sprintf("from %s to %s", renderPoint(g.Start(), digits), renderPoint(g.End(), digits))
}

// renderPoints joins a fixed-point set with commas.
func renderPoints(pts []model.Point, digits int) []string {
	var out = make([]string, len(pts))
	for i, p := range pts {
		out[i] = renderPoint(p, digits)
	}
	return out
}
