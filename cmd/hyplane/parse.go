package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/hyplane/isometry"
	"github.com/katalvlaran/hyplane/matrix"
	"github.com/katalvlaran/hyplane/model"
)

// isometryFromArgs parses the configured model and the row-major matrix
// entries in args into a validated isometry.
func isometryFromArgs(args []string) (*isometry.Isometry, error) {
	m, err := model.Parse(cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", cfg.Model, err)
	}
	M, err := parseMatrix(m, args)
	if err != nil {
		return nil, err
	}
	return isometry.New(m, M)
}

// parseMatrix reads row-major entries for an order-Dim(m) matrix. Entries
// may arrive as separate args or comma/space separated inside one arg.
func parseMatrix(m model.Model, args []string) (matrix.Square, error) {
	var (
		dim    = m.Dim()
		want   = dim * dim
		fields = splitFields(args)
	)
	if dim == 0 {
		return matrix.Square{}, fmt.Errorf("parse matrix: %w", model.ErrUnknownModel)
	}
	if len(fields) != want {
		return matrix.Square{}, fmt.Errorf("parse matrix: %s takes %d entries, got %d: %w",
			m, want, len(fields), matrix.ErrBadShape)
	}
	var entries = make([]complex128, want)
	for i, f := range fields {
		c, err := parseEntry(f)
		if err != nil {
			return matrix.Square{}, err
		}
		entries[i] = c
	}
	return matrix.New(dim, entries)
}

// parsePoint reads a point in m's native coordinates: a complex number for
// UHP and PD, an "x,y" pair for KM, an "x0,x1,x2" triple for HM. The words
// "inf" and "infinity" name the UHP boundary point at infinity in any model
// position (conversion happens downstream).
func parsePoint(m model.Model, s string) (model.Point, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "inf", "infinity":
		return model.Infinity(), nil
	}
	var fields = splitFields([]string{s})
	switch m {
	case model.UHP, model.PD:
		if len(fields) != 1 {
			return model.Point{}, fmt.Errorf("point %q: %s wants one complex coordinate: %w", s, m, errBadPoint)
		}
		c, err := parseEntry(fields[0])
		if err != nil {
			return model.Point{}, err
		}
		if m == model.UHP {
			return model.NewPointUHP(c)
		}
		return model.NewPointPD(c)
	case model.KM:
		v, err := parseFloats(s, fields, 2)
		if err != nil {
			return model.Point{}, err
		}
		return model.NewPointKM(v[0], v[1])
	case model.HM:
		v, err := parseFloats(s, fields, 3)
		if err != nil {
			return model.Point{}, err
		}
		return model.NewPointHM(v[0], v[1], v[2])
	default:
		return model.Point{}, fmt.Errorf("point %q: %w", s, model.ErrUnknownModel)
	}
}

// parseEntry accepts Go complex syntax ("1.5", "2i", "0.5+0.5i").
func parseEntry(s string) (complex128, error) {
	c, err := strconv.ParseComplex(strings.TrimSpace(s), 128)
	if err != nil {
		return 0, fmt.Errorf("entry %q: %w", s, errBadEntry)
	}
	return c, nil
}

// parseFloats demands exactly n real fields.
func parseFloats(raw string, fields []string, n int) ([]float64, error) {
	if len(fields) != n {
		return nil, fmt.Errorf("point %q: want %d real coordinates, got %d: %w",
			raw, n, len(fields), errBadPoint)
	}
	var out = make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %q: %w", f, errBadEntry)
		}
		out[i] = v
	}
	return out, nil
}

// splitFields flattens args, treating commas, spaces and tabs as
// separators so "2,0,0,0.5" and "2 0 0 0.5" parse identically.
func splitFields(args []string) []string {
	var out []string
	for _, a := range args {
		fields := strings.FieldsFunc(a, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		out = append(out, fields...)
	}
	return out
}
