package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyplane/isometry"
)

var fixedCmd = &cobra.Command{
	Use:   "fixed <matrix entries>",
	Short: "Report the fixed-point set and axis of an isometry",
	Long: `Report the points the isometry fixes, in the coordinates of its
model: one interior point for elliptic elements, one boundary point for
parabolic ones, two boundary points for the hyperbolic kinds and for
reflections. Hyperbolic kinds also get their translation axis, reflections
their pointwise-fixed mirror geodesic.

Examples:
  # A boost fixes 0 and infinity and translates along the axis between them
  hyplane fixed 2 0 0 0.5

  # A rotation fixes the interior point i
  hyplane fixed "0,1,-1,0"

  # The same boost seen on the Klein disk
  hyplane fixed -m KM 1 0 0 0 1.25 0.75 0 0.75 1.25`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFixed,
}

func init() {
	rootCmd.AddCommand(fixedCmd)
}

// fixedReport is the fixed-point result in rendered form.
type fixedReport struct {
	Model       string   `yaml:"model"`
	Class       string   `yaml:"class"`
	EveryPoint  bool     `yaml:"every_point,omitempty"`
	FixedPoints []string `yaml:"fixed_points,omitempty"`
	Axis        string   `yaml:"axis,omitempty"`
	Mirror      string   `yaml:"mirror,omitempty"`
}

func (r fixedReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "model: %s\n", r.Model)
	fmt.Fprintf(w, "class: %s\n", r.Class)
	if r.EveryPoint {
		fmt.Fprintln(w, "fixed points: every point of the plane")
		return
	}
	fmt.Fprintf(w, "fixed points: %s\n", strings.Join(r.FixedPoints, ", "))
	if r.Axis != "" {
		fmt.Fprintf(w, "axis: %s\n", r.Axis)
	}
	if r.Mirror != "" {
		fmt.Fprintf(w, "mirror: %s\n", r.Mirror)
	}
}

func runFixed(cmd *cobra.Command, args []string) error {
	iso, err := isometryFromArgs(args)
	if err != nil {
		return err
	}
	rep, err := fixedIsometry(iso)
	if err != nil {
		return err
	}
	return emit(cmd.OutOrStdout(), rep)
}

// fixedIsometry builds the fixed-point report. Shared with the batch
// runner.
func fixedIsometry(iso *isometry.Isometry) (report, error) {
	cls, err := iso.Classification()
	if err != nil {
		return nil, err
	}
	var rep = fixedReport{
		Model: iso.Model().String(),
		Class: cls.String(),
	}
	if cls == isometry.Identity {
		rep.EveryPoint = true
		return rep, nil
	}

	pts, err := iso.FixedPointSet()
	if err != nil {
		return nil, err
	}
	rep.FixedPoints = renderPoints(pts, cfg.Digits)

	switch {
	case cls.IsHyperbolic():
		axis, err := iso.Axis()
		if err != nil {
			return nil, err
		}
		rep.Axis = renderGeodesic(axis, cfg.Digits)
	case cls == isometry.Reflection:
		mirror, err := iso.FixedGeodesic()
		if err != nil {
			return nil, err
		}
		rep.Mirror = renderGeodesic(mirror, cfg.Digits)
	}
	logger.Debug("fixed points resolved", "model", rep.Model, "class", rep.Class, "count", len(rep.FixedPoints))
	return rep, nil
}
