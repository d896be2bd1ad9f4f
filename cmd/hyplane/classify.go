package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hyplane/isometry"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <matrix entries>",
	Short: "Classify an isometry and report its invariants",
	Long: `Classify the isometry given by row-major matrix entries: its class
(identity, elliptic, parabolic, hyperbolic, reflection or
orientation-reversing hyperbolic), whether it preserves orientation, and
the translation length along the axis for the hyperbolic kinds.

Examples:
  # A boost in the half-plane model
  hyplane classify 2 0 0 0.5

  # A rotation, entries as one comma separated argument
  hyplane classify "0,1,-1,0"

  # A Lorentz matrix in the hyperboloid model
  hyplane classify -m HM 1 0 0 0 1.25 0.75 0 0.75 1.25`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

// classifyReport is the classify result in rendered form.
type classifyReport struct {
	Model       string `yaml:"model"`
	Class       string `yaml:"class"`
	Orientation string `yaml:"orientation"`
	Length      string `yaml:"translation_length,omitempty"`
}

func (r classifyReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "model: %s\n", r.Model)
	fmt.Fprintf(w, "class: %s\n", r.Class)
	fmt.Fprintf(w, "orientation: %s\n", r.Orientation)
	if r.Length != "" {
		fmt.Fprintf(w, "translation length: %s\n", r.Length)
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	iso, err := isometryFromArgs(args)
	if err != nil {
		return err
	}
	rep, err := classifyIsometry(iso)
	if err != nil {
		return err
	}
	return emit(cmd.OutOrStdout(), rep)
}

// classifyIsometry builds the classify report for one isometry. Shared
// with the batch runner.
func classifyIsometry(iso *isometry.Isometry) (report, error) {
	cls, err := iso.Classification()
	if err != nil {
		return nil, err
	}
	var rep = classifyReport{
		Model:       iso.Model().String(),
		Class:       cls.String(),
		Orientation: "preserving",
	}
	if !iso.OrientationPreserving() {
		rep.Orientation = "reversing"
	}
	if cls.IsHyperbolic() {
		length, err := iso.TranslationLength()
		if err != nil {
			return nil, err
		}
		rep.Length = formatFloat(length, cfg.Digits)
	}
	logger.Debug("classified", "model", rep.Model, "class", rep.Class)
	return rep, nil
}
