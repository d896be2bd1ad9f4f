package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyplane/isometry"
	"github.com/katalvlaran/hyplane/model"
)

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Run a YAML file of jobs and report each result",
	Long: `Run every job in a YAML file. A job names an op (classify, convert,
fixed or build) plus its inputs; jobs that omit the model use the
configured one. Matrices may be written as one string, a flat list or
nested rows.

  jobs:
    - op: classify
      model: UHP
      matrix: [2, 0, 0, 0.5]
    - op: convert
      to: PD
      matrix: "2 0 0 0.5"
    - op: fixed
      matrix: [[0, 1], [-1, 0]]
    - op: build
      repel: "0"
      attract: inf

Failed jobs are reported in place and do not stop the rest of the file;
the command exits non-zero if any job failed.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// job is one line of work in a batch file.
type job struct {
	Op      string    `yaml:"op"`
	Model   string    `yaml:"model,omitempty"`
	To      string    `yaml:"to,omitempty"`
	Matrix  yaml.Node `yaml:"matrix,omitempty"`
	Repel   string    `yaml:"repel,omitempty"`
	Attract string    `yaml:"attract,omitempty"`
}

// batchFile is the document shape of a batch input.
type batchFile struct {
	Jobs []job `yaml:"jobs"`
}

// jobReport wraps one job's outcome: either a result or an error.
type jobReport struct {
	Job    int    `yaml:"job"`
	Op     string `yaml:"op"`
	Error  string `yaml:"error,omitempty"`
	Result report `yaml:"result,omitempty"`
}

func (r jobReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "--- job %d: %s\n", r.Job, r.Op)
	if r.Error != "" {
		fmt.Fprintf(w, "error: %s\n", r.Error)
		return
	}
	r.Result.writeText(w)
}

// batchReport is the whole run, one entry per job in file order.
type batchReport struct {
	Jobs []jobReport `yaml:"jobs"`
}

func (r batchReport) writeText(w io.Writer) {
	for i, j := range r.Jobs {
		if i > 0 {
			fmt.Fprintln(w)
		}
		j.writeText(w)
	}
}

func runBatch(cmd *cobra.Command, args []string) error {
	// Stage 1 - load and decode the job file.
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read batch file: %w", err)
	}
	var file batchFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fmt.Errorf("parse batch file %s: %w", args[0], err)
	}
	if len(file.Jobs) == 0 {
		return fmt.Errorf("batch file %s holds no jobs", args[0])
	}
	logger.Debug("batch loaded", "file", args[0], "jobs", len(file.Jobs))

	// Stage 2 - run jobs in file order, recording failures in place.
	var (
		out    = batchReport{Jobs: make([]jobReport, 0, len(file.Jobs))}
		failed int
	)
	for i, j := range file.Jobs {
		var entry = jobReport{Job: i + 1, Op: strings.TrimSpace(j.Op)}
		res, err := runJob(j)
		if err != nil {
			entry.Error = err.Error()
			failed++
		} else {
			entry.Result = res
		}
		out.Jobs = append(out.Jobs, entry)
	}

	// Stage 3 - emit the whole report, then surface the failure count.
	if err := emit(cmd.OutOrStdout(), out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("batch: %d of %d jobs failed", failed, len(file.Jobs))
	}
	return nil
}

// runJob dispatches one job to the op shared with the standalone
// subcommands.
func runJob(j job) (report, error) {
	var tag = j.Model
	if tag == "" {
		tag = cfg.Model
	}
	m, err := model.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", tag, err)
	}

	switch strings.ToLower(strings.TrimSpace(j.Op)) {
	case "classify":
		iso, err := jobIsometry(m, j)
		if err != nil {
			return nil, err
		}
		return classifyIsometry(iso)
	case "convert":
		to, err := model.Parse(j.To)
		if err != nil {
			return nil, fmt.Errorf("target model %q: %w", j.To, err)
		}
		iso, err := jobIsometry(m, j)
		if err != nil {
			return nil, err
		}
		return convertIsometry(iso, to)
	case "fixed":
		iso, err := jobIsometry(m, j)
		if err != nil {
			return nil, err
		}
		return fixedIsometry(iso)
	case "build":
		return buildFromFixed(m, j)
	default:
		return nil, fmt.Errorf("op %q: %w", j.Op, errUnknownOp)
	}
}

// jobIsometry parses the job's matrix node into a validated isometry.
func jobIsometry(m model.Model, j job) (*isometry.Isometry, error) {
	M, err := parseMatrix(m, flattenNode(&j.Matrix))
	if err != nil {
		return nil, err
	}
	return isometry.New(m, M)
}

// flattenNode turns a YAML matrix value into entry fields, whatever its
// shape: a scalar string, a flat sequence, or a sequence of rows.
func flattenNode(n *yaml.Node) []string {
	switch n.Kind {
	case yaml.ScalarNode:
		return splitFields([]string{n.Value})
	case yaml.SequenceNode:
		var out []string
		for _, c := range n.Content {
			out = append(out, flattenNode(c)...)
		}
		return out
	default:
		return nil
	}
}

// buildReport is the build result: the isometry with the requested axis
// dynamics.
type buildReport struct {
	Model  string     `yaml:"model"`
	Class  string     `yaml:"class"`
	Matrix [][]string `yaml:"matrix"`
}

func (r buildReport) writeText(w io.Writer) {
	fmt.Fprintf(w, "model: %s\n", r.Model)
	fmt.Fprintf(w, "class: %s\n", r.Class)
	writeRows(w, r.Matrix)
}

// buildFromFixed constructs the hyperbolic isometry repelled from one
// ideal point and attracted to the other.
func buildFromFixed(m model.Model, j job) (report, error) {
	repel, err := parsePoint(m, j.Repel)
	if err != nil {
		return nil, fmt.Errorf("repel: %w", err)
	}
	attract, err := parsePoint(m, j.Attract)
	if err != nil {
		return nil, fmt.Errorf("attract: %w", err)
	}
	iso, err := isometry.FromFixedPoints(m, repel, attract)
	if err != nil {
		return nil, err
	}
	cls, err := iso.Classification()
	if err != nil {
		return nil, err
	}
	return buildReport{
		Model:  m.String(),
		Class:  cls.String(),
		Matrix: renderRows(iso.Matrix(), cfg.Digits),
	}, nil
}
