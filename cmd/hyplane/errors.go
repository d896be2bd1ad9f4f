package main

import "errors"

// NOTE ON NAMING & PREFIXING
// CLI sentinels carry the "hyplane: ..." prefix so they read the same way
// as the library sentinels ("matrix: ...", "model: ...", "isometry: ...")
// when wrapped chains reach the terminal.

var (
	// errBadEntry reports a matrix entry that is not a real or complex
	// number in Go syntax.
	errBadEntry = errors.New("hyplane: matrix entry is not a number")

	// errBadPoint reports point input that does not match the model's
	// coordinate form (complex for UHP/PD, a pair for KM, a triple for HM).
	errBadPoint = errors.New("hyplane: point does not match the model's coordinate form")

	// errUnknownFormat reports an output format other than text or yaml.
	errUnknownFormat = errors.New("hyplane: unknown output format")

	// errUnknownOp reports a batch job op outside classify, convert,
	// fixed and build.
	errUnknownOp = errors.New("hyplane: unknown batch op")
)
