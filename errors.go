package jsdoc

import "errors"

// Sentinel errors for the serialization and CLI surfaces. Parse and
// Compose themselves have no error path.
var (
	// ErrInvalidOption indicates an invalid configuration value.
	ErrInvalidOption = errors.New("invalid option")
	// ErrUnknownFormat indicates an unrecognized record format string.
	ErrUnknownFormat = errors.New("unknown format")
	// ErrInvalidRecord indicates a serialized record that could not be
	// decoded.
	ErrInvalidRecord = errors.New("invalid record")
	// ErrReadInput indicates an I/O error reading input.
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates an I/O error writing output.
	ErrWriteOutput = errors.New("write output")
)
