// Package errs defines the sentinel errors shared by linefit packages.
//
// Callers match them with errors.Is; most call sites wrap them with additional
// context via fmt.Errorf("...: %w", err).
package errs

import "errors"

// Fitting errors.
var (
	// ErrNilParameters is returned when Fit is called without a parameters record.
	ErrNilParameters = errors.New("parameters must not be nil")
	// ErrInvalidLearningRate is returned for a learning rate that is not a finite positive number.
	ErrInvalidLearningRate = errors.New("learning rate must be a finite positive number")
	// ErrInvalidMaxSteps is returned for a negative step budget.
	ErrInvalidMaxSteps = errors.New("max steps must not be negative")
	// ErrUnderdetermined is returned when a closed-form fit needs at least two distinct x values.
	ErrUnderdetermined = errors.New("at least two distinct x values are required")
)

// Input errors.
var (
	// ErrInvalidCoordinate is returned when a coordinate is empty, not a number, or not finite.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// Dataset blob errors.
var (
	// ErrInvalidHeaderSize is returned when a blob is shorter than its fixed-size header.
	ErrInvalidHeaderSize = errors.New("invalid header size")
	// ErrInvalidMagic is returned when a blob does not start with the dataset magic number.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrUnsupportedVersion is returned for a blob written by an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported format version")
	// ErrInvalidPayloadSize is returned when the decoded payload does not match the point count.
	ErrInvalidPayloadSize = errors.New("invalid payload size")
	// ErrChecksumMismatch is returned when the payload checksum does not match the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
	// ErrTooManyPoints is returned when a dataset does not fit in a single blob.
	ErrTooManyPoints = errors.New("too many points for a single blob")
)
