// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Die errors
	CodeDieInvalidSideCount Code = "DIE_INVALID_SIDE_COUNT"

	// Random/seed errors
	CodeSeedUnavailable Code = "SEED_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDieInvalidSideCount:
		return codes.InvalidArgument

	// Unavailable - entropy could not be read
	case CodeSeedUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
