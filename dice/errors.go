package dice

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/dieroller/internal/platform/errors"
)

// Error is the structured error returned by this package. Use errors.As to
// read its Code and Metadata.
type Error = apperrors.Error

// CodeInvalidSideCount identifies a side count outside [MinSides, MaxSides].
const CodeInvalidSideCount = apperrors.CodeDieInvalidSideCount

// ErrInvalidSideCount matches, via errors.Is, any error returned for a side
// count outside [MinSides, MaxSides].
var ErrInvalidSideCount error = apperrors.New(CodeInvalidSideCount, "die side count out of range")

// Metadata keys attached to an invalid side count error.
const (
	MetadataArgument = "Argument"
	MetadataSides    = "Sides"
	MetadataMin      = "Min"
	MetadataMax      = "Max"
)

func invalidSideCount(sides int) error {
	return apperrors.WithMetadata(
		CodeInvalidSideCount,
		fmt.Sprintf("sides must be between %d and %d, got %d", MinSides, MaxSides, sides),
		map[string]string{
			MetadataArgument: "sides",
			MetadataSides:    strconv.Itoa(sides),
			MetadataMin:      strconv.Itoa(MinSides),
			MetadataMax:      strconv.Itoa(MaxSides),
		},
	)
}
