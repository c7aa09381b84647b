package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDieInvalidSideCount = "DIE_INVALID_SIDE_COUNT"
	CodeSeedUnavailable     = "SEED_UNAVAILABLE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Die errors
		CodeDieInvalidSideCount: "A die must have between {{.Min}} and {{.Max}} sides, got {{.Sides}}",

		// Random/seed errors
		CodeSeedUnavailable: "Random seed could not be generated",
	},
}
