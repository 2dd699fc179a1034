package providers

import (
	"context"

	"github.com/wardfinder/backend/pkg/rawjson"
)

// SourceLoader reads a hospital's raw data source
type SourceLoader interface {
	// Load reads and parses the source. Failures are AppErrors of type
	// SOURCE_NOT_FOUND, PARSE or SOURCE_UNAVAILABLE.
	Load(ctx context.Context, locator string) (rawjson.Value, error)

	// Exists reports whether the source is present
	Exists(ctx context.Context, locator string) (bool, error)
}
