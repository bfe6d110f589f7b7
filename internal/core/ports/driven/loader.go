package driven

import (
	"context"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
)

// DocumentLoader reads an API description from a local path or URL and
// parses it into the dialect-agnostic schema index. Parsing into the
// RawSchema shape is an adapter responsibility; core never touches the
// document syntax.
type DocumentLoader interface {
	// Load fetches and parses the document at source. Schema declaration
	// order must be preserved exactly as written.
	Load(ctx context.Context, source string) (*domain.Document, error)
}
