package openapi

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

// Ensure Loader implements the interface.
var _ driven.DocumentLoader = (*Loader)(nil)

// Loader reads API descriptions from local paths or HTTP(S) URLs.
type Loader struct {
	fetcher *fetcher
}

// NewLoader creates a document loader.
func NewLoader() *Loader {
	return &Loader{fetcher: newFetcher()}
}

// Load fetches and parses the document at source.
func (l *Loader) Load(ctx context.Context, source string) (*domain.Document, error) {
	data, err := l.read(ctx, source)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		logger.Info("fetching document from %s", source)
		return l.fetcher.fetch(ctx, source)
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// Parse decodes a document and builds the schema index in declaration order.
func Parse(data []byte) (*domain.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse document: %v: %w", err, domain.ErrInvalidDocument)
	}
	top := documentRoot(&root)
	if top == nil || top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document is not a mapping: %w", domain.ErrInvalidDocument)
	}

	dialect, schemasNode, err := locateSchemas(top)
	if err != nil {
		return nil, err
	}

	doc := &domain.Document{
		Dialect: dialect,
		Schemas: make(map[string]*domain.RawSchema),
	}
	if schemasNode == nil {
		return doc, nil
	}
	for _, e := range mapEntries(schemasNode) {
		schema, err := parseSchema(e.value)
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", e.key, err)
		}
		doc.Names = append(doc.Names, e.key)
		doc.Schemas[e.key] = schema
	}
	return doc, nil
}

// locateSchemas detects the dialect and returns the named-schema mapping.
func locateSchemas(top *yaml.Node) (domain.Dialect, *yaml.Node, error) {
	if v := findKey(top, "swagger"); v != nil {
		if v.Value != "2.0" {
			return "", nil, fmt.Errorf("unsupported swagger version %q: %w", v.Value, domain.ErrInvalidDocument)
		}
		return domain.DialectSwagger2, findKey(top, "definitions"), nil
	}
	if v := findKey(top, "openapi"); v != nil {
		if !strings.HasPrefix(v.Value, "3.") {
			return "", nil, fmt.Errorf("unsupported openapi version %q: %w", v.Value, domain.ErrInvalidDocument)
		}
		components := findKey(top, "components")
		if components == nil {
			return domain.DialectOpenAPI3, nil, nil
		}
		return domain.DialectOpenAPI3, findKey(components, "schemas"), nil
	}
	return "", nil, fmt.Errorf("neither swagger nor openapi version found: %w", domain.ErrInvalidDocument)
}
