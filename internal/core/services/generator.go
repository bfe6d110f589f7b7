package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/modelgen-labs/modelgen-cli/internal/core/domain"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driven"
	"github.com/modelgen-labs/modelgen-cli/internal/core/ports/driving"
	"github.com/modelgen-labs/modelgen-cli/internal/dart"
	"github.com/modelgen-labs/modelgen-cli/internal/logger"
)

// Ensure Generator implements the driving ports.
var (
	_ driving.Generator = (*Generator)(nil)
	_ driving.Linter    = (*Generator)(nil)
)

// Generator runs the full pipeline. The emission backend is resolved once at
// construction into a concrete reference; no per-schema dispatch happens.
type Generator struct {
	loader    driven.DocumentLoader
	backend   driven.EmissionBackend
	cache     driven.CacheStore
	writer    driven.FileWriter
	linter    *Linter
	outputDir string
}

// NewGenerator creates a generator writing into outputDir.
func NewGenerator(
	loader driven.DocumentLoader,
	backend driven.EmissionBackend,
	cache driven.CacheStore,
	writer driven.FileWriter,
	linter *Linter,
	outputDir string,
) *Generator {
	return &Generator{
		loader:    loader,
		backend:   backend,
		cache:     cache,
		writer:    writer,
		linter:    linter,
		outputDir: outputDir,
	}
}

// OutputPath returns the deterministic, name-derived path of a schema's
// generated file.
func (g *Generator) OutputPath(name string) string {
	return filepath.Join(g.outputDir, dart.FileName(dart.ClassName(name))+".dart")
}

// Generate processes every named schema of the document at source,
// sequentially in declaration order. It aborts at the first project-fatal
// error (unresolved reference, unreadable cache, output I/O failure),
// leaving already-written files as-is; per-schema failures and marker
// conflicts are file-scoped and do not block sibling schemas.
func (g *Generator) Generate(ctx context.Context, source string) (*driving.GenerateResult, error) {
	started := time.Now().UTC()

	logger.Section("load")
	doc, err := g.loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	logger.Info("loaded %d schemas (%s)", len(doc.Names), doc.Dialect)

	inc, err := NewIncremental(ctx, g.cache)
	if err != nil {
		return nil, err
	}

	sink := domain.NewDiagnosticSink()
	g.linter.Check(doc, sink)

	resolver := NewResolver(doc)
	composer := NewComposer(doc, resolver)
	mapper := NewTypeMapper(resolver)
	builder := NewClassBuilder(doc, composer, mapper)

	logger.Section("generate")
	result := &driving.GenerateResult{}
	for _, name := range doc.Names {
		raw := doc.Get(name)
		if !inc.ShouldRegenerate(name, raw) {
			result.Skipped = append(result.Skipped, name)
			continue
		}

		body, err := g.renderSchema(builder, name)
		if err != nil {
			if errors.Is(err, domain.ErrUnresolvedReference) {
				// References cross schemas, so this is fatal project-wide.
				return nil, err
			}
			g.linter.report(sink, RuleGenerationFailed, name, "generation failed: %v", err)
			inc.Drop(name)
			continue
		}

		path := g.OutputPath(name)
		if err := g.writer.WriteGenerated(path, name, body); err != nil {
			if errors.Is(err, domain.ErrMarkerConflict) {
				// Fatal for this file only: report, leave the file alone,
				// keep going with siblings.
				g.linter.report(sink, RuleGenerationFailed, name, "%s: %v", path, err)
				inc.Drop(name)
				continue
			}
			return nil, fmt.Errorf("write %s: %w", path, err)
		}

		inc.Commit(name, raw)
		result.Regenerated = append(result.Regenerated, name)
		logger.Debug("wrote %s", path)
	}

	for _, name := range inc.RemovedSince(doc.Names) {
		path := g.OutputPath(name)
		if err := g.writer.Remove(path); err != nil {
			return nil, fmt.Errorf("remove %s: %w", path, err)
		}
		inc.Drop(name)
		result.Removed = append(result.Removed, name)
		logger.Debug("removed %s", path)
	}

	if err := inc.Save(ctx); err != nil {
		return nil, err
	}
	g.recordRun(ctx, started, result)

	result.Diagnostics = sink.All()
	return result, nil
}

// Lint resolves the document and reports quality findings without writing
// files.
func (g *Generator) Lint(ctx context.Context, source string) ([]domain.Diagnostic, error) {
	doc, err := g.loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	sink := domain.NewDiagnosticSink()
	g.linter.Check(doc, sink)
	return sink.All(), nil
}

// renderSchema builds the artifact for one schema and renders it into the
// final file body: imports, part directives, then the generated
// declarations, inline enums last.
func (g *Generator) renderSchema(builder *ClassBuilder, name string) (string, error) {
	art, err := builder.Build(name)
	if err != nil {
		return "", err
	}

	var pieces []*driven.Rendered
	switch {
	case art.Class != nil:
		r, err := g.backend.RenderClass(art.Class)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, r)
	case art.Enum != nil:
		r, err := g.backend.RenderEnum(art.Enum)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, r)
	case art.Union != nil:
		r, err := g.backend.RenderUnion(art.Union)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, r)
	case art.Wrapper != nil:
		r, err := g.backend.RenderWrapper(art.Wrapper)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, r)
	}
	for _, enum := range art.InlineEnums {
		r, err := g.backend.RenderEnum(enum)
		if err != nil {
			return "", err
		}
		pieces = append(pieces, r)
	}
	return assemble(pieces), nil
}

// assemble joins rendered pieces into one file body with deduplicated
// import and part blocks.
func assemble(pieces []*driven.Rendered) string {
	var imports, parts, bodies []string
	seenImport := make(map[string]bool)
	seenPart := make(map[string]bool)
	for _, p := range pieces {
		for _, imp := range p.Imports {
			if !seenImport[imp] {
				seenImport[imp] = true
				imports = append(imports, imp)
			}
		}
		for _, part := range p.Parts {
			if !seenPart[part] {
				seenPart[part] = true
				parts = append(parts, part)
			}
		}
		bodies = append(bodies, p.Body)
	}

	var out string
	for _, imp := range imports {
		out += imp + "\n"
	}
	if len(imports) > 0 {
		out += "\n"
	}
	for _, part := range parts {
		out += part + "\n"
	}
	if len(parts) > 0 {
		out += "\n"
	}
	for i, body := range bodies {
		if i > 0 {
			out += "\n"
		}
		out += body
	}
	return out
}

// recordRun appends run metadata when the cache store keeps history.
func (g *Generator) recordRun(ctx context.Context, started time.Time, result *driving.GenerateResult) {
	history, ok := g.cache.(driven.RunHistory)
	if !ok {
		return
	}
	rec := driven.RunRecord{
		ID:          uuid.NewString(),
		StartedAt:   started.Format(time.RFC3339),
		Regenerated: len(result.Regenerated),
		Removed:     len(result.Removed),
	}
	if err := history.RecordRun(ctx, rec); err != nil {
		logger.Warn("record run: %v", err)
	}
}
