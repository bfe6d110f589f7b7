// Package openapi loads OpenAPI 2.0 and 3.x documents into the
// dialect-agnostic raw schema index.
//
// Documents are parsed through yaml.v3 nodes rather than plain maps so the
// declaration order of schemas and properties survives parsing exactly as
// written; JSON input parses through the same path since YAML is a
// superset. The package implements driven.DocumentLoader.
package openapi
