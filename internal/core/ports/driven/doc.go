// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentLoader: Parses an input document into the raw schema index
//   - EmissionBackend: Renders resolved models into target-language text
//   - CacheStore: Persists the name → content-hash record between runs
//   - ConfigStore: Project configuration (modelgen.toml)
//   - FileWriter: Applies rendered output through the marker merge rules
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
