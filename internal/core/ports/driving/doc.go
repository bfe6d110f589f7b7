// Package driving defines the interfaces through which the outside world
// drives the core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI adapter calls these interfaces; core services implement them.
//
//   - Generator: The full resolve → emit → merge pipeline
//   - Linter: Heuristic quality checks over the resolved index
//   - BackendRegistry: Lookup of registered emission backends
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
