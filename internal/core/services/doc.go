// Package services implements the core resolution and generation pipeline.
//
// Services depend only on domain types and the port interfaces. The pipeline
// runs single-threaded to completion: schema index → reference resolver →
// composition engine → type mapper → class model builder → incremental
// decision → emission backend → file merge. Schemas are processed
// sequentially in declaration order so diagnostics and file ordering are
// deterministic across runs.
package services
