// Package model defines the data that flows through the document generation
// pipeline: intake answers, immutable template definitions, the generated
// document with its sections and validation result, and the ephemeral progress
// snapshots emitted while a run is in flight. Templates are shared read-only by
// every run; a GeneratedDocument is owned by the run that produced it and is
// never updated in place once returned.
package model
