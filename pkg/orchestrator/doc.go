// Package orchestrator runs the generation pipeline: entity resolution,
// structure, content, validation and rendering, in that order. Each run owns
// the document it builds; progress is published on a caller-owned channel.
package orchestrator
