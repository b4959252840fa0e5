// Package orchestrator wires the loader → parser → renderer → writer pipeline
// behind a single entry point with dependency-injection friendly options.
package orchestrator
