// Package confpipe is a worked example: a three-stage configuration
// pipeline (load, validate, process) built from verdict primitives, with a
// closed fault schema and an exhaustive failure reporter.
//
// It shows the intended shape of a consuming domain: fault variants as
// plain structs, one Union failure type across every stage, per-stage
// schemas composed at the pipeline boundary, and both composition styles
// (stage connectors and the fluent chain).
package confpipe
