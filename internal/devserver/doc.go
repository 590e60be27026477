// Package devserver is an in-memory stand-in for the inspection backend,
// used for local development and integration tests. It implements the full
// HTTP surface the inspector client consumes: login with bearer tokens,
// scheduled inspections, asset detail and history, photo and voice uploads
// with canned AI annotations, audit submission with a heuristic AI analysis,
// PDF report generation, and a health probe.
package devserver
