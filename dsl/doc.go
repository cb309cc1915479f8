// Package dsl provides the fluent builder for entity schemas. Builtin tables
// under entities/ and vendor-extension loaders both funnel through it, so
// every schema passes the same validation.
package dsl
