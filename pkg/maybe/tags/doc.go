// Package tags adapts go-playground/validator v10 struct-tag validation to
// the maybe capability contracts.
//
// Build one Engine (validator + English translator), then Bind it per struct
// type. Every violated tag becomes one issue with the field path, the tag as
// code, and the translated message. Wrong-typed inputs are reported as a
// single invalid_type issue, never a panic.
package tags
