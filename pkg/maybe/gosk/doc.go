// Package gosk adapts goskema schemas to the maybe capability contracts.
//
// Wrap takes any goskema.Schema[T] (built with the goskema DSL) and yields a
// schema usable with both solo.Validator and later.Validator. Issue paths,
// codes and messages carry over into the diagnostic projection unchanged.
package gosk
