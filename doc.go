// Package scss implements a compiler for a strict SCSS subset: a sequence
// of top-level style rules and variable declarations, where rules may
// nest arbitrarily and carry their own scoped variable declarations.
//
// Compilation runs in five stages, each in its own file: a tokenizer
// (scanner.go) drives an explicit state machine over the input bytes into
// a flat token sequence; a recursive-descent parser (parser.go) turns
// that into a nested rule tree with lexically-scoped variable snapshots;
// a resolver (resolver.go) substitutes every variable reference with its
// literal value under those scoping rules; an emitter (emitter.go)
// flattens the nested tree into an ordered list of rules with
// descendant-combinator selectors; and a printer (printer.go) renders
// that list as CSS text. Compile composes all five.
//
// Full SCSS — mixins, functions, @media, @import, interpolation,
// combinators beyond descendant, attribute/pseudo selectors, comments —
// is not modelled. Source maps, incremental recompilation, parallelism,
// author whitespace/comments, and CSS-level validation of property names
// or values are all out of scope.
package scss
