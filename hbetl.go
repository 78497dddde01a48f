// Package hbetl transpiles Handlebars-style templates into ETL
// (Embedded Template Language) source text. It is a pure text-to-text
// rewrite: no template in this package is ever evaluated, only
// re-emitted as another template's source.
//
// Compile and CompileWith are the two entry points most callers need;
// DefaultRegistry and SendgridRegistry provide the two bundled
// dialects, and RegisterHelper/RegisterBlock/RegisterPartial let a
// caller extend either one before compiling.
package hbetl

import "github.com/nilfoss/hbetl/internal"

// TagModel is the immutable record a HelperFunc receives, describing
// one parsed tag: its name, raw and structured options, and — for
// block tags — the recursively-transpiled body.
type TagModel = internal.TagModel

// ArgModel is a single positional or keyed option value.
type ArgModel = internal.ArgModel

// KwArg is one key/value entry of a TagModel's ordered option mapping.
type KwArg = internal.KwArg

// HelperFunc is the single callback shape every helper, block-helper
// and partial resolves to.
type HelperFunc = internal.HelperFunc
