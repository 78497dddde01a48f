package internal

import (
	"go.uber.org/zap"
)

// BaseRegistry builds the Base dialect from spec.md §4.G: helpers
// "else", "log", "@index", "@key" plus the reserved fallbacks; block-
// helpers "if", "each", "foreach", "raw", "unless".
func BaseRegistry(logger *zap.Logger) *Registry {
	r := NewRegistry(logger)

	mustRegisterHelper(r, "else", elseBranchHelper(nil))
	mustRegisterHelper(r, "log", logHelper)
	mustRegisterHelper(r, "@index", indexHelper)
	mustRegisterHelper(r, "@key", keyHelper)

	mustRegisterBlock(r, "if", condBlockHelper(singleArgCond("if", false), true))
	mustRegisterBlock(r, "unless", condBlockHelper(singleArgCond("unless", true), false))
	mustRegisterBlock(r, "each", eachHelper("each", "this"))
	mustRegisterBlock(r, "foreach", eachHelper("foreach", "this"))
	mustRegisterBlock(r, "raw", rawHelper)

	return r
}

// logHelper emits a silent ETL statement wrapping the source's log call,
// used for "{{log message}}" style tags. It never appends visible output.
func logHelper(tag *TagModel) (string, error) {
	if len(tag.Args) < 1 {
		return StringValueEmpty, NewDialectArityError("log", "{{log message}}")
	}
	arg := TranslateArg(tag.Arg(0), TranslateVarDefault)
	return "<% IO.inspect(" + arg + ") %>", nil
}

// indexHelper implements the "{{@index}}" bare loop-index reference used
// inside "{{#each}}"/"{{#foreach}}" bodies.
func indexHelper(*TagModel) (string, error) {
	return "<%= @index %>", nil
}

// keyHelper implements the "{{@key}}" bare loop-key reference.
func keyHelper(*TagModel) (string, error) {
	return "<%= @key %>", nil
}

func mustRegisterHelper(r *Registry, name string, fn HelperFunc) {
	if err := r.RegisterHelper(name, fn); err != nil {
		panic(err)
	}
}

func mustRegisterBlock(r *Registry, name string, fn HelperFunc) {
	if err := r.RegisterBlock(name, fn); err != nil {
		panic(err)
	}
}
