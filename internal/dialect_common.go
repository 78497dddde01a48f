package internal

import "strings"

// condExprFunc computes the guard expression a cond-style block or
// else-branch helper drops into its "<% <expr> -> %>" clause.
type condExprFunc func(tag *TagModel) (string, error)

// singleArgCond builds a condExprFunc reading tag.Arg(0) as a variable
// path, optionally negated — the shape "if"/"unless" and their Sendgrid
// "else if"/"else unless" siblings all share.
func singleArgCond(helperName string, negate bool) condExprFunc {
	return func(tag *TagModel) (string, error) {
		if len(tag.Args) < 1 {
			return StringValueEmpty, NewDialectArityError(helperName, "{{#"+helperName+" options}}")
		}
		expr := TranslateArg(tag.Arg(0), TranslateVarDefault)
		if negate {
			return "!" + expr, nil
		}
		return expr, nil
	}
}

// binaryArgCond builds a condExprFunc joining tag.Arg(0) and tag.Arg(1)
// with op, the shape the Sendgrid comparator helpers share.
func binaryArgCond(helperName, op string) condExprFunc {
	return func(tag *TagModel) (string, error) {
		if len(tag.Args) < 2 {
			return StringValueEmpty, NewDialectArityError(helperName, "{{#"+helperName+" a b}}")
		}
		lhs := TranslateArg(tag.Arg(0), TranslateVarDefault)
		rhs := TranslateArg(tag.Arg(1), TranslateVarDefault)
		return lhs + " " + op + " " + rhs, nil
	}
}

// condBlockHelper builds a block-helper emitting a single-clause
// "cond do" ETL chain, matching spec.md §8 scenarios 3-4: the guard
// clause wraps block_contents, and withFallback controls whether a
// trailing "<% true -> %><% nil %>" catch-all clause is appended — "if"
// and the Sendgrid comparator blocks have one, "unless" does not.
func condBlockHelper(cond condExprFunc, withFallback bool) HelperFunc {
	return func(tag *TagModel) (string, error) {
		expr, err := cond(tag)
		if err != nil {
			return StringValueEmpty, err
		}
		var b strings.Builder
		b.WriteString("<%= cond do %>\n<% ")
		b.WriteString(expr)
		b.WriteString(" -> %>")
		b.WriteString(tag.BlockContents)
		if withFallback {
			b.WriteString("<% true -> %><% nil %>\n<% end %>\n")
		} else {
			b.WriteString("<% end %>\n")
		}
		return b.String(), nil
	}
}

// elseBranchHelper builds a plain helper for "else" and its chained
// "else <comparator>" siblings: it emits the next guard clause of an
// enclosing "cond do", either the bare catch-all "<% true -> %>" (cond
// nil) or a conditioned "<% <expr> -> %>" clause.
func elseBranchHelper(cond condExprFunc) HelperFunc {
	if cond == nil {
		return func(*TagModel) (string, error) {
			return "<% true -> %>", nil
		}
	}
	return func(tag *TagModel) (string, error) {
		expr, err := cond(tag)
		if err != nil {
			return StringValueEmpty, err
		}
		return "<% " + expr + " -> %>", nil
	}
}

// eachHelper implements spec.md §9's documented each/foreach quirk: it
// always emits an ETL "for" comprehension over tag.Arg(0), reproducing
// the source's behavior of producing a list rather than concatenated
// text verbatim rather than "fixing" it.
func eachHelper(helperName, loopVar string) HelperFunc {
	return func(tag *TagModel) (string, error) {
		if len(tag.Args) < 1 {
			return StringValueEmpty, NewDialectArityError(helperName, "{{#"+helperName+" collection}}")
		}
		coll := TranslateArg(tag.Arg(0), TranslateVarDefault)
		var b strings.Builder
		b.WriteString("<%= for ")
		b.WriteString(loopVar)
		b.WriteString(" <- ")
		b.WriteString(coll)
		b.WriteString(" do %>")
		b.WriteString(tag.BlockContents)
		b.WriteString("<% end %>\n")
		return b.String(), nil
	}
}

// rawHelper returns a block's contents with no enclosing ETL tags. For a
// "{{{{raw}}}}" raw block those contents are the verbatim source body; for
// a normal "{{#raw}}" block they have already been transpiled like any
// other block body.
func rawHelper(tag *TagModel) (string, error) {
	return tag.BlockContents, nil
}
