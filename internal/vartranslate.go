package internal

import "strings"

// RootPrefix is the source convention meaning "look up from the context
// root" (spec.md's "@root." glossary entry). It is stripped before
// translation.
const RootPrefix = "@root."

// ThisPrefix marks a segment that already refers to the current scope,
// per spec.md §4.G's variable translation contract: such segments are
// emitted bare, with no leading "@".
const ThisPrefix = "this"

// TranslateVarDefault implements spec.md §4.G's variable translation
// contract with the prefix-strip semantic for "@root." (open question 3
// in DESIGN.md, used by both dialects): strip a literal leading
// "@root." if present, split on ".", and emit either "@S" / "S" (single
// segment) or "get_in(@S, [:k1, :k2, ...])" / "get_in(S, ...)" (multiple
// segments), dropping the "@" whenever the leading segment starts with
// "this".
func TranslateVarDefault(v string) string {
	return translateVar(v, stripRootPrefix)
}

func translateVar(v string, normalize func(string) string) string {
	v = normalize(v)
	segments := strings.Split(v, ".")

	if len(segments) == 1 {
		s := segments[0]
		if strings.HasPrefix(s, ThisPrefix) {
			return s
		}
		return "@" + s
	}

	head := segments[0]
	rest := segments[1:]
	keys := make([]string, len(rest))
	for i, k := range rest {
		keys[i] = ":" + k
	}
	joined := strings.Join(keys, ", ")

	if strings.HasPrefix(head, ThisPrefix) {
		return "get_in(" + head + ", [" + joined + "])"
	}
	return "get_in(@" + head + ", [" + joined + "])"
}

func stripRootPrefix(v string) string {
	return strings.TrimPrefix(v, RootPrefix)
}

// TranslateArg re-emits an already-parsed ArgModel using the variable
// translation contract for unquoted identifiers, or a literal quoted
// string (re-wrapped verbatim in double quotes) for quoted arguments.
func TranslateArg(a ArgModel, translate func(string) string) string {
	if a.Quoted {
		return `"` + a.Value + `"`
	}
	return translate(a.Value)
}
