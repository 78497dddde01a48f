package internal

import "strings"

// ArgModel is a single positional or keyed value parsed out of a tag's
// option string. Quoted=true means the source wrote the literal in
// double quotes; Quoted=false means Value is an identifier path.
type ArgModel struct {
	Value  string
	Quoted bool
}

// KwArg is one entry of TagModel's ordered key/value option mapping.
// A plain map would lose the source order of "a=1 b=2 c=3"; a slice of
// KwArg keeps it, so helpers see options in source order.
type KwArg struct {
	Key   string
	Value ArgModel
}

// TagModel is an immutable record describing one parsed tag. It is
// mutated exactly once after construction: the parser assigns
// BlockContents on a block tag once that block's body has been
// recursively transpiled, immediately before invoking the block helper.
type TagModel struct {
	Name              string
	RawContents       string
	RawOptions        string
	Args              []ArgModel
	Kwargs            []KwArg
	OpeningDelimiter  string
	ClosingDelimiter  string
	BlockContents     string
}

// Get returns the value registered under key, and whether it was found.
func (t *TagModel) Get(key string) (ArgModel, bool) {
	for _, kw := range t.Kwargs {
		if kw.Key == key {
			return kw.Value, true
		}
	}
	return ArgModel{}, false
}

// GetDefault returns the value under key, or a fallback ArgModel built
// from def when the key is absent.
func (t *TagModel) GetDefault(key, def string) ArgModel {
	if v, ok := t.Get(key); ok {
		return v
	}
	return ArgModel{Value: def}
}

// Arg returns the i-th positional argument, or a zero ArgModel if there
// are fewer than i+1 positional arguments.
func (t *TagModel) Arg(i int) ArgModel {
	if i < 0 || i >= len(t.Args) {
		return ArgModel{}
	}
	return t.Args[i]
}

// String renders a compact debug form, in the teacher's TextNode.String
// style: the tag name and, when present, its raw options.
func (t *TagModel) String() string {
	var b strings.Builder
	b.WriteString("TagModel{name=")
	b.WriteString(t.Name)
	if t.RawOptions != StringValueEmpty {
		b.WriteString(", options=")
		b.WriteString(t.RawOptions)
	}
	b.WriteString("}")
	return b.String()
}
