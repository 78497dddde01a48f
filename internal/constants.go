package internal

// Delimiter literals recognized by the parser, in the exact dispatch
// order spec'd for the prefix table (longest / most specific first).
const (
	DelimRawBlockOpen   = "{{{{"
	DelimRawBlockClose  = "}}}}"
	DelimLongCommentOpen  = "{{!--"
	DelimLongCommentClose = "--}}"
	DelimShortCommentOpen = "{{!"
	DelimBlockOpen        = "{{#"
	DelimBlockClose       = "{{/"
	DelimPartial          = "{{>"
	DelimUnescapedOpen    = "{{{"
	DelimUnescapedClose   = "}}}"
	DelimEscapedOpen      = "{{"
	DelimEscapedClose     = "}}"
	DelimStrayCloser      = "}}"

	RawBlockCloseTagPrefix = "{{{{/"
)

// Reserved fallback callback names, always present on any registry.
const (
	NameEscapedFallback   = "__escaped__"
	NameUnescapedFallback = "__unescaped__"
)

// Sentinel substring that marks a reserved fallback name; such names are
// excluded from the HelperPrefixMatcher's alternation.
const SentinelToken = "__"

// StringValueEmpty is the canonical empty string, named for readability
// at call sites that check for "no name"/"no options".
const StringValueEmpty = ""

// MaxStrayCloserContext bounds how much of the transpiled-so-far output
// is echoed back in a stray-closing-delimiter error message.
const MaxStrayCloserContext = 32

// Tag kind labels used in "<Kind> tags require a name" error messages.
const (
	KindRawBlock  = "Raw block"
	KindBlockOpen = "Block"
	KindBlockClose = "Closing block"
	KindPartial    = "Partial"
	KindUnescaped  = "Unescaped"
	KindEscaped    = "Escaped"
)
