package internal

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// AccumulateTag implements spec.md §4.D: given the slice of input just
// past an opening delimiter, it scans left to right accumulating
// characters until it finds closingDelimiter, then hands the
// accumulated text to MakeTag and returns the residual input past the
// closing delimiter. forbiddenChars is checked one byte at a time — in
// practice always either empty (inside comments) or {'{'} (everywhere
// else) — since a UTF-8 continuation byte is always >= 0x80 it can never
// collide with an ASCII forbidden byte, so byte-wise scanning is safe
// even though the accumulated text itself may contain multi-byte runes.
func AccumulateTag(input, closingDelimiter string, forbiddenChars []byte, matcher *HelperPrefixMatcher, openingDelimiter string, logger *zap.Logger) (*TagModel, string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	width := len(closingDelimiter)
	var acc strings.Builder

	pos := 0
	for pos < len(input) {
		if pos+width <= len(input) && input[pos:pos+width] == closingDelimiter {
			residual := input[pos+width:]
			tag, err := buildTagModel(acc.String(), matcher, openingDelimiter, closingDelimiter)
			if err != nil {
				return nil, StringValueEmpty, err
			}
			logger.Debug("tag accumulated", zap.String(MetaKeyTag, tag.Name))
			return tag, residual, nil
		}

		ch := input[pos]
		if isForbidden(ch, forbiddenChars) {
			return nil, StringValueEmpty, NewForbiddenCharError(ch, acc.String())
		}
		acc.WriteByte(ch)
		pos++
	}

	return nil, StringValueEmpty, NewUnclosedTagError()
}

func isForbidden(ch byte, forbidden []byte) bool {
	for _, f := range forbidden {
		if ch == f {
			return true
		}
	}
	return false
}

// buildTagModel implements spec.md §4.D's MakeTag: trim the accumulated
// text, split it into name/options either via the HelperPrefixMatcher's
// longest registered prefix or, failing that, on the first Unicode
// space-separator code point, and run OptionLexer over any remaining
// options. RawContents preserves the original untrimmed accumulation, so
// comment tags can round-trip their inner text byte for byte.
func buildTagModel(raw string, matcher *HelperPrefixMatcher, openingDelimiter, closingDelimiter string) (*TagModel, error) {
	trimmed := strings.TrimSpace(raw)

	tag := &TagModel{
		RawContents:      raw,
		OpeningDelimiter: openingDelimiter,
		ClosingDelimiter: closingDelimiter,
	}

	if trimmed == StringValueEmpty {
		return tag, nil
	}

	var name, rest string
	if n, r, ok := matcher.Match(trimmed); ok {
		name, rest = n, r
	} else if h, t, ok := splitOnFirstSpaceSeparator(trimmed); ok {
		name, rest = h, t
	} else {
		name, rest = trimmed, StringValueEmpty
	}

	tag.Name = name

	options := strings.TrimSpace(rest)
	if options == StringValueEmpty {
		return tag, nil
	}

	args, kwargs, err := LexOptions(options)
	if err != nil {
		return nil, err
	}
	tag.RawOptions = options
	tag.Args = args
	tag.Kwargs = kwargs
	return tag, nil
}

// runeWidthAt returns the byte width of the rune starting at s[0], used
// by the parser's "copy one character to output" fallback so multi-byte
// UTF-8 sequences are never split.
func runeWidthAt(s string) int {
	if s == StringValueEmpty {
		return 0
	}
	_, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return 1
	}
	return size
}
