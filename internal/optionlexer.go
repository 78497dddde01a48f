package internal

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LexOptions splits a trimmed tag option string into positional args and
// ordered kwargs, per spec.md §4.B. It performs a single left-to-right
// scan, grouping characters into whitespace-delimited tokens while
// treating a double-quoted region as opaque to both whitespace and "="
// detection — mirroring the teacher's scanAttrValue quote handling in
// internal/prompty.lexer.go, generalized from attr="value" pairs to
// Handlebars' bare-or-keyed option tokens.
func LexOptions(input string) ([]ArgModel, []KwArg, error) {
	var args []ArgModel
	var kwargs []KwArg

	pos := 0
	n := len(input)

	for pos < n {
		pos = skipOptionWhitespace(input, pos)
		if pos >= n {
			break
		}

		token, eqIdx, newPos, err := scanOptionToken(input, pos)
		if err != nil {
			return nil, nil, err
		}
		pos = newPos

		if eqIdx >= 0 {
			key := token[:eqIdx]
			valuePart := token[eqIdx+1:]
			kwargs = append(kwargs, KwArg{Key: key, Value: parseOptionValue(valuePart)})
			continue
		}

		args = append(args, parseOptionValue(token))
	}

	return args, kwargs, nil
}

// parseOptionValue converts a raw scanned token into an ArgModel,
// stripping the surrounding quotes of a quoted literal.
func parseOptionValue(token string) ArgModel {
	if strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) && len(token) >= 2 {
		return ArgModel{Value: token[1 : len(token)-1], Quoted: true}
	}
	return ArgModel{Value: token, Quoted: false}
}

// scanOptionToken scans one whitespace-delimited token starting at pos,
// treating any double-quoted run as a single opaque unit. It returns the
// token text, the byte index (within the token) of the first "="
// encountered outside quotes (or -1 if none), and the position just past
// the token.
func scanOptionToken(input string, pos int) (token string, eqIdx int, newPos int, err error) {
	start := pos
	n := len(input)
	eqIdx = -1

	for pos < n {
		ch := input[pos]
		if isOptionWhitespace(ch) {
			break
		}
		if ch == '"' {
			closeIdx := strings.IndexByte(input[pos+1:], '"')
			if closeIdx < 0 {
				return "", -1, 0, NewUnterminatedQuoteError(input[start:])
			}
			pos = pos + 1 + closeIdx + 1
			continue
		}
		if ch == '=' && eqIdx < 0 {
			eqIdx = pos - start
		}
		pos++
	}

	return input[start:pos], eqIdx, pos, nil
}

func isOptionWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// skipOptionWhitespace advances past a run of whitespace bytes,
// collapsing consecutive separators per spec.md §4.B's edge cases.
func skipOptionWhitespace(input string, pos int) int {
	for pos < len(input) && isOptionWhitespace(input[pos]) {
		pos++
	}
	return pos
}

// isSpaceSeparator reports whether r belongs to Unicode category Zs
// (space separator) — the exact class spec.md §4.D's MakeTag splits on,
// distinct from unicode.IsSpace (which also matches tabs/newlines).
func isSpaceSeparator(r rune) bool {
	return unicode.Is(unicode.Zs, r)
}

// splitOnFirstSpaceSeparator splits s at the first Unicode space-
// separator code point, returning (head, tail) with tail's leading
// separator consumed. If no such code point exists, head is all of s
// and ok is false.
func splitOnFirstSpaceSeparator(s string) (head, tail string, ok bool) {
	for i, r := range s {
		if isSpaceSeparator(r) {
			return s[:i], s[i+utf8.RuneLen(r):], true
		}
	}
	return s, StringValueEmpty, false
}
