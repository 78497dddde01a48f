package internal

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// injectionPattern matches spec.md §6/§7's "<%.*%>" (non-greedy)
// rejection rule: any ETL expression syntax already present in the
// source template is an injection attempt.
var injectionPattern = regexp.MustCompile(`(?s)<%.*?%>`)

// CheckInjection implements spec.md §3/§7's pre-scan: the input must not
// contain any substring the downstream ETL evaluator would treat as an
// expression, comment, or statement tag.
func CheckInjection(input string) error {
	if injectionPattern.MatchString(input) {
		return NewInjectionError()
	}
	return nil
}

// Parser is the top-level streaming state machine from spec.md §4.E. It
// holds no state across calls; Parse is a straightforward recursive
// pass over the input the way the teacher's internal/prompty.parser.go
// recurses per block, adapted from "build an AST" to "emit ETL text
// directly, dispatching to a registry callback the moment a tag is
// recognized".
type Parser struct {
	registry *Registry
	matcher  *HelperPrefixMatcher
	logger   *zap.Logger
}

// NewParser builds a Parser bound to registry, computing the
// HelperPrefixMatcher once from the registry's current contents and
// inheriting the registry's logger.
func NewParser(registry *Registry) *Parser {
	logger := registry.Logger()
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		registry: registry,
		matcher:  registry.PrefixMatcher(),
		logger:   logger,
	}
}

// Parse runs the injection pre-scan and then transpiles the whole
// template, failing if any block remains open at end of input.
func (p *Parser) Parse(input string) (string, error) {
	if err := CheckInjection(input); err != nil {
		return StringValueEmpty, err
	}
	output, _, stack, err := p.parseFrom(input, nil)
	if err != nil {
		return StringValueEmpty, err
	}
	if len(stack) > 0 {
		return StringValueEmpty, NewMissingCloseError(stack[len(stack)-1])
	}
	return output, nil
}

// parseFrom is the tail-recursive dispatch loop of spec.md §4.E. It
// returns to its caller in exactly two situations: input is exhausted,
// or a "{{/name}}" block-close tag was consumed — in the latter case
// dispatchBlockClose has already checked the closing name against the top
// of the stack and the returned stack has had that top popped.
func (p *Parser) parseFrom(input string, stack []string) (output string, tail string, newStack []string, err error) {
	var out strings.Builder

	for {
		if input == StringValueEmpty {
			return out.String(), StringValueEmpty, stack, nil
		}

		switch {
		case strings.HasPrefix(input, DelimRawBlockOpen):
			input, err = p.dispatchRawBlock(input, &out)
			if err != nil {
				return StringValueEmpty, StringValueEmpty, stack, err
			}

		case strings.HasPrefix(input, DelimLongCommentOpen):
			input, err = p.dispatchComment(input, DelimLongCommentOpen, DelimLongCommentClose, nil, &out)
			if err != nil {
				return StringValueEmpty, StringValueEmpty, stack, err
			}

		case strings.HasPrefix(input, DelimShortCommentOpen):
			input, err = p.dispatchComment(input, DelimShortCommentOpen, DelimEscapedClose, []byte{'{'}, &out)
			if err != nil {
				return StringValueEmpty, StringValueEmpty, stack, err
			}

		case strings.HasPrefix(input, DelimBlockOpen):
			input, stack, err = p.dispatchBlockOpen(input, stack, &out)
			if err != nil {
				return StringValueEmpty, StringValueEmpty, stack, err
			}

		case strings.HasPrefix(input, DelimBlockClose):
			return p.dispatchBlockClose(input, stack, out.String())

		case strings.HasPrefix(input, DelimPartial):
			input, stack, err = p.dispatchPartial(input, stack, &out)
			if err != nil {
				return StringValueEmpty, StringValueEmpty, stack, err
			}

		case strings.HasPrefix(input, DelimUnescapedOpen):
			input, err = p.dispatchUnescaped(input, &out)
			if err != nil {
				return StringValueEmpty, StringValueEmpty, stack, err
			}

		case strings.HasPrefix(input, DelimEscapedOpen):
			input, err = p.dispatchEscaped(input, &out)
			if err != nil {
				return StringValueEmpty, StringValueEmpty, stack, err
			}

		case strings.HasPrefix(input, DelimStrayCloser):
			return StringValueEmpty, StringValueEmpty, stack, NewStrayCloserError(out.String())

		default:
			w := runeWidthAt(input)
			out.WriteString(input[:w])
			input = input[w:]
		}
	}
}

func (p *Parser) dispatchRawBlock(input string, out *strings.Builder) (string, error) {
	tag, residual, err := AccumulateTag(input[len(DelimRawBlockOpen):], DelimRawBlockClose, []byte{'{'}, p.matcher, DelimRawBlockOpen, p.logger)
	if err != nil {
		return StringValueEmpty, err
	}
	if tag.Name == StringValueEmpty {
		return StringValueEmpty, NewNameRequiredError(KindRawBlock)
	}

	closeIdx := strings.Index(residual, RawBlockCloseTagPrefix)
	if closeIdx < 0 {
		return StringValueEmpty, NewUnclosedRawBlockError()
	}
	body := residual[:closeIdx]
	afterOpen := residual[closeIdx+len(RawBlockCloseTagPrefix):]

	closeEndIdx := strings.Index(afterOpen, DelimRawBlockClose)
	if closeEndIdx < 0 {
		return StringValueEmpty, NewUnclosedRawBlockError()
	}
	closeName := strings.TrimSpace(afterOpen[:closeEndIdx])
	tail := afterOpen[closeEndIdx+len(DelimRawBlockClose):]

	if closeName == StringValueEmpty || closeName != tag.Name {
		return StringValueEmpty, NewMismatchedRawBlockError(tag.Name)
	}

	tag.BlockContents = body
	fn := p.registry.LookupBlock(tag.Name)
	result, err := fn(tag)
	if err != nil {
		return StringValueEmpty, NewDispatchError(tag.Name, err)
	}
	out.WriteString(result)
	return tail, nil
}

func (p *Parser) dispatchComment(input, openDelim, closeDelim string, forbidden []byte, out *strings.Builder) (string, error) {
	tag, residual, err := AccumulateTag(input[len(openDelim):], closeDelim, forbidden, p.matcher, openDelim, p.logger)
	if err != nil {
		return StringValueEmpty, err
	}
	out.WriteString("<%#")
	out.WriteString(tag.RawContents)
	out.WriteString("%>")
	return residual, nil
}

func (p *Parser) dispatchBlockOpen(input string, stack []string, out *strings.Builder) (string, []string, error) {
	tag, residual, err := AccumulateTag(input[len(DelimBlockOpen):], DelimEscapedClose, []byte{'{'}, p.matcher, DelimBlockOpen, p.logger)
	if err != nil {
		return StringValueEmpty, stack, err
	}
	if tag.Name == StringValueEmpty {
		return StringValueEmpty, stack, NewNameRequiredError(KindBlockOpen)
	}

	pushed := append(append([]string{}, stack...), tag.Name)
	body, tailAfterClose, remainingStack, err := p.parseFrom(residual, pushed)
	if err != nil {
		return StringValueEmpty, stack, err
	}

	tag.BlockContents = body
	fn := p.registry.LookupBlock(tag.Name)
	result, err := fn(tag)
	if err != nil {
		return StringValueEmpty, stack, NewDispatchError(tag.Name, err)
	}
	out.WriteString(result)
	return tailAfterClose, remainingStack, nil
}

// dispatchBlockClose implements spec.md §4.E's "{{/" branch: it is
// terminal for this recursion level, returning immediately to the
// parseFrom call that pushed the block name being closed.
func (p *Parser) dispatchBlockClose(input string, stack []string, outputSoFar string) (string, string, []string, error) {
	if len(stack) == 0 {
		return StringValueEmpty, StringValueEmpty, stack, NewUnexpectedCloseError()
	}

	tag, residual, err := AccumulateTag(input[len(DelimBlockClose):], DelimEscapedClose, []byte{'{'}, p.matcher, DelimBlockClose, p.logger)
	if err != nil {
		return StringValueEmpty, StringValueEmpty, stack, err
	}

	top := stack[len(stack)-1]
	popped := stack[:len(stack)-1]

	if tag.Name == StringValueEmpty || tag.Name != top {
		return StringValueEmpty, StringValueEmpty, stack, NewWrongCloseError(top)
	}

	return outputSoFar, residual, popped, nil
}

func (p *Parser) dispatchPartial(input string, stack []string, out *strings.Builder) (string, []string, error) {
	tag, residual, err := AccumulateTag(input[len(DelimPartial):], DelimEscapedClose, []byte{'{'}, p.matcher, DelimPartial, p.logger)
	if err != nil {
		return StringValueEmpty, stack, err
	}
	if tag.Name == StringValueEmpty {
		return StringValueEmpty, stack, NewNameRequiredError(KindPartial)
	}

	fn := p.registry.LookupPartial(tag.Name)
	fragment, err := fn(tag)
	if err != nil {
		return StringValueEmpty, stack, NewDispatchError(tag.Name, err)
	}

	// Partials are first-class templates: their expansion is itself
	// recursively parsed for embedded Handlebars, using the current
	// block-context stack (spec.md §4.E). Any leftover of the fragment's
	// own input past a stray block-close is discarded, matching the
	// source's stack-threading behavior verbatim (spec.md §9).
	expanded, _, remainingStack, err := p.parseFrom(fragment, stack)
	if err != nil {
		return StringValueEmpty, stack, err
	}
	out.WriteString(expanded)
	return residual, remainingStack, nil
}

func (p *Parser) dispatchUnescaped(input string, out *strings.Builder) (string, error) {
	tag, residual, err := AccumulateTag(input[len(DelimUnescapedOpen):], DelimUnescapedClose, []byte{'{'}, p.matcher, DelimUnescapedOpen, p.logger)
	if err != nil {
		return StringValueEmpty, err
	}
	if tag.Name == StringValueEmpty {
		return StringValueEmpty, NewNameRequiredError(KindUnescaped)
	}
	if tag.RawOptions != StringValueEmpty {
		return StringValueEmpty, NewOptionsNotAllowedError()
	}

	fn := p.registry.LookupUnescaped()
	result, err := fn(tag)
	if err != nil {
		return StringValueEmpty, NewDispatchError(tag.Name, err)
	}
	out.WriteString(result)
	return residual, nil
}

func (p *Parser) dispatchEscaped(input string, out *strings.Builder) (string, error) {
	tag, residual, err := AccumulateTag(input[len(DelimEscapedOpen):], DelimEscapedClose, []byte{'{'}, p.matcher, DelimEscapedOpen, p.logger)
	if err != nil {
		return StringValueEmpty, err
	}
	if tag.Name == StringValueEmpty {
		return StringValueEmpty, NewNameRequiredError(KindEscaped)
	}

	fn := p.registry.LookupHelper(tag.Name)
	result, err := fn(tag)
	if err != nil {
		return StringValueEmpty, NewDispatchError(tag.Name, err)
	}
	out.WriteString(result)
	return residual, nil
}
