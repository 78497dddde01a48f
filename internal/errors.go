package internal

import (
	"fmt"

	"github.com/itsatony/go-cuserr"
)

// Error codes attached to every transpile failure, mirroring the
// teacher's ErrCodeParse/ErrCodeExec/ErrCodeRegistry categorization.
const (
	ErrCodeInjection = "HBETL_INJECTION"
	ErrCodeLex       = "HBETL_LEX"
	ErrCodeParse     = "HBETL_PARSE"
	ErrCodeDispatch  = "HBETL_DISPATCH"
	ErrCodeRegistry  = "HBETL_REGISTRY"
)

// Metadata keys used with cuserr.WithMetadata.
const (
	MetaKeyAccumulator = "accumulator"
	MetaKeyChar        = "char"
	MetaKeyTag         = "tag"
	MetaKeyExpected    = "expected"
	MetaKeyActual      = "actual"
	MetaKeyOutput      = "output"
)

// Contractual error message templates from spec.md §7. Tests match on
// these substrings, so the literal text must never change shape.
const (
	MsgInjectedExpression = "Compilation unsafe: the source template contains EEx expressions."
	MsgUnclosedTag        = "Unclosed tag."
	MsgForbiddenCharFmt   = "Unexpected character %c inside a tag: %s"
	MsgStrayCloserFmt     = "Unexpected closing delimiter: }}%s"
	MsgUnexpectedClose    = "Unexpected closing block tag."
	MsgWrongCloseFmt      = "Unexpected closing block tag. Expected closing {{/%s}} tag."
	MsgMissingCloseFmt    = "Unexpected end of template.  Closing block not found: {{/%s}}"
	MsgBlockHelperUnregisteredFmt = "Block-helper not registered: %s"
	MsgPartialUnregisteredFmt     = "Partial not registered: %s"
	MsgNameRequiredFmt            = "%s tags require a name, e.g. {{…}}"
	MsgOptionsNotAllowed          = "Non-escaped tags should not include options"
)

// NewInjectionError reports that the raw input already contains ETL syntax.
func NewInjectionError() error {
	return cuserr.NewValidationError(ErrCodeInjection, MsgInjectedExpression)
}

// NewUnclosedTagError reports that a tag ran off the end of input.
func NewUnclosedTagError() error {
	return cuserr.NewValidationError(ErrCodeLex, MsgUnclosedTag)
}

// NewForbiddenCharError reports a nested "{" found inside a tag body.
func NewForbiddenCharError(ch byte, accumulated string) error {
	msg := fmt.Sprintf(MsgForbiddenCharFmt, ch, accumulated)
	return cuserr.NewValidationError(ErrCodeLex, msg).
		WithMetadata(MetaKeyChar, string(ch)).
		WithMetadata(MetaKeyAccumulator, accumulated)
}

// NewStrayCloserError reports a "}}" seen outside of any open tag.
func NewStrayCloserError(outputSoFar string) error {
	ctx := outputSoFar
	if len(ctx) > MaxStrayCloserContext {
		ctx = ctx[:MaxStrayCloserContext]
	}
	msg := fmt.Sprintf(MsgStrayCloserFmt, ctx)
	return cuserr.NewValidationError(ErrCodeParse, msg).WithMetadata(MetaKeyOutput, ctx)
}

// NewUnexpectedCloseError reports a "{{/...}}" with no open block.
func NewUnexpectedCloseError() error {
	return cuserr.NewValidationError(ErrCodeParse, MsgUnexpectedClose)
}

// NewWrongCloseError reports a "{{/X}}" when "Y" was the open block.
func NewWrongCloseError(expected string) error {
	msg := fmt.Sprintf(MsgWrongCloseFmt, expected)
	return cuserr.NewValidationError(ErrCodeParse, msg).WithMetadata(MetaKeyExpected, expected)
}

// NewMissingCloseError reports EOF reached while blocks remain open.
func NewMissingCloseError(top string) error {
	msg := fmt.Sprintf(MsgMissingCloseFmt, top)
	return cuserr.NewValidationError(ErrCodeParse, msg).WithMetadata(MetaKeyTag, top)
}

// NewBlockHelperUnregisteredError reports a lookup miss on a block name.
func NewBlockHelperUnregisteredError(name string) error {
	msg := fmt.Sprintf(MsgBlockHelperUnregisteredFmt, name)
	return cuserr.NewValidationError(ErrCodeDispatch, msg).WithMetadata(MetaKeyTag, name)
}

// NewPartialUnregisteredError reports a lookup miss on a partial name.
func NewPartialUnregisteredError(name string) error {
	msg := fmt.Sprintf(MsgPartialUnregisteredFmt, name)
	return cuserr.NewValidationError(ErrCodeDispatch, msg).WithMetadata(MetaKeyTag, name)
}

// NewNameRequiredError reports a tag of the given kind with an empty name.
func NewNameRequiredError(kind string) error {
	msg := fmt.Sprintf(MsgNameRequiredFmt, kind)
	return cuserr.NewValidationError(ErrCodeParse, msg)
}

// NewOptionsNotAllowedError reports options on an unescaped ("{{{") tag.
func NewOptionsNotAllowedError() error {
	return cuserr.NewValidationError(ErrCodeParse, MsgOptionsNotAllowed)
}

// NewDispatchError wraps a helper callback's own error with tag context.
func NewDispatchError(tagName string, cause error) error {
	return cuserr.WrapStdError(cause, ErrCodeDispatch, cause.Error()).
		WithMetadata(MetaKeyTag, tagName)
}

// NewMismatchedRawBlockError reports a raw-block open/close name mismatch.
func NewMismatchedRawBlockError(expected string) error {
	msg := fmt.Sprintf(MsgWrongCloseFmt, expected)
	return cuserr.NewValidationError(ErrCodeParse, msg).WithMetadata(MetaKeyExpected, expected)
}

// NewUnclosedRawBlockError reports a raw block with no matching "{{{{/".
func NewUnclosedRawBlockError() error {
	return cuserr.NewValidationError(ErrCodeLex, MsgUnclosedTag)
}

// NewInvalidHelperNameError reports a callback name starting with ".".
func NewInvalidHelperNameError(name string) error {
	msg := fmt.Sprintf("helper callback names must not start with \".\": %s", name)
	return cuserr.NewValidationError(ErrCodeRegistry, msg).WithMetadata(MetaKeyTag, name)
}

// NewInvalidPartialBodyError reports a RegisterPartial call whose body
// argument was neither a string nor a HelperFunc.
func NewInvalidPartialBodyError(name string) error {
	msg := fmt.Sprintf("partial %q body must be a string or a HelperFunc", name)
	return cuserr.NewValidationError(ErrCodeRegistry, msg).WithMetadata(MetaKeyTag, name)
}

// NewUnterminatedQuoteError reports a tag option string with an open
// double quote and no matching close.
func NewUnterminatedQuoteError(accumulated string) error {
	msg := fmt.Sprintf("Unterminated quoted string in options: %s", accumulated)
	return cuserr.NewValidationError(ErrCodeLex, msg).WithMetadata(MetaKeyAccumulator, accumulated)
}

// NewDialectArityError reports a dialect helper invoked without the
// options it requires, e.g. "{{#if}}" with no condition argument.
func NewDialectArityError(helperName, example string) error {
	msg := fmt.Sprintf("The %s helper requires options, e.g. %s", helperName, example)
	return cuserr.NewValidationError(ErrCodeDispatch, msg).WithMetadata(MetaKeyTag, helperName)
}
