package internal

import (
	"go.uber.org/zap"
)

// SendgridRegistry builds the Sendgrid dialect from spec.md §4.G: it
// starts from the Base dialect's "each"/"raw" shapes and layers on the
// comparator family (equals, notEquals, greaterThan, lessThan, and, or),
// their chained "else <comparator>" siblings, and the "insert" helper.
func SendgridRegistry(logger *zap.Logger) *Registry {
	r := NewRegistry(logger)

	mustRegisterHelper(r, "else", elseBranchHelper(nil))
	mustRegisterHelper(r, "else and", elseBranchHelper(binaryArgCond("and", "&&")))
	mustRegisterHelper(r, "else equals", elseBranchHelper(binaryArgCond("equals", "==")))
	mustRegisterHelper(r, "else greaterThan", elseBranchHelper(binaryArgCond("greaterThan", ">")))
	mustRegisterHelper(r, "else if", elseBranchHelper(singleArgCond("if", false)))
	mustRegisterHelper(r, "else lessThan", elseBranchHelper(binaryArgCond("lessThan", "<")))
	mustRegisterHelper(r, "else notEquals", elseBranchHelper(binaryArgCond("notEquals", "!=")))
	mustRegisterHelper(r, "else or", elseBranchHelper(binaryArgCond("or", "||")))
	mustRegisterHelper(r, "else unless", elseBranchHelper(singleArgCond("unless", true)))
	mustRegisterHelper(r, "insert", insertHelper)

	mustRegisterBlock(r, "if", condBlockHelper(singleArgCond("if", false), true))
	mustRegisterBlock(r, "unless", condBlockHelper(singleArgCond("unless", true), false))
	mustRegisterBlock(r, "greaterThan", condBlockHelper(binaryArgCond("greaterThan", ">"), true))
	mustRegisterBlock(r, "lessThan", condBlockHelper(binaryArgCond("lessThan", "<"), true))
	mustRegisterBlock(r, "equals", condBlockHelper(binaryArgCond("equals", "=="), true))
	mustRegisterBlock(r, "notEquals", condBlockHelper(binaryArgCond("notEquals", "!="), true))
	mustRegisterBlock(r, "and", condBlockHelper(binaryArgCond("and", "&&"), true))
	mustRegisterBlock(r, "or", condBlockHelper(binaryArgCond("or", "||"), true))
	mustRegisterBlock(r, "each", eachHelper("each", "this"))
	mustRegisterBlock(r, "raw", rawHelper)

	return r
}

// insertHelper implements spec.md §8 scenario 5: "{{insert name
// "Customer"}}" -> "<%= @name || "Customer" %>". Per DESIGN.md's
// open-question decision, the operator is "||" (not "or"), following
// the literal test fixture over the source's other variant.
func insertHelper(tag *TagModel) (string, error) {
	if len(tag.Args) < 2 {
		return StringValueEmpty, NewDialectArityError("insert", `{{insert name "default"}}`)
	}
	lhs := TranslateArg(tag.Arg(0), TranslateVarDefault)
	rhs := TranslateArg(tag.Arg(1), TranslateVarDefault)
	return "<%= " + lhs + " || " + rhs + " %>", nil
}
