package parser

import "fmt"

// SyntaxError is the parser's single error kind (spec §4.6, §7). Parsing
// halts on the first one raised outside a speculative section.
type SyntaxError struct {
	Message  string
	Code     string
	Filename string
	Line     int
	Column   int
	LineText string
	Got      string // the offending token's text, if applicable
}

func (e *SyntaxError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("%s at %s:%d:%d", e.Message, e.Filename, e.Line, e.Column)
	}
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
}

// Error code constants, following the teacher's ParserError convention of a
// programmatic discriminant alongside the human-readable message.
const (
	ErrUnexpectedToken       = "E_UNEXPECTED_TOKEN"
	ErrUnexpectedEOF         = "E_UNEXPECTED_EOF"
	ErrIllegalStartOfExpr    = "E_ILLEGAL_START_OF_EXPRESSION"
	ErrVarAsTypeName         = "E_VAR_AS_TYPE_NAME"
	ErrElseWithoutIf         = "E_ELSE_WITHOUT_IF"
	ErrCaseOutsideSwitch     = "E_CASE_OUTSIDE_SWITCH"
	ErrSuperNeedsMember      = "E_SUPER_NEEDS_MEMBER_ACCESS"
	ErrExpectedIdent         = "E_EXPECTED_IDENT"
	ErrExpectedType          = "E_EXPECTED_TYPE"
	ErrInvalidLiteral        = "E_INVALID_LITERAL"
	ErrDuplicateModifier     = "E_DUPLICATE_MODIFIER"
	ErrDuplicateDefault      = "E_DUPLICATE_DEFAULT_LABEL"
	ErrMisplacedVariadic     = "E_MISPLACED_VARIADIC"
	ErrMisplacedThisParam    = "E_MISPLACED_THIS_PARAM"
	ErrEmptyTryStatement     = "E_EMPTY_TRY_STATEMENT"
	ErrModifiersBeforeImport = "E_MODIFIERS_BEFORE_IMPORT"
)
