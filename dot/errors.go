package dot

import "fmt"

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// ParseError is the lowest-level failure produced by the parsing
// primitives: a token or literal mismatch at a known position.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// RuleError wraps a lower-level failure with the grammar rule that was
// being attempted, so a failed parse reports a breadcrumb trail
// ("not a valid EdgeStatement: line 3, col 7: expected ';'") rather than
// only the deepest mismatch.
type RuleError struct {
	Rule  string
	Cause error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("not a valid %s: %v", e.Rule, e.Cause)
}

func (e *RuleError) Unwrap() error { return e.Cause }

// rule wraps err with the name of the grammar rule being attempted.
func rule(name string, err error) error {
	return &RuleError{Rule: name, Cause: err}
}
