package jsonquery

import "fmt"

// SyntaxError is raised by either parser when the input text does not match
// the grammar at some position. Line and Column are both zero-based;
// LineText is the full text of the offending source line.
type SyntaxError struct {
	Line     int
	Column   int
	LineText string
	Expected string
}

func (err *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at line %d, column %d: expected %s", err.Line, err.Column, err.Expected)
}

// ParseFailure is raised when a parser accepts a prefix of the input but not
// all of it (trailing garbage), or an internal invariant is violated.
type ParseFailure struct {
	Reason string
}

func (err *ParseFailure) Error() string {
	return "failed to parse: " + err.Reason
}

// ApplyError is raised by the evaluator when a selector step does not match
// the current value's Kind, or a Key/Property/Index/Range lookup misses.
type ApplyError struct {
	Step    string
	ValKind Kind
	Message string
}

func (err *ApplyError) Error() string {
	if err.Message != "" {
		return fmt.Sprintf("%s: %s (value is %s)", err.Step, err.Message, err.ValKind)
	}
	return fmt.Sprintf("%s cannot be applied to %s", err.Step, err.ValKind)
}

// Warning is a non-fatal diagnostic produced during evaluation, such as a
// Truncate step that is not the last step of its chain. Warnings never
// terminate evaluation.
type Warning struct {
	Message string
}

func (w Warning) String() string { return w.Message }

// depthExceededSyntaxError builds the SyntaxError used when a parser's
// configured maximum nesting depth is exceeded.
func depthExceededSyntaxError(line, col int, lineText string, max int) *SyntaxError {
	return &SyntaxError{
		Line:     line,
		Column:   col,
		LineText: lineText,
		Expected: fmt.Sprintf("nesting no deeper than %d levels", max),
	}
}
