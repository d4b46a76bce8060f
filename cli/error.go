package cli

import (
	"fmt"
	"strconv"

	"github.com/mattn/go-runewidth"

	jsonquery "github.com/Lythenas/json-query"
)

// selectorError wraps a jsonquery.SyntaxError or jsonquery.ParseFailure
// raised while parsing the selector argument, rendering a caret under the
// offending column the way the teacher's queryParseError does for jq
// queries, but reading the line/column straight off the error instead of
// recomputing them from a byte offset, since jsonquery.SyntaxError already
// carries them.
type selectorError struct {
	arg string
	err error
}

func (err *selectorError) Error() string {
	if se, ok := err.err.(*jsonquery.SyntaxError); ok {
		return fmt.Sprintf("invalid selector: %s\n%s",
			err.arg, formatLineInfo(se.LineText, se.Line+1, se.Column))
	}
	return fmt.Sprintf("invalid selector: %s: %s", err.arg, err.err)
}

func (*selectorError) ExitCode() int {
	return exitCodeCompileErr
}

// documentError wraps a jsonquery.SyntaxError raised while parsing the input
// document.
type documentError struct {
	fname string
	err   error
}

func (err *documentError) Error() string {
	if se, ok := err.err.(*jsonquery.SyntaxError); ok {
		return fmt.Sprintf("invalid json: %s:%d\n%s",
			err.fname, se.Line+1, formatLineInfo(se.LineText, se.Line+1, se.Column))
	}
	return fmt.Sprintf("invalid json: %s: %s", err.fname, err.err)
}

func (*documentError) ExitCode() int {
	return exitCodeDataErr
}

// applyError wraps a jsonquery.ApplyError raised while evaluating the
// selector against the document.
type applyError struct {
	err error
}

func (err *applyError) Error() string {
	return err.err.Error()
}

func (*applyError) ExitCode() int {
	return exitCodeApplyErr
}

func formatLineInfo(linestr string, line, column int) string {
	l := strconv.Itoa(line)
	width := runewidth.StringWidth(clamp(linestr, column))
	return fmt.Sprintf("    %s | %s\n    %*c", l, linestr, width+len(l)+4, '^')
}

// clamp returns the prefix of linestr up to column runes, guarding against a
// column past the end of the line (can happen when the error is "closing
// quote expected" at EOF).
func clamp(linestr string, column int) string {
	r := []rune(linestr)
	if column > len(r) {
		column = len(r)
	}
	if column < 0 {
		column = 0
	}
	return string(r[:column])
}
