package otl

import "fmt"

// FormatError reports a work-log grammar violation.
type FormatError struct {
	Line int // 1-based line number, 0 when no single line applies
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// DateParseError reports a date line that matched the lexical date pattern
// but does not name a real calendar date.
type DateParseError struct {
	Line  int
	Value string
	Err   error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("line %d: invalid calendar date %q: %v", e.Line, e.Value, e.Err)
}

func (e *DateParseError) Unwrap() error { return e.Err }
