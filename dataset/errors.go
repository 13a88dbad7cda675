package dataset

import "fmt"

// AccessError reports a file that could not be opened: missing path,
// directory instead of a file, permission denied.
type AccessError struct {
	Path string
	Err  error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("dataset: open %s: %v", e.Path, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// DecodeError reports a stream that could not be interpreted as
// delimited text. Line is 1-based and 0 when unknown.
type DecodeError struct {
	Path string
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	where := e.Path
	if where == "" {
		where = "stream"
	}
	if e.Line > 0 {
		return fmt.Sprintf("dataset: decode %s (line %d): %v", where, e.Line, e.Err)
	}
	return fmt.Sprintf("dataset: decode %s: %v", where, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
