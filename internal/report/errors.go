package report

import "fmt"

// WriteError reports an output artifact that could not be written. It is
// terminal for the current run; artifacts already written stay in place.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string { return fmt.Sprintf("write %s: %v", e.Path, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }
