package salescrub

import (
	"fmt"
	"strings"
)

// NotFoundError reports an input path that does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file not found at %s", e.Path)
}

// ParseError reports a file that exists but could not be read as tabular
// data: malformed delimiters, ragged records, encoding failures.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NormalizationConflictError reports two distinct header names collapsing to
// the same normalized name. Silently overwriting one column with another
// would break the unique-name invariant, so the run aborts instead.
type NormalizationConflictError struct {
	Name      string // the normalized name both columns map to
	Originals []string
}

func (e *NormalizationConflictError) Error() string {
	quoted := make([]string, len(e.Originals))
	for i, o := range e.Originals {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	return fmt.Sprintf("column names %s collide after normalization to %q", strings.Join(quoted, " and "), e.Name)
}
