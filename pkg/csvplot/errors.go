package csvplot

import (
	"errors"
	"fmt"

	"github.com/ukaji3/csvplot-go/pkg/csvplot/parser"
)

// ErrNoColumns indicates the input file has no header row.
var ErrNoColumns = parser.ErrNoColumns

// ErrInvalidDelimiter indicates a delimiter encoding/csv cannot use.
var ErrInvalidDelimiter = errors.New("invalid field delimiter")

// ErrInvalidSize indicates a non-positive window size.
var ErrInvalidSize = errors.New("window size must be positive")

// RenderError reports which stage of Render failed.
type RenderError struct {
	Path  string
	Stage string // "load", "display"
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(path, stage string, err error) *RenderError {
	return &RenderError{
		Path:  path,
		Stage: stage,
		Err:   err,
	}
}
