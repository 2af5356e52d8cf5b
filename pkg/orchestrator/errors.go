package orchestrator

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-blitmask/pkg/rewrite"
	"github.com/goliatone/go-blitmask/pkg/widths"
)

var (
	// ErrUnsupportedWidth reports a configured width without a type and
	// literal mapping. It aborts the whole batch.
	ErrUnsupportedWidth = widths.ErrUnsupportedWidth

	// ErrMissingRenameTarget reports a template that never declares the
	// canonical name it is identified by.
	ErrMissingRenameTarget = rewrite.ErrMissingRenameTarget

	// ErrDuplicateOutput reports two (template, width) pairs deriving the
	// same artifact path.
	ErrDuplicateOutput = errors.New("orchestrator: duplicate output")
)

// GenerateError ties a failure to the (template, width) pair it came from.
type GenerateError struct {
	Template string
	Width    widths.Width
	Err      error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("orchestrator: %s (%d-bit): %v", e.Template, int(e.Width), e.Err)
}

func (e *GenerateError) Unwrap() error {
	return e.Err
}
