package bytecell

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a constructor received an unusable argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNilHost is returned by New when no host is supplied. A cell cannot
// exist without the grid that owns it.
var ErrNilHost = fmt.Errorf("%w: host is nil", ErrInvalidArgument)
