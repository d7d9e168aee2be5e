package toast

import "errors"

var ErrInvalidPosition = errors.New("toast: invalid container position")
