package toastweb

import "errors"

var (
	ErrNilScheduler  = errors.New("toastweb: scheduler is nil")
	ErrDetached      = errors.New("toastweb: toast scheduler is not running")
	ErrRateLimited   = errors.New("toastweb: too many toasts")
	ErrInvalidBody   = errors.New("toastweb: invalid request body")
	ErrInvalidToast  = errors.New("toastweb: invalid toast")
	ErrStreamFailure = errors.New("toastweb: stream write failed")
)
