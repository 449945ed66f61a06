package apperrors

import (
	"errors"
)

var (
	ErrShutdown = errors.New("shutdown error")

	ErrNotifierDisabled = errors.New("record notifier is disabled")
)
