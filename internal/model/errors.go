package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")

	ErrAuth           = errors.New("authentication error")
	ErrInvalidToken   = fmt.Errorf("%w: invalid token", ErrAuth)
	ErrUnknownSubject = fmt.Errorf("%w: unknown subject", ErrAuth)
	ErrInactiveUser   = errors.New("inactive user")

	ErrConflict = errors.New("conflict")
	ErrNotFound = errors.New("not found")
	ErrStore    = errors.New("store error")

	// ErrOrphanInconsistency : объект и метаданные разошлись после частичного сбоя
	ErrOrphanInconsistency = errors.New("orphan inconsistency")
)
