package account

import "errors"

var (
	ErrNotFound           = errors.New("account not found")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrDuplicateMobile    = errors.New("phone number is already registered")
	ErrDuplicateGSTNumber = errors.New("GST number is already registered, please login")
	ErrDuplicate          = errors.New("account already exists")
)
