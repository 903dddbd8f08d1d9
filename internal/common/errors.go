package common

import "errors"

var (

	// repository specific errors
	ErrorNotFound = errors.New("not found")

	// business-rule errors
	ErrorDuplicateEmail = errors.New("email already registered")

	// service specific errors
	ErrorInternal           = errors.New("internal error")
	ErrorInvalidCredentials = errors.New("invalid email or password")

	// infrastructure errors
	ErrorStoreUnavailable = errors.New("store unavailable")
)
