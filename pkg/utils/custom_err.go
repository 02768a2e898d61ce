package utils

import "errors"

var (
	ErrDatabaseError = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPhoneAlreadyExists = errors.New("phone already registered")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	ErrTripNotFound = errors.New("trip not found")
	ErrUserNotFound = errors.New("user not found")
)

// Validation errors carry the message shown to the user.
var (
	ErrMissingName        = errors.New("family and given names are required")
	ErrInvalidPhone       = errors.New("phone number must have 10 digits")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTermsNotAccepted   = errors.New("terms of use must be accepted")
	ErrMissingRoute       = errors.New("origin and destination are required")
	ErrUnknownDistrict    = errors.New("unknown district")
	ErrNoActiveDay        = errors.New("at least one day must be selected")
	ErrInvalidSeats       = errors.New("seats must be between 1 and 8")
	ErrInvalidPrice       = errors.New("price per seat must be at least 100")
	ErrTooManyWaypoints   = errors.New("at most 3 waypoints are allowed")
	ErrMissingFields      = errors.New("all fields are required")
	ErrCannotDisableAdmin = errors.New("an administrator cannot disable their own account")
)

var validationErrors = []error{
	ErrMissingName,
	ErrInvalidPhone,
	ErrPasswordTooShort,
	ErrPasswordMismatch,
	ErrTermsNotAccepted,
	ErrMissingRoute,
	ErrUnknownDistrict,
	ErrNoActiveDay,
	ErrInvalidSeats,
	ErrInvalidPrice,
	ErrTooManyWaypoints,
	ErrMissingFields,
	ErrCannotDisableAdmin,
}

func IsValidationError(err error) bool {
	for _, v := range validationErrors {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
