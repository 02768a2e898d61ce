package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrors maps a failed DTO field to the message shown for it.
var bindingErrors = map[string]error{
	"LoginRequest.Phone":    ErrInvalidPhone,
	"LoginRequest.Password": ErrPasswordTooShort,

	"SignUpRequest.FamilyName":      ErrMissingName,
	"SignUpRequest.GivenName":       ErrMissingName,
	"SignUpRequest.Phone":           ErrInvalidPhone,
	"SignUpRequest.Password":        ErrPasswordTooShort,
	"SignUpRequest.ConfirmPassword": ErrPasswordMismatch,
	"SignUpRequest.AcceptTerms":     ErrTermsNotAccepted,

	"UpdateProfileRequest.FamilyName": ErrMissingName,
	"UpdateProfileRequest.GivenName":  ErrMissingName,
	"UpdateProfileRequest.Phone":      ErrInvalidPhone,

	"PublishTripRequest.Origin":         ErrMissingRoute,
	"PublishTripRequest.Destination":    ErrMissingRoute,
	"PublishTripRequest.ActiveDays":     ErrNoActiveDay,
	"PublishTripRequest.SeatsAvailable": ErrInvalidSeats,
	"PublishTripRequest.PricePerSeat":   ErrInvalidPrice,
	"PublishTripRequest.Waypoints":      ErrTooManyWaypoints,

	"ContactMessageRequest.Name":    ErrMissingFields,
	"ContactMessageRequest.Phone":   ErrMissingFields,
	"ContactMessageRequest.Message": ErrMissingFields,
}

// BindingError turns a ShouldBind failure into the sentinel of the first
// failed field. It returns nil for malformed bodies.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil
	}
	if sentinel, ok := bindingErrors[verrs[0].StructNamespace()]; ok {
		return sentinel
	}
	return nil
}

// RespondBindingError answers a request whose body failed to bind.
func RespondBindingError(c *gin.Context, err error) {
	if sentinel := BindingError(err); sentinel != nil {
		RespondError(c, http.StatusBadRequest, sentinel.Error())
		return
	}
	RespondError(c, http.StatusBadRequest, "Invalid request format")
}
