package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Error kinds are stable machine-readable tags carried next to the HTTP code,
// so clients can branch on a failure without parsing the human message.
const (
	KindValidation             = "validation"
	KindSlotUnavailable        = "slot_unavailable"
	KindInvalidStateTransition = "invalid_state_transition"
	KindUnauthorized           = "unauthorized"
	KindForbidden              = "forbidden"
	KindNotFound               = "not_found"
	KindTokenSpaceExhausted    = "token_space_exhausted"
	KindRateLimited            = "rate_limited"
	KindExternalService        = "external_service"
	KindInternal               = "internal"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Kind: KindValidation, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have the required permissions"}
var ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Kind: KindForbidden, Message: "You don't have permission to access this resource"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Kind:    KindValidation,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindValidation,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Kind:    KindUnauthorized,
		Message: msg,
	}
}

// Forbidden returns a new Failure with code for forbidden requests.
func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Kind:    KindForbidden,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Kind:    KindNotFound,
		Message: entityName,
	}
}

// TooManyRequests returns a new Failure for a request rejected by a cooldown
// or rate limit.
func TooManyRequests(msg string) error {
	return &Failure{
		Code:    http.StatusTooManyRequests,
		Kind:    KindRateLimited,
		Message: msg,
	}
}

// SlotUnavailable returns a new Failure for a reservation attempt that lost
// the slot to an existing active booking.
func SlotUnavailable() error {
	return &Failure{
		Code:    http.StatusConflict,
		Kind:    KindSlotUnavailable,
		Message: "Selected slot is not available",
	}
}

// InvalidTransition returns a new Failure for an illegal booking state change,
// naming the current and the requested state.
func InvalidTransition(from, to string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidStateTransition,
		Message: fmt.Sprintf("invalid state transition from %q to %q", from, to),
	}
}

// StateConflict returns a new Failure for a lifecycle rule violation that is
// not a plain from-to edge, e.g. acting on a booking that already left the
// active set.
func StateConflict(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Kind:    KindInvalidStateTransition,
		Message: msg,
	}
}

// TokenSpaceExhausted returns a new Failure for when confirmation token
// allocation ran out of retryable candidates.
func TokenSpaceExhausted(attempts int) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Kind:    KindTokenSpaceExhausted,
		Message: fmt.Sprintf("failed to allocate a unique confirmation token after %d attempts", attempts),
	}
}

// ExternalService returns a new Failure for an external collaborator error
// that must surface to the caller (e.g. payment verification).
func ExternalService(msg string) error {
	return &Failure{
		Code:    http.StatusBadGateway,
		Kind:    KindExternalService,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the HTTP code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the machine-readable kind of an error interface.
func GetKind(err error) string {
	var fail *Failure
	if errors.As(err, &fail) && fail.Kind != "" {
		return fail.Kind
	}

	return KindInternal
}

// IsKind reports whether the error carries the given failure kind.
func IsKind(err error, kind string) bool {
	return GetKind(err) == kind
}
