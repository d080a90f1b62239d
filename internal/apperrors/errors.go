package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies a domain violation. These are synchronous failures
// propagated straight to the caller; none of them is retryable.
type Kind int

const (
	// KindNotFound: a referenced entity id does not exist.
	KindNotFound Kind = iota + 1
	// KindDuplicate: a uniqueness constraint would be violated.
	KindDuplicate
	// KindAlreadyDeleted: delete requested on an entity already disabled.
	// Treated as a not-found-class error at the HTTP boundary.
	KindAlreadyDeleted
	// KindInvalidTimeRange: a work-log start time is after its end time.
	KindInvalidTimeRange
)

// Error carries structured context about a domain violation. The message
// is formatted at the boundary, not stored as a constant string.
type Error struct {
	Kind   Kind
	Entity string
	Field  string
	ID     any
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		if e.ID != nil {
			return fmt.Sprintf("not found %s with id %v", e.Entity, e.ID)
		}
		return fmt.Sprintf("not found %s", e.Entity)
	case KindDuplicate:
		return fmt.Sprintf("duplicated %s of %s", e.Field, e.Entity)
	case KindAlreadyDeleted:
		return fmt.Sprintf("%s with id %v is already deleted", e.Entity, e.ID)
	case KindInvalidTimeRange:
		return fmt.Sprintf("start time of %s must not be after end time", e.Entity)
	default:
		return fmt.Sprintf("unexpected error on %s", e.Entity)
	}
}

// NotFound reports that the entity with the given id does not exist.
func NotFound(entity string, id any) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id}
}

// Duplicate reports that another entity already holds the given field value.
func Duplicate(entity, field string) *Error {
	return &Error{Kind: KindDuplicate, Entity: entity, Field: field}
}

// AlreadyDeleted reports a delete on an entity already in DISABLE state.
func AlreadyDeleted(entity string, id any) *Error {
	return &Error{Kind: KindAlreadyDeleted, Entity: entity, ID: id}
}

// InvalidTimeRange reports a time window whose start is after its end.
func InvalidTimeRange(entity string) *Error {
	return &Error{Kind: KindInvalidTimeRange, Entity: entity}
}

// KindOf returns the kind of err, or 0 if err is not a domain error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsNotFound reports whether err is a not-found-class domain error.
func IsNotFound(err error) bool {
	k := KindOf(err)
	return k == KindNotFound || k == KindAlreadyDeleted
}

// IsDuplicate reports whether err is a uniqueness violation.
func IsDuplicate(err error) bool {
	return KindOf(err) == KindDuplicate
}

// APIError is the JSON error body returned to clients.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func codeOf(kind Kind) string {
	switch kind {
	case KindNotFound, KindAlreadyDeleted:
		return "NOT_FOUND"
	case KindDuplicate:
		return "DUPLICATE"
	case KindInvalidTimeRange:
		return "INVALID_TIME_RANGE"
	default:
		return "INTERNAL_ERROR"
	}
}

func statusOf(kind Kind) int {
	switch kind {
	case KindNotFound, KindAlreadyDeleted:
		return http.StatusNotFound
	case KindDuplicate:
		return http.StatusConflict
	case KindInvalidTimeRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as a JSON error response with the status mapped from
// its kind. Non-domain errors become opaque 500s.
func Respond(c *gin.Context, err error) {
	var e *Error
	if errors.As(err, &e) {
		c.JSON(statusOf(e.Kind), APIError{Code: codeOf(e.Kind), Message: e.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, APIError{Code: "INTERNAL_ERROR", Message: "internal server error"})
}

// BadRequest writes a 400 response for malformed input.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "invalid request"
	}
	c.JSON(http.StatusBadRequest, APIError{Code: "INVALID_INPUT", Message: message})
}
