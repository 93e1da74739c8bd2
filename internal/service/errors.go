package service

import (
	"errors"
	"fmt"
)

// Kind classifies a client-facing failure. Its value is the wire error code.
type Kind string

const (
	KindValidation         Kind = "VALIDATION_ERROR"
	KindInvalidUser        Kind = "INVALID_USER_ID"
	KindInvalidRecipient   Kind = "INVALID_RECIPIENT_ID"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindUnauthorized       Kind = "UNAUTHORIZED"
	KindUserNotFound       Kind = "USER_NOT_FOUND"
	KindMessageNotFound    Kind = "MESSAGE_NOT_FOUND"
	KindAlreadyFollowing   Kind = "ALREADY_FOLLOWING"
	KindMutualFollow       Kind = "MUTUAL_FOLLOW_NOT_ALLOWED"
	KindNotFollowing       Kind = "NOT_FOLLOWING"
	KindUserAlreadyExists  Kind = "USER_ALREADY_EXISTS"
)

// Error is a failure caused by the request rather than by infrastructure.
// Any error that is not an *Error is an infrastructure failure.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches sentinels by kind, so errors.Is(err, ErrInvalidUser) works for any message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Kind == e.Kind
}

var (
	ErrInvalidUser      = &Error{Kind: KindInvalidUser}
	ErrValidation       = &Error{Kind: KindValidation}
	ErrAlreadyFollowing = &Error{Kind: KindAlreadyFollowing}
	ErrNotFollowing     = &Error{Kind: KindNotFollowing}
)

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func invalidUser(userID string) *Error {
	return newError(KindInvalidUser, "user with ID %s does not exist", userID)
}

// AsError extracts the client-facing error, if err carries one.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
