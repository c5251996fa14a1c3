package service

import "errors"

// ErrNotOwner reports that the acting user is not the owner of the resource
// the operation targets.
var ErrNotOwner = errors.New("user is not the owner of the resource")

// UserFacing is an error whose message is safe to show to the client as-is.
type UserFacing interface {
	error
	UserMessage() string
}

// RegistrationError carries a message explaining why the account could not be
// created or changed, e.g. the login is already taken.
type RegistrationError struct {
	msg string
}

func (e *RegistrationError) Error() string {
	return e.msg
}

func (e *RegistrationError) UserMessage() string {
	return e.msg
}

// AuthorizationError keeps the real cause of a failed sign-in for the log,
// while showing the client a message that does not reveal whether the login
// exists.
type AuthorizationError struct {
	cause string
}

func (e *AuthorizationError) Error() string {
	return "authorization failed: " + e.cause
}

func (e *AuthorizationError) UserMessage() string {
	return "Wrong login or password!"
}
