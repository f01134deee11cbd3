package errors

import "fmt"

// Kind classifies a failure so the HTTP layer can map it to a status code
// without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindNotFound
)

// Error is a classified service error. Every auth-service operation either
// succeeds or returns one of these; anything unclassified is internal.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Internalf(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...)}
}

var (
	ErrAllFieldsRequired = Validation("All fields are required")
	ErrEmailRequired     = Validation("Email is required")
	ErrUserAlreadyExists = Conflict("User already exists")
	ErrAlreadyVerified   = Conflict("User is already verified")
	ErrInvalidToken      = Auth("Invalid or Expired Token")
	ErrUserDoesNotExist  = Auth("User does not exist")
	ErrInvalidPassword   = Auth("Invalid Password")
	ErrEmailNotVerified  = Auth("Please verify your email first")
	ErrUserNotFound      = NotFound("User not found")
)
