package auth

// InvalidCredentialsError is the single failure kind of the auth core. It
// covers a missing/malformed request body, a duplicate name on register, a
// no-match on login, and the register consistency guard. The message is safe
// to show to the caller.
type InvalidCredentialsError struct {
	Message string
}

// Error implements the error interface
func (e *InvalidCredentialsError) Error() string {
	return e.Message
}

// NewInvalidCredentials creates an InvalidCredentialsError with the given message
func NewInvalidCredentials(message string) *InvalidCredentialsError {
	return &InvalidCredentialsError{Message: message}
}
