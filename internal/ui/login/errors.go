package login

import "fmt"

// RejectedError is a non-2xx response from the authentication endpoint.
type RejectedError struct {
	Status int
	Detail string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("login rejected (%d): %s", e.Status, e.Message())
}

// Message is the text shown to the user: the server detail, or
// MsgLoginFailed when the server gave none.
func (e *RejectedError) Message() string {
	if e.Detail == "" {
		return MsgLoginFailed
	}
	return e.Detail
}
