package session

import "fmt"

// SessionError wraps a failure of the rendering session.
type SessionError struct {
	Op    string
	Cause error
}

func (e *SessionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("session: %s: %v", e.Op, e.Cause)
	}
	return fmt.Sprintf("session: %s", e.Op)
}

func (e *SessionError) Unwrap() error {
	return e.Cause
}
