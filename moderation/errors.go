package moderation

// StatusOK is the status description the backend reports on success.
const StatusOK = "OK"

// StatusError is returned when the backend answers a request with a non-OK
// status.
type StatusError struct {
	Code        int
	Description string
	Exception   string
}

func newStatusError(s *Status) *StatusError {
	if s == nil {
		return &StatusError{}
	}
	return &StatusError{
		Code:        s.Code,
		Description: s.Description,
		Exception:   s.Exception,
	}
}

// Error returns the backend's exception text when it provided one, and the
// status description otherwise.
func (e *StatusError) Error() string {
	if e.Exception != "" {
		return e.Exception
	}
	return e.Description
}
