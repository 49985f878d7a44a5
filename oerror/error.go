package oerror

import "fmt"

// WedisplayError is an error raised by the proxy itself rather than by a connection or the network.
type WedisplayError struct {
	Err string
}

// New returns a WedisplayError with a message formatted from the arguments passed.
func New(format string, args ...any) *WedisplayError {
	return &WedisplayError{Err: fmt.Sprintf(format, args...)}
}

func (e *WedisplayError) Error() string {
	return e.Err
}
