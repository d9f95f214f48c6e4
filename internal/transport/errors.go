package transport

import "fmt"

// TransportError reports a network-level failure: the request could not be
// built or sent, the body could not be read, or the server answered with a
// non-200 status. The conversion core is never invoked in these cases.
type TransportError struct {
	Method string // method path, e.g. "/server/ServerStatus"
	URL    string
	Status int // HTTP status code; zero when no response was received
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport: %s: status %d: %v", e.Method, e.Status, e.Err)
	}
	return fmt.Sprintf("transport: %s: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that could not be parsed as XML. The
// bytes were received intact; the document itself is broken or truncated.
type ParseError struct {
	Method string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("transport: %s: parse response: %v", e.Method, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
