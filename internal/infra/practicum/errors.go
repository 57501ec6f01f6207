package practicum

import "fmt"

// RequestParams describes a request for diagnostics. The auth token is never included.
type RequestParams struct {
	Endpoint string
	FromDate int64
}

// ConnectivityError wraps any failure to obtain a usable response:
// transport errors, non-200 statuses and undecodable bodies.
type ConnectivityError struct {
	Params RequestParams
	Err    error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("endpoint %s (from_date=%d) is unavailable: %v", e.Params.Endpoint, e.Params.FromDate, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// UnexpectedStatusError is returned when the API answers with a status other than 200.
type UnexpectedStatusError struct {
	Code   int
	Reason string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d %s", e.Code, e.Reason)
}
