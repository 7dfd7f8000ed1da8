package practicum

import "fmt"

// RequestParams captures everything needed to reproduce a failed request.
// Every client error carries them for diagnostics.
type RequestParams struct {
	URL      string
	Headers  map[string]string
	FromDate int64
}

func (p RequestParams) String() string {
	return fmt.Sprintf("url=%s, headers=%v, from_date=%d", p.URL, p.Headers, p.FromDate)
}

// ServiceUnreachableError reports a transport-level failure (DNS, timeout,
// connection refused) before any HTTP status was received.
type ServiceUnreachableError struct {
	Params RequestParams
	Err    error
}

func (e *ServiceUnreachableError) Error() string {
	return fmt.Sprintf("API service is not responding: %v. Request parameters: %s.", e.Err, e.Params)
}

func (e *ServiceUnreachableError) Unwrap() error { return e.Err }

// BadResponseError reports a non-200 HTTP status.
type BadResponseError struct {
	Params     RequestParams
	StatusCode int
}

func (e *BadResponseError) Error() string {
	return fmt.Sprintf("API response code: %d. Request parameters: %s.", e.StatusCode, e.Params)
}

// ServiceDenialError reports a logically refused request: the HTTP exchange
// succeeded but the body carries a top-level error or code key.
type ServiceDenialError struct {
	Params RequestParams
	Key    string
	Value  string
}

func (e *ServiceDenialError) Error() string {
	return fmt.Sprintf("Denial of service. Key: %s. Error: %s. Request parameters: %s.", e.Key, e.Value, e.Params)
}
