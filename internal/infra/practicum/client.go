// Package practicum implements the homework-status API client.
package practicum

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"homework_status_bot/internal/domain/homework"
)

// denialKeys signal a service-reported refusal when present at the top level
// of an otherwise successful response body. Checked in this order.
var denialKeys = [...]string{"error", "code"}

// Client performs authorized GET requests against the homework-status
// endpoint and classifies the outcome. It holds no retry logic; retries
// happen only through the poll loop's fixed-interval re-invocation.
//
// The underlying http.Client carries no timeout: a hung transport blocks the
// whole loop. Known limitation, kept on purpose.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(endpoint, token string) *Client {
	return &Client{
		httpClient: &http.Client{},
		endpoint:   endpoint,
		token:      token,
	}
}

// Fetch requests homework statuses updated since fromDate and returns the
// parsed body. Failures are classified as *ServiceUnreachableError,
// *BadResponseError or *ServiceDenialError, each carrying the request
// parameters.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (homework.Response, error) {
	params := RequestParams{
		URL:      c.endpoint,
		Headers:  map[string]string{"Authorization": "OAuth " + c.token},
		FromDate: fromDate,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for name, value := range params.Headers {
		req.Header.Set(name, value)
	}
	query := url.Values{}
	query.Set("from_date", strconv.FormatInt(fromDate, 10))
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ServiceUnreachableError{Params: params, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &BadResponseError{Params: params, StatusCode: resp.StatusCode}
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ServiceUnreachableError{Params: params, Err: err}
	}

	var body homework.Response
	if err := json.Unmarshal(respBody, &body); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	for _, key := range denialKeys {
		if raw, ok := body[key]; ok {
			return nil, &ServiceDenialError{Params: params, Key: key, Value: string(raw)}
		}
	}

	return body, nil
}
