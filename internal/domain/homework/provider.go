package homework

import "context"

// StatusProvider defines the operation of fetching homework statuses updated
// since the given Unix timestamp. This decouples the poll loop from the
// concrete API client.
type StatusProvider interface {
	Fetch(ctx context.Context, fromDate int64) (Response, error)
}
