package globalcatalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-http-utils/headers"
	"github.com/go-resty/resty/v2"
)

// FetchError preserves the upstream status code of a failed catalog fetch so
// the API layer can propagate it.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e FetchError) Error() string {
	return fmt.Sprintf("catalog entry request failed with status code %d: %s", e.StatusCode, e.Message)
}

// Client retrieves catalog entries from the upstream catalog store. The fixed
// include and depth query asks for the full document with all fields so a
// service and its plan children arrive in a single response.
type Client struct {
	baseURL string
	rest    *resty.Client
}

func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("catalog store URL must not be empty")
	}

	return &Client{
		baseURL: baseURL,
		rest:    resty.New(),
	}, nil
}

func (c *Client) FetchEntry(ctx context.Context, token, catalogID string) (Entry, error) {
	var entry Entry
	resp, err := c.rest.R().
		SetContext(ctx).
		SetHeader(headers.Accept, "application/json").
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"include": "*",
			"depth":   "100",
		}).
		SetResult(&entry).
		Get(fmt.Sprintf("%s/api/v1/%s", c.baseURL, catalogID))
	if err != nil {
		return Entry{}, fmt.Errorf("catalog entry request failed: %w", err)
	}

	if resp.IsError() {
		return Entry{}, FetchError{
			StatusCode: resp.StatusCode(),
			Message:    string(resp.Body()),
		}
	}

	return entry, nil
}
