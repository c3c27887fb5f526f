package provisioning

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-http-utils/headers"
	"github.com/go-resty/resty/v2"
)

const brokerAPIVersion = "2.12"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenProvider . TokenProvider
type TokenProvider interface {
	ObtainToken(ctx context.Context) (string, error)
}

// BackendError carries the provisioning backend's error detail. The gateway
// does not distinguish backend error subtypes; every backend failure is
// surfaced uniformly to the caller.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("backend request failed with status code: %d", e.StatusCode)
	}
	return e.Detail
}

// Client forwards instance lifecycle operations to the backend provisioning
// service. It holds no instance state: the backend owns the full lifecycle
// and the client is a pure forwarding layer.
type Client struct {
	baseURL       string
	tokenProvider TokenProvider
	rest          *resty.Client
}

func NewClient(baseURL string, tokenProvider TokenProvider) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("backend URL must not be empty")
	}
	if tokenProvider == nil {
		return nil, errors.New("token provider must not be nil")
	}

	return &Client{
		baseURL:       baseURL,
		tokenProvider: tokenProvider,
		rest:          resty.New(),
	}, nil
}

func (c *Client) Provision(ctx context.Context, payload ProvisionPayload) (json.RawMessage, error) {
	return c.send(ctx, http.MethodPut, payload.InstanceID, payload.ProvisionRequest, payload.AcceptsIncomplete, nil)
}

func (c *Client) Update(ctx context.Context, payload UpdatePayload) (json.RawMessage, error) {
	return c.send(ctx, http.MethodPatch, payload.InstanceID, payload.UpdateRequest, payload.AcceptsIncomplete, nil)
}

func (c *Client) Deprovision(ctx context.Context, payload DeprovisionPayload) (json.RawMessage, error) {
	return c.send(ctx, http.MethodDelete, payload.InstanceID, nil, payload.AcceptsIncomplete, map[string]string{
		"service_id": payload.ServiceID,
		"plan_id":    payload.PlanID,
	})
}

func (c *Client) send(ctx context.Context, method, instanceID string, body any, acceptsIncomplete bool, query map[string]string) (json.RawMessage, error) {
	token, err := c.tokenProvider.ObtainToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain backend token: %w", err)
	}

	req := c.rest.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("X-Broker-API-Version", brokerAPIVersion)

	if body != nil {
		req.SetHeader(headers.ContentType, "application/json").SetBody(body)
	}
	if acceptsIncomplete {
		req.SetQueryParam("accepts_incomplete", "true")
	}
	for key, value := range query {
		req.SetQueryParam(key, value)
	}

	resp, err := req.Execute(method, c.baseURL+"/v2/service_instances/"+instanceID)
	if err != nil {
		return nil, fmt.Errorf("backend request failed: %w", err)
	}

	if resp.IsError() {
		return nil, BackendError{
			StatusCode: resp.StatusCode(),
			Detail:     strings.TrimSpace(string(resp.Body())),
		}
	}

	result := resp.Body()
	if len(result) == 0 {
		result = []byte("{}")
	}

	return json.RawMessage(result), nil
}
