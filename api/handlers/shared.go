package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/ps-broker/osb-gateway/globalcatalog"
	"github.com/ps-broker/osb-gateway/provisioning"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenProvider . TokenProvider
type TokenProvider interface {
	ObtainToken(ctx context.Context) (string, error)
}

//counterfeiter:generate -o fake -fake-name CatalogEntryFetcher . CatalogEntryFetcher
type CatalogEntryFetcher interface {
	FetchEntry(ctx context.Context, token, catalogID string) (globalcatalog.Entry, error)
}

//counterfeiter:generate -o fake -fake-name InstanceLifecycleClient . InstanceLifecycleClient
type InstanceLifecycleClient interface {
	Provision(ctx context.Context, payload provisioning.ProvisionPayload) (json.RawMessage, error)
	Update(ctx context.Context, payload provisioning.UpdatePayload) (json.RawMessage, error)
	Deprovision(ctx context.Context, payload provisioning.DeprovisionPayload) (json.RawMessage, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object interface{}) error
	DecodeAndValidateURLValues(r *http.Request, payloadObject KeyedPayload) error
}

type KeyedPayload interface {
	SupportedKeys() []string
	DecodeFromURLValues(url.Values) error
}
