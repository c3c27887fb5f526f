package handlers

import (
	"errors"
	"net/http"

	"github.com/ps-broker/osb-gateway/api/apierrors"
	"github.com/ps-broker/osb-gateway/api/payloads"
	"github.com/ps-broker/osb-gateway/api/routing"
	"github.com/ps-broker/osb-gateway/globalcatalog"
	"github.com/ps-broker/osb-gateway/osb"

	"github.com/go-logr/logr"
)

// Broker is the route set for one product line: the bound catalog identifier
// plus the collaborators needed to serve the OSB surface under the product
// line prefix. Route sets are built once at process start and hold no mutable
// state, so two sets never interfere even when they share the same backend
// credential.
type Broker struct {
	prefix           string
	catalogID        string
	tokenProvider    TokenProvider
	catalogFetcher   CatalogEntryFetcher
	lifecycleClient  InstanceLifecycleClient
	requestValidator RequestValidator
}

func NewBroker(
	prefix string,
	catalogID string,
	tokenProvider TokenProvider,
	catalogFetcher CatalogEntryFetcher,
	lifecycleClient InstanceLifecycleClient,
	requestValidator RequestValidator,
) (*Broker, error) {
	if prefix == "" {
		return nil, errors.New("product line prefix must not be empty")
	}
	if catalogID == "" {
		return nil, errors.New("catalog identifier must not be empty")
	}

	return &Broker{
		prefix:           prefix,
		catalogID:        catalogID,
		tokenProvider:    tokenProvider,
		catalogFetcher:   catalogFetcher,
		lifecycleClient:  lifecycleClient,
		requestValidator: requestValidator,
	}, nil
}

func (h *Broker) catalog(r *http.Request) (*routing.Response, error) {
	logger := logr.FromContextOrDiscard(r.Context()).WithName("handlers.broker.catalog").WithValues("catalogID", h.catalogID)

	token, err := h.tokenProvider.ObtainToken(r.Context())
	if err != nil {
		return nil, apierrors.LogAndReturn(logger, apierrors.NewUpstreamAuthError(err), "failed to obtain identity token")
	}

	entry, err := h.catalogFetcher.FetchEntry(r.Context(), token, h.catalogID)
	if err != nil {
		upstreamStatus := 0
		var fetchErr globalcatalog.FetchError
		if errors.As(err, &fetchErr) {
			upstreamStatus = fetchErr.StatusCode
		}
		return nil, apierrors.LogAndReturn(logger, apierrors.NewCatalogFetchError(err, upstreamStatus, h.catalogID), "failed to fetch catalog entry")
	}

	service, err := osb.Translate(logger, entry)
	if err != nil {
		return nil, apierrors.LogAndReturn(logger, apierrors.NewInvalidCatalogShapeError(err, h.catalogID), "catalog entry is not usable as a broker service")
	}

	logger.Info("catalog translated", "serviceName", service.Name, "planCount", len(service.Plans))

	return routing.NewResponse(http.StatusOK).WithBody(osb.Catalog{Services: []osb.Service{service}}), nil
}

func (h *Broker) provision(r *http.Request) (*routing.Response, error) {
	instanceID := routing.URLParam(r, "instance_id")
	logger := logr.FromContextOrDiscard(r.Context()).WithName("handlers.broker.provision").WithValues("catalogID", h.catalogID, "instanceID", instanceID)

	payload := payloads.ServiceInstanceCreate{}
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload); err != nil {
		return nil, apierrors.LogAndReturn(logger, err, "failed to decode payload")
	}

	result, err := h.lifecycleClient.Provision(r.Context(), payload.ToProvisionPayload(instanceID))
	if err != nil {
		return nil, apierrors.LogAndReturn(logger, apierrors.NewBackendLifecycleError(err), "failed to provision instance")
	}

	logger.Info("instance provisioned")

	return routing.NewResponse(http.StatusOK).WithBody(result), nil
}

func (h *Broker) update(r *http.Request) (*routing.Response, error) {
	instanceID := routing.URLParam(r, "instance_id")
	logger := logr.FromContextOrDiscard(r.Context()).WithName("handlers.broker.update").WithValues("catalogID", h.catalogID, "instanceID", instanceID)

	payload := payloads.ServiceInstanceUpdate{}
	if err := h.requestValidator.DecodeAndValidateJSONPayload(r, &payload); err != nil {
		return nil, apierrors.LogAndReturn(logger, err, "failed to decode payload")
	}

	result, err := h.lifecycleClient.Update(r.Context(), payload.ToUpdatePayload(instanceID))
	if err != nil {
		return nil, apierrors.LogAndReturn(logger, apierrors.NewBackendLifecycleError(err), "failed to update instance")
	}

	logger.Info("instance updated")

	return routing.NewResponse(http.StatusOK).WithBody(result), nil
}

func (h *Broker) deprovision(r *http.Request) (*routing.Response, error) {
	instanceID := routing.URLParam(r, "instance_id")
	logger := logr.FromContextOrDiscard(r.Context()).WithName("handlers.broker.deprovision").WithValues("catalogID", h.catalogID, "instanceID", instanceID)

	payload := payloads.ServiceInstanceDelete{}
	if err := h.requestValidator.DecodeAndValidateURLValues(r, &payload); err != nil {
		return nil, apierrors.LogAndReturn(logger, err, "failed to decode query parameters")
	}

	result, err := h.lifecycleClient.Deprovision(r.Context(), payload.ToDeprovisionPayload(instanceID))
	if err != nil {
		return nil, apierrors.LogAndReturn(logger, apierrors.NewBackendLifecycleError(err), "failed to deprovision instance")
	}

	logger.Info("instance deprovisioned")

	return routing.NewResponse(http.StatusOK).WithBody(result), nil
}

func (h *Broker) status(r *http.Request) (*routing.Response, error) {
	return routing.NewResponse(http.StatusOK).WithBody(map[string]string{
		"status":  "ok",
		"service": h.prefix,
	}), nil
}

func (h *Broker) Routes() []routing.Route {
	return []routing.Route{
		{Method: "GET", Pattern: "/" + h.prefix + "/status", Handler: h.status},
		{Method: "GET", Pattern: "/" + h.prefix + "/v2/catalog", Handler: h.catalog},
		{Method: "PUT", Pattern: "/" + h.prefix + "/v2/service_instances/{instance_id}", Handler: h.provision},
		{Method: "PATCH", Pattern: "/" + h.prefix + "/v2/service_instances/{instance_id}", Handler: h.update},
		{Method: "DELETE", Pattern: "/" + h.prefix + "/v2/service_instances/{instance_id}", Handler: h.deprovision},
	}
}
