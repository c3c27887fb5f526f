package handlers

import (
	"net/http"

	"github.com/ps-broker/osb-gateway/api/presenter"
	"github.com/ps-broker/osb-gateway/api/routing"

	"github.com/go-logr/logr"
)

const RootPath = "/"

type Root struct {
	environment string
	rootPath    string
}

func NewRoot(environment, rootPath string) *Root {
	return &Root{
		environment: environment,
		rootPath:    rootPath,
	}
}

func (h *Root) status(r *http.Request) (*routing.Response, error) {
	logger := logr.FromContextOrDiscard(r.Context()).WithName("handlers.root.status")
	logger.Info("root status check")

	return routing.NewResponse(http.StatusOK).WithBody(presenter.ForStatus(h.environment, h.rootPath)), nil
}

func (h *Root) Routes() []routing.Route {
	return []routing.Route{
		{Method: "GET", Pattern: RootPath, Handler: h.status},
	}
}
