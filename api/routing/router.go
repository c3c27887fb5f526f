package routing

import (
	"net/http"

	"github.com/go-chi/chi"
)

type Route struct {
	Method  string
	Pattern string
	Handler Handler
}

// Routable is implemented by every handler set mounted on the gateway. A
// broker route set yields one Routable per product line; route sets share no
// state beyond the router they are mounted on.
type Routable interface {
	Routes() []Route
}

type RouterBuilder struct {
	routes                  []Route
	mounts                  []mount
	middlewares             []func(http.Handler) http.Handler
	notFoundHandler         Handler
	methodNotAllowedHandler Handler
}

type mount struct {
	pattern string
	handler http.Handler
}

func NewRouterBuilder() *RouterBuilder {
	return &RouterBuilder{}
}

func (b *RouterBuilder) LoadRoutes(routable Routable) {
	b.routes = append(b.routes, routable.Routes()...)
}

func (b *RouterBuilder) UseMiddleware(middleware ...func(http.Handler) http.Handler) {
	b.middlewares = append(b.middlewares, middleware...)
}

func (b *RouterBuilder) SetNotFoundHandler(handler Handler) {
	b.notFoundHandler = handler
}

func (b *RouterBuilder) SetMethodNotAllowedHandler(handler Handler) {
	b.methodNotAllowedHandler = handler
}

// Mount attaches a plain http.Handler subtree, e.g. the static asset server.
func (b *RouterBuilder) Mount(pattern string, handler http.Handler) {
	b.mounts = append(b.mounts, mount{pattern: pattern, handler: handler})
}

func (b *RouterBuilder) Build() *chi.Mux {
	router := chi.NewRouter()
	for _, middleware := range b.middlewares {
		router.Use(middleware)
	}
	for _, route := range b.routes {
		router.Method(route.Method, route.Pattern, route.Handler)
	}
	for _, m := range b.mounts {
		router.Mount(m.pattern, m.handler)
	}
	if b.notFoundHandler != nil {
		router.NotFound(b.notFoundHandler.ServeHTTP)
	}
	if b.methodNotAllowedHandler != nil {
		router.MethodNotAllowed(b.methodNotAllowedHandler.ServeHTTP)
	}
	return router
}

func URLParam(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}
