package middleware

import (
	"net/http"
	"strings"

	"github.com/ps-broker/osb-gateway/api/apierrors"
	"github.com/ps-broker/osb-gateway/api/routing"

	"github.com/go-logr/logr"
)

const (
	BrokerAPIVersionHeader = "X-Broker-Api-Version"
	RequiredBrokerVersion  = "2.12"
)

// BrokerAPIVersion enforces the broker protocol version contract at the edge.
// Requests whose path is exactly "/" or starts with one of the exempt prefixes
// pass through unconditionally; prefixes are checked in order and the first
// match wins. Everything else must carry the exact required version header or
// is rejected with 412 before any downstream call.
func BrokerAPIVersion(exemptPrefixes []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isVersionExempt(r.URL.Path, exemptPrefixes) {
				next.ServeHTTP(w, r)
				return
			}

			if r.Header.Get(BrokerAPIVersionHeader) != RequiredBrokerVersion {
				logger := logr.FromContextOrDiscard(r.Context()).WithName("broker-api-version-check")
				logger.Info("missing or invalid broker API version header",
					"method", r.Method,
					"endpoint", r.URL.Path,
					"got", r.Header.Get(BrokerAPIVersionHeader),
				)
				routing.PresentError(logger, w, apierrors.NewProtocolVersionMismatchError(RequiredBrokerVersion))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isVersionExempt(path string, exemptPrefixes []string) bool {
	if path == "/" {
		return true
	}

	for _, prefix := range exemptPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}
