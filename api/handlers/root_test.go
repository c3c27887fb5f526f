package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/ps-broker/osb-gateway/api/handlers"
	"github.com/ps-broker/osb-gateway/version"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Root", func() {
	var req *http.Request

	BeforeEach(func() {
		handler := handlers.NewRoot("development", "https://broker.example.org")
		routerBuilder.LoadRoutes(handler)

		var err error
		req, err = http.NewRequestWithContext(ctx, "GET", "/", nil)
		Expect(err).NotTo(HaveOccurred())
	})

	JustBeforeEach(func() {
		routerBuilder.Build().ServeHTTP(rr, req)
	})

	It("reports the gateway status", func() {
		Expect(rr).To(HaveHTTPStatus(http.StatusOK))
		Expect(rr.Body.String()).To(MatchJSON(fmt.Sprintf(`{
			"status": "ok",
			"environment": "development",
			"message": "Broker API Gateway is running",
			"root_path": "https://broker.example.org",
			"version": %q
		}`, version.Version)))
	})
})
