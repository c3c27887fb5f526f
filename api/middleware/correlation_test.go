package middleware_test

import (
	"net/http"

	"github.com/ps-broker/osb-gateway/api/middleware"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func handler(w http.ResponseWriter, r *http.Request) {
	logger := logr.FromContextOrDiscard(r.Context())
	logger.Info("hello")
}

var _ = Describe("Correlation", func() {
	var (
		requestHeaders http.Header
		logLines       []string
	)

	BeforeEach(func() {
		requestHeaders = http.Header{}
		logLines = nil
	})

	JustBeforeEach(func() {
		request, err := http.NewRequest(http.MethodGet, "http://localhost/foo", nil)
		Expect(err).NotTo(HaveOccurred())

		request.Header = requestHeaders

		logger := funcr.NewJSON(func(obj string) {
			logLines = append(logLines, obj)
		}, funcr.Options{})
		middleware.Correlation(logger)(http.HandlerFunc(handler)).ServeHTTP(rr, request)
	})

	It("logs with the correlation ID and returns it in a header", func() {
		Expect(rr).To(HaveHTTPHeaderWithValue("X-Correlation-ID", Not(BeEmpty())))
		corrID := rr.Header().Get("X-Correlation-ID")
		Expect(logLines).To(HaveLen(1))
		Expect(logLines[0]).To(ContainSubstring("hello"))
		Expect(logLines[0]).To(ContainSubstring(`"correlation-id":"` + corrID + `"`))
	})

	When("correlation ID is passed in a header", func() {
		BeforeEach(func() {
			requestHeaders.Set("X-Correlation-ID", "my-corr-id")
		})

		It("uses that ID", func() {
			Expect(rr).To(HaveHTTPHeaderWithValue("X-Correlation-ID", Equal("my-corr-id")))
			Expect(logLines[0]).To(ContainSubstring(`"correlation-id":"my-corr-id"`))
		})
	})
})
