package globalcatalog_test

import (
	"net/http"

	"github.com/ps-broker/osb-gateway/globalcatalog"
	"github.com/ps-broker/osb-gateway/tests/helpers/upstream"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Client", func() {
	var (
		catalogServer *upstream.Server
		client        *globalcatalog.Client

		entry    globalcatalog.Entry
		fetchErr error
	)

	BeforeEach(func() {
		catalogServer = upstream.NewServer().
			WithJSONResponse("/api/v1/catalog-object-id", http.StatusOK, map[string]any{
				"id":   "svc1",
				"name": "cloud-under-management",
				"kind": "service",
				"overview_ui": map[string]any{
					"en": map[string]any{
						"description": "Managed cloud services",
					},
				},
				"children": []map[string]any{
					{
						"id":   "p1",
						"name": "standard",
						"kind": "plan",
					},
				},
			}).
			Start()

		var err error
		client, err = globalcatalog.NewClient(catalogServer.URL())
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		catalogServer.Stop()
	})

	JustBeforeEach(func() {
		entry, fetchErr = client.FetchEntry(ctx, "the-token", "catalog-object-id")
	})

	It("fetches the full nested entry", func() {
		Expect(fetchErr).NotTo(HaveOccurred())
		Expect(entry.ID).To(Equal("svc1"))
		Expect(entry.Name).To(Equal("cloud-under-management"))
		Expect(entry.EnglishOverview().Description).To(Equal("Managed cloud services"))
		Expect(entry.Children).To(HaveLen(1))
		Expect(entry.Children[0].Kind).To(Equal("plan"))
	})

	It("asks for the whole document with the bearer token", func() {
		servedRequests := catalogServer.ServedRequests()
		Expect(servedRequests).To(HaveLen(1))
		Expect(servedRequests[0].Method).To(Equal("GET"))
		Expect(servedRequests[0].Header.Get("Authorization")).To(Equal("Bearer the-token"))
		Expect(servedRequests[0].URL.Query().Get("include")).To(Equal("*"))
		Expect(servedRequests[0].URL.Query().Get("depth")).To(Equal("100"))
	})

	When("the entry does not exist", func() {
		BeforeEach(func() {
			catalogServer.Stop()
			catalogServer = upstream.NewServer().
				WithJSONResponse("/api/v1/catalog-object-id", http.StatusNotFound, map[string]string{
					"message": "no such object",
				}).
				Start()

			var err error
			client, err = globalcatalog.NewClient(catalogServer.URL())
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns a fetch error preserving the upstream status", func() {
			var fetchFailure globalcatalog.FetchError
			Expect(fetchErr).To(BeAssignableToTypeOf(fetchFailure))
			Expect(fetchErr.(globalcatalog.FetchError).StatusCode).To(Equal(http.StatusNotFound))
			Expect(fetchErr.(globalcatalog.FetchError).Message).To(ContainSubstring("no such object"))
		})
	})

	Describe("NewClient", func() {
		It("rejects an empty base URL", func() {
			_, err := globalcatalog.NewClient("")
			Expect(err).To(MatchError(ContainSubstring("must not be empty")))
		})
	})
})
