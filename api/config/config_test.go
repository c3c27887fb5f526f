package config_test

import (
	"github.com/ps-broker/osb-gateway/api/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var cfg config.Config

	BeforeEach(func() {
		cfg = config.Config{
			Environment:      "production",
			IAMAPIKey:        "the-api-key",
			BrokerBackendURL: "https://backend.example.org",
			CatalogIDCloud:   "cloud-object-id",
			CatalogIDVMware:  "vmware-object-id",
			CatalogIDPowerVS: "powervs-object-id",
		}
	})

	Describe("Load", func() {
		BeforeEach(func() {
			GinkgoT().Setenv("IAM_API_KEY", "the-api-key")
			GinkgoT().Setenv("BROKER_BACKEND_URL", "https://backend.example.org")
			GinkgoT().Setenv("GC_OBJECT_ID_CLOUD", "cloud-object-id")
			GinkgoT().Setenv("GC_OBJECT_ID_VMWARE", "vmware-object-id")
			GinkgoT().Setenv("GC_OBJECT_ID_POWERVS", "powervs-object-id")
		})

		It("loads the configuration from the environment with defaults applied", func() {
			loaded, err := config.Load()
			Expect(err).NotTo(HaveOccurred())

			Expect(loaded.Environment).To(Equal("development"))
			Expect(loaded.ListenAddr).To(Equal(":8080"))
			Expect(loaded.ImagesDir).To(Equal("images"))
			Expect(loaded.IAMTokenURL).To(Equal("https://iam.cloud.ibm.com/identity/token"))
			Expect(loaded.GlobalCatalogURL).To(Equal("https://globalcatalog.cloud.ibm.com"))
			Expect(loaded.IAMAPIKey).To(Equal("the-api-key"))
			Expect(loaded.BrokerBackendURL).To(Equal("https://backend.example.org"))
		})

		When("a required setting is missing", func() {
			BeforeEach(func() {
				GinkgoT().Setenv("IAM_API_KEY", "")
				GinkgoT().Setenv("GC_OBJECT_ID_POWERVS", "")
			})

			It("reports every missing setting at once", func() {
				_, err := config.Load()
				Expect(err).To(MatchError(SatisfyAll(
					ContainSubstring("IAM_API_KEY is required"),
					ContainSubstring("GC_OBJECT_ID_POWERVS is required"),
				)))
			})
		})
	})

	Describe("Validate", func() {
		It("accepts a complete configuration", func() {
			Expect(cfg.Validate()).To(Succeed())
		})

		It("rejects a missing backend URL", func() {
			cfg.BrokerBackendURL = ""
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("BROKER_BACKEND_URL is required")))
		})
	})

	Describe("IsDevelopment", func() {
		It("is false for production", func() {
			Expect(cfg.IsDevelopment()).To(BeFalse())
		})

		It("is true for development", func() {
			cfg.Environment = "development"
			Expect(cfg.IsDevelopment()).To(BeTrue())
		})
	})

	Describe("ProductLines", func() {
		It("binds each prefix to its catalog identifier in mounting order", func() {
			Expect(cfg.ProductLines()).To(Equal([]config.ProductLine{
				{Prefix: "cloud-professional-services", CatalogID: "cloud-object-id"},
				{Prefix: "vmware-professional-services", CatalogID: "vmware-object-id"},
				{Prefix: "powervs-professional-services", CatalogID: "powervs-object-id"},
			}))
		})
	})
})
