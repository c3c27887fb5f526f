package apierrors_test

import (
	"errors"
	"net/http"

	"github.com/ps-broker/osb-gateway/api/apierrors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ApiErrors", func() {
	Describe("CatalogFetchError", func() {
		It("propagates the upstream status code", func() {
			err := apierrors.NewCatalogFetchError(errors.New("boom"), http.StatusNotFound, "catalog-object-id")
			Expect(err.HttpStatus()).To(Equal(http.StatusNotFound))
			Expect(err.Detail()).To(ContainSubstring(`"catalog-object-id"`))
		})

		It("defaults to 500 when the failure carries no upstream status", func() {
			err := apierrors.NewCatalogFetchError(errors.New("boom"), 0, "catalog-object-id")
			Expect(err.HttpStatus()).To(Equal(http.StatusInternalServerError))
		})

		It("never propagates a success status", func() {
			err := apierrors.NewCatalogFetchError(errors.New("boom"), http.StatusOK, "catalog-object-id")
			Expect(err.HttpStatus()).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("BackendLifecycleError", func() {
		It("surfaces the cause as the client visible detail", func() {
			err := apierrors.NewBackendLifecycleError(errors.New("capacity exhausted"))
			Expect(err.HttpStatus()).To(Equal(http.StatusBadRequest))
			Expect(err.Detail()).To(Equal("capacity exhausted"))
		})

		It("falls back to a generic detail without a cause", func() {
			err := apierrors.NewBackendLifecycleError(nil)
			Expect(err.Detail()).To(Equal("The provisioning backend rejected the request."))
		})
	})

	Describe("ProtocolVersionMismatchError", func() {
		It("has the fixed precondition failed shape", func() {
			err := apierrors.NewProtocolVersionMismatchError("2.12")
			Expect(err.HttpStatus()).To(Equal(http.StatusPreconditionFailed))
			Expect(err.Detail()).To(Equal("Header 'X-Broker-Api-Version: 2.12' is required."))
		})
	})

	Describe("Unwrap", func() {
		It("exposes the cause", func() {
			cause := errors.New("boom")
			err := apierrors.NewUnknownError(cause)
			Expect(errors.Unwrap(err)).To(Equal(cause))
		})
	})
})
