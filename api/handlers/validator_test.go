package handlers_test

import (
	"net/http"
	"strings"

	"github.com/ps-broker/osb-gateway/api/apierrors"
	"github.com/ps-broker/osb-gateway/api/handlers"
	"github.com/ps-broker/osb-gateway/api/payloads"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("DecoderValidator", func() {
	var validator *handlers.DecoderValidator

	BeforeEach(func() {
		validator = handlers.NewDefaultDecoderValidator()
	})

	Describe("DecodeAndValidateJSONPayload", func() {
		var (
			body      string
			payload   payloads.ServiceInstanceCreate
			decodeErr error
		)

		BeforeEach(func() {
			body = `{
				"service_id": "svc1",
				"plan_id": "p1",
				"organization_guid": "org-guid",
				"space_guid": "space-guid"
			}`
			payload = payloads.ServiceInstanceCreate{}
		})

		JustBeforeEach(func() {
			req, err := http.NewRequest("PUT", "/v2/service_instances/instance-guid", strings.NewReader(body))
			Expect(err).NotTo(HaveOccurred())
			decodeErr = validator.DecodeAndValidateJSONPayload(req, &payload)
		})

		It("decodes into the payload", func() {
			Expect(decodeErr).NotTo(HaveOccurred())
			Expect(payload.ServiceID).To(Equal("svc1"))
			Expect(payload.PlanID).To(Equal("p1"))
		})

		When("the body carries fields the gateway does not know", func() {
			BeforeEach(func() {
				body = `{
					"service_id": "svc1",
					"plan_id": "p1",
					"organization_guid": "org-guid",
					"space_guid": "space-guid",
					"context": {"platform": "cloudfoundry"},
					"maintenance_info": {"version": "1.2.3"}
				}`
			})

			It("tolerates them", func() {
				Expect(decodeErr).NotTo(HaveOccurred())
				Expect(payload.ServiceID).To(Equal("svc1"))
			})
		})

		When("the body is not json", func() {
			BeforeEach(func() {
				body = `{`
			})

			It("returns a message parse error", func() {
				Expect(decodeErr).To(BeAssignableToTypeOf(apierrors.MessageParseError{}))
			})
		})

		When("a required field is missing", func() {
			BeforeEach(func() {
				body = `{"service_id": "svc1"}`
			})

			It("returns an unprocessable entity error listing the fields", func() {
				Expect(decodeErr).To(BeAssignableToTypeOf(apierrors.UnprocessableEntityError{}))
				Expect(decodeErr.(apierrors.ApiError).Detail()).To(SatisfyAll(
					ContainSubstring("plan_id"),
					ContainSubstring("organization_guid"),
					ContainSubstring("space_guid"),
				))
			})
		})
	})

	Describe("DecodeAndValidateURLValues", func() {
		var (
			query     string
			payload   payloads.ServiceInstanceDelete
			decodeErr error
		)

		BeforeEach(func() {
			query = "service_id=svc1&plan_id=p1&accepts_incomplete=true"
			payload = payloads.ServiceInstanceDelete{}
		})

		JustBeforeEach(func() {
			req, err := http.NewRequest("DELETE", "/v2/service_instances/instance-guid?"+query, nil)
			Expect(err).NotTo(HaveOccurred())
			decodeErr = validator.DecodeAndValidateURLValues(req, &payload)
		})

		It("decodes the query parameters", func() {
			Expect(decodeErr).NotTo(HaveOccurred())
			Expect(payload.ServiceID).To(Equal("svc1"))
			Expect(payload.PlanID).To(Equal("p1"))
			Expect(payload.AcceptsIncomplete).To(BeTrue())
		})

		When("the query carries an unsupported key", func() {
			BeforeEach(func() {
				query = "service_id=svc1&plan_id=p1&purge=true"
			})

			It("returns an unknown key error", func() {
				Expect(decodeErr).To(BeAssignableToTypeOf(apierrors.UnknownKeyError{}))
			})
		})

		When("accepts_incomplete is not a boolean", func() {
			BeforeEach(func() {
				query = "service_id=svc1&plan_id=p1&accepts_incomplete=maybe"
			})

			It("returns a message parse error", func() {
				Expect(decodeErr).To(BeAssignableToTypeOf(apierrors.MessageParseError{}))
			})
		})

		When("a required parameter is missing", func() {
			BeforeEach(func() {
				query = "service_id=svc1"
			})

			It("returns an unprocessable entity error", func() {
				Expect(decodeErr).To(BeAssignableToTypeOf(apierrors.UnprocessableEntityError{}))
			})
		})
	})
})
