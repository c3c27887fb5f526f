package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/ps-broker/osb-gateway/api/apierrors"

	"github.com/jellydator/validation"
)

type DecoderValidator struct{}

func NewDefaultDecoderValidator() *DecoderValidator {
	return &DecoderValidator{}
}

// DecodeAndValidateJSONPayload decodes the request body into object and runs
// its validation rules. Unknown fields are tolerated: OSB platforms send
// fields (context, maintenance_info) the gateway does not act on.
func (dv *DecoderValidator) DecodeAndValidateJSONPayload(r *http.Request, object interface{}) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := decoder.Decode(object); err != nil {
		return apierrors.NewMessageParseError(err)
	}

	return dv.validatePayload(object)
}

func (dv *DecoderValidator) DecodeAndValidateURLValues(r *http.Request, payloadObject KeyedPayload) error {
	values := r.URL.Query()

	if err := checkKeysAreSupported(payloadObject, values); err != nil {
		return apierrors.NewUnknownKeyError(err, payloadObject.SupportedKeys())
	}
	if err := payloadObject.DecodeFromURLValues(values); err != nil {
		return apierrors.NewMessageParseError(err)
	}

	return dv.validatePayload(payloadObject)
}

func checkKeysAreSupported(payloadObject KeyedPayload, values url.Values) error {
	supportedKeys := map[string]bool{}
	for _, key := range payloadObject.SupportedKeys() {
		supportedKeys[key] = true
	}
	for key := range values {
		if !supportedKeys[key] {
			return fmt.Errorf("unsupported query parameter: %s", key)
		}
	}

	return nil
}

func (dv *DecoderValidator) validatePayload(object interface{}) error {
	validatable, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}

	if err := validatable.Validate(); err != nil {
		return apierrors.NewUnprocessableEntityError(err, strings.Join(errorMessages(err), ", "))
	}

	return nil
}

func errorMessages(err error) []string {
	var messages []string

	if validationErrs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range validationErrs {
			messages = append(messages, field+" "+fieldErr.Error())
		}
		sort.Strings(messages)
		return messages
	}

	return []string{err.Error()}
}
