package apierrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-logr/logr"
)

type ApiError interface {
	Detail() string
	Title() string
	Code() int
	HttpStatus() int
	Unwrap() error
	Error() string
}

type apiError struct {
	cause      error
	detail     string
	title      string
	code       int
	httpStatus int
}

func (e apiError) Error() string {
	if e.cause == nil {
		return "unknown"
	}

	return e.cause.Error()
}

func (e apiError) Unwrap() error {
	return e.cause
}

func (e apiError) Detail() string {
	return e.detail
}

func (e apiError) Title() string {
	return e.title
}

func (e apiError) Code() int {
	return e.code
}

func (e apiError) HttpStatus() int {
	return e.httpStatus
}

type UnknownError struct {
	apiError
}

func NewUnknownError(cause error) UnknownError {
	return UnknownError{
		apiError{
			cause:      cause,
			title:      "UnknownError",
			detail:     "An unknown error occurred.",
			code:       10001,
			httpStatus: http.StatusInternalServerError,
		},
	}
}

type MessageParseError struct {
	apiError
}

func NewMessageParseError(cause error) MessageParseError {
	return MessageParseError{
		apiError{
			cause:      cause,
			title:      "OSB-MessageParseError",
			detail:     "Request invalid due to parse error: invalid request body",
			code:       10002,
			httpStatus: http.StatusBadRequest,
		},
	}
}

type UnprocessableEntityError struct {
	apiError
}

func NewUnprocessableEntityError(cause error, detail string) UnprocessableEntityError {
	return UnprocessableEntityError{
		apiError{
			cause:      cause,
			title:      "OSB-UnprocessableEntity",
			detail:     detail,
			code:       10003,
			httpStatus: http.StatusUnprocessableEntity,
		},
	}
}

type UnknownKeyError struct {
	apiError
}

func NewUnknownKeyError(cause error, validKeys []string) UnknownKeyError {
	return UnknownKeyError{
		apiError{
			cause:      cause,
			title:      "OSB-BadQueryParameter",
			detail:     fmt.Sprintf("The query parameter is invalid: Valid parameters are: %v", validKeys),
			code:       10004,
			httpStatus: http.StatusBadRequest,
		},
	}
}

// UpstreamAuthError covers failures exchanging the long lived API key for a
// bearer token against the identity endpoint.
type UpstreamAuthError struct {
	apiError
}

func NewUpstreamAuthError(cause error) UpstreamAuthError {
	return UpstreamAuthError{
		apiError{
			cause:      cause,
			title:      "OSB-UpstreamAuthFailure",
			detail:     "Failed to authenticate with the identity provider.",
			code:       20001,
			httpStatus: http.StatusInternalServerError,
		},
	}
}

// CatalogFetchError preserves the status code returned by the upstream catalog
// store so it can be propagated to the caller. Unclassified failures
// (upstreamStatus == 0) default to 500.
type CatalogFetchError struct {
	apiError
}

func NewCatalogFetchError(cause error, upstreamStatus int, catalogID string) CatalogFetchError {
	status := upstreamStatus
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}

	return CatalogFetchError{
		apiError{
			cause:      cause,
			title:      "OSB-CatalogFetchFailure",
			detail:     fmt.Sprintf("Failed to fetch catalog entry %q from the upstream catalog store.", catalogID),
			code:       20002,
			httpStatus: status,
		},
	}
}

// InvalidCatalogShapeError indicates the upstream entry translated to an
// incomplete OSB service. This is a data quality problem, distinguished from
// connectivity problems surfaced as CatalogFetchError.
type InvalidCatalogShapeError struct {
	apiError
}

func NewInvalidCatalogShapeError(cause error, catalogID string) InvalidCatalogShapeError {
	return InvalidCatalogShapeError{
		apiError{
			cause:      cause,
			title:      "OSB-InvalidCatalogShape",
			detail:     fmt.Sprintf("The service with catalog ID %q was not found or is not valid in the upstream catalog. Check the ID, the API key permissions and the publication status of the service.", catalogID),
			code:       20003,
			httpStatus: http.StatusInternalServerError,
		},
	}
}

// BackendLifecycleError covers any failure from the provisioning backend
// during provision, update or deprovision. All backend failures are surfaced
// uniformly as client attributable with the backend detail text.
type BackendLifecycleError struct {
	apiError
}

func NewBackendLifecycleError(cause error) BackendLifecycleError {
	detail := "The provisioning backend rejected the request."
	if cause != nil {
		detail = cause.Error()
	}

	return BackendLifecycleError{
		apiError{
			cause:      cause,
			title:      "OSB-BackendLifecycleFailure",
			detail:     detail,
			code:       20004,
			httpStatus: http.StatusBadRequest,
		},
	}
}

// ProtocolVersionMismatchError short-circuits requests that lack the required
// broker API version header. The detail body is fixed.
type ProtocolVersionMismatchError struct {
	apiError
}

func NewProtocolVersionMismatchError(requiredVersion string) ProtocolVersionMismatchError {
	return ProtocolVersionMismatchError{
		apiError{
			cause:      errors.New("missing or mismatched X-Broker-Api-Version header"),
			title:      "OSB-PreconditionFailed",
			detail:     fmt.Sprintf("Header 'X-Broker-Api-Version: %s' is required.", requiredVersion),
			code:       20005,
			httpStatus: http.StatusPreconditionFailed,
		},
	}
}

func LogAndReturn(logger logr.Logger, err error, msg string, keysAndValues ...interface{}) error {
	keysAndValues = append(keysAndValues, "err", err)

	var apiErr ApiError
	if errors.As(err, &apiErr) && apiErr.HttpStatus() < http.StatusInternalServerError {
		logger.Info(msg, keysAndValues...)
	} else {
		logger.Error(err, msg, keysAndValues...)
	}

	return err
}
