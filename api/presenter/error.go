package presenter

// ErrorResponse is the Open Service Broker error body: a machine readable
// error string plus a human readable description suitable for display to the
// platform operator.
type ErrorResponse struct {
	Error       string `json:"error,omitempty"`
	Description string `json:"description"`
}
