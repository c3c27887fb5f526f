package provisioning

// ProvisionRequest carries the OSB provision body forwarded to the backend.
type ProvisionRequest struct {
	ServiceID        string         `json:"service_id"`
	PlanID           string         `json:"plan_id"`
	OrganizationGUID string         `json:"organization_guid"`
	SpaceGUID        string         `json:"space_guid"`
	Parameters       map[string]any `json:"parameters,omitempty"`
}

type ProvisionPayload struct {
	InstanceID        string
	AcceptsIncomplete bool
	ProvisionRequest
}

// UpdateRequest carries the OSB update body. Organization and space GUIDs are
// fixed at provision time and not part of an update.
type UpdateRequest struct {
	ServiceID  string         `json:"service_id"`
	PlanID     string         `json:"plan_id"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

type UpdatePayload struct {
	InstanceID        string
	AcceptsIncomplete bool
	UpdateRequest
}

// DeprovisionPayload identifies the instance to delete; all fields travel as
// query parameters on the backend call.
type DeprovisionPayload struct {
	InstanceID        string
	ServiceID         string
	PlanID            string
	AcceptsIncomplete bool
}
