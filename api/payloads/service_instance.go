package payloads

import (
	"net/url"
	"strconv"

	"github.com/ps-broker/osb-gateway/provisioning"

	jellidation "github.com/jellydator/validation"
)

// ServiceInstanceCreate is the body of PUT /v2/service_instances/{id}.
type ServiceInstanceCreate struct {
	ServiceID         string         `json:"service_id"`
	PlanID            string         `json:"plan_id"`
	OrganizationGUID  string         `json:"organization_guid"`
	SpaceGUID         string         `json:"space_guid"`
	Parameters        map[string]any `json:"parameters"`
	AcceptsIncomplete bool           `json:"accepts_incomplete"`
}

func (c ServiceInstanceCreate) Validate() error {
	return jellidation.ValidateStruct(&c,
		jellidation.Field(&c.ServiceID, jellidation.Required),
		jellidation.Field(&c.PlanID, jellidation.Required),
		jellidation.Field(&c.OrganizationGUID, jellidation.Required),
		jellidation.Field(&c.SpaceGUID, jellidation.Required),
	)
}

func (c ServiceInstanceCreate) ToProvisionPayload(instanceID string) provisioning.ProvisionPayload {
	return provisioning.ProvisionPayload{
		InstanceID:        instanceID,
		AcceptsIncomplete: c.AcceptsIncomplete,
		ProvisionRequest: provisioning.ProvisionRequest{
			ServiceID:        c.ServiceID,
			PlanID:           c.PlanID,
			OrganizationGUID: c.OrganizationGUID,
			SpaceGUID:        c.SpaceGUID,
			Parameters:       c.Parameters,
		},
	}
}

// ServiceInstanceUpdate is the body of PATCH /v2/service_instances/{id}. It
// shares the provision body shape; organization and space GUIDs are accepted
// but only service and plan travel to the backend.
type ServiceInstanceUpdate struct {
	ServiceID         string         `json:"service_id"`
	PlanID            string         `json:"plan_id"`
	OrganizationGUID  string         `json:"organization_guid"`
	SpaceGUID         string         `json:"space_guid"`
	Parameters        map[string]any `json:"parameters"`
	AcceptsIncomplete bool           `json:"accepts_incomplete"`
}

func (u ServiceInstanceUpdate) Validate() error {
	return jellidation.ValidateStruct(&u,
		jellidation.Field(&u.ServiceID, jellidation.Required),
		jellidation.Field(&u.PlanID, jellidation.Required),
		jellidation.Field(&u.OrganizationGUID, jellidation.Required),
		jellidation.Field(&u.SpaceGUID, jellidation.Required),
	)
}

func (u ServiceInstanceUpdate) ToUpdatePayload(instanceID string) provisioning.UpdatePayload {
	return provisioning.UpdatePayload{
		InstanceID:        instanceID,
		AcceptsIncomplete: u.AcceptsIncomplete,
		UpdateRequest: provisioning.UpdateRequest{
			ServiceID:  u.ServiceID,
			PlanID:     u.PlanID,
			Parameters: u.Parameters,
		},
	}
}

// ServiceInstanceDelete is decoded from the query string of
// DELETE /v2/service_instances/{id}.
type ServiceInstanceDelete struct {
	ServiceID         string
	PlanID            string
	AcceptsIncomplete bool
}

func (d ServiceInstanceDelete) Validate() error {
	return jellidation.ValidateStruct(&d,
		jellidation.Field(&d.ServiceID, jellidation.Required),
		jellidation.Field(&d.PlanID, jellidation.Required),
	)
}

func (d *ServiceInstanceDelete) SupportedKeys() []string {
	return []string{"service_id", "plan_id", "accepts_incomplete"}
}

func (d *ServiceInstanceDelete) DecodeFromURLValues(values url.Values) error {
	d.ServiceID = values.Get("service_id")
	d.PlanID = values.Get("plan_id")

	if raw := values.Get("accepts_incomplete"); raw != "" {
		acceptsIncomplete, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		d.AcceptsIncomplete = acceptsIncomplete
	}

	return nil
}

func (d *ServiceInstanceDelete) ToDeprovisionPayload(instanceID string) provisioning.DeprovisionPayload {
	return provisioning.DeprovisionPayload{
		InstanceID:        instanceID,
		ServiceID:         d.ServiceID,
		PlanID:            d.PlanID,
		AcceptsIncomplete: d.AcceptsIncomplete,
	}
}
