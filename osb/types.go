package osb

// Catalog is the flat catalog document served on the broker catalog endpoint.
type Catalog struct {
	Services []Service `json:"services"`
}

type Service struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Bindable             bool            `json:"bindable"`
	Tags                 []string        `json:"tags"`
	Plans                []Plan          `json:"plans"`
	Metadata             ServiceMetadata `json:"metadata"`
	PlanUpdateable       bool            `json:"plan_updateable"`
	InstancesRetrievable bool            `json:"instances_retrievable"`
	BindingsRetrievable  bool            `json:"bindings_retrievable"`
}

type ServiceMetadata struct {
	LongDescription string `json:"longDescription,omitempty"`
	DisplayName     string `json:"displayName,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

type Plan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Bindable    bool   `json:"bindable"`
	Free        bool   `json:"free"`
}
