package globalcatalog

// Entry is a node of the hierarchical catalog document returned by the
// upstream catalog store. Service entries carry plan entries in Children;
// document order of Children is meaningful and preserved end to end.
type Entry struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Kind        string              `json:"kind"`
	OverviewUI  map[string]Overview `json:"overview_ui"`
	Tags        []string            `json:"tags"`
	Images      Images              `json:"images"`
	Metadata    EntryMetadata       `json:"metadata"`
	PricingTags []string            `json:"pricing_tags"`
	Children    []Entry             `json:"children"`
}

type Overview struct {
	Description     string `json:"description"`
	LongDescription string `json:"long_description"`
	DisplayName     string `json:"display_name"`
}

type Images struct {
	Image string `json:"image"`
}

type EntryMetadata struct {
	Service ServiceMetadata `json:"service"`
}

type ServiceMetadata struct {
	Bindable       bool `json:"bindable"`
	PlanUpdateable bool `json:"plan_updateable"`
}

const KindPlan = "plan"

// EnglishOverview returns the "en" locale overview, the only locale the
// gateway translates.
func (e Entry) EnglishOverview() Overview {
	return e.OverviewUI["en"]
}
