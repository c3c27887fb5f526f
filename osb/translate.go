package osb

import (
	"fmt"
	"slices"

	"github.com/ps-broker/osb-gateway/globalcatalog"

	"github.com/BooleanCat/go-functional/v2/it"
	"github.com/BooleanCat/go-functional/v2/it/itx"
	"github.com/go-logr/logr"
)

// InvalidShapeError is returned when a catalog entry translates to an
// incomplete OSB service. It distinguishes a malformed or unpublished
// upstream entry from a fetch failure.
type InvalidShapeError struct {
	EntryID string
	Reason  string
}

func (e InvalidShapeError) Error() string {
	return fmt.Sprintf("catalog entry %q does not translate to a valid service: %s", e.EntryID, e.Reason)
}

// Translate maps a nested catalog entry onto the flat OSB service shape. It
// is deterministic and performs no I/O: plan children are taken in document
// order, incomplete plans are dropped with a diagnostic, and the result is
// rejected unless the service identity fields are populated and at least one
// valid plan remains.
func Translate(logger logr.Logger, entry globalcatalog.Entry) (Service, error) {
	overview := entry.EnglishOverview()

	plans := slices.Collect(it.Map(
		itx.FromSlice(entry.Children).Filter(func(child globalcatalog.Entry) bool {
			if child.Kind != globalcatalog.KindPlan {
				return false
			}

			if child.ID == "" || child.Name == "" || child.EnglishOverview().Description == "" {
				logger.Info("skipping incomplete plan child",
					"serviceID", entry.ID,
					"planID", child.ID,
					"planName", child.Name,
				)
				return false
			}

			return true
		}),
		planFromEntry,
	))

	tags := entry.Tags
	if tags == nil {
		tags = []string{}
	}

	service := Service{
		ID:          entry.ID,
		Name:        entry.Name,
		Description: overview.Description,
		Bindable:    entry.Metadata.Service.Bindable,
		Tags:        tags,
		Plans:       plans,
		Metadata: ServiceMetadata{
			LongDescription: overview.LongDescription,
			DisplayName:     overview.DisplayName,
			ImageURL:        entry.Images.Image,
		},
		PlanUpdateable:       entry.Metadata.Service.PlanUpdateable,
		InstancesRetrievable: true,
		BindingsRetrievable:  true,
	}

	if err := validateShape(service); err != nil {
		return Service{}, err
	}

	return service, nil
}

func planFromEntry(child globalcatalog.Entry) Plan {
	return Plan{
		ID:          child.ID,
		Name:        child.Name,
		Description: child.EnglishOverview().Description,
		Bindable:    child.Metadata.Service.Bindable,
		Free:        isFree(child.PricingTags),
	}
}

// A plan is paid only when the upstream pricing tags say so; absence of
// pricing tags means free.
func isFree(pricingTags []string) bool {
	return !slices.Contains(pricingTags, "paid") && !slices.Contains(pricingTags, "paid_only")
}

func validateShape(service Service) error {
	switch {
	case service.ID == "":
		return InvalidShapeError{EntryID: service.ID, Reason: "service id is empty"}
	case service.Name == "":
		return InvalidShapeError{EntryID: service.ID, Reason: "service name is empty"}
	case service.Description == "":
		return InvalidShapeError{EntryID: service.ID, Reason: "service description is empty"}
	case len(service.Plans) == 0:
		return InvalidShapeError{EntryID: service.ID, Reason: "no valid plans"}
	}

	return nil
}
