package geography

import (
	"fmt"

	"parcel/internal/pkg/errs"
)

// RegionDefinition describes one region and its service centers as supplied
// by configuration. Order matters: it becomes the display order.
type RegionDefinition struct {
	ID             string
	Name           string
	ServiceCenters []ServiceCenterDefinition
}

// ServiceCenterDefinition describes one service center within a region
// definition.
type ServiceCenterDefinition struct {
	ID   string
	Name string
}

// Directory is the loaded service-coverage catalog. It answers two questions:
// which region a service center belongs to, and which service centers a
// region owns. Both lookups are O(1) against indexes built once at
// construction.
//
// Directory is immutable after NewDirectory returns; publish it before
// serving begins and share it freely.
type Directory struct {
	regions         []Region
	centersByRegion map[string][]ServiceCenter
	regionByCenter  map[string]Region
}

// NewDirectory builds a Directory from region definitions. It rejects empty
// catalogs, blank identifiers, duplicate region ids, and service centers
// claimed by more than one region.
func NewDirectory(definitions []RegionDefinition) (*Directory, error) {
	if len(definitions) == 0 {
		return nil, errs.NewValueIsRequiredError("region definitions")
	}

	d := &Directory{
		regions:         make([]Region, 0, len(definitions)),
		centersByRegion: make(map[string][]ServiceCenter, len(definitions)),
		regionByCenter:  make(map[string]Region),
	}

	for _, def := range definitions {
		if def.ID == "" {
			return nil, errs.NewValueIsRequiredError("region id")
		}
		if _, exists := d.centersByRegion[def.ID]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"region id", fmt.Errorf("%q is defined twice", def.ID))
		}

		region := Region{id: def.ID, name: def.Name}
		centers := make([]ServiceCenter, 0, len(def.ServiceCenters))
		for _, centerDef := range def.ServiceCenters {
			if centerDef.ID == "" {
				return nil, errs.NewValueIsRequiredError("service center id")
			}
			if owner, claimed := d.regionByCenter[centerDef.ID]; claimed {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"service center id",
					fmt.Errorf("%q belongs to both %q and %q", centerDef.ID, owner.ID(), def.ID))
			}
			center := ServiceCenter{id: centerDef.ID, name: centerDef.Name}
			centers = append(centers, center)
			d.regionByCenter[centerDef.ID] = region
		}

		d.regions = append(d.regions, region)
		d.centersByRegion[def.ID] = centers
	}

	return d, nil
}

// Regions returns all regions in configuration order.
func (d *Directory) Regions() []Region {
	out := make([]Region, len(d.regions))
	copy(out, d.regions)
	return out
}

// RegionOf resolves the region a service center belongs to.
// Returns an ObjectNotFoundError for unknown service centers.
func (d *Directory) RegionOf(serviceCenterID string) (Region, error) {
	region, ok := d.regionByCenter[serviceCenterID]
	if !ok {
		return Region{}, errs.NewObjectNotFoundError("serviceCenterId", serviceCenterID)
	}
	return region, nil
}

// ServiceCentersOf returns a region's service centers in configuration order.
// Returns an ObjectNotFoundError for unknown regions.
func (d *Directory) ServiceCentersOf(regionID string) ([]ServiceCenter, error) {
	centers, ok := d.centersByRegion[regionID]
	if !ok {
		return nil, errs.NewObjectNotFoundError("regionId", regionID)
	}
	out := make([]ServiceCenter, len(centers))
	copy(out, centers)
	return out, nil
}

// Contains reports whether the given service center belongs to the given
// region. Used to enforce the referential invariant on party info at
// submission time.
func (d *Directory) Contains(regionID, serviceCenterID string) bool {
	region, ok := d.regionByCenter[serviceCenterID]
	return ok && region.ID() == regionID
}
