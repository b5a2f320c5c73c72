package geography

// Region is a coverage area that owns an ordered set of service centers.
// Regions are immutable reference data identified by a short slug ("dhaka").
type Region struct {
	id   string
	name string
}

// ID returns the region's identifier slug.
func (r Region) ID() string {
	return r.id
}

// Name returns the region's display name.
func (r Region) Name() string {
	return r.name
}

// IsEqual compares two regions by identity.
func (r Region) IsEqual(other Region) bool {
	return r.id == other.id
}

// ServiceCenter is a drop-off/pickup point that belongs to exactly one region.
type ServiceCenter struct {
	id   string
	name string
}

// ID returns the service center's identifier slug.
func (c ServiceCenter) ID() string {
	return c.id
}

// Name returns the service center's display name.
func (c ServiceCenter) Name() string {
	return c.name
}
