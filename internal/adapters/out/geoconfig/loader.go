// Package geoconfig loads the service-coverage catalog from a YAML file and
// builds the geography directory out of it. The catalog is configuration,
// not data: it changes by deployment, never at runtime.
package geoconfig

import (
	"fmt"
	"os"

	"parcel/internal/core/domain/model/geography"

	"gopkg.in/yaml.v3"
)

type catalogYAML struct {
	Regions []regionYAML `yaml:"regions"`
}

type regionYAML struct {
	ID             string       `yaml:"id"`
	Name           string       `yaml:"name"`
	ServiceCenters []centerYAML `yaml:"service_centers"`
}

type centerYAML struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// LoadDirectory reads the catalog file and builds the directory. File order
// becomes display order for both regions and service centers.
func LoadDirectory(path string) (*geography.Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading geography catalog: %w", err)
	}

	var catalog catalogYAML
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	definitions := make([]geography.RegionDefinition, 0, len(catalog.Regions))
	for _, r := range catalog.Regions {
		centers := make([]geography.ServiceCenterDefinition, 0, len(r.ServiceCenters))
		for _, c := range r.ServiceCenters {
			centers = append(centers, geography.ServiceCenterDefinition{ID: c.ID, Name: c.Name})
		}
		definitions = append(definitions, geography.RegionDefinition{
			ID:             r.ID,
			Name:           r.Name,
			ServiceCenters: centers,
		})
	}

	directory, err := geography.NewDirectory(definitions)
	if err != nil {
		return nil, fmt.Errorf("invalid geography catalog %s: %w", path, err)
	}

	return directory, nil
}
