package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Bennnhere/LendIt-app/model"
	"gopkg.in/yaml.v3"
)

// DefaultCatalog is what every new session starts with when no seed file is set.
func DefaultCatalog() []model.Item {
	return []model.Item{
		{ID: 1, Name: "Engineering Drafter", Owner: "Senior Rahul", PricePerHour: 10, Status: model.ItemAvailable},
		{ID: 2, Name: "Lab Coat (Size M)", Owner: "Ananya (3rd Yr)", PricePerHour: 5, Status: model.ItemAvailable},
		{ID: 3, Name: "Scientific Calculator", Owner: "Siddharth", PricePerHour: 15, Status: model.ItemAvailable},
	}
}

// LoadCatalog reads the seed catalog from a YAML file of the form
//
//	items:
//	  - name: Ruler
//	    owner: You
//	    price_per_hour: 5
//
// Missing ids are assigned in file order, status always starts Available.
// An empty path yields DefaultCatalog.
func LoadCatalog(path string) ([]model.Item, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}

	var doc struct {
		Items []model.Item `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse seed %s: %w", path, err)
	}

	seen := make(map[int64]struct{}, len(doc.Items))
	var next int64 = 1
	for _, it := range doc.Items {
		if it.ID >= next {
			next = it.ID + 1
		}
	}
	for i := range doc.Items {
		it := &doc.Items[i]
		if strings.TrimSpace(it.Name) == "" {
			return nil, fmt.Errorf("seed item %d: name required", i)
		}
		if !model.ValidPrice(it.PricePerHour) {
			return nil, fmt.Errorf("seed item %d: price_per_hour %v out of range [%d, %d]",
				i, it.PricePerHour, model.MinPricePerHour, model.MaxPricePerHour)
		}
		if it.ID == 0 {
			it.ID = next
			next++
		}
		if _, dup := seen[it.ID]; dup {
			return nil, fmt.Errorf("seed item %d: duplicate id %d", i, it.ID)
		}
		seen[it.ID] = struct{}{}
		it.Status = model.ItemAvailable
	}
	return doc.Items, nil
}
