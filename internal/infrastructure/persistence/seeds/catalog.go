// Package seeds reads the plan catalog shipped with a deployment.
package seeds

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gymflow/gymflow/internal/domain/membership"
)

type PlanSeed struct {
	Name            string   `yaml:"name"`
	PriceMinorUnits int64    `yaml:"price_minor_units"`
	DurationMonths  int      `yaml:"duration_months"`
	Currency        string   `yaml:"currency"`
	Description     string   `yaml:"description"`
	Features        []string `yaml:"features"`
	Retired         bool     `yaml:"retired"`
}

type Catalog struct {
	Plans []PlanSeed `yaml:"plans"`
}

// LoadCatalog decodes a catalog document. Unknown keys are rejected so typos
// in a price or duration field do not silently seed a zero.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if err == io.EOF {
			return &Catalog{}, nil
		}
		return nil, fmt.Errorf("failed to decode plan catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(c.Plans))
	for i, p := range c.Plans {
		if _, dup := seen[p.Name]; dup {
			return nil, fmt.Errorf("plan catalog entry %d: duplicate plan name %q", i, p.Name)
		}
		seen[p.Name] = struct{}{}
	}

	return &c, nil
}

func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan catalog %s: %w", path, err)
	}
	return LoadCatalog(bytes.NewReader(data))
}

// ToPlan builds a validated plan. defaultCurrency applies when the entry has none.
func (s PlanSeed) ToPlan(defaultCurrency string) (*membership.Plan, error) {
	currency := s.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	plan, err := membership.NewPlan(s.Name, s.PriceMinorUnits, s.DurationMonths, s.Features, s.Description, currency)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", s.Name, err)
	}
	if s.Retired {
		plan.Retire()
	}
	return plan, nil
}
