// Package fixture handles the offline brands.json fixture: its format, a
// seeded synthetic generator, and the loader that feeds it into the store.
package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"fixmate/internal/domain/catalog"
)

// ApplianceEntry is one appliance under a brand in the fixture file.
type ApplianceEntry struct {
	BrandPage    string            `json:"brand_page"`
	CommonIssues map[string]string `json:"common_issues"`
}

// Fixture is the nested brand → appliance → issues structure of brands.json.
type Fixture map[string]map[string]ApplianceEntry

// ReadFile parses a fixture file.
func ReadFile(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}
	return f, nil
}

// WriteFile writes the fixture as indented JSON, creating parent directories.
func (f Fixture) WriteFile(path string) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fixture: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write fixture file: %w", err)
	}
	return nil
}

// Flatten converts the nested fixture into flat issue rows. Keys are walked
// in sorted order so repeated loads produce the same row order.
func (f Fixture) Flatten() []*catalog.Issue {
	var issues []*catalog.Issue

	for _, brand := range sortedKeys(f) {
		appliances := f[brand]
		for _, appliance := range sortedKeys(appliances) {
			entry := appliances[appliance]
			for _, title := range sortedKeys(entry.CommonIssues) {
				issues = append(issues, &catalog.Issue{
					Brand:      brand,
					Appliance:  appliance,
					IssueTitle: title,
					Solution:   entry.CommonIssues[title],
					BrandPage:  entry.BrandPage,
				})
			}
		}
	}
	return issues
}

// IssueCount returns the total number of issues across all brands.
func (f Fixture) IssueCount() int {
	n := 0
	for _, appliances := range f {
		for _, entry := range appliances {
			n += len(entry.CommonIssues)
		}
	}
	return n
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
