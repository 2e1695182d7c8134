// Package catalog holds the appliance-repair catalog domain: issues keyed by
// brand and appliance, their repair solutions, and full-text search over them.
package catalog

// Issue is one known problem for a (brand, appliance) pair together with its
// repair guidance. Issues are loaded in bulk from a fixture and are immutable
// at service runtime.
type Issue struct {
	ID         uint
	Brand      string
	Appliance  string
	IssueTitle string
	Solution   string
	BrandPage  string
}

// Solution is the lookup result for an exact (brand, appliance, issue) triple.
type Solution struct {
	Solution  string
	BrandPage string
}
