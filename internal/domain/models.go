// Package domain holds the normalized vacancy model shared by the
// collector, enricher and exporter.
package domain

// Salary carries the nullable bounds of a vacancy's salary range.
type Salary struct {
	From     *int
	To       *int
	Currency string
	Gross    bool
}

// Vacancy is the normalized search-result item.
type Vacancy struct {
	ID          string
	Name        string
	Employer    string
	Salary      *Salary
	Area        string
	PublishedAt string
	URL         string // human-facing hh.ru page
	DetailURL   string // API detail endpoint; empty when absent
}

// Details holds the fields only the detail endpoint provides. The zero
// value (all empty strings) stands in when enrichment is off or failed.
type Details struct {
	Experience  string
	Schedule    string
	Employment  string
	KeySkills   string // comma-joined skill names
	Description string // whitespace-normalized snippet
}

// Record pairs a vacancy with its enrichment. Enrichment never touches
// the base vacancy, it only fills in Details.
type Record struct {
	Vacancy Vacancy
	Details Details
}
