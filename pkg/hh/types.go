package hh

import (
	"net/http"
	"time"
)

// Config defines hh.ru API client settings
type Config struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Retry      RetryPolicy
	Sleep      func(time.Duration)
}

// Client queries the hh.ru vacancies API
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	retry      RetryPolicy
	sleep      func(time.Duration)
}

// SearchParams describe one page of a vacancy search request
type SearchParams struct {
	Text    string
	Area    string
	Page    int
	PerPage int
}

// Named is the {id, name} pair hh.ru nests almost everywhere.
type Named struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Salary carries nullable bounds; either side may be absent.
type Salary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
	Gross    bool   `json:"gross"`
}

// Vacancy is a single item of the paginated search response.
type Vacancy struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Employer     Named   `json:"employer"`
	Salary       *Salary `json:"salary"`
	Area         Named   `json:"area"`
	PublishedAt  string  `json:"published_at"`
	AlternateURL string  `json:"alternate_url"`
	URL          string  `json:"url"` // per-item detail endpoint
}

// SearchPage is the top-level search response.
type SearchPage struct {
	Items   []Vacancy `json:"items"`
	Found   int       `json:"found"`
	Pages   int       `json:"pages"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
}

// VacancyDetails is the per-vacancy detail resource. Only the fields
// this tool reads are modeled; absent nested objects decode to zero
// values, which render as empty strings downstream.
type VacancyDetails struct {
	Experience  Named   `json:"experience"`
	Schedule    Named   `json:"schedule"`
	Employment  Named   `json:"employment"`
	KeySkills   []Named `json:"key_skills"`
	Description string  `json:"description"`
}
