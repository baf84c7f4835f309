package hh

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(url string, sleeps *[]time.Duration) *Client {
	return NewClient(Config{
		BaseURL: url,
		Sleep: func(d time.Duration) {
			*sleeps = append(*sleeps, d)
		},
	})
}

func TestSearchVacancies_Success(t *testing.T) {
	var gotUA, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "1", "name": "Go Developer", "employer": {"name": "Acme"},
				 "salary": {"from": 100, "to": null, "currency": "RUR", "gross": false},
				 "area": {"name": "Москва"}, "alternate_url": "https://hh.ru/vacancy/1",
				 "url": "https://api.hh.ru/vacancies/1"}
			],
			"found": 1, "pages": 1, "page": 0, "per_page": 50
		}`))
	}))
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	page, err := c.SearchVacancies(context.Background(), SearchParams{
		Text: "go developer", Area: "1", PerPage: 50,
	})
	if err != nil {
		t.Fatalf("SearchVacancies: %v", err)
	}

	if gotUA != defaultUserAgent {
		t.Errorf("User-Agent = %q, want %q", gotUA, defaultUserAgent)
	}
	if gotQuery != "area=1&page=0&per_page=50&text=go+developer" {
		t.Errorf("query = %q", gotQuery)
	}

	if page.Pages != 1 || len(page.Items) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	v := page.Items[0]
	if v.Name != "Go Developer" || v.Employer.Name != "Acme" {
		t.Errorf("unexpected item: %+v", v)
	}
	if v.Salary == nil || v.Salary.From == nil || *v.Salary.From != 100 || v.Salary.To != nil {
		t.Errorf("salary bounds decoded wrong: %+v", v.Salary)
	}
	if len(sleeps) != 0 {
		t.Errorf("slept %v on a clean request", sleeps)
	}
}

func TestSearchVacancies_TextRequired(t *testing.T) {
	var sleeps []time.Duration
	c := newTestClient("http://127.0.0.1:0", &sleeps)
	if _, err := c.SearchVacancies(context.Background(), SearchParams{}); err == nil {
		t.Error("expected error for empty search text")
	}
}

func TestGetJSON_RetriesAfterRateLimit(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"items": [], "pages": 1}`))
	}))
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	if _, err := c.SearchVacancies(context.Background(), SearchParams{Text: "go"}); err != nil {
		t.Fatalf("SearchVacancies: %v", err)
	}

	if calls != 3 {
		t.Errorf("issued %d requests, want 3", calls)
	}
	want := []time.Duration{1500 * time.Millisecond, 3 * time.Second}
	if len(sleeps) != len(want) {
		t.Fatalf("recorded sleeps %v, want %v", sleeps, want)
	}
	for i := range want {
		if sleeps[i] != want[i] {
			t.Errorf("sleep[%d] = %v, want %v", i, sleeps[i], want[i])
		}
	}
}

func TestGetJSON_ServerErrorBackoff(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"items": [], "pages": 1}`))
	}))
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	if _, err := c.SearchVacancies(context.Background(), SearchParams{Text: "go"}); err != nil {
		t.Fatalf("SearchVacancies: %v", err)
	}

	if calls != 2 {
		t.Errorf("issued %d requests, want 2", calls)
	}
	if len(sleeps) != 1 || sleeps[0] != 800*time.Millisecond {
		t.Errorf("sleeps = %v, want one of 800ms", sleeps)
	}
}

func TestGetJSON_ExhaustedBudgetReturnsRequestError(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	_, err := c.SearchVacancies(context.Background(), SearchParams{Text: "go"})
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("error = %T, want *RequestError", err)
	}
	if reqErr.Attempts != 5 {
		t.Errorf("Attempts = %d, want 5", reqErr.Attempts)
	}
	if calls != 5 {
		t.Errorf("issued %d requests, want 5", calls)
	}
}

func TestVacancyDetails_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"experience": {"name": "1–3 года"},
			"schedule": {"name": "Удаленная работа"},
			"employment": {"name": "Полная занятость"},
			"key_skills": [{"name": "Go"}, {"name": "SQL"}],
			"description": "<p>Build services</p>"
		}`))
	}))
	defer srv.Close()

	var sleeps []time.Duration
	c := newTestClient(srv.URL, &sleeps)

	details, err := c.VacancyDetails(context.Background(), srv.URL+"/vacancies/1")
	if err != nil {
		t.Fatalf("VacancyDetails: %v", err)
	}

	if details.Experience.Name != "1–3 года" || details.Employment.Name != "Полная занятость" {
		t.Errorf("unexpected details: %+v", details)
	}
	if len(details.KeySkills) != 2 {
		t.Errorf("KeySkills = %+v, want 2 entries", details.KeySkills)
	}
}

func TestVacancyDetails_URLRequired(t *testing.T) {
	var sleeps []time.Duration
	c := newTestClient("http://127.0.0.1:0", &sleeps)
	if _, err := c.VacancyDetails(context.Background(), ""); err == nil {
		t.Error("expected error for empty detail url")
	}
}
