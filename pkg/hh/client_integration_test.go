package hh

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestSearchVacanciesIntegration(t *testing.T) {
	if os.Getenv("HH_LIVE") == "" {
		t.Skip("HH_LIVE must be set to run this test against api.hh.ru")
	}

	client := NewClient(Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page, err := client.SearchVacancies(ctx, SearchParams{
		Text:    "golang",
		PerPage: 5,
	})
	if err != nil {
		t.Fatalf("SearchVacancies: %v", err)
	}

	if len(page.Items) == 0 {
		t.Log("hh.ru search returned zero vacancies; check query")
		return
	}

	for i, v := range page.Items {
		if i >= 5 {
			break
		}
		t.Logf("Result %d: %s @ %s (%s)", i+1, v.Name, v.Employer.Name, v.Area.Name)
	}
	t.Logf("hh.ru reported %d vacancies over %d pages", page.Found, page.Pages)
}
