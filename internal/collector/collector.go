// Package collector walks the paginated search endpoint and
// accumulates vacancies in API order.
package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/domain"
	"github.com/DmitryGritzuk/hh-vacancy-parser/pkg/hh"
	"github.com/DmitryGritzuk/hh-vacancy-parser/pkg/logging"
)

// Searcher describes the subset of the hh client used by the collector.
type Searcher interface {
	SearchVacancies(ctx context.Context, params hh.SearchParams) (hh.SearchPage, error)
}

// Query is the immutable input of one collection run.
type Query struct {
	Text    string
	Area    string
	Pages   int
	PerPage int
	Delay   time.Duration
}

// Collector fetches search pages sequentially.
type Collector struct {
	client Searcher
	sleep  func(time.Duration)
	log    *logging.Logger
}

// Option configures Collector
type Option func(*Collector)

// WithSleep replaces the inter-page sleep, for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Collector) {
		c.sleep = sleep
	}
}

// New builds a Collector
func New(client Searcher, log *logging.Logger, opts ...Option) (*Collector, error) {
	if client == nil {
		return nil, fmt.Errorf("collector: client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("collector: logger is required")
	}

	c := &Collector{
		client: client,
		sleep:  time.Sleep,
		log:    log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Collect fetches up to q.Pages pages and returns the items in the
// order the API produced them. When a response reports a total page
// count, the loop stops as soon as that count is reached. Any fetch
// failure aborts the whole run; there is no partial-result salvage.
func (c *Collector) Collect(ctx context.Context, q Query) ([]domain.Vacancy, error) {
	var items []domain.Vacancy

	for page := 0; page < q.Pages; page++ {
		resp, err := c.client.SearchVacancies(ctx, hh.SearchParams{
			Text:    q.Text,
			Area:    q.Area,
			Page:    page,
			PerPage: q.PerPage,
		})
		if err != nil {
			return nil, fmt.Errorf("collector: page %d: %w", page, err)
		}

		for _, v := range resp.Items {
			items = append(items, normalize(v))
		}

		c.log.Debug("collected page",
			"page", page,
			"items", len(resp.Items),
			"total_pages", resp.Pages,
		)

		if resp.Pages > 0 && page+1 >= resp.Pages {
			break
		}
		c.sleep(q.Delay)
	}

	return items, nil
}

func normalize(v hh.Vacancy) domain.Vacancy {
	out := domain.Vacancy{
		ID:          v.ID,
		Name:        v.Name,
		Employer:    v.Employer.Name,
		Area:        v.Area.Name,
		PublishedAt: v.PublishedAt,
		URL:         v.AlternateURL,
		DetailURL:   v.URL,
	}

	if v.Salary != nil {
		out.Salary = &domain.Salary{
			From:     v.Salary.From,
			To:       v.Salary.To,
			Currency: v.Salary.Currency,
			Gross:    v.Salary.Gross,
		}
	}

	return out
}
