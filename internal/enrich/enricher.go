// Package enrich augments collected vacancies with detail-endpoint
// fields. Failures are isolated per item; a batch never aborts.
package enrich

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/domain"
	"github.com/DmitryGritzuk/hh-vacancy-parser/pkg/hh"
	"github.com/DmitryGritzuk/hh-vacancy-parser/pkg/logging"
)

// The detail endpoint is more sensitive to bursts than search, so the
// inter-item pause never drops below this floor.
const minDelay = 200 * time.Millisecond

// snippetLimit bounds the description snippet, in runes. The API
// returns full HTML descriptions; only a short plain prefix is kept.
const snippetLimit = 300

// DetailFetcher describes the subset of the hh client used here.
type DetailFetcher interface {
	VacancyDetails(ctx context.Context, rawURL string) (hh.VacancyDetails, error)
}

// Enricher fetches details item by item.
type Enricher struct {
	client DetailFetcher
	sleep  func(time.Duration)
	log    *logging.Logger
}

// Option configures Enricher
type Option func(*Enricher)

// WithSleep replaces the inter-item sleep, for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(e *Enricher) {
		e.sleep = sleep
	}
}

// New builds an Enricher
func New(client DetailFetcher, log *logging.Logger, opts ...Option) (*Enricher, error) {
	if client == nil {
		return nil, fmt.Errorf("enrich: client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("enrich: logger is required")
	}

	e := &Enricher{
		client: client,
		sleep:  time.Sleep,
		log:    log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Enrich returns one record per input vacancy, in input order. Items
// without a detail URL pass through with zero Details. When a detail
// fetch fails the record keeps zero Details and the batch continues.
func (e *Enricher) Enrich(ctx context.Context, items []domain.Vacancy, delay time.Duration) []domain.Record {
	if delay < minDelay {
		delay = minDelay
	}

	records := make([]domain.Record, 0, len(items))
	for _, v := range items {
		if v.DetailURL == "" {
			records = append(records, domain.Record{Vacancy: v})
			continue
		}

		record := domain.Record{Vacancy: v}
		details, err := e.client.VacancyDetails(ctx, v.DetailURL)
		if err != nil {
			e.log.Warn("detail fetch failed, keeping empty fields",
				"vacancy_id", v.ID,
				"err", err,
			)
		} else {
			record.Details = flatten(details)
		}

		records = append(records, record)
		e.sleep(delay)
	}

	return records
}

func flatten(d hh.VacancyDetails) domain.Details {
	skills := make([]string, 0, len(d.KeySkills))
	for _, s := range d.KeySkills {
		if s.Name != "" {
			skills = append(skills, s.Name)
		}
	}

	return domain.Details{
		Experience:  d.Experience.Name,
		Schedule:    d.Schedule.Name,
		Employment:  d.Employment.Name,
		KeySkills:   strings.Join(skills, ", "),
		Description: snippet(d.Description),
	}
}

// snippet collapses whitespace runs to single spaces and truncates to
// snippetLimit runes.
func snippet(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > snippetLimit {
		return string(runes[:snippetLimit])
	}
	return s
}
