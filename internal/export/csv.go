// Package export writes collected records to a CSV file that common
// spreadsheet tools open with correct encoding detection.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/domain"
)

// utf8BOM makes Excel and friends auto-detect UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var baseHeader = []string{
	"name",
	"employer",
	"salary",
	"area",
	"published_at",
	"hh_url",
	"query_text",
	"area_id",
	"collected_at",
}

var detailsHeader = []string{
	"experience_name",
	"schedule_name",
	"employment_name",
	"key_skills",
	"description_snippet",
}

// Meta is query metadata echoed into every row.
type Meta struct {
	QueryText   string
	AreaID      string
	CollectedAt time.Time
}

// Header returns the column set for the given mode.
func Header(includeDetails bool) []string {
	header := make([]string, 0, len(baseHeader)+len(detailsHeader))
	header = append(header, baseHeader...)
	if includeDetails {
		header = append(header, detailsHeader...)
	}
	return header
}

// WriteCSV writes a header row and one row per record. Missing source
// fields render as empty strings.
func WriteCSV(path string, records []domain.Record, includeDetails bool, meta Meta) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	if _, err := f.Write(utf8BOM); err != nil {
		return fmt.Errorf("export: write BOM: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(Header(includeDetails)); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	collectedAt := meta.CollectedAt.Format("2006-01-02T15:04:05")
	for _, r := range records {
		row := []string{
			r.Vacancy.Name,
			r.Vacancy.Employer,
			domain.FormatSalary(r.Vacancy.Salary),
			r.Vacancy.Area,
			r.Vacancy.PublishedAt,
			r.Vacancy.URL,
			meta.QueryText,
			meta.AreaID,
			collectedAt,
		}
		if includeDetails {
			row = append(row,
				r.Details.Experience,
				r.Details.Schedule,
				r.Details.Employment,
				r.Details.KeySkills,
				r.Details.Description,
			)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("export: write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("export: flush: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", path, err)
	}
	return nil
}
