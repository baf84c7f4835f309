// Package config parses CLI flags and environment variables and
// normalizes numeric bounds before anything touches the network.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for one parser run
type Config struct {
	Text      string
	Area      string // hh.ru area id; empty means no region filter
	Pages     int
	PerPage   int
	Delay     time.Duration
	Out       string
	Details   bool
	Timestamp bool

	LogLevel string
	HH       struct {
		BaseURL   string
		UserAgent string
	}
}

// Load parses args (without the program name) and environment
// variables into a validated Config. Out-of-range numeric flags are
// clamped, not rejected; an empty --text is the only hard failure.
func Load(args []string) (Config, error) {
	// .env is optional; missing file is not an error.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("hh-vacancy-parser", flag.ContinueOnError)

	text := fs.String("text", "", `search query, e.g. "python junior"`)
	area := fs.String("area", "", "area id, e.g. 1=Moscow, 2=SPb; empty = no filter")
	pages := fs.Int("pages", 2, "how many pages to fetch (0..pages-1)")
	perPage := fs.Int("per-page", 50, "vacancies per page (1..100)")
	delay := fs.Float64("delay", 0.3, "pause between requests, seconds")
	out := fs.String("out", "vacancies.csv", "output CSV file name")
	details := fs.Bool("details", false, "fetch details for every vacancy (slower)")
	timestamp := fs.Bool("timestamp", false, "append a timestamp to the file name")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Text:      strings.TrimSpace(*text),
		Area:      strings.TrimSpace(*area),
		Pages:     max(1, *pages),
		PerPage:   clamp(*perPage, 1, 100),
		Delay:     time.Duration(max(0, *delay) * float64(time.Second)),
		Out:       *out,
		Details:   *details,
		Timestamp: *timestamp,
		LogLevel:  "info",
	}

	if cfg.Text == "" {
		return Config{}, fmt.Errorf("--text is empty")
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	cfg.HH.BaseURL = os.Getenv("HH_BASE_URL")
	cfg.HH.UserAgent = os.Getenv("HH_USER_AGENT")

	return cfg, nil
}

// OutputPath derives the output file name, inserting a _YYYYmmdd_HHMMSS
// suffix before the .csv extension when timestamping is on.
func (c Config) OutputPath(now time.Time) string {
	out := c.Out
	if !c.Timestamp {
		return out
	}

	ts := now.Format("20060102_150405")
	if strings.HasSuffix(strings.ToLower(out), ".csv") {
		return out[:len(out)-4] + "_" + ts + ".csv"
	}
	return out + "_" + ts + ".csv"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
