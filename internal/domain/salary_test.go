package domain_test

import (
	"testing"

	"github.com/DmitryGritzuk/hh-vacancy-parser/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestFormatSalary_Nil(t *testing.T) {
	if got := domain.FormatSalary(nil); got != "" {
		t.Errorf("FormatSalary(nil) = %q, want empty string", got)
	}
}

func TestFormatSalary_BothBoundsAbsent(t *testing.T) {
	s := &domain.Salary{Currency: "RUR"}
	if got := domain.FormatSalary(s); got != "" {
		t.Errorf("FormatSalary(no bounds) = %q, want empty string", got)
	}
}

func TestFormatSalary_Ranges(t *testing.T) {
	cases := []struct {
		name   string
		salary domain.Salary
		want   string
	}{
		{
			name:   "lower bound only, net",
			salary: domain.Salary{From: intPtr(100), Currency: "RUR"},
			want:   "от 100 RUR (net)",
		},
		{
			name:   "upper bound only, gross",
			salary: domain.Salary{To: intPtr(200), Currency: "RUR", Gross: true},
			want:   "до 200 RUR (gross)",
		},
		{
			name:   "both bounds",
			salary: domain.Salary{From: intPtr(100), To: intPtr(200), Currency: "USD"},
			want:   "100–200 USD (net)",
		},
		{
			name:   "missing currency",
			salary: domain.Salary{From: intPtr(50000)},
			want:   "от 50000  (net)",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := domain.FormatSalary(&c.salary); got != c.want {
				t.Errorf("FormatSalary() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestFormatSalary_Idempotent(t *testing.T) {
	s := &domain.Salary{From: intPtr(100), To: intPtr(200), Currency: "USD"}
	first := domain.FormatSalary(s)
	second := domain.FormatSalary(s)
	if first != second {
		t.Errorf("FormatSalary not idempotent: %q vs %q", first, second)
	}
}
