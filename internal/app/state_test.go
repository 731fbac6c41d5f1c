package app

import (
	"testing"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
)

func TestStateSetDashboard(t *testing.T) {
	s := NewState()
	s.SetLoading(true)

	fetched := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
	d := &models.Dashboard{ServiceLineNumber: "SL-1234567"}
	s.SetDashboard("SL-1234567", d, fetched)

	if s.Dashboard() != d {
		t.Error("Dashboard() should return the stored dashboard")
	}
	if s.ServiceLine() != "SL-1234567" {
		t.Errorf("ServiceLine() = %q", s.ServiceLine())
	}
	if !s.FetchedAt().Equal(fetched) {
		t.Errorf("FetchedAt() = %v, want %v", s.FetchedAt(), fetched)
	}
	if s.Loading() {
		t.Error("Loading() should be false after a result lands")
	}
	if s.Error() != "" {
		t.Errorf("Error() = %q, want empty", s.Error())
	}
}

func TestStateSetErrorDiscardsDashboard(t *testing.T) {
	s := NewState()
	s.SetDashboard("SL-1234567", &models.Dashboard{}, time.Now())

	s.SetError("upstream returned 500")

	if s.Dashboard() != nil {
		t.Error("Dashboard() should be nil after an error")
	}
	if s.Error() != "upstream returned 500" {
		t.Errorf("Error() = %q", s.Error())
	}
}

func TestStateLoadingClearsError(t *testing.T) {
	s := NewState()
	s.SetError("boom")

	s.SetLoading(true)

	if !s.Loading() {
		t.Error("Loading() should be true")
	}
	if s.Error() != "" {
		t.Errorf("Error() = %q, want empty while loading", s.Error())
	}
}

func TestCanQuery(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"Empty", "", false},
		{"TooShort", "SL-123", false},
		{"ExactMinimum", "SL-1234", true},
		{"FullNumber", "SL-1234567-89012-34", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanQuery(tt.input); got != tt.want {
				t.Errorf("CanQuery(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
