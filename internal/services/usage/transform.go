// Package usage queries the upstream data-usage API and normalizes its
// responses into dashboard summaries.
package usage

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/oscarfp-dev/starlink-usage-dashboard/internal/models"
)

// ErrNoResults is returned when the upstream response carries no
// result entry for the queried service line.
var ErrNoResults = errors.New("usage response has no results")

// rollingWindowDays is the size of the cross-cycle usage window.
const rollingWindowDays = 30

// round2 rounds half away from zero to 2 decimal places. Values with
// exact .xx5 fractions are subject to the usual binary-float
// artifacts; callers rely on that staying consistent.
func round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// dateOnly truncates an ISO-8601 timestamp to its YYYY-MM-DD prefix.
// The calendar date is not revalidated.
func dateOnly(iso string) string {
	if len(iso) > 10 {
		return iso[:10]
	}
	return iso
}

// normalizeDaily coerces one upstream daily entry into a DailyRow.
// Missing and null numeric fields count as 0.
func normalizeDaily(d models.APIDailyUsage) models.DailyRow {
	priority := float64(d.PriorityGB)
	standard := float64(d.StandardGB)
	nonBillable := float64(d.NonBillableGB)

	return models.DailyRow{
		Date:          dateOnly(d.Date),
		PriorityGB:    round2(priority),
		StandardGB:    round2(standard),
		NonBillableGB: round2(nonBillable),
		TotalGB:       round2(priority + standard + nonBillable),
	}
}

// summarizeDaily aggregates a slice of daily rows: rounded total,
// average over at least one day, and the first peak day.
func summarizeDaily(daily []models.DailyRow) models.WindowSummary {
	var sum float64
	for _, r := range daily {
		sum += r.TotalGB
	}
	totalGB := round2(sum)

	days := len(daily)
	if days < 1 {
		days = 1
	}
	avgPerDayGB := round2(totalGB / float64(days))

	var peakDayGB float64
	var peakDayDate *string
	for i := range daily {
		if daily[i].TotalGB > peakDayGB {
			peakDayGB = daily[i].TotalGB
			peakDayDate = &daily[i].Date
		}
	}

	return models.WindowSummary{
		TotalGB:     totalGB,
		AvgPerDayGB: avgPerDayGB,
		PeakDayGB:   round2(peakDayGB),
		PeakDayDate: peakDayDate,
		Daily:       daily,
	}
}

// pickOverage extracts overage info from the first overage line, if any.
func pickOverage(cycle models.APIBillingCycle) *models.Overage {
	if len(cycle.OverageLines) == 0 {
		return nil
	}
	line := cycle.OverageLines[0]
	return &models.Overage{
		PricePerGB:      line.PricePerGB,
		OverageAmountGB: line.OverageAmountGB,
		OveragePrice:    line.OveragePrice,
		ProductID:       line.ProductID,
	}
}

// buildCycleSummary normalizes one billing cycle.
func buildCycleSummary(cycle models.APIBillingCycle) models.CycleSummary {
	daily := make([]models.DailyRow, 0, len(cycle.DailyDataUsage))
	for _, d := range cycle.DailyDataUsage {
		daily = append(daily, normalizeDaily(d))
	}
	w := summarizeDaily(daily)

	return models.CycleSummary{
		StartDate:          cycle.StartDate,
		EndDate:            cycle.EndDate,
		TotalPriorityGB:    float64(cycle.TotalPriorityGB),
		TotalStandardGB:    float64(cycle.TotalStandardGB),
		TotalNonBillableGB: float64(cycle.TotalNonBillableGB),
		TotalGB:            w.TotalGB,
		AvgPerDayGB:        w.AvgPerDayGB,
		PeakDayGB:          w.PeakDayGB,
		PeakDayDate:        w.PeakDayDate,
		Overage:            pickOverage(cycle),
		Daily:              daily,
	}
}

// parseBoundary parses a cycle boundary as a date-time, accepting
// plain dates too. The second return is false when the value cannot be
// parsed, in which case the cycle never matches "now".
func parseBoundary(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// findCurrentCycle returns the index of the first cycle whose
// half-open [start, end) interval contains now, or -1. A boundary
// exactly at now belongs to the cycle that starts there, not the one
// that ends.
func findCurrentCycle(cycles []models.APIBillingCycle, now time.Time) int {
	for i, c := range cycles {
		start, okS := parseBoundary(c.StartDate)
		end, okE := parseBoundary(c.EndDate)
		if !okS || !okE {
			continue
		}
		if !now.Before(start) && now.Before(end) {
			return i
		}
	}
	return -1
}

// BuildDashboard converts one upstream query response into a Dashboard
// as of the given instant. Cycle order is taken from upstream as-is;
// the previous cycle is the one immediately before the current one by
// index.
func BuildDashboard(resp *models.UsageResponse, now time.Time) (*models.Dashboard, error) {
	if resp == nil || len(resp.Content.Results) == 0 {
		return nil, ErrNoResults
	}
	item := resp.Content.Results[0]

	summaries := make([]models.CycleSummary, 0, len(item.BillingCycles))
	for _, c := range item.BillingCycles {
		summaries = append(summaries, buildCycleSummary(c))
	}

	currentIdx := findCurrentCycle(item.BillingCycles, now)

	var current, previous *models.CycleSummary
	if currentIdx >= 0 {
		current = &summaries[currentIdx]
	}
	if currentIdx > 0 {
		previous = &summaries[currentIdx-1]
	}

	// Pool all daily rows across cycles for the rolling window. The
	// lexicographic sort is correct because dates are normalized to
	// YYYY-MM-DD.
	var allDaily []models.DailyRow
	for i := range summaries {
		allDaily = append(allDaily, summaries[i].Daily...)
	}
	sort.SliceStable(allDaily, func(i, j int) bool {
		return allDaily[i].Date < allDaily[j].Date
	})
	if len(allDaily) > rollingWindowDays {
		allDaily = allDaily[len(allDaily)-rollingWindowDays:]
	}
	last30 := summarizeDaily(allDaily)

	cycles := make([]models.CycleRange, 0, len(summaries))
	for _, s := range summaries {
		cycles = append(cycles, models.CycleRange{StartDate: s.StartDate, EndDate: s.EndDate})
	}

	return &models.Dashboard{
		ServiceLineNumber: item.ServiceLineNumber,
		AccountNumber:     item.AccountNumber,
		LastUpdated:       item.LastUpdated,
		CurrentCycle:      current,
		PreviousCycle:     previous,
		Last30Days:        last30,
		Cycles:            cycles,
	}, nil
}
