// Package models defines data structures and domain types.
package models

// DailyRow represents normalized usage for a single calendar day.
// Date is date-only ("YYYY-MM-DD"); TotalGB is always the rounded sum
// of the three categories.
type DailyRow struct {
	Date          string  `json:"date"`
	PriorityGB    float64 `json:"priorityGB"`
	StandardGB    float64 `json:"standardGB"`
	NonBillableGB float64 `json:"nonBillableGB"`
	TotalGB       float64 `json:"totalGB"`
}

// Overage holds the overage pricing info attached to a billing cycle.
type Overage struct {
	PricePerGB      *float64 `json:"pricePerGB"`
	OverageAmountGB *float64 `json:"overageAmountGB"`
	OveragePrice    *float64 `json:"overagePrice"`
	ProductID       *string  `json:"productId,omitempty"`
}

// CycleSummary aggregates usage over one billing cycle. The cycle
// interval is half-open: [StartDate, EndDate).
type CycleSummary struct {
	StartDate          string     `json:"startDate"`
	EndDate            string     `json:"endDate"`
	TotalPriorityGB    float64    `json:"totalPriorityGB"`
	TotalStandardGB    float64    `json:"totalStandardGB"`
	TotalNonBillableGB float64    `json:"totalNonBillableGB"`
	TotalGB            float64    `json:"totalGB"`
	AvgPerDayGB        float64    `json:"avgPerDayGB"`
	PeakDayGB          float64    `json:"peakDayGB"`
	PeakDayDate        *string    `json:"peakDayDate"`
	Overage            *Overage   `json:"overage,omitempty"`
	Daily              []DailyRow `json:"daily"`
}

// WindowSummary aggregates a rolling slice of daily rows, independent
// of billing-cycle boundaries.
type WindowSummary struct {
	TotalGB     float64    `json:"totalGB"`
	AvgPerDayGB float64    `json:"avgPerDayGB"`
	PeakDayGB   float64    `json:"peakDayGB"`
	PeakDayDate *string    `json:"peakDayDate"`
	Daily       []DailyRow `json:"daily"`
}

// CycleRange is a billing cycle's date window, for display.
type CycleRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Dashboard is the fixed-shape result of one usage query. It is built
// fresh per query and never mutated afterwards.
type Dashboard struct {
	ServiceLineNumber string        `json:"serviceLineNumber"`
	AccountNumber     string        `json:"accountNumber"`
	LastUpdated       string        `json:"lastUpdated"`
	CurrentCycle      *CycleSummary `json:"currentCycle"`
	PreviousCycle     *CycleSummary `json:"previousCycle"`
	Last30Days        WindowSummary `json:"last30Days"`
	Cycles            []CycleRange  `json:"cycles"`
}
