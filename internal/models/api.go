// Package models defines data structures and domain types.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// FlexFloat decodes a JSON value that the upstream API sends
// inconsistently as a number, a numeric string, or null. Missing,
// null, and unparseable values all decode to 0.
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// APIDailyUsage is one daily usage entry as returned by the upstream
// data-usage query.
type APIDailyUsage struct {
	Date          string    `json:"date"`
	PriorityGB    FlexFloat `json:"priorityGB"`
	StandardGB    FlexFloat `json:"standardGB"`
	NonBillableGB FlexFloat `json:"nonBillableGB"`
}

// APIOverageLine is one overage line item of a billing cycle.
type APIOverageLine struct {
	PricePerGB      *float64 `json:"pricePerGB"`
	OverageAmountGB *float64 `json:"overageAmountGB"`
	OveragePrice    *float64 `json:"overagePrice"`
	ProductID       *string  `json:"productId"`
}

// APIBillingCycle is one billing cycle entry of the upstream response.
type APIBillingCycle struct {
	StartDate          string           `json:"startDate"`
	EndDate            string           `json:"endDate"`
	DailyDataUsage     []APIDailyUsage  `json:"dailyDataUsage"`
	OverageLines       []APIOverageLine `json:"overageLines"`
	TotalPriorityGB    FlexFloat        `json:"totalPriorityGB"`
	TotalStandardGB    FlexFloat        `json:"totalStandardGB"`
	TotalNonBillableGB FlexFloat        `json:"totalNonBillableGB"`
}

// APIResultItem is one service line's result entry.
type APIResultItem struct {
	ServiceLineNumber string            `json:"serviceLineNumber"`
	AccountNumber     string            `json:"accountNumber"`
	LastUpdated       string            `json:"lastUpdated"`
	BillingCycles     []APIBillingCycle `json:"billingCycles"`
}

// UsageResponse is the envelope of the upstream data-usage query.
type UsageResponse struct {
	Content struct {
		Results []APIResultItem `json:"results"`
	} `json:"content"`
}
