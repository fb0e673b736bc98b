package model

import "github.com/shopspring/decimal"

// Source side catalog records, as surfaced by the Zuora billing integration.

type SourceProduct struct {
	ID          string
	Name        string
	Description string
	Plans       []SourcePlan
}

type SourcePlan struct {
	ID          string
	Name        string
	Description string
	Active      bool
	Prices      []SourcePrice
}

type SourcePrice struct {
	ID              string
	Amount          decimal.Decimal
	BillingPeriod   string
	Usage           bool
	ChargeModel     string
	DiscountPercent decimal.Decimal
}

// Integration is the handle of the Zuora integration configured for an
// environment.
type Integration struct {
	ID            string
	IntegrationID string
	EnvironmentID string
}
