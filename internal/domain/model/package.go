package model

import "github.com/shopspring/decimal"

type PackageType string

const (
	PackageTypePlan  PackageType = "Plan"
	PackageTypeAddon PackageType = "Addon"
)

type PackageStatus string

const (
	PackageStatusDraft     PackageStatus = "DRAFT"
	PackageStatusPublished PackageStatus = "PUBLISHED"
	PackageStatusArchived  PackageStatus = "ARCHIVED"
)

type PricingType string

const (
	PricingTypePaid   PricingType = "PAID"
	PricingTypeFree   PricingType = "FREE"
	PricingTypeCustom PricingType = "CUSTOM"
)

const (
	BillingPeriodMonthly  = "MONTHLY"
	BillingPeriodAnnually = "ANNUALLY"

	BillingModelFlatFee = "FLAT_FEE"

	BillingCadenceRecurring = "RECURRING"
	BillingCadenceOneOff    = "ONE_OFF"
)

type Money struct {
	Currency string
	Amount   decimal.Decimal
}

type Product struct {
	ID          string
	RefID       string
	DisplayName string
	Description string
	Metadata    map[string]string
}

type ProductInput struct {
	RefID       string
	DisplayName string
	Description string
	Metadata    map[string]string
}

type DraftSummary struct {
	Version int
}

// Draft is the result of creating a new draft version of a package.
type Draft struct {
	ID            string
	RefID         string
	VersionNumber int
}

type PackagePrice struct {
	ID             string
	BillingID      string
	BillingCadence string
	BillingModel   string
	BillingPeriod  string
	Price          Money
}

// Matches reports whether the existing package price is the same logical
// price as the mapped model period. Identity is the billing tuple, not the
// target assigned id.
func (p PackagePrice) Matches(m PriceModel, period PricePeriod) bool {
	return p.BillingID == m.BillingID &&
		p.BillingPeriod == period.BillingPeriod &&
		p.Price.Amount.Equal(period.Price.Amount) &&
		p.BillingModel == m.BillingModel &&
		p.BillingCadence == m.BillingCadence
}

// Package is a plan or add-on in the target catalog. A published package is
// immutable for pricing; price changes must land on a draft.
type Package struct {
	ID           string
	RefID        string
	DisplayName  string
	Description  string
	Status       PackageStatus
	Type         PackageType
	ProductID    string
	BillingID    string
	DraftSummary *DraftSummary
	Prices       []PackagePrice
	DraftID      string
}

type PackageInput struct {
	RefID       string
	DisplayName string
	Description string
	ProductID   string
	BillingID   string
	PricingType PricingType
	Status      PackageStatus
	Metadata    map[string]string
}

type PricePeriod struct {
	BillingPeriod string
	Price         Money
}

type PriceModel struct {
	BillingID      string
	BillingCadence string
	BillingModel   string
	PricePeriods   []PricePeriod
}

type PricingInput struct {
	PackageID           string
	PriceGroupBillingID string
	PricingType         PricingType
	Models              []PriceModel
}
