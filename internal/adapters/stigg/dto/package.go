package dto

type MoneyNode struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

type PriceNode struct {
	ID             string    `json:"id"`
	BillingCadence string    `json:"billingCadence"`
	BillingID      string    `json:"billingId"`
	BillingModel   string    `json:"billingModel"`
	BillingPeriod  string    `json:"billingPeriod"`
	Price          MoneyNode `json:"price"`
}

type DraftSummaryNode struct {
	Version int `json:"version"`
}

type PackageNode struct {
	ID           string            `json:"id"`
	RefID        string            `json:"refId"`
	DisplayName  string            `json:"displayName"`
	Description  string            `json:"description"`
	Status       string            `json:"status"`
	ProductID    string            `json:"productId"`
	BillingID    string            `json:"billingId,omitempty"`
	DraftSummary *DraftSummaryNode `json:"draftSummary,omitempty"`
	Prices       []PriceNode       `json:"prices,omitempty"`
}

type PackageEdge struct {
	Node PackageNode `json:"node"`
}

type PackageConnection struct {
	Edges []PackageEdge `json:"edges"`
}

// Query and mutation payloads are decoded per concrete type so that the
// plan/addon response variants resolve by explicit matching.

type PlansQueryData struct {
	Plans PackageConnection `json:"plans"`
}

type AddonsQueryData struct {
	Addons PackageConnection `json:"addons"`
}

type CreateOnePlanData struct {
	CreateOnePlan *PackageNode `json:"createOnePlan"`
}

type CreateOneAddonData struct {
	CreateOneAddon *PackageNode `json:"createOneAddon"`
}

type UpdateOnePlanData struct {
	UpdateOnePlan *PackageNode `json:"updateOnePlan"`
}

type UpdateOneAddonData struct {
	UpdateOneAddon *PackageNode `json:"updateOneAddon"`
}

type DraftNode struct {
	ID            string `json:"id"`
	RefID         string `json:"refId"`
	VersionNumber int    `json:"versionNumber"`
}

type CreatePlanDraftData struct {
	CreatePlanDraft *DraftNode `json:"createPlanDraft"`
}

type CreateAddonDraftData struct {
	CreateAddonDraft *DraftNode `json:"createAddonDraft"`
}

type PublishResultNode struct {
	TaskID *string `json:"taskId"`
}

type PublishPlanData struct {
	PublishPlan *PublishResultNode `json:"publishPlan"`
}

type PublishAddonData struct {
	PublishAddon *PublishResultNode `json:"publishAddon"`
}

type SetPackagePricingData struct {
	SetPackagePricing *struct {
		PackageID   string `json:"packageId"`
		PricingType string `json:"pricingType"`
	} `json:"setPackagePricing"`
}

type AddCompatibleAddonsToPlanData struct {
	AddCompatibleAddonsToPlan *struct {
		ID string `json:"id"`
	} `json:"addCompatibleAddonsToPlan"`
}
