package dto

type IntegrationNode struct {
	ID          string `json:"id"`
	Environment struct {
		ID string `json:"id"`
	} `json:"environment"`
	IntegrationID string `json:"integrationId"`
}

type IntegrationEdge struct {
	Node IntegrationNode `json:"node"`
}

type IntegrationsData struct {
	Integrations struct {
		Edges []IntegrationEdge `json:"edges"`
	} `json:"integrations"`
}

type BillingPrice struct {
	ID              string  `json:"id"`
	Amount          float64 `json:"amount"`
	BillingPeriod   string  `json:"billingPeriod"`
	Usage           bool    `json:"usage"`
	ChargeModel     string  `json:"chargeModel"`
	DiscountPercent float64 `json:"discountPercent"`
}

type BillingPlan struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Active      bool           `json:"active"`
	Prices      []BillingPrice `json:"prices"`
}

type BillingProduct struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Plans       []BillingPlan `json:"plans"`
}

type BillingProductsData struct {
	BillingProducts *struct {
		Products []BillingProduct `json:"products"`
	} `json:"billingProducts"`
}
