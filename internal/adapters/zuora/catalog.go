package zuora

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"zuora-catalog-importer/internal/adapters/zuora/dto"
	"zuora-catalog-importer/internal/domain/model"
	"zuora-catalog-importer/internal/infra/graphql"
	"zuora-catalog-importer/internal/logging"
)

// ErrIntegrationNotFound signals that no Zuora integration is configured for
// the environment. Fatal for the run.
var ErrIntegrationNotFound = errors.New("no zuora integration found for environment")

type CatalogService interface {
	FindIntegration(ctx context.Context, environmentID string) (model.Integration, error)
	BillingProducts(ctx context.Context, identifiers []string, integrationID string) ([]model.SourceProduct, error)
}

type Client struct {
	gql    *graphql.Client
	logger logging.LoggerService
}

func NewClient(gql *graphql.Client, logger logging.LoggerService) *Client {
	return &Client{
		gql:    gql,
		logger: logger,
	}
}

const integrationsQuery = `
query Integrations($filter: IntegrationFilter) {
	integrations(filter: $filter) {
		edges {
			node {
				environment { id }
				integrationId
				id
			}
		}
	}
}`

func (c *Client) FindIntegration(ctx context.Context, environmentID string) (model.Integration, error) {
	variables := map[string]any{
		"filter": map[string]any{
			"environmentId":    map[string]any{"eq": environmentID},
			"vendorIdentifier": map[string]any{"eq": "ZUORA"},
		},
	}

	var data dto.IntegrationsData
	if err := c.gql.Execute(ctx, integrationsQuery, variables, &data); err != nil {
		return model.Integration{}, fmt.Errorf("fetch zuora integration for environment %s: %w", environmentID, err)
	}
	if len(data.Integrations.Edges) == 0 {
		return model.Integration{}, fmt.Errorf("environment %s: %w", environmentID, ErrIntegrationNotFound)
	}

	node := data.Integrations.Edges[0].Node
	return model.Integration{
		ID:            node.ID,
		IntegrationID: node.IntegrationID,
		EnvironmentID: node.Environment.ID,
	}, nil
}

const billingProductsQuery = `
query BillingProducts($input: BillingProductsInput!) {
	billingProducts(input: $input) {
		products {
			id
			name
			description
			plans {
				id
				name
				description
				active
				prices {
					id
					amount
					billingPeriod
					usage
					chargeModel
					discountPercent
				}
			}
		}
	}
}`

// BillingProducts fetches the catalog for each configured product id or name.
// The upstream query takes a single identifier, so the list is fetched one by
// one and concatenated. An empty result is valid and means nothing to import.
func (c *Client) BillingProducts(ctx context.Context, identifiers []string, integrationID string) ([]model.SourceProduct, error) {
	var products []model.SourceProduct
	for _, identifier := range identifiers {
		variables := map[string]any{
			"input": map[string]any{
				"productNameOrId": identifier,
				"integrationId":   integrationID,
			},
		}

		var data dto.BillingProductsData
		if err := c.gql.Execute(ctx, billingProductsQuery, variables, &data); err != nil {
			return nil, fmt.Errorf("fetch billing products for %s: %w", identifier, err)
		}
		if data.BillingProducts == nil || len(data.BillingProducts.Products) == 0 {
			c.logger.LogWarning(fmt.Sprintf("No products found in Zuora for product id %s", identifier))
			continue
		}
		for _, product := range data.BillingProducts.Products {
			products = append(products, mapProduct(product))
		}
	}
	return products, nil
}

func mapProduct(d dto.BillingProduct) model.SourceProduct {
	plans := make([]model.SourcePlan, 0, len(d.Plans))
	for _, plan := range d.Plans {
		plans = append(plans, mapPlan(plan))
	}
	return model.SourceProduct{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Plans:       plans,
	}
}

func mapPlan(d dto.BillingPlan) model.SourcePlan {
	prices := make([]model.SourcePrice, 0, len(d.Prices))
	for _, price := range d.Prices {
		prices = append(prices, mapPrice(price))
	}
	return model.SourcePlan{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Active:      d.Active,
		Prices:      prices,
	}
}

func mapPrice(d dto.BillingPrice) model.SourcePrice {
	return model.SourcePrice{
		ID:              d.ID,
		Amount:          decimal.NewFromFloat(d.Amount),
		BillingPeriod:   d.BillingPeriod,
		Usage:           d.Usage,
		ChargeModel:     d.ChargeModel,
		DiscountPercent: decimal.NewFromFloat(d.DiscountPercent),
	}
}
