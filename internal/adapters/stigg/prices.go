package stigg

import (
	"context"
	"errors"

	"zuora-catalog-importer/internal/adapters/stigg/dto"
	"zuora-catalog-importer/internal/domain/model"
)

type PriceService interface {
	SetPackagePricing(ctx context.Context, input model.PricingInput) error
}

const setPackagePricingMutation = `
mutation SetPackagePricing($input: PackagePricingInput!) {
	setPackagePricing(input: $input) {
		packageId
		pricingType
	}
}`

func (c *Client) SetPackagePricing(ctx context.Context, input model.PricingInput) error {
	models := make([]map[string]any, 0, len(input.Models))
	for _, priceModel := range input.Models {
		periods := make([]map[string]any, 0, len(priceModel.PricePeriods))
		for _, period := range priceModel.PricePeriods {
			periods = append(periods, map[string]any{
				"billingPeriod": period.BillingPeriod,
				"price": map[string]any{
					"amount":   period.Price.Amount.InexactFloat64(),
					"currency": period.Price.Currency,
				},
			})
		}
		models = append(models, map[string]any{
			"billingId":      priceModel.BillingID,
			"billingCadence": priceModel.BillingCadence,
			"billingModel":   priceModel.BillingModel,
			"pricePeriods":   periods,
		})
	}

	variables := map[string]any{
		"input": map[string]any{
			"environmentId":              c.environmentID,
			"packageId":                  input.PackageID,
			"priceGroupPackageBillingId": input.PriceGroupBillingID,
			"pricingModels":              models,
			"pricingType":                string(input.PricingType),
		},
	}

	var data dto.SetPackagePricingData
	if err := c.gql.Execute(ctx, setPackagePricingMutation, variables, &data); err != nil {
		return newAPIError("Price", input.PackageID, err)
	}
	if data.SetPackagePricing == nil {
		return newAPIError("Price", input.PackageID, errors.New("pricing mutation returned empty payload"))
	}
	return nil
}
