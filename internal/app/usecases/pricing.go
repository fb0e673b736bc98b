package usecases

import (
	"strings"

	"github.com/shopspring/decimal"

	"zuora-catalog-importer/internal/domain/model"
)

const (
	chargeModelFlatFee  = "flat_fee"
	chargeModelDiscount = "discount_percentage"

	priceCurrency = "USD"
)

var oneHundred = decimal.NewFromInt(100)

// discountPercentage returns the plan level discount carried by a
// discount_percentage charge, or zero when the plan has none. The discount
// charge itself never becomes a target price; it scales every other price.
func discountPercentage(plan model.SourcePlan) decimal.Decimal {
	for _, price := range plan.Prices {
		if strings.EqualFold(price.ChargeModel, chargeModelDiscount) {
			return price.DiscountPercent
		}
	}
	return decimal.Zero
}

// priceModelFor maps one source charge to the target price model shape. It
// returns nil for any charge model other than flat fee; unsupported charges
// are skipped, never errors.
func priceModelFor(price model.SourcePrice, discount decimal.Decimal) *model.PriceModel {
	if !strings.EqualFold(price.ChargeModel, chargeModelFlatFee) {
		return nil
	}

	discountedAmount := price.Amount.Mul(oneHundred.Sub(discount)).Div(oneHundred)

	return &model.PriceModel{
		BillingID:      price.ID,
		BillingCadence: model.BillingCadenceRecurring,
		BillingModel:   model.BillingModelFlatFee,
		PricePeriods: []model.PricePeriod{
			{
				BillingPeriod: price.BillingPeriod,
				Price: model.Money{
					Amount:   discountedAmount,
					Currency: priceCurrency,
				},
			},
		},
	}
}

// planHasPaidPrice reports whether any charge on the plan carries a positive
// amount.
func planHasPaidPrice(plan model.SourcePlan) bool {
	for _, price := range plan.Prices {
		if price.Amount.GreaterThan(decimal.Zero) {
			return true
		}
	}
	return false
}
