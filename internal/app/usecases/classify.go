package usecases

import (
	"strings"

	"zuora-catalog-importer/internal/domain/model"
)

var addonKeywords = []string{"addon", "add-on"}

func isAddonName(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range addonKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// splitAddonsAndPlans partitions each product's plans by the add-on name
// heuristic. A product appears in a bucket only when it has at least one plan
// of that kind, carrying just those plans; plans are the default bucket.
func splitAddonsAndPlans(products []model.SourceProduct) (addonProducts, planProducts []model.SourceProduct) {
	for _, product := range products {
		var addons, plans []model.SourcePlan
		for _, plan := range product.Plans {
			if isAddonName(plan.Name) {
				addons = append(addons, plan)
			} else {
				plans = append(plans, plan)
			}
		}
		if len(addons) > 0 {
			withAddons := product
			withAddons.Plans = addons
			addonProducts = append(addonProducts, withAddons)
		}
		if len(plans) > 0 || len(product.Plans) == 0 {
			withPlans := product
			withPlans.Plans = plans
			planProducts = append(planProducts, withPlans)
		}
	}
	return addonProducts, planProducts
}
