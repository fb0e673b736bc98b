package usecases

import (
	"context"
	"fmt"
	"strings"

	"zuora-catalog-importer/internal/domain/model"
)

// reconcilePrices maps the plan's source charges and applies them to the
// package when they differ from what the target already has. Price changes
// always land on a draft; a published package first gets its draft resolved.
func (s *CatalogImport) reconcilePrices(ctx context.Context, plan model.SourcePlan, pkg *model.Package) error {
	models := s.priceModelsFor(plan)
	if len(models) == 0 {
		s.logger.Log(fmt.Sprintf("No prices to set for package ref id %s", pkg.RefID))
		return nil
	}

	input := model.PricingInput{
		PackageID:           pkg.ID,
		PriceGroupBillingID: plan.ID,
		PricingType:         model.PricingTypePaid,
		Models:              models,
	}

	if !shouldSetPrices(input, pkg) {
		s.logger.Log(fmt.Sprintf(
			"Price with same models already exists for package ref id %s, skipping price update",
			pkg.RefID,
		))
		return nil
	}

	if s.cfg.DryRun {
		s.logger.Log("[Dry Run]: would set PRICE with input\n" + prettyJSON(input))
		return nil
	}

	draftID, err := s.resolveDraftID(ctx, pkg)
	if err != nil {
		return err
	}
	pkg.DraftID = draftID
	input.PackageID = draftID

	if err := s.prices.SetPackagePricing(ctx, input); err != nil {
		return err
	}
	s.logger.Log(fmt.Sprintf(
		"Set pricing for %s ref id %s on draft %s",
		strings.ToLower(string(pkg.Type)), pkg.RefID, draftID,
	))
	return nil
}

func (s *CatalogImport) priceModelsFor(plan model.SourcePlan) []model.PriceModel {
	discount := discountPercentage(plan)
	models := make([]model.PriceModel, 0, len(plan.Prices))
	for _, price := range plan.Prices {
		priceModel := priceModelFor(price, discount)
		if priceModel == nil {
			s.logger.LogWarning(fmt.Sprintf(
				"Skipping price %s: unsupported charge model %q", price.ID, price.ChargeModel,
			))
			continue
		}
		models = append(models, *priceModel)
	}
	return models
}

// shouldSetPrices reports whether any mapped price is missing from the
// package's existing prices. When every model already has a match the
// pricing mutation is skipped entirely.
func shouldSetPrices(input model.PricingInput, pkg *model.Package) bool {
	if len(pkg.Prices) == 0 {
		return true
	}
	for _, priceModel := range input.Models {
		for _, period := range priceModel.PricePeriods {
			if !hasMatchingPrice(pkg.Prices, priceModel, period) {
				return true
			}
		}
	}
	return false
}

func hasMatchingPrice(existing []model.PackagePrice, priceModel model.PriceModel, period model.PricePeriod) bool {
	for _, price := range existing {
		if price.Matches(priceModel, period) {
			return true
		}
	}
	return false
}

// resolveDraftID returns the mutable package version to price against: the
// package itself while still a draft, a freshly created draft when it has
// none, or the draft version named by its draft summary.
func (s *CatalogImport) resolveDraftID(ctx context.Context, pkg *model.Package) (string, error) {
	if pkg.Status == model.PackageStatusDraft {
		return pkg.ID, nil
	}

	if pkg.DraftSummary == nil {
		draft, err := s.packages.CreatePackageDraft(ctx, pkg.Type, pkg.ID)
		if err != nil {
			return "", err
		}
		return draft.ID, nil
	}

	version := pkg.DraftSummary.Version
	draftPkg, err := s.packages.FindPackage(ctx, pkg.Type, pkg.RefID, pkg.ProductID, &version, false)
	if err != nil {
		return "", err
	}
	if draftPkg == nil || draftPkg.ID == "" {
		return "", fmt.Errorf(
			"no draft found for %s with ref id %s at version %d",
			strings.ToLower(string(pkg.Type)), pkg.RefID, version,
		)
	}
	return draftPkg.ID, nil
}
