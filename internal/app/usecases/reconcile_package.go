package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"zuora-catalog-importer/internal/domain/model"
)

func buildPackageInput(pkgType model.PackageType, plan model.SourcePlan, productID, sourceProductID string) model.PackageInput {
	metadata := map[string]string{
		"ZUORA__SYNC_SKIP_UPDATE": "true",
	}
	if discount := discountPercentage(plan); discount.GreaterThan(decimal.Zero) {
		metadata["ZUORA__DISCOUNT_PERCENTAGE"] = discount.String()
	}

	// Add-ons are always paid; a plan without a single positive amount is
	// free.
	pricingType := model.PricingTypePaid
	if pkgType == model.PackageTypePlan && !planHasPaidPrice(plan) {
		pricingType = model.PricingTypeFree
	}

	return model.PackageInput{
		RefID:       composeRefID(plan.Name, plan.ID),
		DisplayName: plan.Name,
		Description: plan.Description,
		ProductID:   productID,
		BillingID:   sourceProductID,
		PricingType: pricingType,
		Status:      model.PackageStatusDraft,
		Metadata:    metadata,
	}
}

// fetchOrCreatePackage reconciles one plan or add-on: query the latest
// version by ref id and product, create a draft package when absent,
// otherwise update it in place when update mode is on and fields drifted.
func (s *CatalogImport) fetchOrCreatePackage(ctx context.Context, pkgType model.PackageType, plan model.SourcePlan, productID, sourceProductID string) (*model.Package, error) {
	input := buildPackageInput(pkgType, plan, productID, sourceProductID)

	existing, err := s.packages.FindPackage(ctx, pkgType, input.RefID, productID, nil, true)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		s.logger.Log(fmt.Sprintf(
			"%s%s already exists with ref id %s, proceeding to add prices",
			s.dryRunPrefix(), pkgType, existing.RefID,
		))
		updated, err := s.updatePackageIfNeeded(ctx, pkgType, existing, input)
		if err != nil {
			return nil, err
		}
		if updated != nil {
			return updated, nil
		}
		return existing, nil
	}

	if s.cfg.DryRun {
		s.logger.Log(fmt.Sprintf(
			"[Dry Run]: would create %s with input\n%s",
			strings.ToUpper(string(pkgType)), prettyJSON(input),
		))
		return &model.Package{
			ID:          "dry-run-" + uuid.NewString(),
			RefID:       input.RefID,
			DisplayName: input.DisplayName,
			Description: input.Description,
			Status:      model.PackageStatusDraft,
			Type:        pkgType,
			ProductID:   productID,
			Prices:      []model.PackagePrice{},
		}, nil
	}

	created, err := s.packages.CreatePackage(ctx, pkgType, input)
	if err != nil {
		return nil, err
	}
	s.logger.Log(fmt.Sprintf("Created %s %s with id %s", strings.ToLower(string(pkgType)), created.DisplayName, created.ID))
	return created, nil
}

func (s *CatalogImport) updatePackageIfNeeded(ctx context.Context, pkgType model.PackageType, existing *model.Package, input model.PackageInput) (*model.Package, error) {
	if !s.cfg.Update {
		return nil, nil
	}

	needsUpdate := existing.DisplayName != input.DisplayName ||
		existing.Description != input.Description ||
		existing.BillingID != input.BillingID
	if !needsUpdate {
		s.logger.Log(fmt.Sprintf("No updates needed for %s with ref id %s", strings.ToLower(string(pkgType)), existing.RefID))
		return nil, nil
	}

	if s.cfg.DryRun {
		s.logger.Log(fmt.Sprintf(
			"[Dry Run]: would update %s with input\n%s",
			strings.ToUpper(string(pkgType)), prettyJSON(input),
		))
		return nil, nil
	}

	s.logger.Log(fmt.Sprintf("Updating %s with ref id %s", strings.ToLower(string(pkgType)), existing.RefID))
	return s.packages.UpdatePackage(ctx, pkgType, existing.ID, input)
}
