package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"zuora-catalog-importer/internal/adapters/stigg"
	"zuora-catalog-importer/internal/adapters/zuora"
	"zuora-catalog-importer/internal/config"
	"zuora-catalog-importer/internal/domain/model"
	"zuora-catalog-importer/internal/logging"
)

type CatalogImportService interface {
	Run(ctx context.Context) error
}

// CatalogImport drives the one-shot import: fetch the source catalog, split
// add-ons from regular plans, reconcile products, packages and prices against
// the target, then optionally link and publish.
type CatalogImport struct {
	cfg      config.ImportConfig
	source   zuora.CatalogService
	products stigg.ProductService
	packages stigg.PackageService
	prices   stigg.PriceService
	addons   stigg.AddonService
	logger   logging.LoggerService
}

func NewCatalogImport(
	cfg config.ImportConfig,
	source zuora.CatalogService,
	products stigg.ProductService,
	packages stigg.PackageService,
	prices stigg.PriceService,
	addons stigg.AddonService,
	logger logging.LoggerService,
) *CatalogImport {
	return &CatalogImport{
		cfg:      cfg,
		source:   source,
		products: products,
		packages: packages,
		prices:   prices,
		addons:   addons,
		logger:   logger,
	}
}

func (s *CatalogImport) Run(ctx context.Context) error {
	s.logger.Log("Catalog import started")

	integration, err := s.source.FindIntegration(ctx, s.cfg.EnvironmentID)
	if err != nil {
		s.logger.LogError("Error fetching Zuora integration", err)
		return err
	}

	products, err := s.source.BillingProducts(ctx, s.cfg.ProductIDs, integration.ID)
	if err != nil {
		s.logger.LogError("Error fetching products from Zuora", err)
		return err
	}
	if len(products) == 0 {
		s.logger.LogWarning("No products found in Zuora for the given product ids")
		return nil
	}

	addonProducts, planProducts := splitAddonsAndPlans(products)

	// Add-ons go first: they must exist and publish before the plans that
	// get linked to them.
	addons, err := s.importPackages(ctx, addonProducts, model.PackageTypeAddon)
	if err != nil {
		return err
	}
	if err := s.publishPackages(ctx, addons); err != nil {
		return err
	}

	plans, err := s.importPackages(ctx, planProducts, model.PackageTypePlan)
	if err != nil {
		return err
	}

	if err := s.linkAddonsToPlans(ctx, plans, addons); err != nil {
		return err
	}
	if err := s.publishPackages(ctx, plans); err != nil {
		return err
	}

	s.logger.LogSuccess(fmt.Sprintf(
		"Catalog import completed products=%d plans=%d addons=%d",
		len(products), len(plans), len(addons),
	))
	return nil
}

func (s *CatalogImport) importPackages(ctx context.Context, products []model.SourceProduct, pkgType model.PackageType) ([]*model.Package, error) {
	var packages []*model.Package
	for _, sourceProduct := range products {
		productID, err := s.fetchOrCreateProduct(ctx, sourceProduct)
		if err != nil {
			return nil, err
		}
		for _, plan := range sourceProduct.Plans {
			pkg, err := s.fetchOrCreatePackage(ctx, pkgType, plan, productID, sourceProduct.ID)
			if err != nil {
				return nil, err
			}
			if err := s.reconcilePrices(ctx, plan, pkg); err != nil {
				return nil, err
			}
			packages = append(packages, pkg)
		}
	}
	return packages, nil
}

func (s *CatalogImport) dryRunPrefix() string {
	if s.cfg.DryRun {
		return "[Dry Run]: "
	}
	return ""
}

func prettyJSON(v any) string {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(out)
}
