package usecases

import (
	"context"
	"fmt"
	"strings"

	"zuora-catalog-importer/internal/config"
	"zuora-catalog-importer/internal/domain/model"
)

type recorderLogger struct {
	entries  []string
	warnings []string
	errors   []string
}

func (r *recorderLogger) Log(value string)               { r.entries = append(r.entries, value) }
func (r *recorderLogger) LogWarning(value string)        { r.warnings = append(r.warnings, value) }
func (r *recorderLogger) LogError(value string, _ error) { r.errors = append(r.errors, value) }
func (r *recorderLogger) LogSuccess(value string)        { r.entries = append(r.entries, value) }

func (r *recorderLogger) containsEntry(substr string) bool {
	for _, entry := range r.entries {
		if strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}

func (r *recorderLogger) containsWarning(substr string) bool {
	for _, entry := range r.warnings {
		if strings.Contains(entry, substr) {
			return true
		}
	}
	return false
}

type fakeSource struct {
	integration model.Integration
	products    []model.SourceProduct
	err         error

	gotIntegrationID string
}

func (f *fakeSource) FindIntegration(_ context.Context, environmentID string) (model.Integration, error) {
	if f.err != nil {
		return model.Integration{}, f.err
	}
	integration := f.integration
	if integration.ID == "" {
		integration = model.Integration{ID: "int-1", IntegrationID: "zuora-1", EnvironmentID: environmentID}
	}
	return integration, nil
}

func (f *fakeSource) BillingProducts(_ context.Context, _ []string, integrationID string) ([]model.SourceProduct, error) {
	f.gotIntegrationID = integrationID
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

type findPackageCall struct {
	Type      model.PackageType
	RefID     string
	ProductID string
	Version   *int
	IsLatest  bool
}

type publishCall struct {
	Type      model.PackageType
	PackageID string
	RefID     string
}

type linkCall struct {
	PlanID   string
	AddonIDs []string
}

// fakeTarget implements the target gateway interfaces with in-memory state so
// a second run observes what the first one wrote.
type fakeTarget struct {
	products map[string]*model.Product // by refId
	packages map[string]*model.Package // latest version, by type/refId/productId
	drafts   map[string]*model.Package // by type/refId/productId/version

	createProductCalls int
	updateProductCalls int
	createPackageCalls int
	updatePackageCalls int
	createDraftCalls   int

	pricingInputs    []model.PricingInput
	published        []publishCall
	linked           []linkCall
	findPackageCalls []findPackageCall

	createProductErr error
	setPricingErr    error

	nextID int
}

func newFakeTarget() *fakeTarget {
	return &fakeTarget{
		products: map[string]*model.Product{},
		packages: map[string]*model.Package{},
		drafts:   map[string]*model.Package{},
	}
}

func (f *fakeTarget) resetCounters() {
	f.createProductCalls = 0
	f.updateProductCalls = 0
	f.createPackageCalls = 0
	f.updatePackageCalls = 0
	f.createDraftCalls = 0
	f.pricingInputs = nil
	f.published = nil
	f.linked = nil
	f.findPackageCalls = nil
}

func (f *fakeTarget) id(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func packageKey(pkgType model.PackageType, refID, productID string) string {
	return fmt.Sprintf("%s/%s/%s", pkgType, refID, productID)
}

func (f *fakeTarget) seedPackage(pkg model.Package) *model.Package {
	stored := pkg
	f.packages[packageKey(pkg.Type, pkg.RefID, pkg.ProductID)] = &stored
	return &stored
}

func (f *fakeTarget) seedDraft(pkg model.Package, version int) {
	stored := pkg
	f.drafts[fmt.Sprintf("%s/%d", packageKey(pkg.Type, pkg.RefID, pkg.ProductID), version)] = &stored
}

func (f *fakeTarget) FindProductByRefID(_ context.Context, refID string) (*model.Product, error) {
	product, ok := f.products[refID]
	if !ok {
		return nil, nil
	}
	copied := *product
	return &copied, nil
}

func (f *fakeTarget) CreateProduct(_ context.Context, input model.ProductInput) (*model.Product, error) {
	f.createProductCalls++
	if f.createProductErr != nil {
		return nil, f.createProductErr
	}
	product := &model.Product{
		ID:          f.id("prod"),
		RefID:       input.RefID,
		DisplayName: input.DisplayName,
		Description: input.Description,
		Metadata:    input.Metadata,
	}
	f.products[input.RefID] = product
	copied := *product
	return &copied, nil
}

func (f *fakeTarget) UpdateProduct(_ context.Context, id string, input model.ProductInput) (*model.Product, error) {
	f.updateProductCalls++
	for _, product := range f.products {
		if product.ID == id {
			product.DisplayName = input.DisplayName
			product.Description = input.Description
			product.Metadata = input.Metadata
			copied := *product
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("product %s not found", id)
}

func (f *fakeTarget) FindPackage(_ context.Context, pkgType model.PackageType, refID, productID string, version *int, isLatest bool) (*model.Package, error) {
	f.findPackageCalls = append(f.findPackageCalls, findPackageCall{
		Type:      pkgType,
		RefID:     refID,
		ProductID: productID,
		Version:   version,
		IsLatest:  isLatest,
	})
	if version != nil {
		pkg, ok := f.drafts[fmt.Sprintf("%s/%d", packageKey(pkgType, refID, productID), *version)]
		if !ok {
			return nil, nil
		}
		copied := *pkg
		return &copied, nil
	}
	pkg, ok := f.packages[packageKey(pkgType, refID, productID)]
	if !ok {
		return nil, nil
	}
	copied := *pkg
	return &copied, nil
}

func (f *fakeTarget) CreatePackage(_ context.Context, pkgType model.PackageType, input model.PackageInput) (*model.Package, error) {
	f.createPackageCalls++
	pkg := &model.Package{
		ID:          f.id("pkg"),
		RefID:       input.RefID,
		DisplayName: input.DisplayName,
		Description: input.Description,
		Status:      input.Status,
		Type:        pkgType,
		ProductID:   input.ProductID,
		BillingID:   input.BillingID,
		Prices:      []model.PackagePrice{},
	}
	f.packages[packageKey(pkgType, input.RefID, input.ProductID)] = pkg
	copied := *pkg
	return &copied, nil
}

func (f *fakeTarget) UpdatePackage(_ context.Context, pkgType model.PackageType, id string, input model.PackageInput) (*model.Package, error) {
	f.updatePackageCalls++
	for _, pkg := range f.packages {
		if pkg.ID == id && pkg.Type == pkgType {
			pkg.DisplayName = input.DisplayName
			pkg.Description = input.Description
			pkg.BillingID = input.BillingID
			copied := *pkg
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%s %s not found", pkgType, id)
}

func (f *fakeTarget) CreatePackageDraft(_ context.Context, pkgType model.PackageType, packageID string) (*model.Draft, error) {
	f.createDraftCalls++
	return &model.Draft{ID: f.id("draft"), VersionNumber: 1}, nil
}

func (f *fakeTarget) SetPackagePricing(_ context.Context, input model.PricingInput) error {
	f.pricingInputs = append(f.pricingInputs, input)
	if f.setPricingErr != nil {
		return f.setPricingErr
	}
	for _, pkg := range f.packages {
		if pkg.ID == input.PackageID {
			pkg.Prices = flattenPrices(input)
		}
	}
	return nil
}

func (f *fakeTarget) PublishPackage(_ context.Context, pkgType model.PackageType, packageID, refID string) error {
	f.published = append(f.published, publishCall{Type: pkgType, PackageID: packageID, RefID: refID})
	return nil
}

func (f *fakeTarget) AddAddonsToPlan(_ context.Context, planID string, addonIDs []string) error {
	f.linked = append(f.linked, linkCall{PlanID: planID, AddonIDs: addonIDs})
	return nil
}

func flattenPrices(input model.PricingInput) []model.PackagePrice {
	var prices []model.PackagePrice
	for _, priceModel := range input.Models {
		for _, period := range priceModel.PricePeriods {
			prices = append(prices, model.PackagePrice{
				ID:             "price-" + priceModel.BillingID,
				BillingID:      priceModel.BillingID,
				BillingCadence: priceModel.BillingCadence,
				BillingModel:   priceModel.BillingModel,
				BillingPeriod:  period.BillingPeriod,
				Price:          period.Price,
			})
		}
	}
	return prices
}

func newTestImporter(cfg config.ImportConfig, source *fakeSource, target *fakeTarget, logger *recorderLogger) *CatalogImport {
	return NewCatalogImport(cfg, source, target, target, target, target, logger)
}
