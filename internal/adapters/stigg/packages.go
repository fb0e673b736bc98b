package stigg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"zuora-catalog-importer/internal/adapters/stigg/dto"
	"zuora-catalog-importer/internal/domain/model"
)

type PackageService interface {
	FindPackage(ctx context.Context, pkgType model.PackageType, refID, productID string, version *int, isLatest bool) (*model.Package, error)
	CreatePackage(ctx context.Context, pkgType model.PackageType, input model.PackageInput) (*model.Package, error)
	UpdatePackage(ctx context.Context, pkgType model.PackageType, id string, input model.PackageInput) (*model.Package, error)
	CreatePackageDraft(ctx context.Context, pkgType model.PackageType, packageID string) (*model.Draft, error)
	PublishPackage(ctx context.Context, pkgType model.PackageType, packageID, refID string) error
}

const packageFields = `
	displayName
	description
	id
	refId
	status
	productId
	billingId
	draftSummary { version }
	prices {
		billingCadence
		billingId
		billingModel
		billingPeriod
		id
		price { currency amount }
	}`

// FindPackage queries plans or addons by refId and productId, optionally
// narrowed to a specific version or the latest one. Returns nil when nothing
// matches.
func (c *Client) FindPackage(ctx context.Context, pkgType model.PackageType, refID, productID string, version *int, isLatest bool) (*model.Package, error) {
	query := fmt.Sprintf(`query %[1]ss($filter: %[1]sFilter) {
	%[2]s(filter: $filter) {
		edges {
			node {%[3]s
			}
		}
	}
}`, pkgType, collectionField(pkgType), packageFields)

	filter := map[string]any{
		"refId":     eq(refID),
		"productId": eq(productID),
	}
	if version != nil {
		filter["versionNumber"] = eq(*version)
	}
	if isLatest {
		filter["isLatest"] = map[string]any{"is": true}
	}
	variables := map[string]any{"filter": filter}

	var edges []dto.PackageEdge
	switch pkgType {
	case model.PackageTypePlan:
		var data dto.PlansQueryData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), refID, err)
		}
		edges = data.Plans.Edges
	case model.PackageTypeAddon:
		var data dto.AddonsQueryData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), refID, err)
		}
		edges = data.Addons.Edges
	default:
		return nil, fmt.Errorf("unknown package type %q", pkgType)
	}

	if len(edges) == 0 {
		return nil, nil
	}
	pkg := mapPackage(edges[0].Node, pkgType)
	return &pkg, nil
}

func (c *Client) CreatePackage(ctx context.Context, pkgType model.PackageType, input model.PackageInput) (*model.Package, error) {
	query := fmt.Sprintf(`mutation CreateOne%[1]s($input: %[1]sCreateInput!) {
	createOne%[1]s(input: $input) {%[2]s
	}
}`, pkgType, packageFields)
	variables := map[string]any{"input": c.packageInputVariables(input)}

	var node *dto.PackageNode
	switch pkgType {
	case model.PackageTypePlan:
		var data dto.CreateOnePlanData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), input.RefID, err)
		}
		node = data.CreateOnePlan
	case model.PackageTypeAddon:
		var data dto.CreateOneAddonData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), input.RefID, err)
		}
		node = data.CreateOneAddon
	default:
		return nil, fmt.Errorf("unknown package type %q", pkgType)
	}

	if node == nil || node.ID == "" {
		return nil, newAPIError(string(pkgType), input.RefID, errors.New("create returned empty package"))
	}
	pkg := mapPackage(*node, pkgType)
	return &pkg, nil
}

func (c *Client) UpdatePackage(ctx context.Context, pkgType model.PackageType, id string, input model.PackageInput) (*model.Package, error) {
	query := fmt.Sprintf(`mutation UpdateOne%[1]s($input: %[1]sUpdateInput!) {
	updateOne%[1]s(input: $input) {%[2]s
	}
}`, pkgType, packageFields)
	variables := map[string]any{
		"input": map[string]any{
			"id":                 id,
			"billingId":          input.BillingID,
			"displayName":        input.DisplayName,
			"description":        input.Description,
			"additionalMetaData": input.Metadata,
		},
	}

	var node *dto.PackageNode
	switch pkgType {
	case model.PackageTypePlan:
		var data dto.UpdateOnePlanData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), input.RefID, err)
		}
		node = data.UpdateOnePlan
	case model.PackageTypeAddon:
		var data dto.UpdateOneAddonData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), input.RefID, err)
		}
		node = data.UpdateOneAddon
	default:
		return nil, fmt.Errorf("unknown package type %q", pkgType)
	}

	if node == nil {
		return nil, newAPIError(string(pkgType), input.RefID, errors.New("update returned empty package"))
	}
	pkg := mapPackage(*node, pkgType)
	return &pkg, nil
}

func (c *Client) CreatePackageDraft(ctx context.Context, pkgType model.PackageType, packageID string) (*model.Draft, error) {
	query := fmt.Sprintf(`mutation Create%[1]sDraft($input: UUID!) {
	create%[1]sDraft(id: $input) {
		id
		refId
		versionNumber
	}
}`, pkgType)
	variables := map[string]any{"input": packageID}

	var node *dto.DraftNode
	switch pkgType {
	case model.PackageTypePlan:
		var data dto.CreatePlanDraftData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), packageID, err)
		}
		node = data.CreatePlanDraft
	case model.PackageTypeAddon:
		var data dto.CreateAddonDraftData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return nil, newAPIError(string(pkgType), packageID, err)
		}
		node = data.CreateAddonDraft
	default:
		return nil, fmt.Errorf("unknown package type %q", pkgType)
	}

	if node == nil || node.ID == "" {
		return nil, newAPIError(string(pkgType), packageID, errors.New("draft creation returned empty draft"))
	}
	return &model.Draft{
		ID:            node.ID,
		RefID:         node.RefID,
		VersionNumber: node.VersionNumber,
	}, nil
}

// PublishPackage promotes a draft to the live version for new customers.
func (c *Client) PublishPackage(ctx context.Context, pkgType model.PackageType, packageID, refID string) error {
	query := fmt.Sprintf(`mutation Publish%[1]s($input: PackagePublishInput!) {
	publish%[1]s(input: $input) {
		taskId
	}
}`, pkgType)
	variables := map[string]any{
		"input": map[string]any{
			"id":            packageID,
			"migrationType": "NEW_CUSTOMERS",
		},
	}

	switch pkgType {
	case model.PackageTypePlan:
		var data dto.PublishPlanData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return newAPIError(string(pkgType), refID, err)
		}
	case model.PackageTypeAddon:
		var data dto.PublishAddonData
		if err := c.gql.Execute(ctx, query, variables, &data); err != nil {
			return newAPIError(string(pkgType), refID, err)
		}
	default:
		return fmt.Errorf("unknown package type %q", pkgType)
	}
	return nil
}

func (c *Client) packageInputVariables(input model.PackageInput) map[string]any {
	return map[string]any{
		"refId":              input.RefID,
		"displayName":        input.DisplayName,
		"description":        input.Description,
		"productId":          input.ProductID,
		"additionalMetaData": input.Metadata,
		"billingId":          input.BillingID,
		"environmentId":      c.environmentID,
		"pricingType":        string(input.PricingType),
		"status":             string(input.Status),
	}
}

func collectionField(pkgType model.PackageType) string {
	return strings.ToLower(string(pkgType)) + "s"
}

func mapPackage(node dto.PackageNode, pkgType model.PackageType) model.Package {
	prices := make([]model.PackagePrice, 0, len(node.Prices))
	for _, price := range node.Prices {
		prices = append(prices, model.PackagePrice{
			ID:             price.ID,
			BillingID:      price.BillingID,
			BillingCadence: price.BillingCadence,
			BillingModel:   price.BillingModel,
			BillingPeriod:  price.BillingPeriod,
			Price: model.Money{
				Currency: price.Price.Currency,
				Amount:   decimal.NewFromFloat(price.Price.Amount),
			},
		})
	}

	pkg := model.Package{
		ID:          node.ID,
		RefID:       node.RefID,
		DisplayName: node.DisplayName,
		Description: node.Description,
		Status:      model.PackageStatus(node.Status),
		Type:        pkgType,
		ProductID:   node.ProductID,
		BillingID:   node.BillingID,
		Prices:      prices,
	}
	if node.DraftSummary != nil {
		pkg.DraftSummary = &model.DraftSummary{Version: node.DraftSummary.Version}
	}
	return pkg
}
