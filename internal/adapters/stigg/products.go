package stigg

import (
	"context"
	"errors"

	"zuora-catalog-importer/internal/adapters/stigg/dto"
	"zuora-catalog-importer/internal/domain/model"
)

type ProductService interface {
	FindProductByRefID(ctx context.Context, refID string) (*model.Product, error)
	CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error)
}

const productFields = `
	id
	additionalMetaData
	description
	displayName
	environmentId
	refId`

const productsQuery = `
query Products($filter: ProductFilter) {
	products(filter: $filter) {
		edges {
			node {` + productFields + `
			}
		}
	}
}`

// FindProductByRefID returns nil without error when no product matches; the
// create branch treats absence as a valid outcome.
func (c *Client) FindProductByRefID(ctx context.Context, refID string) (*model.Product, error) {
	variables := map[string]any{
		"filter": map[string]any{
			"refId": eq(refID),
		},
	}

	var data dto.ProductsQueryData
	if err := c.gql.Execute(ctx, productsQuery, variables, &data); err != nil {
		return nil, newAPIError("Product", refID, err)
	}
	for _, edge := range data.Products.Edges {
		if edge.Node.RefID == refID {
			product := mapProduct(edge.Node)
			return &product, nil
		}
	}
	return nil, nil
}

const createProductMutation = `
mutation CreateOneProduct($input: CreateOneProductInput!) {
	createOneProduct(input: $input) {` + productFields + `
	}
}`

func (c *Client) CreateProduct(ctx context.Context, input model.ProductInput) (*model.Product, error) {
	variables := map[string]any{
		"input": map[string]any{
			"product": map[string]any{
				"additionalMetaData": input.Metadata,
				"description":        input.Description,
				"displayName":        input.DisplayName,
				"environmentId":      c.environmentID,
				"refId":              input.RefID,
			},
		},
	}

	var data dto.CreateOneProductData
	if err := c.gql.Execute(ctx, createProductMutation, variables, &data); err != nil {
		return nil, newAPIError("Product", input.RefID, err)
	}
	if data.CreateOneProduct == nil || data.CreateOneProduct.ID == "" {
		return nil, newAPIError("Product", input.RefID, errors.New("create returned empty product"))
	}
	product := mapProduct(*data.CreateOneProduct)
	return &product, nil
}

const updateProductMutation = `
mutation UpdateOneProduct($input: UpdateOneProductInput!) {
	updateOneProduct(input: $input) {` + productFields + `
	}
}`

func (c *Client) UpdateProduct(ctx context.Context, id string, input model.ProductInput) (*model.Product, error) {
	variables := map[string]any{
		"input": map[string]any{
			"id": id,
			"update": map[string]any{
				"description":        input.Description,
				"displayName":        input.DisplayName,
				"additionalMetaData": input.Metadata,
			},
		},
	}

	var data dto.UpdateOneProductData
	if err := c.gql.Execute(ctx, updateProductMutation, variables, &data); err != nil {
		return nil, newAPIError("Product", input.RefID, err)
	}
	if data.UpdateOneProduct == nil {
		return nil, newAPIError("Product", input.RefID, errors.New("update returned empty product"))
	}
	product := mapProduct(*data.UpdateOneProduct)
	return &product, nil
}

func mapProduct(node dto.ProductNode) model.Product {
	return model.Product{
		ID:          node.ID,
		RefID:       node.RefID,
		DisplayName: node.DisplayName,
		Description: node.Description,
		Metadata:    node.AdditionalMetaData,
	}
}
