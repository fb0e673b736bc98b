package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"zuora-catalog-importer/internal/domain/model"
)

func buildProductInput(sourceProduct model.SourceProduct) model.ProductInput {
	name := sourceProduct.Name
	if strings.TrimSpace(name) == "" {
		name = "unknown_product"
	}
	return model.ProductInput{
		RefID:       composeRefID(name, sourceProduct.ID),
		DisplayName: sourceProduct.Name,
		Description: sourceProduct.Description,
		Metadata: map[string]string{
			"from_zuora_import": "true",
		},
	}
}

// fetchOrCreateProduct resolves the target product id for a source product:
// query by ref id, create when absent, otherwise update display fields when
// they drifted and update mode is on.
func (s *CatalogImport) fetchOrCreateProduct(ctx context.Context, sourceProduct model.SourceProduct) (string, error) {
	input := buildProductInput(sourceProduct)

	existing, err := s.products.FindProductByRefID(ctx, input.RefID)
	if err != nil {
		return "", err
	}

	if existing != nil {
		s.logger.Log(fmt.Sprintf("%sProduct already exists with id %s", s.dryRunPrefix(), existing.ID))
		if err := s.updateProductIfNeeded(ctx, existing, input); err != nil {
			return "", err
		}
		return existing.ID, nil
	}

	if s.cfg.DryRun {
		s.logger.Log("[Dry Run]: would create PRODUCT with input\n" + prettyJSON(input))
		return "dry-run-" + uuid.NewString(), nil
	}

	created, err := s.products.CreateProduct(ctx, input)
	if err != nil {
		return "", err
	}
	s.logger.Log(fmt.Sprintf("Created product %s with id %s", created.DisplayName, created.ID))
	return created.ID, nil
}

func (s *CatalogImport) updateProductIfNeeded(ctx context.Context, existing *model.Product, input model.ProductInput) error {
	if !s.cfg.Update {
		return nil
	}

	needsUpdate := existing.DisplayName != input.DisplayName ||
		existing.Description != input.Description
	if !needsUpdate {
		s.logger.Log(fmt.Sprintf("No updates needed for product with ref id %s", existing.RefID))
		return nil
	}

	if s.cfg.DryRun {
		s.logger.Log("[Dry Run]: would update PRODUCT with input\n" + prettyJSON(input))
		return nil
	}

	updated, err := s.products.UpdateProduct(ctx, existing.ID, input)
	if err != nil {
		return err
	}
	s.logger.Log(fmt.Sprintf("Updated product %s with id %s", updated.DisplayName, existing.ID))
	return nil
}
