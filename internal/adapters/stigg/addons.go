package stigg

import (
	"context"
	"errors"

	"zuora-catalog-importer/internal/adapters/stigg/dto"
)

type AddonService interface {
	AddAddonsToPlan(ctx context.Context, planID string, addonIDs []string) error
}

const addAddonsToPlanMutation = `
mutation AddCompatibleAddonsToPlan($input: AddCompatibleAddonsToPlanInput!) {
	addCompatibleAddonsToPlan(input: $input) {
		id
	}
}`

// AddAddonsToPlan associates the add-on set with one plan in a single batched
// mutation.
func (c *Client) AddAddonsToPlan(ctx context.Context, planID string, addonIDs []string) error {
	variables := map[string]any{
		"input": map[string]any{
			"id":          planID,
			"relationIds": addonIDs,
		},
	}

	var data dto.AddCompatibleAddonsToPlanData
	if err := c.gql.Execute(ctx, addAddonsToPlanMutation, variables, &data); err != nil {
		return newAPIError("Plan", planID, err)
	}
	if data.AddCompatibleAddonsToPlan == nil {
		return newAPIError("Plan", planID, errors.New("addon linking returned empty payload"))
	}
	return nil
}
