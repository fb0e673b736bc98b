package usecases

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"zuora-catalog-importer/internal/domain/model"
)

// publishPackages publishes the set concurrently; the packages do not
// reference each other so order among them is irrelevant. No-op unless
// publish mode is on and this is not a dry run.
func (s *CatalogImport) publishPackages(ctx context.Context, packages []*model.Package) error {
	if !s.cfg.Publish || s.cfg.DryRun {
		return nil
	}
	if len(packages) == 0 {
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, pkg := range packages {
		pkg := pkg
		group.Go(func() error {
			return s.publishPackage(groupCtx, pkg)
		})
	}
	return group.Wait()
}

// publishPackage picks exactly one publish target: the draft resolved during
// pricing, the package itself while still a draft, or the draft version named
// by its summary. Anything else is already published.
func (s *CatalogImport) publishPackage(ctx context.Context, pkg *model.Package) error {
	switch {
	case pkg.DraftID != "":
		s.logger.Log(fmt.Sprintf("Publishing %s with ref id %s", pkg.Type, pkg.RefID))
		return s.packages.PublishPackage(ctx, pkg.Type, pkg.DraftID, pkg.RefID)

	case pkg.Status == model.PackageStatusDraft:
		s.logger.Log(fmt.Sprintf("Publishing %s with ref id %s", pkg.Type, pkg.RefID))
		return s.packages.PublishPackage(ctx, pkg.Type, pkg.ID, pkg.RefID)

	case pkg.DraftSummary != nil && pkg.DraftSummary.Version > 0:
		version := pkg.DraftSummary.Version
		draftPkg, err := s.packages.FindPackage(ctx, pkg.Type, pkg.RefID, pkg.ProductID, &version, false)
		if err != nil {
			return err
		}
		if draftPkg == nil || draftPkg.ID == "" {
			s.logger.LogWarning(fmt.Sprintf("No draft found for package with ref id %s", pkg.RefID))
			return nil
		}
		s.logger.Log(fmt.Sprintf("Publishing %s with ref id %s", pkg.Type, pkg.RefID))
		return s.packages.PublishPackage(ctx, pkg.Type, draftPkg.ID, pkg.RefID)

	default:
		s.logger.Log(fmt.Sprintf("%s with ref id %s is already published", pkg.Type, pkg.RefID))
		return nil
	}
}

// linkAddonsToPlans associates the full add-on set with every plan, one
// batched mutation per plan, fanned out concurrently.
func (s *CatalogImport) linkAddonsToPlans(ctx context.Context, plans, addons []*model.Package) error {
	if len(plans) == 0 || len(addons) == 0 {
		return nil
	}

	addonIDs := packageIDs(addons)

	if s.cfg.DryRun {
		s.logger.Log(fmt.Sprintf(
			"[Dry Run]: would assign ADDON ids %s to PLAN ids %s",
			prettyJSON(addonIDs), prettyJSON(packageIDs(plans)),
		))
		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, plan := range plans {
		plan := plan
		group.Go(func() error {
			s.logger.Log(fmt.Sprintf("Assigning %d addons to plan with ref id %s", len(addonIDs), plan.RefID))
			return s.addons.AddAddonsToPlan(groupCtx, plan.ID, addonIDs)
		})
	}
	return group.Wait()
}

func packageIDs(packages []*model.Package) []string {
	ids := make([]string, 0, len(packages))
	for _, pkg := range packages {
		ids = append(ids, pkg.ID)
	}
	return ids
}
