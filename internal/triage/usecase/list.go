package usecase

import (
	"context"
	"fmt"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage"
	"engagement-srv/internal/triage/engine"
	"engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/paginator"
)

// List returns one filtered, sorted page of the workspace feed.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input triage.ListInput) (triage.ListOutput, error) {
	input.PagQuery.Adjust()

	items, total, err := uc.loadPage(ctx, sc.WorkspaceID, input.Filter, input.Sort, input.PagQuery)
	if err != nil {
		uc.l.Errorf(ctx, "triage.usecase.List: Failed to load page: %v", err)
		return triage.ListOutput{}, err
	}

	if input.PagQuery.Page == 1 {
		uc.feed(sc.WorkspaceID).SetInteractions(items)
	}

	return triage.ListOutput{
		Interactions: items,
		Pagination: paginator.Paginator{
			Total:       total,
			CurrentPage: input.PagQuery.Page,
			PerPage:     input.PagQuery.Limit,
		},
	}, nil
}

// Refresh reloads the feed under the sequence guard: when several refreshes
// race, only the one issued last may replace the cached feed. A superseded
// request gets ErrStaleRefresh and its result is dropped.
func (uc *implUseCase) Refresh(ctx context.Context, sc model.Scope, input triage.RefreshInput) (triage.ListOutput, error) {
	input.PagQuery.Adjust()

	resource := fmt.Sprintf("feed:%s", sc.WorkspaceID)
	seq := uc.seq.Begin(resource)

	items, total, err := uc.loadPage(ctx, sc.WorkspaceID, input.Filter, input.Sort, input.PagQuery)
	if err != nil {
		uc.l.Errorf(ctx, "triage.usecase.Refresh: Failed to reload feed: %v", err)
		return triage.ListOutput{}, err
	}

	if !uc.seq.Commit(resource, seq) {
		return triage.ListOutput{}, triage.ErrStaleRefresh
	}

	uc.feed(sc.WorkspaceID).SetInteractions(items)

	return triage.ListOutput{
		Interactions: items,
		Pagination: paginator.Paginator{
			Total:       total,
			CurrentPage: input.PagQuery.Page,
			PerPage:     input.PagQuery.Limit,
		},
	}, nil
}

// loadPage queries the repository and re-applies the filter pipeline to the
// returned page. Filtering is idempotent, so the second pass cannot change a
// correct result; it does enforce workspace scoping on the way out.
func (uc *implUseCase) loadPage(
	ctx context.Context,
	workspaceID string,
	fs model.FilterState,
	sort model.SortOrder,
	pq paginator.PaginateQuery,
) ([]model.Interaction, int64, error) {
	items, total, err := uc.repo.ListInteractions(ctx, repository.ListInteractionsOptions{
		WorkspaceID: workspaceID,
		Platforms:   fs.Platforms,
		Sentiment:   fs.Sentiment,
		Status:      fs.Status,
		Search:      fs.Search,
		DateFrom:    fs.DateFrom,
		DateTo:      fs.DateTo,
		Sort:        sort,
		Limit:       pq.Limit,
		Offset:      pq.Offset(),
	})
	if err != nil {
		return nil, 0, err
	}

	return engine.Filter(items, fs, workspaceID), total, nil
}
