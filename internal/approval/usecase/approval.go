package usecase

import (
	"context"
	"errors"

	"engagement-srv/internal/approval"
	"engagement-srv/internal/approval/repository"
	"engagement-srv/internal/model"
	"engagement-srv/pkg/paginator"
)

// List returns one page of the approval queue, urgent items first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input approval.ListInput) (approval.ListOutput, error) {
	input.PagQuery.Adjust()

	items, total, err := uc.repo.ListApprovals(ctx, repository.ListApprovalsOptions{
		WorkspaceID: sc.WorkspaceID,
		Status:      input.Status,
		Urgent:      input.Urgent,
		Limit:       input.PagQuery.Limit,
		Offset:      input.PagQuery.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "approval.usecase.List: Failed to list approvals: %v", err)
		return approval.ListOutput{}, err
	}

	return approval.ListOutput{
		Items: items,
		Pagination: paginator.Paginator{
			Total:       total,
			CurrentPage: input.PagQuery.Page,
			PerPage:     input.PagQuery.Limit,
		},
	}, nil
}

// Resolve moves a pending item to approved or rejected. Both outcomes are
// terminal: resolving an already resolved item fails, it never silently
// re-resolves. The status only changes when the repository write commits.
func (uc *implUseCase) Resolve(ctx context.Context, sc model.Scope, input approval.ResolveInput) (approval.ItemOutput, error) {
	status, err := resolutionStatus(input.Resolution)
	if err != nil {
		return approval.ItemOutput{}, err
	}

	item, err := uc.repo.ResolvePending(ctx, repository.ResolvePendingOptions{
		ApprovalID:  input.ApprovalID,
		WorkspaceID: sc.WorkspaceID,
		Status:      status,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApprovalNotFound):
			return approval.ItemOutput{}, approval.ErrApprovalNotFound
		case errors.Is(err, repository.ErrNotPending):
			return approval.ItemOutput{}, approval.ErrAlreadyResolved
		}
		uc.l.Errorf(ctx, "approval.usecase.Resolve: Failed to resolve item: %v", err)
		return approval.ItemOutput{}, approval.ErrResolveFailed
	}

	return approval.ItemOutput{Item: *item}, nil
}

// Edit changes the drafted response text. Only pending items can be edited;
// a resolved item's payload is frozen with its resolution.
func (uc *implUseCase) Edit(ctx context.Context, sc model.Scope, input approval.EditInput) (approval.ItemOutput, error) {
	item, err := uc.repo.UpdateResponseText(ctx, repository.UpdateResponseTextOptions{
		ApprovalID:   input.ApprovalID,
		WorkspaceID:  sc.WorkspaceID,
		ResponseText: input.ResponseText,
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrApprovalNotFound):
			return approval.ItemOutput{}, approval.ErrApprovalNotFound
		case errors.Is(err, repository.ErrNotPending):
			return approval.ItemOutput{}, approval.ErrEditNotPending
		}
		uc.l.Errorf(ctx, "approval.usecase.Edit: Failed to edit item: %v", err)
		return approval.ItemOutput{}, approval.ErrResolveFailed
	}

	return approval.ItemOutput{Item: *item}, nil
}

// BulkResolve resolves many items with one resolution. Items that left the
// pending state since the caller captured its snapshot are skipped, never
// re-resolved; the caller learns how many actually moved.
func (uc *implUseCase) BulkResolve(ctx context.Context, sc model.Scope, input approval.BulkResolveInput) (approval.BulkResolveOutput, error) {
	if len(input.IDs) == 0 {
		return approval.BulkResolveOutput{}, approval.ErrEmptySelection
	}

	status, err := resolutionStatus(input.Resolution)
	if err != nil {
		return approval.BulkResolveOutput{}, err
	}

	out := approval.BulkResolveOutput{}
	for _, id := range input.IDs {
		_, err := uc.repo.ResolvePending(ctx, repository.ResolvePendingOptions{
			ApprovalID:  id,
			WorkspaceID: sc.WorkspaceID,
			Status:      status,
		})
		switch {
		case err == nil:
			out.Affected++
		case errors.Is(err, repository.ErrApprovalNotFound), errors.Is(err, repository.ErrNotPending):
			out.Skipped++
		default:
			uc.l.Errorf(ctx, "approval.usecase.BulkResolve: Failed to resolve %s: %v", id, err)
			return out, approval.ErrResolveFailed
		}
	}
	return out, nil
}

func resolutionStatus(resolution string) (model.ApprovalStatus, error) {
	switch resolution {
	case approval.ResolutionApprove:
		return model.ApprovalApproved, nil
	case approval.ResolutionReject:
		return model.ApprovalRejected, nil
	default:
		return "", approval.ErrInvalidResolution
	}
}
