package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage"
)

// SaveView persists a named filter preset for the calling user.
func (uc *implUseCase) SaveView(ctx context.Context, sc model.Scope, input triage.SaveViewInput) (triage.ViewOutput, error) {
	if input.Name == "" {
		return triage.ViewOutput{}, triage.ErrViewNameRequired
	}

	view := model.SavedView{
		ID:        uuid.New().String(),
		UserID:    sc.UserID,
		Name:      input.Name,
		Filter:    input.Filter,
		Sort:      input.Sort,
		CreatedAt: time.Now(),
	}

	if err := uc.redisRepo.SaveView(ctx, view); err != nil {
		uc.l.Errorf(ctx, "triage.usecase.SaveView: Failed to save view: %v", err)
		return triage.ViewOutput{}, err
	}

	return triage.ViewOutput{View: view}, nil
}

// ListViews returns the user's saved filter presets.
func (uc *implUseCase) ListViews(ctx context.Context, sc model.Scope) ([]triage.ViewOutput, error) {
	views, err := uc.redisRepo.GetViews(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "triage.usecase.ListViews: Failed to list views: %v", err)
		return nil, err
	}

	out := make([]triage.ViewOutput, 0, len(views))
	for _, v := range views {
		out = append(out, triage.ViewOutput{View: v})
	}
	return out, nil
}
