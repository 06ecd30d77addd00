package usecase

import (
	"context"
	"errors"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/polling"
	"engagement-srv/internal/polling/repository"
)

// GetConfig returns the workspace sync configuration, falling back to
// defaults for workspaces that never changed it.
func (uc *implUseCase) GetConfig(ctx context.Context, sc model.Scope) (polling.ConfigOutput, error) {
	cfg, err := uc.redisRepo.GetConfig(ctx, sc.WorkspaceID)
	if errors.Is(err, repository.ErrConfigNotFound) {
		return polling.ConfigOutput{Config: polling.DefaultConfig()}, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "polling.usecase.GetConfig: Failed to read config: %v", err)
		return polling.ConfigOutput{}, err
	}
	return polling.ConfigOutput{Config: *cfg}, nil
}

// SetConfig validates the interval bounds and persists the configuration.
// The ingest scheduler picks the new interval up on its next tick.
func (uc *implUseCase) SetConfig(ctx context.Context, sc model.Scope, input polling.SetConfigInput) (polling.ConfigOutput, error) {
	if input.IntervalSeconds < polling.MinIntervalSeconds || input.IntervalSeconds > polling.MaxIntervalSeconds {
		return polling.ConfigOutput{}, polling.ErrIntervalOutOfRange
	}

	cfg := polling.Config{
		IntervalSeconds: input.IntervalSeconds,
		Enabled:         input.Enabled,
	}
	if err := uc.redisRepo.SaveConfig(ctx, sc.WorkspaceID, cfg); err != nil {
		uc.l.Errorf(ctx, "polling.usecase.SetConfig: Failed to save config: %v", err)
		return polling.ConfigOutput{}, err
	}

	return polling.ConfigOutput{Config: cfg}, nil
}

// GetStats returns feed counts for the workspace. Stats are cached briefly;
// the UI polls this endpoint and the counts do not need to be exact to the
// second.
func (uc *implUseCase) GetStats(ctx context.Context, sc model.Scope) (polling.StatsOutput, error) {
	if cached, err := uc.redisRepo.GetCachedStats(ctx, sc.WorkspaceID); err == nil {
		return polling.StatsOutput{Stats: *cached}, nil
	}

	counts, err := uc.repo.CountByStatus(ctx, sc.WorkspaceID)
	if err != nil {
		uc.l.Errorf(ctx, "polling.usecase.GetStats: Failed to compute stats: %v", err)
		return polling.StatsOutput{}, polling.ErrStatsUnavailable
	}

	stats := polling.Stats{
		ByStatus:       counts,
		PendingTriage:  counts[model.StatusUnread] + counts[model.StatusNeedsResponse],
		LastComputedAt: time.Now().Format(time.RFC3339),
	}
	for _, n := range counts {
		stats.Total += n
	}

	if err := uc.redisRepo.SaveCachedStats(ctx, sc.WorkspaceID, stats); err != nil {
		uc.l.Warnf(ctx, "polling.usecase.GetStats: Failed to cache stats: %v", err)
	}

	return polling.StatsOutput{Stats: stats}, nil
}
