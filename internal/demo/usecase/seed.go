package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"engagement-srv/internal/demo"
	"engagement-srv/internal/demo/repository"
	"engagement-srv/internal/model"
	triageRepo "engagement-srv/internal/triage/repository"
)

// Seed starts a demo data run for the caller's workspace. Generation
// happens in the background; the returned job is what /demo/status polls.
func (uc *implUseCase) Seed(ctx context.Context, sc model.Scope, input demo.SeedInput) (demo.SeedOutput, error) {
	count := input.Count
	if count == 0 {
		count = demo.DefaultSeedCount
	}
	if count < 0 || count > demo.MaxSeedCount {
		return demo.SeedOutput{}, demo.ErrInvalidCount
	}

	existing, err := uc.redisRepo.GetSeedJob(ctx, sc.WorkspaceID)
	if err != nil && !errors.Is(err, repository.ErrSeedJobNotFound) {
		uc.l.Errorf(ctx, "demo.usecase.Seed: Failed to check existing job: %v", err)
		return demo.SeedOutput{}, err
	}
	if existing != nil && existing.State == demo.SeedStateRunning {
		return demo.SeedOutput{}, demo.ErrSeedInProgress
	}

	job := demo.SeedJob{
		ID:          uuid.New().String(),
		WorkspaceID: sc.WorkspaceID,
		State:       demo.SeedStateRunning,
		Requested:   count,
		StartedAt:   time.Now().UTC(),
	}
	if err := uc.redisRepo.SaveSeedJob(ctx, job); err != nil {
		uc.l.Errorf(ctx, "demo.usecase.Seed: Failed to save job: %v", err)
		return demo.SeedOutput{}, err
	}

	// The request returns immediately; the run outlives it.
	go uc.runSeed(context.WithoutCancel(ctx), job)

	return demo.SeedOutput{Job: job}, nil
}

// Status returns the latest seed job for the caller's workspace.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope) (demo.StatusOutput, error) {
	job, err := uc.redisRepo.GetSeedJob(ctx, sc.WorkspaceID)
	if errors.Is(err, repository.ErrSeedJobNotFound) {
		return demo.StatusOutput{}, demo.ErrNoSeedJob
	}
	if err != nil {
		uc.l.Errorf(ctx, "demo.usecase.Status: Failed to load job: %v", err)
		return demo.StatusOutput{}, err
	}
	return demo.StatusOutput{Job: job}, nil
}

func (uc *implUseCase) runSeed(ctx context.Context, job demo.SeedJob) {
	for i := 0; i < job.Requested; i++ {
		it := generateInteraction(job.WorkspaceID, job.ID, i)
		if _, _, err := uc.interactions.UpsertInteraction(ctx, triageRepo.UpsertInteractionOptions{
			Interaction: it,
		}); err != nil {
			uc.l.Errorf(ctx, "demo.usecase.runSeed: Failed to upsert interaction %d: %v", i, err)
			uc.finishSeed(ctx, job, i, demo.SeedStateFailed)
			return
		}
		job.Seeded = i + 1
	}
	uc.finishSeed(ctx, job, job.Seeded, demo.SeedStateCompleted)
}

func (uc *implUseCase) finishSeed(ctx context.Context, job demo.SeedJob, seeded int, state string) {
	now := time.Now().UTC()
	job.Seeded = seeded
	job.State = state
	job.FinishedAt = &now
	if err := uc.redisRepo.SaveSeedJob(ctx, job); err != nil {
		uc.l.Errorf(ctx, "demo.usecase.finishSeed: Failed to save final job state: %v", err)
	}
}
