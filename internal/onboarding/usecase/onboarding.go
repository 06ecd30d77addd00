package usecase

import (
	"context"
	"slices"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/onboarding"
)

// GetStatus derives per-step completion flags from the persisted progress.
func (uc *implUseCase) GetStatus(ctx context.Context, sc model.Scope) (onboarding.StatusOutput, error) {
	progress, err := uc.repo.GetProgress(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.GetStatus: Failed to load progress: %v", err)
		return onboarding.StatusOutput{}, err
	}
	return buildStatus(progress), nil
}

// CompleteStep marks one step done and returns the refreshed status.
// Completing an already finished step keeps the original timestamp.
func (uc *implUseCase) CompleteStep(ctx context.Context, sc model.Scope, input onboarding.CompleteStepInput) (onboarding.StatusOutput, error) {
	if !slices.Contains(onboarding.Steps, input.Step) {
		return onboarding.StatusOutput{}, onboarding.ErrUnknownStep
	}

	progress, err := uc.repo.GetProgress(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "onboarding.usecase.CompleteStep: Failed to load progress: %v", err)
		return onboarding.StatusOutput{}, err
	}

	if _, done := progress[input.Step]; !done {
		now := time.Now().UTC()
		if err := uc.repo.MarkStepDone(ctx, sc.UserID, input.Step, now); err != nil {
			uc.l.Errorf(ctx, "onboarding.usecase.CompleteStep: Failed to mark step: %v", err)
			return onboarding.StatusOutput{}, err
		}
		progress[input.Step] = now
	}

	return buildStatus(progress), nil
}

func buildStatus(progress map[string]time.Time) onboarding.StatusOutput {
	steps := make([]onboarding.StepStatus, 0, len(onboarding.Steps))
	completed := true
	for _, step := range onboarding.Steps {
		st := onboarding.StepStatus{Step: step}
		if at, ok := progress[step]; ok {
			st.Completed = true
			st.CompletedAt = &at
		} else {
			completed = false
		}
		steps = append(steps, st)
	}
	return onboarding.StatusOutput{
		Steps:     steps,
		Completed: completed,
	}
}
