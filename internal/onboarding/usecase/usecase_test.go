package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/onboarding"
	"engagement-srv/pkg/log"
)

type fakeProgressRepo struct {
	progress map[string]map[string]time.Time
}

func newFakeProgressRepo() *fakeProgressRepo {
	return &fakeProgressRepo{progress: make(map[string]map[string]time.Time)}
}

func (f *fakeProgressRepo) GetProgress(_ context.Context, userID string) (map[string]time.Time, error) {
	out := make(map[string]time.Time)
	for step, at := range f.progress[userID] {
		out[step] = at
	}
	return out, nil
}

func (f *fakeProgressRepo) MarkStepDone(_ context.Context, userID, step string, at time.Time) error {
	if f.progress[userID] == nil {
		f.progress[userID] = make(map[string]time.Time)
	}
	f.progress[userID][step] = at
	return nil
}

func newTestUseCase(repo *fakeProgressRepo) onboarding.UseCase {
	l := log.Init(log.ZapConfig{Level: "fatal"})
	return New(repo, l)
}

func TestOnboarding(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-1"}

	t.Run("fresh user has no completed steps", func(t *testing.T) {
		uc := newTestUseCase(newFakeProgressRepo())

		o, err := uc.GetStatus(ctx, sc)
		if err != nil {
			t.Fatalf("GetStatus: %v", err)
		}
		if len(o.Steps) != len(onboarding.Steps) {
			t.Fatalf("got %d steps, want %d", len(o.Steps), len(onboarding.Steps))
		}
		if o.Completed {
			t.Error("fresh user should not be completed")
		}
		for _, st := range o.Steps {
			if st.Completed {
				t.Errorf("step %s should not be completed", st.Step)
			}
		}
	})

	t.Run("completing every step flips the overall flag", func(t *testing.T) {
		uc := newTestUseCase(newFakeProgressRepo())

		var o onboarding.StatusOutput
		var err error
		for _, step := range onboarding.Steps {
			o, err = uc.CompleteStep(ctx, sc, onboarding.CompleteStepInput{Step: step})
			if err != nil {
				t.Fatalf("CompleteStep(%s): %v", step, err)
			}
		}
		if !o.Completed {
			t.Error("expected overall completion after all steps")
		}
	})

	t.Run("re-completing a step keeps the original timestamp", func(t *testing.T) {
		repo := newFakeProgressRepo()
		uc := newTestUseCase(repo)

		first, err := uc.CompleteStep(ctx, sc, onboarding.CompleteStepInput{Step: onboarding.StepFirstTriage})
		if err != nil {
			t.Fatalf("CompleteStep: %v", err)
		}
		second, err := uc.CompleteStep(ctx, sc, onboarding.CompleteStepInput{Step: onboarding.StepFirstTriage})
		if err != nil {
			t.Fatalf("CompleteStep again: %v", err)
		}

		at := func(o onboarding.StatusOutput) *time.Time {
			for _, st := range o.Steps {
				if st.Step == onboarding.StepFirstTriage {
					return st.CompletedAt
				}
			}
			return nil
		}
		if at(first) == nil || at(second) == nil || !at(first).Equal(*at(second)) {
			t.Errorf("timestamps differ: %v vs %v", at(first), at(second))
		}
	})

	t.Run("unknown step is rejected", func(t *testing.T) {
		uc := newTestUseCase(newFakeProgressRepo())

		_, err := uc.CompleteStep(ctx, sc, onboarding.CompleteStepInput{Step: "win_the_lottery"})
		if !errors.Is(err, onboarding.ErrUnknownStep) {
			t.Fatalf("err = %v, want ErrUnknownStep", err)
		}
	})

	t.Run("progress is per user", func(t *testing.T) {
		repo := newFakeProgressRepo()
		uc := newTestUseCase(repo)

		if _, err := uc.CompleteStep(ctx, sc, onboarding.CompleteStepInput{Step: onboarding.StepConnectChannel}); err != nil {
			t.Fatalf("CompleteStep: %v", err)
		}

		other, err := uc.GetStatus(ctx, model.Scope{UserID: "u-2"})
		if err != nil {
			t.Fatalf("GetStatus: %v", err)
		}
		for _, st := range other.Steps {
			if st.Completed {
				t.Errorf("step %s leaked across users", st.Step)
			}
		}
	})
}
