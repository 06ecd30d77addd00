package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"engagement-srv/internal/demo"
	"engagement-srv/internal/demo/repository"
	"engagement-srv/internal/model"
	triageRepo "engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/log"
)

type fakeSeedJobRepo struct {
	mu   sync.Mutex
	jobs map[string]demo.SeedJob
	done chan struct{}
}

func newFakeSeedJobRepo() *fakeSeedJobRepo {
	return &fakeSeedJobRepo{
		jobs: make(map[string]demo.SeedJob),
		done: make(chan struct{}, 1),
	}
}

func (f *fakeSeedJobRepo) GetSeedJob(_ context.Context, workspaceID string) (*demo.SeedJob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[workspaceID]
	if !ok {
		return nil, repository.ErrSeedJobNotFound
	}
	return &job, nil
}

func (f *fakeSeedJobRepo) SaveSeedJob(_ context.Context, job demo.SeedJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.jobs[job.WorkspaceID] = job
	if job.State != demo.SeedStateRunning {
		select {
		case f.done <- struct{}{}:
		default:
		}
	}
	return nil
}

type fakeInteractionSink struct {
	mu    sync.Mutex
	items map[string]model.Interaction // keyed by (platform, external_id)
	fail  bool
}

func newFakeInteractionSink() *fakeInteractionSink {
	return &fakeInteractionSink{items: make(map[string]model.Interaction)}
}

func (f *fakeInteractionSink) UpsertInteraction(_ context.Context, opts triageRepo.UpsertInteractionOptions) (*model.Interaction, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, false, errors.New("postgres down")
	}
	it := opts.Interaction
	key := string(it.Platform) + "/" + it.ExternalID
	_, existed := f.items[key]
	f.items[key] = it
	return &it, !existed, nil
}

func (f *fakeInteractionSink) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}

func (f *fakeInteractionSink) ListInteractions(context.Context, triageRepo.ListInteractionsOptions) ([]model.Interaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeInteractionSink) GetInteractionByID(context.Context, string) (*model.Interaction, error) {
	return nil, triageRepo.ErrInteractionNotFound
}

func (f *fakeInteractionSink) UpdateInteraction(context.Context, triageRepo.UpdateInteractionOptions) (*model.Interaction, error) {
	return nil, triageRepo.ErrInteractionNotFound
}

func (f *fakeInteractionSink) BulkUpdate(context.Context, triageRepo.BulkUpdateOptions) (int64, error) {
	return 0, nil
}

func (f *fakeInteractionSink) BulkDelete(context.Context, string, []string) (int64, error) {
	return 0, nil
}

func (f *fakeInteractionSink) CountByStatus(context.Context, string) (map[model.InteractionStatus]int64, error) {
	return nil, nil
}

func newTestUseCase(jobs *fakeSeedJobRepo, sink *fakeInteractionSink) demo.UseCase {
	l := log.Init(log.ZapConfig{Level: "fatal"})
	return New(jobs, sink, l)
}

func waitForFinish(t *testing.T, jobs *fakeSeedJobRepo) {
	t.Helper()
	select {
	case <-jobs.done:
	case <-time.After(2 * time.Second):
		t.Fatal("seed run did not finish in time")
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-1", WorkspaceID: "ws-1"}

	t.Run("seeds the requested number of interactions", func(t *testing.T) {
		jobs := newFakeSeedJobRepo()
		sink := newFakeInteractionSink()
		uc := newTestUseCase(jobs, sink)

		o, err := uc.Seed(ctx, sc, demo.SeedInput{Count: 10})
		if err != nil {
			t.Fatalf("Seed: %v", err)
		}
		if o.Job.State != demo.SeedStateRunning {
			t.Errorf("initial state = %q, want running", o.Job.State)
		}

		waitForFinish(t, jobs)

		status, err := uc.Status(ctx, sc)
		if err != nil {
			t.Fatalf("Status: %v", err)
		}
		if status.Job.State != demo.SeedStateCompleted {
			t.Errorf("state = %q, want completed", status.Job.State)
		}
		if status.Job.Seeded != 10 {
			t.Errorf("seeded = %d, want 10", status.Job.Seeded)
		}
		if sink.count() != 10 {
			t.Errorf("stored %d interactions, want 10", sink.count())
		}
	})

	t.Run("zero count falls back to the default", func(t *testing.T) {
		jobs := newFakeSeedJobRepo()
		sink := newFakeInteractionSink()
		uc := newTestUseCase(jobs, sink)

		o, err := uc.Seed(ctx, sc, demo.SeedInput{})
		if err != nil {
			t.Fatalf("Seed: %v", err)
		}
		if o.Job.Requested != demo.DefaultSeedCount {
			t.Errorf("requested = %d, want %d", o.Job.Requested, demo.DefaultSeedCount)
		}
		waitForFinish(t, jobs)
	})

	t.Run("rejects an out-of-range count", func(t *testing.T) {
		uc := newTestUseCase(newFakeSeedJobRepo(), newFakeInteractionSink())

		_, err := uc.Seed(ctx, sc, demo.SeedInput{Count: demo.MaxSeedCount + 1})
		if !errors.Is(err, demo.ErrInvalidCount) {
			t.Fatalf("err = %v, want ErrInvalidCount", err)
		}
	})

	t.Run("rejects a second run while one is in progress", func(t *testing.T) {
		jobs := newFakeSeedJobRepo()
		jobs.jobs["ws-1"] = demo.SeedJob{
			ID:          "job-1",
			WorkspaceID: "ws-1",
			State:       demo.SeedStateRunning,
		}
		uc := newTestUseCase(jobs, newFakeInteractionSink())

		_, err := uc.Seed(ctx, sc, demo.SeedInput{Count: 5})
		if !errors.Is(err, demo.ErrSeedInProgress) {
			t.Fatalf("err = %v, want ErrSeedInProgress", err)
		}
	})

	t.Run("marks the job failed when persistence breaks", func(t *testing.T) {
		jobs := newFakeSeedJobRepo()
		sink := newFakeInteractionSink()
		sink.fail = true
		uc := newTestUseCase(jobs, sink)

		if _, err := uc.Seed(ctx, sc, demo.SeedInput{Count: 5}); err != nil {
			t.Fatalf("Seed: %v", err)
		}
		waitForFinish(t, jobs)

		status, err := uc.Status(ctx, sc)
		if err != nil {
			t.Fatalf("Status: %v", err)
		}
		if status.Job.State != demo.SeedStateFailed {
			t.Errorf("state = %q, want failed", status.Job.State)
		}
	})
}

func TestGenerateInteraction(t *testing.T) {
	t.Run("external id is stable per job and index", func(t *testing.T) {
		a := generateInteraction("ws-1", "job-1", 3)
		b := generateInteraction("ws-1", "job-1", 3)
		if a.ExternalID != b.ExternalID {
			t.Errorf("external ids differ: %q vs %q", a.ExternalID, b.ExternalID)
		}
		if !strings.HasPrefix(a.ExternalID, "demo-job-1-") {
			t.Errorf("unexpected external id %q", a.ExternalID)
		}
	})

	t.Run("every item gets a fresh unique id", func(t *testing.T) {
		a := generateInteraction("ws-1", "job-1", 0)
		b := generateInteraction("ws-1", "job-1", 1)
		if a.ID == "" || b.ID == "" {
			t.Fatalf("generated interactions without ids: %q, %q", a.ID, b.ID)
		}
		if a.ID == b.ID {
			t.Errorf("ids collide: %q", a.ID)
		}
	})

	t.Run("reviews carry a rating, other kinds do not", func(t *testing.T) {
		for i := 0; i < 16; i++ {
			it := generateInteraction("ws-1", "job-1", i)
			isReview := it.Kind == model.KindReview
			if isReview && it.Rating == nil {
				t.Errorf("review at index %d has no rating", i)
			}
			if !isReview && it.Rating != nil {
				t.Errorf("%s at index %d has a rating", it.Kind, i)
			}
		}
	})

	t.Run("every item is tagged as demo data", func(t *testing.T) {
		it := generateInteraction("ws-1", "job-1", 0)
		if !it.HasTag("demo") {
			t.Error("expected the demo tag")
		}
	})
}
