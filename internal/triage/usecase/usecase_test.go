package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"engagement-srv/internal/model"
	"engagement-srv/internal/triage"
	"engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/log"
	"engagement-srv/pkg/paginator"
)

type fakePostgresRepo struct {
	items      map[string]model.Interaction
	failUpdate bool
}

func newFakePostgresRepo(items ...model.Interaction) *fakePostgresRepo {
	m := make(map[string]model.Interaction, len(items))
	for _, it := range items {
		m[it.ID] = it
	}
	return &fakePostgresRepo{items: m}
}

func (f *fakePostgresRepo) ListInteractions(_ context.Context, opts repository.ListInteractionsOptions) ([]model.Interaction, int64, error) {
	out := make([]model.Interaction, 0, len(f.items))
	for _, it := range f.items {
		if it.WorkspaceID == opts.WorkspaceID {
			out = append(out, it)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakePostgresRepo) GetInteractionByID(_ context.Context, id string) (*model.Interaction, error) {
	it, ok := f.items[id]
	if !ok {
		return nil, repository.ErrInteractionNotFound
	}
	return &it, nil
}

func (f *fakePostgresRepo) UpdateInteraction(_ context.Context, opts repository.UpdateInteractionOptions) (*model.Interaction, error) {
	if f.failUpdate {
		return nil, repository.ErrInteractionUpdate
	}
	it, ok := f.items[opts.ID]
	if !ok {
		return nil, repository.ErrInteractionNotFound
	}
	if opts.Status != nil {
		it.Status = *opts.Status
	}
	if opts.Sentiment != nil {
		it.Sentiment = *opts.Sentiment
	}
	if opts.Priority != nil {
		it.Priority = *opts.Priority
	}
	if opts.AssignedTo != nil {
		it.AssignedTo = *opts.AssignedTo
	}
	if opts.Tags != nil {
		it.Tags = opts.Tags
	}
	f.items[opts.ID] = it
	return &it, nil
}

func (f *fakePostgresRepo) BulkUpdate(_ context.Context, opts repository.BulkUpdateOptions) (int64, error) {
	if f.failUpdate {
		return 0, repository.ErrInteractionUpdate
	}
	var affected int64
	for _, id := range opts.IDs {
		it, ok := f.items[id]
		if !ok || it.WorkspaceID != opts.WorkspaceID {
			continue
		}
		if opts.FromStatus != nil && it.Status != *opts.FromStatus {
			continue
		}
		if opts.Status != nil {
			it.Status = *opts.Status
		}
		if opts.AssignedTo != nil {
			it.AssignedTo = *opts.AssignedTo
		}
		if opts.AddTag != "" && !it.HasTag(opts.AddTag) {
			it.Tags = append(it.Tags, opts.AddTag)
		}
		f.items[id] = it
		affected++
	}
	return affected, nil
}

func (f *fakePostgresRepo) BulkDelete(_ context.Context, workspaceID string, ids []string) (int64, error) {
	var affected int64
	for _, id := range ids {
		if it, ok := f.items[id]; ok && it.WorkspaceID == workspaceID {
			delete(f.items, id)
			affected++
		}
	}
	return affected, nil
}

func (f *fakePostgresRepo) UpsertInteraction(_ context.Context, opts repository.UpsertInteractionOptions) (*model.Interaction, bool, error) {
	it := opts.Interaction
	_, existed := f.items[it.ID]
	f.items[it.ID] = it
	return &it, !existed, nil
}

func (f *fakePostgresRepo) CountByStatus(_ context.Context, workspaceID string) (map[model.InteractionStatus]int64, error) {
	counts := make(map[model.InteractionStatus]int64)
	for _, it := range f.items {
		if it.WorkspaceID == workspaceID {
			counts[it.Status]++
		}
	}
	return counts, nil
}

type fakeRedisRepo struct {
	drafts map[string][]string
	views  map[string][]model.SavedView
}

func newFakeRedisRepo() *fakeRedisRepo {
	return &fakeRedisRepo{
		drafts: make(map[string][]string),
		views:  make(map[string][]model.SavedView),
	}
}

func (f *fakeRedisRepo) AppendSuggestion(_ context.Context, id, draft string) error {
	f.drafts[id] = append(f.drafts[id], draft)
	return nil
}

func (f *fakeRedisRepo) GetSuggestions(_ context.Context, id string) ([]string, error) {
	return f.drafts[id], nil
}

func (f *fakeRedisRepo) SaveView(_ context.Context, view model.SavedView) error {
	f.views[view.UserID] = append(f.views[view.UserID], view)
	return nil
}

func (f *fakeRedisRepo) GetViews(_ context.Context, userID string) ([]model.SavedView, error) {
	return f.views[userID], nil
}

type fakeGemini struct {
	reply string
	err   error
}

func (f *fakeGemini) Generate(_ context.Context, _ string) (string, error) {
	return f.reply, f.err
}

func testScope() model.Scope {
	return model.Scope{UserID: "user-1", WorkspaceID: "ws-1"}
}

func testItems() []model.Interaction {
	now := time.Now()
	return []model.Interaction{
		{ID: "a", WorkspaceID: "ws-1", Platform: model.PlatformYouTube, Status: model.StatusUnread, Tags: []string{}, CreatedAt: now},
		{ID: "b", WorkspaceID: "ws-1", Platform: model.PlatformGoogle, Status: model.StatusUnread, Tags: []string{"vip"}, CreatedAt: now.Add(-time.Minute)},
		{ID: "c", WorkspaceID: "ws-2", Platform: model.PlatformTikTok, Status: model.StatusUnread, Tags: []string{}, CreatedAt: now.Add(-2 * time.Minute)},
	}
}

func newTestUseCase(repo repository.PostgresRepository, redisRepo repository.RedisRepository, g *fakeGemini) triage.UseCase {
	l := log.Init(log.ZapConfig{Level: "fatal"})
	return New(repo, redisRepo, g, nil, l, Config{})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("persists the patch", func(t *testing.T) {
		repo := newFakePostgresRepo(testItems()...)
		uc := newTestUseCase(repo, newFakeRedisRepo(), &fakeGemini{})

		status := model.StatusArchived
		out, err := uc.Update(ctx, testScope(), triage.UpdateInput{
			InteractionID: "a",
			Status:        &status,
			AddTags:       []string{"handled"},
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if out.Interaction.Status != model.StatusArchived {
			t.Errorf("status = %s, want archived", out.Interaction.Status)
		}
		if !out.Interaction.HasTag("handled") {
			t.Errorf("tags = %v, want handled present", out.Interaction.Tags)
		}
	})

	t.Run("cross-workspace access looks like not found", func(t *testing.T) {
		repo := newFakePostgresRepo(testItems()...)
		uc := newTestUseCase(repo, newFakeRedisRepo(), &fakeGemini{})

		status := model.StatusArchived
		_, err := uc.Update(ctx, testScope(), triage.UpdateInput{InteractionID: "c", Status: &status})
		if !errors.Is(err, triage.ErrInteractionNotFound) {
			t.Fatalf("err = %v, want ErrInteractionNotFound", err)
		}
	})

	t.Run("rolls back the cached feed when persistence fails", func(t *testing.T) {
		repo := newFakePostgresRepo(testItems()...)
		uc := newTestUseCase(repo, newFakeRedisRepo(), &fakeGemini{})

		// Populate the cached feed.
		if _, err := uc.List(ctx, testScope(), triage.ListInput{PagQuery: paginator.PaginateQuery{Page: 1}}); err != nil {
			t.Fatalf("List failed: %v", err)
		}

		repo.failUpdate = true
		status := model.StatusArchived
		_, err := uc.Update(ctx, testScope(), triage.UpdateInput{InteractionID: "a", Status: &status})
		if !errors.Is(err, triage.ErrUpdateFailed) {
			t.Fatalf("err = %v, want ErrUpdateFailed", err)
		}

		// The optimistic cache write must have been undone.
		cached, ok := uc.(*implUseCase).feed("ws-1").Get("a")
		if !ok {
			t.Fatal("item a missing from the cached feed")
		}
		if cached.Status == model.StatusArchived {
			t.Fatal("failed update leaked into the cached feed")
		}
	})
}

func TestBulkAct(t *testing.T) {
	ctx := context.Background()

	t.Run("empty selection is rejected", func(t *testing.T) {
		uc := newTestUseCase(newFakePostgresRepo(testItems()...), newFakeRedisRepo(), &fakeGemini{})
		_, err := uc.BulkAct(ctx, testScope(), triage.BulkInput{Action: triage.BulkActionMarkRead})
		if !errors.Is(err, triage.ErrEmptySelection) {
			t.Fatalf("err = %v, want ErrEmptySelection", err)
		}
	})

	t.Run("tagging twice changes nothing the second time", func(t *testing.T) {
		repo := newFakePostgresRepo(testItems()...)
		uc := newTestUseCase(repo, newFakeRedisRepo(), &fakeGemini{})

		input := triage.BulkInput{Action: triage.BulkActionTag, IDs: []string{"a", "b"}, Tag: "vip"}
		if _, err := uc.BulkAct(ctx, testScope(), input); err != nil {
			t.Fatalf("first BulkAct failed: %v", err)
		}
		if _, err := uc.BulkAct(ctx, testScope(), input); err != nil {
			t.Fatalf("second BulkAct failed: %v", err)
		}

		for _, id := range []string{"a", "b"} {
			it := repo.items[id]
			n := 0
			for _, tag := range it.Tags {
				if tag == "vip" {
					n++
				}
			}
			if n != 1 {
				t.Errorf("item %s carries tag vip %d times", id, n)
			}
		}
	})

	t.Run("mark read acknowledges without claiming a reply", func(t *testing.T) {
		items := testItems()
		items = append(items,
			model.Interaction{ID: "d", WorkspaceID: "ws-1", Platform: model.PlatformYouTube, Status: model.StatusResponded, Tags: []string{}, CreatedAt: time.Now()},
			model.Interaction{ID: "e", WorkspaceID: "ws-1", Platform: model.PlatformGoogle, Status: model.StatusArchived, Tags: []string{}, CreatedAt: time.Now()},
		)
		repo := newFakePostgresRepo(items...)
		uc := newTestUseCase(repo, newFakeRedisRepo(), &fakeGemini{})

		out, err := uc.BulkAct(ctx, testScope(), triage.BulkInput{
			Action: triage.BulkActionMarkRead,
			IDs:    []string{"a", "d", "e"},
		})
		if err != nil {
			t.Fatalf("BulkAct failed: %v", err)
		}
		if out.Affected != 1 {
			t.Errorf("affected = %d, want 1", out.Affected)
		}
		if got := repo.items["a"].Status; got != model.StatusNeedsResponse {
			t.Errorf("unread item moved to %s, want %s", got, model.StatusNeedsResponse)
		}
		if got := repo.items["d"].Status; got != model.StatusResponded {
			t.Errorf("responded item moved to %s", got)
		}
		if got := repo.items["e"].Status; got != model.StatusArchived {
			t.Errorf("archived item moved to %s", got)
		}
	})

	t.Run("delete removes and reports affected", func(t *testing.T) {
		repo := newFakePostgresRepo(testItems()...)
		uc := newTestUseCase(repo, newFakeRedisRepo(), &fakeGemini{})

		out, err := uc.BulkAct(ctx, testScope(), triage.BulkInput{
			Action: triage.BulkActionDelete,
			IDs:    []string{"a", "b", "stale"},
		})
		if err != nil {
			t.Fatalf("BulkAct failed: %v", err)
		}
		if out.Affected != 2 {
			t.Errorf("affected = %d, want 2", out.Affected)
		}
		if out.Skipped != 1 {
			t.Errorf("skipped = %d, want 1", out.Skipped)
		}
		if _, ok := repo.items["a"]; ok {
			t.Error("item a survived bulk delete")
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		uc := newTestUseCase(newFakePostgresRepo(testItems()...), newFakeRedisRepo(), &fakeGemini{})
		_, err := uc.BulkAct(ctx, testScope(), triage.BulkInput{Action: "explode", IDs: []string{"a"}})
		if !errors.Is(err, triage.ErrInvalidBulkAction) {
			t.Fatalf("err = %v, want ErrInvalidBulkAction", err)
		}
	})
}

func TestSuggest(t *testing.T) {
	ctx := context.Background()

	t.Run("drafts accumulate in order", func(t *testing.T) {
		redisRepo := newFakeRedisRepo()
		g := &fakeGemini{reply: "Thanks for watching!"}
		uc := newTestUseCase(newFakePostgresRepo(testItems()...), redisRepo, g)

		if _, err := uc.Suggest(ctx, testScope(), triage.SuggestInput{InteractionID: "a"}); err != nil {
			t.Fatalf("Suggest failed: %v", err)
		}
		g.reply = "Appreciate the support!"
		out, err := uc.Suggest(ctx, testScope(), triage.SuggestInput{InteractionID: "a"})
		if err != nil {
			t.Fatalf("Suggest failed: %v", err)
		}

		if len(out.History) != 2 {
			t.Fatalf("history length = %d, want 2", len(out.History))
		}
		if out.History[0] != "Thanks for watching!" || out.History[1] != "Appreciate the support!" {
			t.Errorf("history out of order: %v", out.History)
		}

		hist, err := uc.SuggestionHistory(ctx, testScope(), triage.SuggestionHistoryInput{InteractionID: "a"})
		if err != nil {
			t.Fatalf("SuggestionHistory failed: %v", err)
		}
		if len(hist.Drafts) != 2 {
			t.Fatalf("persisted history length = %d, want 2", len(hist.Drafts))
		}
	})

	t.Run("generation failure falls back to a template draft", func(t *testing.T) {
		g := &fakeGemini{err: errors.New("model overloaded")}
		items := testItems()
		items[0].Author.Name = "Jordan Blake"
		items[0].Sentiment = model.SentimentNegative
		uc := newTestUseCase(newFakePostgresRepo(items...), newFakeRedisRepo(), g)

		out, err := uc.Suggest(ctx, testScope(), triage.SuggestInput{InteractionID: "a"})
		if err != nil {
			t.Fatalf("Suggest failed: %v", err)
		}
		if out.Draft == "" {
			t.Fatal("expected a template draft")
		}
		if !strings.Contains(out.Draft, "Jordan Blake") {
			t.Errorf("draft %q does not address the author", out.Draft)
		}
		if len(out.History) != 1 {
			t.Errorf("history length = %d, want 1", len(out.History))
		}
	})
}

func TestSaveView(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		uc := newTestUseCase(newFakePostgresRepo(), newFakeRedisRepo(), &fakeGemini{})

		out, err := uc.SaveView(ctx, testScope(), triage.SaveViewInput{
			Name:   "Urgent negatives",
			Filter: model.FilterState{Sentiment: model.SentimentNegative},
			Sort:   model.SortPriority,
		})
		if err != nil {
			t.Fatalf("SaveView failed: %v", err)
		}
		if out.View.ID == "" {
			t.Fatal("view id not assigned")
		}

		views, err := uc.ListViews(ctx, testScope())
		if err != nil {
			t.Fatalf("ListViews failed: %v", err)
		}
		if len(views) != 1 || views[0].View.Name != "Urgent negatives" {
			t.Fatalf("unexpected views: %+v", views)
		}
	})

	t.Run("name required", func(t *testing.T) {
		uc := newTestUseCase(newFakePostgresRepo(), newFakeRedisRepo(), &fakeGemini{})
		_, err := uc.SaveView(ctx, testScope(), triage.SaveViewInput{})
		if !errors.Is(err, triage.ErrViewNameRequired) {
			t.Fatalf("err = %v, want ErrViewNameRequired", err)
		}
	})
}
