package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	approvalRepo "engagement-srv/internal/approval/repository"
	automationRepo "engagement-srv/internal/automation/repository"
	"engagement-srv/internal/ingest"
	"engagement-srv/internal/model"
	triageRepo "engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/log"
)

type fakeInteractionStore struct {
	items map[string]model.Interaction // keyed by (platform, external_id)
}

func newFakeInteractionStore() *fakeInteractionStore {
	return &fakeInteractionStore{items: make(map[string]model.Interaction)}
}

func (f *fakeInteractionStore) UpsertInteraction(_ context.Context, opts triageRepo.UpsertInteractionOptions) (*model.Interaction, bool, error) {
	// Stores the id verbatim, like the interactions table does.
	it := opts.Interaction
	key := string(it.Platform) + "/" + it.ExternalID
	if existing, ok := f.items[key]; ok {
		return &existing, false, nil
	}
	f.items[key] = it
	return &it, true, nil
}

func (f *fakeInteractionStore) ListInteractions(context.Context, triageRepo.ListInteractionsOptions) ([]model.Interaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeInteractionStore) GetInteractionByID(context.Context, string) (*model.Interaction, error) {
	return nil, triageRepo.ErrInteractionNotFound
}

func (f *fakeInteractionStore) UpdateInteraction(context.Context, triageRepo.UpdateInteractionOptions) (*model.Interaction, error) {
	return nil, triageRepo.ErrInteractionNotFound
}

func (f *fakeInteractionStore) BulkUpdate(context.Context, triageRepo.BulkUpdateOptions) (int64, error) {
	return 0, nil
}

func (f *fakeInteractionStore) BulkDelete(context.Context, string, []string) (int64, error) {
	return 0, nil
}

func (f *fakeInteractionStore) CountByStatus(context.Context, string) (map[model.InteractionStatus]int64, error) {
	return nil, nil
}

type fakeRuleStore struct {
	rules []model.AutomationRule
}

func (f *fakeRuleStore) ListRules(_ context.Context, workspaceID string) ([]model.AutomationRule, error) {
	return f.rules, nil
}

func (f *fakeRuleStore) ListEnabledRules(_ context.Context, workspaceID string) ([]model.AutomationRule, error) {
	var enabled []model.AutomationRule
	for _, r := range f.rules {
		if r.Enabled && r.WorkspaceID == workspaceID {
			enabled = append(enabled, r)
		}
	}
	return enabled, nil
}

func (f *fakeRuleStore) GetRuleByID(context.Context, string) (*model.AutomationRule, error) {
	return nil, automationRepo.ErrRuleNotFound
}

func (f *fakeRuleStore) CreateRule(context.Context, automationRepo.CreateRuleOptions) (*model.AutomationRule, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRuleStore) SetEnabled(context.Context, automationRepo.SetEnabledOptions) (*model.AutomationRule, error) {
	return nil, automationRepo.ErrRuleNotFound
}

type fakeApprovalStore struct {
	created []model.ApprovalItem
}

func (f *fakeApprovalStore) CreateApproval(_ context.Context, opts approvalRepo.CreateApprovalOptions) (*model.ApprovalItem, error) {
	item := model.ApprovalItem{
		ID:          opts.ID,
		WorkspaceID: opts.WorkspaceID,
		ChannelID:   opts.ChannelID,
		ResponseID:  opts.ResponseID,
		Payload:     opts.Payload,
		Priority:    opts.Priority,
		Status:      model.ApprovalPending,
		Urgent:      opts.Urgent,
		CreatedAt:   time.Now(),
	}
	f.created = append(f.created, item)
	return &item, nil
}

func (f *fakeApprovalStore) ListApprovals(context.Context, approvalRepo.ListApprovalsOptions) ([]model.ApprovalItem, int64, error) {
	return nil, 0, nil
}

func (f *fakeApprovalStore) GetApprovalByID(context.Context, string) (*model.ApprovalItem, error) {
	return nil, approvalRepo.ErrApprovalNotFound
}

func (f *fakeApprovalStore) ResolvePending(context.Context, approvalRepo.ResolvePendingOptions) (*model.ApprovalItem, error) {
	return nil, approvalRepo.ErrApprovalNotFound
}

func (f *fakeApprovalStore) UpdateResponseText(context.Context, approvalRepo.UpdateResponseTextOptions) (*model.ApprovalItem, error) {
	return nil, approvalRepo.ErrApprovalNotFound
}

type fakeGemini struct {
	reply string
	err   error
}

func (f *fakeGemini) Generate(context.Context, string) (string, error) {
	return f.reply, f.err
}

func newTestUseCase(store *fakeInteractionStore, rules *fakeRuleStore, approvals *fakeApprovalStore, g *fakeGemini) ingest.UseCase {
	l := log.Init(log.ZapConfig{Level: "fatal"})
	return New(store, rules, approvals, g, nil, l, Config{})
}

func syncEvent() ingest.EventInput {
	return ingest.EventInput{
		WorkspaceID:     "ws-1",
		Platform:        model.PlatformGoogle,
		ExternalID:      "rev-100",
		Kind:            model.KindReview,
		Content:         "Service was slow and the food was cold",
		AuthorName:      "Jordan Blake",
		AuthorFollowers: 120,
		CreatedAt:       time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		Sentiment:       model.SentimentNegative,
	}
}

func TestIngestEvent(t *testing.T) {
	ctx := context.Background()

	t.Run("negative events land as high priority needs_response", func(t *testing.T) {
		store := newFakeInteractionStore()
		uc := newTestUseCase(store, &fakeRuleStore{}, &fakeApprovalStore{}, nil)

		o, err := uc.IngestEvent(ctx, syncEvent())
		if err != nil {
			t.Fatalf("IngestEvent: %v", err)
		}
		if !o.Inserted {
			t.Error("expected a fresh insert")
		}
		if o.Interaction.Status != model.StatusNeedsResponse {
			t.Errorf("status = %q, want needs_response", o.Interaction.Status)
		}
		if o.Interaction.Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want high", o.Interaction.Priority)
		}
	})

	t.Run("ingested interactions get a fresh unique id", func(t *testing.T) {
		store := newFakeInteractionStore()
		uc := newTestUseCase(store, &fakeRuleStore{}, &fakeApprovalStore{}, nil)

		first, err := uc.IngestEvent(ctx, syncEvent())
		if err != nil {
			t.Fatalf("IngestEvent: %v", err)
		}
		if first.Interaction.ID == "" {
			t.Fatal("interaction persisted without an id")
		}

		second := syncEvent()
		second.ExternalID = "rev-101"
		o, err := uc.IngestEvent(ctx, second)
		if err != nil {
			t.Fatalf("IngestEvent: %v", err)
		}
		if o.Interaction.ID == "" || o.Interaction.ID == first.Interaction.ID {
			t.Errorf("second interaction id = %q, want distinct from %q", o.Interaction.ID, first.Interaction.ID)
		}
	})

	t.Run("large accounts are promoted regardless of sentiment", func(t *testing.T) {
		store := newFakeInteractionStore()
		uc := newTestUseCase(store, &fakeRuleStore{}, &fakeApprovalStore{}, nil)

		event := syncEvent()
		event.Sentiment = model.SentimentPositive
		event.AuthorFollowers = 50000

		o, err := uc.IngestEvent(ctx, event)
		if err != nil {
			t.Fatalf("IngestEvent: %v", err)
		}
		if o.Interaction.Priority != model.PriorityHigh {
			t.Errorf("priority = %q, want high", o.Interaction.Priority)
		}
		if o.Interaction.Status != model.StatusUnread {
			t.Errorf("status = %q, want unread", o.Interaction.Status)
		}
	})

	t.Run("re-synced events do not fire rules again", func(t *testing.T) {
		store := newFakeInteractionStore()
		approvals := &fakeApprovalStore{}
		rules := &fakeRuleStore{rules: []model.AutomationRule{{
			ID:          "rule-1",
			WorkspaceID: "ws-1",
			Name:        "Negative reviews",
			Enabled:     true,
			Trigger:     model.RuleTrigger{Sentiments: []model.Sentiment{model.SentimentNegative}},
			Response:    model.RuleResponse{Mode: "approval_required", Template: "Sorry, {author}!", RequiresApproval: true},
		}}}
		uc := newTestUseCase(store, rules, approvals, nil)

		first, err := uc.IngestEvent(ctx, syncEvent())
		if err != nil {
			t.Fatalf("first IngestEvent: %v", err)
		}
		if first.ApprovalsCreated != 1 {
			t.Fatalf("approvals created = %d, want 1", first.ApprovalsCreated)
		}

		second, err := uc.IngestEvent(ctx, syncEvent())
		if err != nil {
			t.Fatalf("second IngestEvent: %v", err)
		}
		if second.Inserted {
			t.Error("expected a dedup hit")
		}
		if second.ApprovalsCreated != 0 || len(approvals.created) != 1 {
			t.Errorf("duplicate event created approvals: %d total", len(approvals.created))
		}
	})

	t.Run("matched rule drafts the templated reply", func(t *testing.T) {
		store := newFakeInteractionStore()
		approvals := &fakeApprovalStore{}
		rules := &fakeRuleStore{rules: []model.AutomationRule{{
			ID:          "rule-1",
			WorkspaceID: "ws-1",
			Enabled:     true,
			Trigger:     model.RuleTrigger{Keywords: []string{"slow"}},
			Response:    model.RuleResponse{Mode: "approval_required", Template: "We hear you, {author}.", RequiresApproval: true},
		}}}
		uc := newTestUseCase(store, rules, approvals, nil)

		if _, err := uc.IngestEvent(ctx, syncEvent()); err != nil {
			t.Fatalf("IngestEvent: %v", err)
		}
		if len(approvals.created) != 1 {
			t.Fatalf("approvals created = %d, want 1", len(approvals.created))
		}
		item := approvals.created[0]
		if item.Payload.Reply == nil || item.Payload.Reply.ResponseText != "We hear you, Jordan Blake." {
			t.Errorf("unexpected draft: %+v", item.Payload.Reply)
		}
		if item.Payload.Action != model.ActionReplyReview {
			t.Errorf("action = %q, want reply_review", item.Payload.Action)
		}
		if !item.Urgent {
			t.Error("negative review should be urgent")
		}
	})

	t.Run("AI rules draft through the model", func(t *testing.T) {
		store := newFakeInteractionStore()
		approvals := &fakeApprovalStore{}
		rules := &fakeRuleStore{rules: []model.AutomationRule{{
			ID:          "rule-1",
			WorkspaceID: "ws-1",
			Enabled:     true,
			Response:    model.RuleResponse{Mode: "approval_required", GenerateWithAI: true, RequiresApproval: true},
		}}}
		uc := newTestUseCase(store, rules, approvals, &fakeGemini{reply: "  So sorry about that!  "})

		if _, err := uc.IngestEvent(ctx, syncEvent()); err != nil {
			t.Fatalf("IngestEvent: %v", err)
		}
		if len(approvals.created) != 1 {
			t.Fatalf("approvals created = %d, want 1", len(approvals.created))
		}
		if got := approvals.created[0].Payload.Reply.ResponseText; got != "So sorry about that!" {
			t.Errorf("draft = %q", got)
		}
	})

	t.Run("rejects incomplete events", func(t *testing.T) {
		uc := newTestUseCase(newFakeInteractionStore(), &fakeRuleStore{}, &fakeApprovalStore{}, nil)

		event := syncEvent()
		event.ExternalID = ""
		if _, err := uc.IngestEvent(ctx, event); !errors.Is(err, ingest.ErrInvalidEvent) {
			t.Fatalf("err = %v, want ErrInvalidEvent", err)
		}

		event = syncEvent()
		event.Platform = "myspace"
		if _, err := uc.IngestEvent(ctx, event); !errors.Is(err, ingest.ErrUnknownPlatform) {
			t.Fatalf("err = %v, want ErrUnknownPlatform", err)
		}
	})
}

func TestMatchTrigger(t *testing.T) {
	it := model.Interaction{
		Platform:  model.PlatformYouTube,
		Kind:      model.KindComment,
		Sentiment: model.SentimentNegative,
		Content:   "The checkout flow keeps CRASHING on mobile",
	}

	cases := []struct {
		name    string
		trigger model.RuleTrigger
		want    bool
	}{
		{"empty trigger matches everything", model.RuleTrigger{}, true},
		{"platform match", model.RuleTrigger{Platforms: []model.Platform{model.PlatformYouTube}}, true},
		{"platform mismatch", model.RuleTrigger{Platforms: []model.Platform{model.PlatformGoogle}}, false},
		{"kind match", model.RuleTrigger{Kinds: []model.InteractionKind{model.KindComment}}, true},
		{"sentiment mismatch", model.RuleTrigger{Sentiments: []model.Sentiment{model.SentimentPositive}}, false},
		{"keyword is case-insensitive", model.RuleTrigger{Keywords: []string{"crashing"}}, true},
		{"any keyword suffices", model.RuleTrigger{Keywords: []string{"refund", "mobile"}}, true},
		{"all criteria must hold", model.RuleTrigger{
			Platforms: []model.Platform{model.PlatformYouTube},
			Keywords:  []string{"refund"},
		}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := matchTrigger(tc.trigger, it); got != tc.want {
				t.Errorf("matchTrigger = %v, want %v", got, tc.want)
			}
		})
	}
}
