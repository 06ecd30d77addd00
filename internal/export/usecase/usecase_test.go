package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"net/url"
	"sync"
	"testing"
	"time"

	"engagement-srv/internal/export"
	"engagement-srv/internal/export/repository"
	"engagement-srv/internal/model"
	triageRepo "engagement-srv/internal/triage/repository"
	"engagement-srv/pkg/log"
	pkgMinio "engagement-srv/pkg/minio"
)

type fakeExportRepo struct {
	mu      sync.Mutex
	exports map[string]model.Export
	done    chan struct{}
}

func newFakeExportRepo() *fakeExportRepo {
	return &fakeExportRepo{
		exports: make(map[string]model.Export),
		done:    make(chan struct{}, 1),
	}
}

func (f *fakeExportRepo) CreateExport(_ context.Context, opts repository.CreateExportOptions) (*model.Export, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	exp := model.Export{
		ID:          opts.ID,
		WorkspaceID: opts.WorkspaceID,
		UserID:      opts.UserID,
		Status:      model.ExportProcessing,
		ObjectKey:   opts.ObjectKey,
		CreatedAt:   time.Now(),
	}
	f.exports[exp.ID] = exp
	return &exp, nil
}

func (f *fakeExportRepo) GetExportByID(_ context.Context, workspaceID, id string) (*model.Export, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	exp, ok := f.exports[id]
	if !ok || exp.WorkspaceID != workspaceID {
		return nil, repository.ErrExportNotFound
	}
	return &exp, nil
}

func (f *fakeExportRepo) MarkCompleted(_ context.Context, opts repository.MarkCompletedOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	exp := f.exports[opts.ID]
	exp.Status = model.ExportCompleted
	exp.FileSizeBytes = opts.FileSizeBytes
	exp.RowCount = opts.RowCount
	now := time.Now()
	exp.CompletedAt = &now
	f.exports[opts.ID] = exp
	f.signal()
	return nil
}

func (f *fakeExportRepo) MarkFailed(_ context.Context, id, errorMessage string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	exp := f.exports[id]
	exp.Status = model.ExportFailed
	exp.ErrorMessage = errorMessage
	f.exports[id] = exp
	f.signal()
	return nil
}

func (f *fakeExportRepo) signal() {
	select {
	case f.done <- struct{}{}:
	default:
	}
}

type fakeStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	fail    bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) EnsureBucket(context.Context, string) error { return nil }

func (f *fakeStorage) Upload(_ context.Context, bucket, key string, reader io.Reader, size int64, contentType string) (*pkgMinio.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errors.New("storage down")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	f.objects[bucket+"/"+key] = data
	return &pkgMinio.ObjectInfo{Key: key, Size: int64(len(data)), ContentType: contentType}, nil
}

func (f *fakeStorage) Stat(_ context.Context, bucket, key string) (*pkgMinio.ObjectInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return nil, errors.New("not found")
	}
	return &pkgMinio.ObjectInfo{Key: key, Size: int64(len(data))}, nil
}

func (f *fakeStorage) PresignedDownloadURL(_ context.Context, bucket, key string, _ time.Duration) (*url.URL, error) {
	return url.Parse("https://storage.local/" + bucket + "/" + key + "?signed=1")
}

func (f *fakeStorage) Remove(_ context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, bucket+"/"+key)
	return nil
}

func (f *fakeStorage) HealthCheck(context.Context) error { return nil }

func (f *fakeStorage) object(bucket, key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[bucket+"/"+key]
}

type fakeInteractionSource struct {
	items []model.Interaction
}

func (f *fakeInteractionSource) ListInteractions(_ context.Context, opts triageRepo.ListInteractionsOptions) ([]model.Interaction, int64, error) {
	start := opts.Offset
	if start > int64(len(f.items)) {
		start = int64(len(f.items))
	}
	end := start + opts.Limit
	if end > int64(len(f.items)) {
		end = int64(len(f.items))
	}
	return f.items[start:end], int64(len(f.items)), nil
}

func (f *fakeInteractionSource) GetInteractionByID(context.Context, string) (*model.Interaction, error) {
	return nil, triageRepo.ErrInteractionNotFound
}

func (f *fakeInteractionSource) UpdateInteraction(context.Context, triageRepo.UpdateInteractionOptions) (*model.Interaction, error) {
	return nil, triageRepo.ErrInteractionNotFound
}

func (f *fakeInteractionSource) BulkUpdate(context.Context, triageRepo.BulkUpdateOptions) (int64, error) {
	return 0, nil
}

func (f *fakeInteractionSource) BulkDelete(context.Context, string, []string) (int64, error) {
	return 0, nil
}

func (f *fakeInteractionSource) UpsertInteraction(context.Context, triageRepo.UpsertInteractionOptions) (*model.Interaction, bool, error) {
	return nil, false, nil
}

func (f *fakeInteractionSource) CountByStatus(context.Context, string) (map[model.InteractionStatus]int64, error) {
	return nil, nil
}

func sampleItems() []model.Interaction {
	rating := 4
	return []model.Interaction{
		{
			ID:          "int-1",
			WorkspaceID: "ws-1",
			Platform:    model.PlatformYouTube,
			Kind:        model.KindComment,
			Content:     "Love this, especially the \"pro tips\" part",
			Author:      model.Author{Name: "Alex Rivera", Followers: 1200},
			Sentiment:   model.SentimentPositive,
			Status:      model.StatusUnread,
			Priority:    model.PriorityNormal,
			Tags:        []string{"vip", "feedback"},
			CreatedAt:   time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:          "int-2",
			WorkspaceID: "ws-1",
			Platform:    model.PlatformGoogle,
			Kind:        model.KindReview,
			Content:     "Decent, shipping was slow",
			Author:      model.Author{Name: "Sam Okafor", Followers: 40},
			Sentiment:   model.SentimentMixed,
			Status:      model.StatusNeedsResponse,
			Priority:    model.PriorityHigh,
			Rating:      &rating,
			ReplyCount:  2,
			CreatedAt:   time.Date(2026, 8, 21, 9, 0, 0, 0, time.UTC),
		},
	}
}

func newTestUseCase(repo *fakeExportRepo, storage *fakeStorage, items []model.Interaction) export.UseCase {
	l := log.Init(log.ZapConfig{Level: "fatal"})
	return New(repo, &fakeInteractionSource{items: items}, storage, l, Config{Bucket: "exports-test"})
}

func waitForFinish(t *testing.T, repo *fakeExportRepo) {
	t.Helper()
	select {
	case <-repo.done:
	case <-time.After(2 * time.Second):
		t.Fatal("export did not finish in time")
	}
}

func TestCreateExport(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-1", WorkspaceID: "ws-1"}

	t.Run("writes a CSV with header and one row per interaction", func(t *testing.T) {
		repo := newFakeExportRepo()
		storage := newFakeStorage()
		uc := newTestUseCase(repo, storage, sampleItems())

		o, err := uc.Create(ctx, sc, export.CreateInput{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		waitForFinish(t, repo)

		got, err := uc.Get(ctx, sc, o.Export.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Export.Status != model.ExportCompleted {
			t.Fatalf("status = %q, want completed", got.Export.Status)
		}
		if got.Export.RowCount != 2 {
			t.Errorf("row count = %d, want 2", got.Export.RowCount)
		}

		data := storage.object("exports-test", got.Export.ObjectKey)
		records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		if err != nil {
			t.Fatalf("parse CSV: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("got %d records, want header + 2 rows", len(records))
		}
		if records[1][0] != "int-1" || records[2][0] != "int-2" {
			t.Errorf("unexpected row order: %q, %q", records[1][0], records[2][0])
		}
		if records[2][11] != "4" {
			t.Errorf("rating column = %q, want 4", records[2][11])
		}
		if records[1][11] != "" {
			t.Errorf("comment rating column = %q, want empty", records[1][11])
		}
	})

	t.Run("marks the export failed when upload breaks", func(t *testing.T) {
		repo := newFakeExportRepo()
		storage := newFakeStorage()
		storage.fail = true
		uc := newTestUseCase(repo, storage, sampleItems())

		o, err := uc.Create(ctx, sc, export.CreateInput{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		waitForFinish(t, repo)

		got, err := uc.Get(ctx, sc, o.Export.ID)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Export.Status != model.ExportFailed {
			t.Errorf("status = %q, want failed", got.Export.Status)
		}
		if got.Export.ErrorMessage == "" {
			t.Error("expected an error message")
		}
	})
}

func TestDownload(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u-1", WorkspaceID: "ws-1"}

	t.Run("presigns a URL for a completed export", func(t *testing.T) {
		repo := newFakeExportRepo()
		storage := newFakeStorage()
		uc := newTestUseCase(repo, storage, sampleItems())

		o, err := uc.Create(ctx, sc, export.CreateInput{})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		waitForFinish(t, repo)

		dl, err := uc.Download(ctx, sc, o.Export.ID)
		if err != nil {
			t.Fatalf("Download: %v", err)
		}
		if dl.URL == "" {
			t.Error("expected a URL")
		}
	})

	t.Run("refuses a processing export", func(t *testing.T) {
		repo := newFakeExportRepo()
		repo.exports["exp-1"] = model.Export{
			ID:          "exp-1",
			WorkspaceID: "ws-1",
			Status:      model.ExportProcessing,
		}
		uc := newTestUseCase(repo, newFakeStorage(), nil)

		_, err := uc.Download(ctx, sc, "exp-1")
		if !errors.Is(err, export.ErrExportNotReady) {
			t.Fatalf("err = %v, want ErrExportNotReady", err)
		}
	})

	t.Run("scopes lookups to the caller's workspace", func(t *testing.T) {
		repo := newFakeExportRepo()
		repo.exports["exp-1"] = model.Export{
			ID:          "exp-1",
			WorkspaceID: "ws-other",
			Status:      model.ExportCompleted,
		}
		uc := newTestUseCase(repo, newFakeStorage(), nil)

		_, err := uc.Get(ctx, sc, "exp-1")
		if !errors.Is(err, export.ErrExportNotFound) {
			t.Fatalf("err = %v, want ErrExportNotFound", err)
		}
	})
}
