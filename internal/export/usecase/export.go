package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"engagement-srv/internal/export"
	"engagement-srv/internal/export/repository"
	"engagement-srv/internal/model"
	triageRepo "engagement-srv/internal/triage/repository"
)

// Create starts a CSV export of the filtered interaction list. The file is
// built in the background; Get reports progress and Download hands out the
// link once the row is completed.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input export.CreateInput) (export.ExportOutput, error) {
	id := uuid.New().String()
	objectKey := fmt.Sprintf("%s/%s.csv", sc.WorkspaceID, id)

	exp, err := uc.repo.CreateExport(ctx, repository.CreateExportOptions{
		ID:          id,
		WorkspaceID: sc.WorkspaceID,
		UserID:      sc.UserID,
		ObjectKey:   objectKey,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Create: Failed to create export row: %v", err)
		return export.ExportOutput{}, err
	}

	go uc.runExport(context.WithoutCancel(ctx), *exp, input)

	return export.ExportOutput{Export: *exp}, nil
}

// Get returns one export row, scoped to the caller's workspace.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, exportID string) (export.ExportOutput, error) {
	exp, err := uc.repo.GetExportByID(ctx, sc.WorkspaceID, exportID)
	if errors.Is(err, repository.ErrExportNotFound) {
		return export.ExportOutput{}, export.ErrExportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Get: Failed to load export: %v", err)
		return export.ExportOutput{}, err
	}
	return export.ExportOutput{Export: *exp}, nil
}

// Download presigns a time-limited URL for a completed export.
func (uc *implUseCase) Download(ctx context.Context, sc model.Scope, exportID string) (export.DownloadOutput, error) {
	exp, err := uc.repo.GetExportByID(ctx, sc.WorkspaceID, exportID)
	if errors.Is(err, repository.ErrExportNotFound) {
		return export.DownloadOutput{}, export.ErrExportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Download: Failed to load export: %v", err)
		return export.DownloadOutput{}, err
	}

	switch exp.Status {
	case model.ExportCompleted:
	case model.ExportFailed:
		return export.DownloadOutput{}, export.ErrExportFailed
	default:
		return export.DownloadOutput{}, export.ErrExportNotReady
	}

	u, err := uc.storage.PresignedDownloadURL(ctx, uc.config.Bucket, exp.ObjectKey, export.DownloadExpiry)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Download: Failed to presign URL: %v", err)
		return export.DownloadOutput{}, err
	}

	return export.DownloadOutput{
		URL:       u.String(),
		ExpiresAt: time.Now().Add(export.DownloadExpiry),
	}, nil
}

func (uc *implUseCase) runExport(ctx context.Context, exp model.Export, input export.CreateInput) {
	var buf bytes.Buffer
	rows, err := uc.writeCSV(ctx, &buf, exp.WorkspaceID, input)
	if err != nil {
		uc.fail(ctx, exp.ID, err)
		return
	}

	if err := uc.storage.EnsureBucket(ctx, uc.config.Bucket); err != nil {
		uc.fail(ctx, exp.ID, err)
		return
	}
	size := int64(buf.Len())
	if _, err := uc.storage.Upload(ctx, uc.config.Bucket, exp.ObjectKey, &buf, size, "text/csv"); err != nil {
		uc.fail(ctx, exp.ID, err)
		return
	}

	if err := uc.repo.MarkCompleted(ctx, repository.MarkCompletedOptions{
		ID:            exp.ID,
		FileSizeBytes: size,
		RowCount:      rows,
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.runExport: Failed to mark export completed: %v", err)
	}
}

func (uc *implUseCase) fail(ctx context.Context, exportID string, cause error) {
	uc.l.Errorf(ctx, "export.usecase.runExport: Export %s failed: %v", exportID, cause)
	if err := uc.repo.MarkFailed(ctx, exportID, cause.Error()); err != nil {
		uc.l.Errorf(ctx, "export.usecase.runExport: Failed to mark export failed: %v", err)
	}
}

func (uc *implUseCase) listPage(ctx context.Context, workspaceID string, input export.CreateInput, offset int64) ([]model.Interaction, error) {
	items, _, err := uc.interactions.ListInteractions(ctx, triageRepo.ListInteractionsOptions{
		WorkspaceID: workspaceID,
		Platforms:   input.Filter.Platforms,
		Sentiment:   input.Filter.Sentiment,
		Status:      input.Filter.Status,
		Search:      input.Filter.Search,
		DateFrom:    input.Filter.DateFrom,
		DateTo:      input.Filter.DateTo,
		Sort:        input.Sort,
		Limit:       pageSize,
		Offset:      offset,
	})
	return items, err
}
