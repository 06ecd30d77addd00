package usecase

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"engagement-srv/internal/export"
	"engagement-srv/internal/model"
)

// pageSize is the repository page size used while streaming rows into the CSV.
const pageSize = 500

var csvHeader = []string{
	"id", "platform", "kind", "author", "followers", "content",
	"sentiment", "status", "priority", "tags", "assigned_to",
	"rating", "reply_count", "created_at",
}

// writeCSV streams the filtered interaction list into w and returns the
// number of data rows written.
func (uc *implUseCase) writeCSV(ctx context.Context, w io.Writer, workspaceID string, input export.CreateInput) (int, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return 0, err
	}

	rows := 0
	var offset int64
	for {
		items, err := uc.listPage(ctx, workspaceID, input, offset)
		if err != nil {
			return rows, err
		}
		if len(items) == 0 {
			break
		}
		for _, it := range items {
			if err := cw.Write(csvRecord(it)); err != nil {
				return rows, err
			}
			rows++
		}
		if len(items) < pageSize {
			break
		}
		offset += int64(len(items))
	}

	cw.Flush()
	return rows, cw.Error()
}

func csvRecord(it model.Interaction) []string {
	rating := ""
	if it.Rating != nil {
		rating = strconv.Itoa(*it.Rating)
	}
	return []string{
		it.ID,
		string(it.Platform),
		string(it.Kind),
		it.Author.Name,
		strconv.Itoa(it.Author.Followers),
		it.Content,
		string(it.Sentiment),
		string(it.Status),
		string(it.Priority),
		strings.Join(it.Tags, ";"),
		it.AssignedTo,
		rating,
		strconv.Itoa(it.ReplyCount),
		it.CreatedAt.Format(time.RFC3339),
	}
}
