package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/demo"
	pkgErrors "engagement-srv/pkg/errors"
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"
)

var (
	errSeedInProgress = pkgErrors.NewHTTPError(409, "A seed run is already in progress")
	errInvalidCount   = pkgErrors.NewHTTPError(400, "Invalid seed count")
	errNoSeedJob      = pkgErrors.NewHTTPError(404, "No seed job for this workspace")
)

type seedReq struct {
	Count int `json:"count"`
}

type seedJobResp struct {
	ID         string  `json:"id"`
	State      string  `json:"state"`
	Requested  int     `json:"requested"`
	Seeded     int     `json:"seeded"`
	StartedAt  string  `json:"started_at"`
	FinishedAt *string `json:"finished_at,omitempty"`
}

func newSeedJobResp(job demo.SeedJob) seedJobResp {
	resp := seedJobResp{
		ID:        job.ID,
		State:     job.State,
		Requested: job.Requested,
		Seeded:    job.Seeded,
		StartedAt: job.StartedAt.Format(time.RFC3339),
	}
	if job.FinishedAt != nil {
		finished := job.FinishedAt.Format(time.RFC3339)
		resp.FinishedAt = &finished
	}
	return resp
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, demo.ErrSeedInProgress):
		return errSeedInProgress
	case errors.Is(err, demo.ErrInvalidCount):
		return errInvalidCount
	case errors.Is(err, demo.ErrNoSeedJob):
		return errNoSeedJob
	default:
		return err
	}
}

// @Summary Seed demo interactions
// @Description Start a background run that fills the workspace with sample interactions
// @Tags Demo
// @Accept json
// @Produce json
// @Param body body seedReq false "Seed options"
// @Success 200 {object} seedJobResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/v1/demo/seed [post]
func (h *handler) Seed(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var req seedReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.l.Errorf(ctx, "demo.delivery.http.Seed: ShouldBindJSON failed: %v", err)
			response.Error(c, err, h.discord)
			return
		}
	}

	o, err := h.uc.Seed(ctx, sc, demo.SeedInput{Count: req.Count})
	if err != nil {
		h.l.Errorf(ctx, "demo.delivery.http.Seed: usecase Seed failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSeedJobResp(o.Job))
}

// @Summary Get seed job status
// @Description Return the latest seed run for the workspace
// @Tags Demo
// @Produce json
// @Success 200 {object} seedJobResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/demo/status [get]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Status(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "demo.delivery.http.Status: usecase Status failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newSeedJobResp(*o.Job))
}
