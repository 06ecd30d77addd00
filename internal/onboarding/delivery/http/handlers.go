package http

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"engagement-srv/internal/onboarding"
	pkgErrors "engagement-srv/pkg/errors"
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"
)

var errUnknownStep = pkgErrors.NewHTTPError(400, "Unknown onboarding step")

type stepStatusResp struct {
	Step        string  `json:"step"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at,omitempty"`
}

type statusResp struct {
	Steps     []stepStatusResp `json:"steps"`
	Completed bool             `json:"completed"`
}

func newStatusResp(o onboarding.StatusOutput) statusResp {
	steps := make([]stepStatusResp, 0, len(o.Steps))
	for _, st := range o.Steps {
		resp := stepStatusResp{
			Step:      st.Step,
			Completed: st.Completed,
		}
		if st.CompletedAt != nil {
			at := st.CompletedAt.Format(time.RFC3339)
			resp.CompletedAt = &at
		}
		steps = append(steps, resp)
	}
	return statusResp{
		Steps:     steps,
		Completed: o.Completed,
	}
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, onboarding.ErrUnknownStep):
		return errUnknownStep
	default:
		return err
	}
}

// @Summary Get onboarding status
// @Description Return per-step completion for the current user
// @Tags Onboarding
// @Produce json
// @Success 200 {object} statusResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/onboarding/status [get]
func (h *handler) GetStatus(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetStatus(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "onboarding.delivery.http.GetStatus: usecase GetStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStatusResp(o))
}

// @Summary Complete an onboarding step
// @Description Mark one step done; completing it again is a no-op
// @Tags Onboarding
// @Produce json
// @Param step path string true "Step name"
// @Success 200 {object} statusResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/onboarding/steps/{step}/complete [post]
func (h *handler) CompleteStep(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.CompleteStep(ctx, sc, onboarding.CompleteStepInput{
		Step: c.Param("step"),
	})
	if err != nil {
		h.l.Errorf(ctx, "onboarding.delivery.http.CompleteStep: usecase CompleteStep failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newStatusResp(o))
}
