package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/automation"
	"engagement-srv/pkg/response"
	"engagement-srv/pkg/scope"
)

// @Summary List automation rules
// @Description Return all rules in the caller's workspace
// @Tags Automation
// @Produce json
// @Success 200 {array} ruleResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/automation/rules [get]
func (h *handler) ListRules(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	rules, err := h.uc.ListRules(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "automation.delivery.http.ListRules: usecase ListRules failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	out := make([]ruleResp, 0, len(rules))
	for _, rule := range rules {
		out = append(out, newRuleResp(rule))
	}
	response.OK(c, out)
}

// @Summary Create an automation rule
// @Description Create a rule reacting to incoming interactions
// @Tags Automation
// @Accept json
// @Produce json
// @Param body body createRuleReq true "Rule definition"
// @Success 200 {object} ruleResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/automation/rules [post]
func (h *handler) CreateRule(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRuleRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "automation.delivery.http.CreateRule: processCreateRuleRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.CreateRule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "automation.delivery.http.CreateRule: usecase CreateRule failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRuleResp(o.Rule))
}

// @Summary Enable or disable a rule
// @Description Toggle whether a rule fires on incoming interactions
// @Tags Automation
// @Accept json
// @Produce json
// @Param rule_id path string true "Rule ID"
// @Param body body setEnabledReq true "Enabled flag"
// @Success 200 {object} ruleResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/automation/rules/{rule_id}/enabled [patch]
func (h *handler) SetEnabled(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSetEnabledRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "automation.delivery.http.SetEnabled: processSetEnabledRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SetEnabled(ctx, sc, automation.SetEnabledInput{
		RuleID:  req.RuleID,
		Enabled: *req.Enabled,
	})
	if err != nil {
		h.l.Errorf(ctx, "automation.delivery.http.SetEnabled: usecase SetEnabled failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRuleResp(o.Rule))
}
