package http

import (
	"github.com/gin-gonic/gin"

	"engagement-srv/internal/model"
	"engagement-srv/pkg/scope"
)

func (h *handler) processCreateRuleRequest(c *gin.Context) (createRuleReq, model.Scope, error) {
	var req createRuleReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "automation.delivery.http.processCreateRuleRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}

func (h *handler) processSetEnabledRequest(c *gin.Context) (setEnabledReq, model.Scope, error) {
	var req setEnabledReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "automation.delivery.http.processSetEnabledRequest: ShouldBindJSON failed: %v", err)
		return req, model.Scope{}, err
	}
	req.RuleID = c.Param("rule_id")

	sc := scope.GetScopeFromContext(ctx)
	return req, sc, nil
}
