// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pwd-strength/pkg/strength"
)

type checkApi struct {
	evaluator *strength.Evaluator
}

func (a *checkApi) checkPassword(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	report := a.evaluator.Evaluate(*req.Password)
	c.JSON(http.StatusOK, newCheckResponse(report, NewReference(*req.Password)))
}

func (a *checkApi) checkBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	resp := make([]checkResponse, len(req.Passwords))
	for i, password := range req.Passwords {
		resp[i] = newCheckResponse(a.evaluator.Evaluate(password), NewReference(password))
	}

	c.JSON(http.StatusOK, resp)
}

func (a *checkApi) listCriteria(c *gin.Context) {
	criteria := a.evaluator.Criteria()
	resp := make([]criterionResponse, len(criteria))
	for i, cr := range criteria {
		resp[i] = criterionResponse{
			ID:        cr.ID,
			Label:     cr.Label,
			Weight:    cr.Weight,
			Rationale: cr.Rationale,
		}
	}

	c.JSON(http.StatusOK, resp)
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// RegisterCheckApi mounts the password checks and the criteria listing on the
// version group.
func RegisterCheckApi(group *gin.RouterGroup, evaluator *strength.Evaluator) {
	a := &checkApi{evaluator: evaluator}

	check := group.Group("/check")
	check.POST("/password", a.checkPassword)
	check.POST("/batch", a.checkBatch)

	group.GET("/criteria", a.listCriteria)
}
