package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"issue-tracker/internal/issue"
)

// processCreateReq binds and validates the create issue request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processCreateReq bind: %v", err)
		return req, fmt.Errorf("%w: %v", issue.ErrInvalidPayload, err)
	}
	return req, req.validate()
}

// processUpdateReq binds the update issue request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "processUpdateReq bind: %v", err)
		return req, fmt.Errorf("%w: %v", issue.ErrInvalidPayload, err)
	}
	req.ID = c.Param("id")
	return req, req.validate()
}
