package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"issue-tracker/pkg/response"
)

// List godoc
// @Summary     List issues
// @Description Returns every issue, newest first. Filtering is done by the client.
// @Tags        Issues
// @Produce     json
// @Success     200 {array}  issueResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/issues [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, http.StatusInternalServerError), nil)
		return
	}

	response.JSON(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create an issue
// @Description Creates an issue. Status defaults to New and created to the insertion time.
// @Tags        Issues
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Issue data"
// @Success     200  {object} issueResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/issues [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err, http.StatusBadRequest), nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, http.StatusBadRequest), nil)
		return
	}

	response.JSON(c, newIssueResp(output.Issue))
}

// Detail godoc
// @Summary     Get an issue
// @Description Returns a single issue by its ID.
// @Tags        Issues
// @Produce     json
// @Param       id path string true "Issue ID"
// @Success     200 {object} issueResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/issues/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, http.StatusInternalServerError), nil)
		return
	}

	response.JSON(c, newIssueResp(output.Issue))
}

// Update godoc
// @Summary     Update an issue
// @Description Partial update: only the fields present in the body change.
// @Tags        Issues
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Issue ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} issueResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/issues/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err, http.StatusBadRequest), nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, http.StatusBadRequest), nil)
		return
	}

	response.JSON(c, newIssueResp(output.Issue))
}

// Delete godoc
// @Summary     Delete an issue
// @Description Permanently removes an issue by ID.
// @Tags        Issues
// @Produce     json
// @Param       id path string true "Issue ID"
// @Success     200 {object} deleteResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/issues/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, http.StatusInternalServerError), nil)
		return
	}

	response.JSON(c, h.newDeleteResp())
}

// Close godoc
// @Summary     Close an issue
// @Description Sets the status to Completed whatever it was before.
// @Tags        Issues
// @Produce     json
// @Param       id path string true "Issue ID"
// @Success     200 {object} issueResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/issues/{id}/close [PATCH]
func (h *handler) Close(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Close(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Close: %v", err)
		response.Error(c, h.mapError(err, http.StatusBadRequest), nil)
		return
	}

	response.JSON(c, newIssueResp(output.Issue))
}
