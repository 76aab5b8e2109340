package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "issue-tracker/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the Resp envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// JSON sends 200 with data as the bare body, no envelope.
func JSON(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Error sends an error response. An *errors.HTTPError decides the status code;
// anything else is reported as 400.
func Error(c *gin.Context, err error, data map[string]interface{}) {
	status := http.StatusBadRequest
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.StatusCode
	}

	resp := Resp{
		ErrorCode: status,
		Message:   err.Error(),
	}
	if len(data) > 0 {
		resp.Data = data
	}
	c.JSON(status, resp)
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{
		ErrorCode: http.StatusTooManyRequests,
		Message:   "Too many requests",
	})
}
