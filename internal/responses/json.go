package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func Success(c *gin.Context, statusCode int, data interface{}, message string) {
	c.JSON(statusCode, APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail writes an error envelope. The text of server-side errors is replaced by
// the status text; it is attached to the gin context for the request log instead.
func Fail(c *gin.Context, statusCode int, err error, message string) {
	c.JSON(statusCode, failure(c, statusCode, err, message))
}

// Abort is Fail for middlewares: later handlers in the chain do not run.
func Abort(c *gin.Context, statusCode int, err error, message string) {
	c.AbortWithStatusJSON(statusCode, failure(c, statusCode, err, message))
}

func failure(c *gin.Context, statusCode int, err error, message string) APIResponse {
	resp := APIResponse{
		Status:  StatusError,
		Message: message,
	}
	if err == nil {
		return resp
	}
	if statusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
		resp.Error = http.StatusText(statusCode)
		return resp
	}
	resp.Error = err.Error()
	return resp
}
