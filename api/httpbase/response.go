package httpbase

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"opencsg.com/report-notifier/common/errorx"
)

// OK responds the client with standard JSON.
//
// Example:
// * ok(c, something)
// * ok(c, nil)
func OK(c *gin.Context, data interface{}) {
	c.PureJSON(http.StatusOK, R{
		Msg:  "OK",
		Data: data,
	})
}

// BadRequest responds with a JSON-formatted error message.
//
// Example:
//
//	BadRequest(c, "Invalid request parameters")
func BadRequest(c *gin.Context, errMsg string) {
	c.PureJSON(http.StatusBadRequest, R{
		Msg: errMsg,
	})
}

// Error responds with status and err, the body carries the error code when err has one.
//
// Example:
//
//	Error(c, http.StatusBadRequest, errorx.InvalidRecipient(err, nil))
func Error(c *gin.Context, status int, err error) {
	r := R{Msg: err.Error()}
	if customErr, ok := errorx.GetFirstCustomError(err); ok {
		r.Code = customErr.Error()
	}
	c.PureJSON(status, r)
}

// BadGateway responds with a JSON-formatted error message when a downstream
// service refused the request.
func BadGateway(c *gin.Context, err error) {
	Error(c, http.StatusBadGateway, err)
}

func ServerError(c *gin.Context, err error) {
	c.PureJSON(http.StatusInternalServerError, R{
		Msg: err.Error(),
	})
}

// UnauthorizedError aborts the chain with a JSON-formatted error message.
func UnauthorizedError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, R{
		Msg: err.Error(),
	})
}

// R is the response envelope
type R struct {
	Code string `json:"code,omitempty"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}
