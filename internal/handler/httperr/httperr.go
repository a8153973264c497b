package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"hotel-inventory/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const internalMessage = "Internal server error"

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errors.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch errs.Kind(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInvalidArgument:
		return http.StatusBadRequest
	case errs.ErrConflict, errs.ErrIntegrityViolation:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Respond aborts with the status of err's kind. Unclassified errors are
// logged and answered with a generic message.
func Respond(c *gin.Context, err error) {
	status := StatusOf(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.FullPath(),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, 12))
		AbortWithError(c, status, err, internalMessage, nil)
		return
	}
	AbortWithError(c, status, err, err.Error(), nil)
}

// BadRequest answers a bind or parse failure.
func BadRequest(c *gin.Context, err error, msg string) {
	var detail any
	if err != nil {
		detail = err.Error()
	}
	AbortWithError(c, http.StatusBadRequest, err, msg, detail)
}
