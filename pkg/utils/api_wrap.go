package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const TraceIDKey = "trace_id"

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"traceId,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respond(c *gin.Context, code int, data interface{}, message string) {
	status := "success"
	if code >= http.StatusBadRequest {
		status = "error"
	}
	c.JSON(code, APIResponse{
		Status:  status,
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Data:    data,
	})
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusOK, data, message)
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	respond(c, http.StatusCreated, data, message)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func RespondError(c *gin.Context, code int, message string) {
	respond(c, code, nil, message)
}

// RespondErrorData is RespondError with a payload, used where the client
// expects extra fields next to the message.
func RespondErrorData(c *gin.Context, code int, message string, data interface{}) {
	respond(c, code, data, message)
}

// HandleServiceError writes the client-facing form of err. Internal failures
// are logged with their cause and answered with the generic message only.
func HandleServiceError(c *gin.Context, log *zap.Logger, err error) {
	code := StatusFor(err)

	message := "Internal server error"
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	if code == http.StatusInternalServerError {
		log.Error("request failed",
			zap.String("trace_id", c.GetString(TraceIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}

	RespondError(c, code, message)
}
