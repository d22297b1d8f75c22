package response

import (
	"net/http"

	"video-hive/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Envelope is the body of every successful response.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Success    bool        `json:"success"`
}

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Errors     []string    `json:"errors"`
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
}

func New(statusCode int, message string, data interface{}) Envelope {
	if message == "" {
		message = DefaultMessage(statusCode)
	}
	return Envelope{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Success:    statusCode < http.StatusBadRequest,
	}
}

func JSON(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, New(statusCode, message, data))
}

func OK(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusOK, message, data)
}

func Created(c *gin.Context, message string, data interface{}) {
	JSON(c, http.StatusCreated, message, data)
}

// Error converts err into the error envelope and aborts the chain. The error
// is also attached to the gin context so the request logger records its cause.
func Error(c *gin.Context, err error) {
	appErr := apperror.From(err)
	_ = c.Error(err)

	message := appErr.Message
	if message == "" {
		message = DefaultMessage(appErr.StatusCode)
	}
	errs := appErr.Errors
	if errs == nil {
		errs = []string{}
	}
	c.AbortWithStatusJSON(appErr.StatusCode, ErrorEnvelope{
		StatusCode: appErr.StatusCode,
		Message:    message,
		Errors:     errs,
		Success:    false,
		Data:       nil,
	})
}

func DefaultMessage(statusCode int) string {
	switch {
	case statusCode >= 100 && statusCode < 200:
		return "Processing request"
	case statusCode >= 200 && statusCode < 300:
		return "Request completed"
	case statusCode >= 300 && statusCode < 400:
		return "Resource moved permanently"
	case statusCode >= 400 && statusCode < 500:
		return "Resource not found"
	default:
		return "Internal server error"
	}
}
