package api

import (
	"errors"
	"log"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"zoo-backend/internal/zoo"
)

// Field validation failures are reported under the JSON field names the
// client sent, not the Go struct field names.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// apiError is the structured error envelope returned for domain failures.
type apiError struct {
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func newAPIError(status int, message string) apiError {
	return apiError{
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// respondError maps domain errors to HTTP responses. Unexpected errors are
// logged server-side and surface as a generic 500 with no internal detail.
func respondError(c *gin.Context, err error) {
	var notFound *zoo.NotFoundError
	if errors.As(err, &notFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, newAPIError(http.StatusNotFound, notFound.Message))
		return
	}

	var validation *zoo.ValidationError
	if errors.As(err, &validation) {
		c.AbortWithStatusJSON(http.StatusBadRequest, newAPIError(http.StatusBadRequest, validation.Message))
		return
	}

	log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		newAPIError(http.StatusInternalServerError, "Internal server error"))
}

// bindJSON binds the request body into req. Field validation failures
// produce a 400 with a field-to-message map; malformed bodies produce a
// 400 error envelope. Returns false when the request was rejected.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields[fe.Field()] = fieldMessage(fe)
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, fields)
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, newAPIError(http.StatusBadRequest, err.Error()))
	return false
}

func fieldMessage(fe validator.FieldError) string {
	if fe.Tag() == "required" {
		return "is required"
	}
	return "failed " + fe.Tag() + " validation"
}
