package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceIDFrom(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceIDFrom(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceIDFrom(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrMissingAPIKey):
		RespondError(c, http.StatusServiceUnavailable, "Generation API key is not configured")
	case errors.Is(err, ErrGenerationFailed), errors.Is(err, ErrEmptyCompletion), errors.Is(err, ErrInvalidItinerary):
		// Generation and parse failures read the same to the user: the trip
		// was not generated, nothing partial is shown.
		log.Printf("Generation error: %v", err)
		RespondError(c, http.StatusBadGateway, "Something went wrong generating your trip")
	case errors.Is(err, ErrWeatherUnavailable):
		RespondError(c, http.StatusBadGateway, "Weather is currently unavailable")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
