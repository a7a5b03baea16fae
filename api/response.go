package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airportregistry/internal/repository"
	"github.com/gin-gonic/gin"
)

const (
	resultSuccess = "SUCCESS"
	resultFailure = "FAILURE"

	// notFoundValue is reported by numeric queries about an unknown flight or route.
	notFoundValue = -1
)

type resultResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

func writeSuccess(c *gin.Context, status int) {
	c.JSON(status, resultResponse{Result: resultSuccess})
}

func writeFailure(c *gin.Context, err error) {
	c.JSON(statusFor(err), resultResponse{Result: resultFailure, Error: err.Error()})
}

func writeBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, resultResponse{Result: resultFailure, Error: message})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, repository.ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		writeBadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
