// README: Base handler utilities (JSON helpers, rounding, error mapping).
package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"minicab/internal/modules/driver"
	"minicab/internal/modules/matching"
	"minicab/internal/modules/rides"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeDriverError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, driver.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, driver.ErrInvalidStatus), errors.Is(err, driver.ErrInvalidCoordinates):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, matching.ErrNoDrivers):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeRideError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, rides.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, rides.ErrBadRequest), errors.Is(err, rides.ErrInvalidStatus):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// round2/round3 shape numbers for presentation; scores and prices stay
// unrounded everywhere below this layer.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
