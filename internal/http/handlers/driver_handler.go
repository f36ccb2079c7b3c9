// README: Driver handlers for nearby search, matching, and state updates.
package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minicab/internal/modules/driver"
	"minicab/internal/modules/matching"
)

type DriverHandler struct {
	drivers *driver.Service
	match   *matching.Engine
}

func NewDriverHandler(drivers *driver.Service, match *matching.Engine) *DriverHandler {
	return &DriverHandler{drivers: drivers, match: match}
}

// candidateView is the wire shape of a scored driver: distance and price to
// two decimals, match score to three.
type candidateView struct {
	Driver     driver.Driver `json:"driver"`
	Distance   float64       `json:"distance"`
	Eta        int           `json:"eta"`
	Price      float64       `json:"price"`
	MatchScore float64       `json:"match_score"`
}

func toView(c matching.Candidate) candidateView {
	return candidateView{
		Driver:     c.Driver,
		Distance:   round2(c.DistanceKm),
		Eta:        c.EtaMinutes,
		Price:      round2(c.PriceUnits),
		MatchScore: round3(c.Score),
	}
}

func toViews(cs []matching.Candidate) []candidateView {
	out := make([]candidateView, len(cs))
	for i, c := range cs {
		out[i] = toView(c)
	}
	return out
}

func (h *DriverHandler) Nearby(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "lat is required and must be a number")
		return
	}
	lng, err := strconv.ParseFloat(c.Query("lng"), 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "lng is required and must be a number")
		return
	}

	radius := 0.0 // engine default
	if raw := c.Query("radius"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil || radius < 0 {
			writeError(c, http.StatusBadRequest, "radius must be a non-negative number")
			return
		}
	}

	ranked := h.match.Nearby(lat, lng, radius)
	writeJSON(c, http.StatusOK, gin.H{
		"success": true,
		"count":   len(ranked),
		"drivers": toViews(ranked),
	})
}

type matchRequest struct {
	UserLat     *float64 `json:"user_lat" binding:"required"`
	UserLng     *float64 `json:"user_lng" binding:"required"`
	Destination string   `json:"destination" binding:"required"`
	UserID      string   `json:"user_id" binding:"required"`
}

func (h *DriverHandler) Match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	best, top, err := h.match.BestMatch(*req.UserLat, *req.UserLng)
	if err != nil {
		writeDriverError(c, err)
		return
	}

	bestView := toView(best)
	writeJSON(c, http.StatusOK, gin.H{
		"success":     true,
		"best_match":  bestView,
		"all_drivers": toViews(top),
		"message":     fmt.Sprintf("Found perfect match: %s - %d min away", best.Driver.Name, best.EtaMinutes),
	})
}

func (h *DriverHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid driver id")
		return
	}

	d, err := h.drivers.Get(id)
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, d)
}

type locationUpdateRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

func (h *DriverHandler) UpdateLocation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid driver id")
		return
	}

	var req locationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	d, err := h.drivers.UpdateLocation(c.Request.Context(), id, *req.Lat, *req.Lng)
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Location updated for driver %d", id),
		"driver":  d,
	})
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *DriverHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid driver id")
		return
	}

	status := c.Query("status")
	if status == "" {
		var req statusUpdateRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			status = req.Status
		}
	}

	d, err := h.drivers.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		writeDriverError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("Status updated to %s for driver %d", d.Status, id),
		"driver":  d,
	})
}
