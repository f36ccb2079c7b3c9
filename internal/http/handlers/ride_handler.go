// README: Ride request handlers for create/list/get/patch-status.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"minicab/internal/modules/rides"
)

type RideHandler struct {
	rides *rides.Service
}

func NewRideHandler(svc *rides.Service) *RideHandler {
	return &RideHandler{rides: svc}
}

type createRideRequest struct {
	UserID         string `json:"user_id"`
	SourceLocation string `json:"source_location"`
	DestLocation   string `json:"dest_location"`
}

func (h *RideHandler) Create(c *gin.Context) {
	var req createRideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	r, err := h.rides.Create(c.Request.Context(), rides.CreateCommand{
		UserID:         req.UserID,
		SourceLocation: req.SourceLocation,
		DestLocation:   req.DestLocation,
	})
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, gin.H{"success": true, "ride_request": r})
}

func (h *RideHandler) List(c *gin.Context) {
	list, err := h.rides.List(c.Request.Context())
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"success":       true,
		"count":         len(list),
		"ride_requests": list,
	})
}

func (h *RideHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid ride request id")
		return
	}

	r, err := h.rides.Get(c.Request.Context(), id)
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, r)
}

func (h *RideHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid ride request id")
		return
	}

	status := c.Query("status")
	if status == "" {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err == nil {
			status = req.Status
		}
	}

	r, err := h.rides.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		writeRideError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"success": true, "ride_request": r})
}
