package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"busriya/internal/backend"
	"busriya/internal/domain"
)

// TripHandler exposes trip search and administration.
type TripHandler struct {
	trips backend.TripGateway
}

// NewTripHandler creates a new TripHandler.
func NewTripHandler(trips backend.TripGateway) *TripHandler {
	return &TripHandler{trips: trips}
}

// Search handles GET /v1/trips?from=&to=&date=
func (h *TripHandler) Search(c *gin.Context) {
	from, errFrom := strconv.Atoi(c.Query("from"))
	to, errTo := strconv.Atoi(c.Query("to"))
	date := c.Query("date")
	if errFrom != nil || errTo != nil || date == "" {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "from, to and date are required"})
		return
	}

	trips, err := h.trips.Search(c.Request.Context(), from, to, date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, trips)
}

// Get handles GET /v1/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid trip id"})
		return
	}

	trip, err := h.trips.Get(c.Request.Context(), tripID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, trip)
}

// List handles GET /v1/ntc/trips
func (h *TripHandler) List(c *gin.Context) {
	trips, err := h.trips.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, trips)
}

// Create handles POST /v1/ntc/trips
func (h *TripHandler) Create(c *gin.Context) {
	var trip domain.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	created, err := h.trips.Create(c.Request.Context(), &trip)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, created)
}

// TripStatusRequest is the HTTP request for a trip status update.
type TripStatusRequest struct {
	TripStatus domain.TripStatus `json:"tripStatus"`
}

// UpdateTripStatus handles PATCH /v1/ntc/trips/:id/trip-status
func (h *TripHandler) UpdateTripStatus(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid trip id"})
		return
	}

	var req TripStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.trips.UpdateTripStatus(c.Request.Context(), tripID, req.TripStatus); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// TripBookingStatusRequest is the HTTP request for opening or closing
// a trip for bookings.
type TripBookingStatusRequest struct {
	BookingStatus domain.TripBookingStatus `json:"bookingStatus"`
}

// UpdateBookingStatus handles PATCH /v1/ntc/trips/:id/booking-status
func (h *TripHandler) UpdateBookingStatus(c *gin.Context) {
	tripID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid trip id"})
		return
	}

	var req TripBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.trips.UpdateBookingStatus(c.Request.Context(), tripID, req.BookingStatus); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
