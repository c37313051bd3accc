package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"busriya/internal/backend"
	"busriya/internal/domain"
	"busriya/internal/service"
)

// BookingHandler exposes the eTicket flows (view, cancel), ticket
// scanning, lost parcel reporting and the administrative booking
// operations.
type BookingHandler struct {
	bookings *service.BookingService
	gateway  backend.BookingGateway
	flows    *service.Registry[*service.VerificationFlow]
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookings *service.BookingService, gateway backend.BookingGateway, flows *service.Registry[*service.VerificationFlow]) *BookingHandler {
	return &BookingHandler{bookings: bookings, gateway: gateway, flows: flows}
}

// ETicketRequest is the HTTP request carrying an eTicket code.
type ETicketRequest struct {
	ETicket string `json:"eTicket"`
}

// FlowResponse is the HTTP representation of a verification flow.
type FlowResponse struct {
	FlowID  string                `json:"flowId,omitempty"`
	Stage   string                `json:"stage"`
	Booking *domain.ETicketRecord `json:"booking,omitempty"`
}

// lookup runs phase A for a freshly built flow. A short-circuited flow
// (already verified) has its terminal action completed immediately
// when autoComplete is set; otherwise the flow is parked in the
// registry awaiting its OTP.
func (h *BookingHandler) lookup(c *gin.Context, flow *service.VerificationFlow, autoComplete bool) {
	var req ETicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrETicketRequired)
		return
	}

	stage, err := flow.Lookup(c.Request.Context(), req.ETicket)
	if err != nil {
		respondError(c, err)
		return
	}

	if stage == service.StageVerified && autoComplete {
		record, err := flow.Complete(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondJSON(c, http.StatusOK, FlowResponse{Stage: stage.String(), Booking: record})
		return
	}

	h.flows.Put(flow.ID(), flow)
	respondJSON(c, http.StatusOK, FlowResponse{FlowID: flow.ID(), Stage: stage.String()})
}

// StartView handles POST /v1/eticket/view
func (h *BookingHandler) StartView(c *gin.Context) {
	h.lookup(c, h.bookings.NewViewFlow(), true)
}

// ViewOTP handles POST /v1/eticket/view/:id/otp
func (h *BookingHandler) ViewOTP(c *gin.Context) {
	flow, ok := h.flows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrFlowNotFound)
		return
	}

	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidOTP)
		return
	}

	if _, err := flow.SubmitOTP(c.Request.Context(), req.OTP); err != nil {
		respondError(c, err)
		return
	}

	record, err := flow.Complete(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	h.flows.Remove(flow.ID())
	respondJSON(c, http.StatusOK, FlowResponse{Stage: flow.Stage().String(), Booking: record})
}

// StartCancel handles POST /v1/eticket/cancel
func (h *BookingHandler) StartCancel(c *gin.Context) {
	// Cancellation always waits for the commuter's explicit
	// confirmation, even when the lookup short-circuits.
	h.lookup(c, h.bookings.NewCancelFlow(), false)
}

// CancelOTP handles POST /v1/eticket/cancel/:id/otp
func (h *BookingHandler) CancelOTP(c *gin.Context) {
	flow, ok := h.flows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrFlowNotFound)
		return
	}

	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrInvalidOTP)
		return
	}

	stage, err := flow.SubmitOTP(c.Request.Context(), req.OTP)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, FlowResponse{FlowID: flow.ID(), Stage: stage.String()})
}

// ConfirmCancel handles POST /v1/eticket/cancel/:id/confirm
func (h *BookingHandler) ConfirmCancel(c *gin.Context) {
	flow, ok := h.flows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrFlowNotFound)
		return
	}

	if _, err := flow.Complete(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	h.flows.Remove(flow.ID())
	respondJSON(c, http.StatusOK, gin.H{"message": "Booking cancellation successful"})
}

// ScanTicket handles POST /v1/operator/tickets/scan
func (h *BookingHandler) ScanTicket(c *gin.Context) {
	var req ETicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, service.ErrETicketRequired)
		return
	}

	if err := h.bookings.ScanTicket(c.Request.Context(), req.ETicket); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, gin.H{"ticketStatus": domain.TicketStatusUsed})
}

// ReportLostParcel handles POST /v1/lost-parcels
func (h *BookingHandler) ReportLostParcel(c *gin.Context) {
	var parcel domain.LostParcel
	if err := c.ShouldBindJSON(&parcel); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	referenceID, err := h.bookings.ReportLostParcel(c.Request.Context(), &parcel)
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusCreated, gin.H{"referenceId": referenceID})
}

// ListLostParcels handles GET /v1/ntc/lost-parcels
func (h *BookingHandler) ListLostParcels(c *gin.Context) {
	parcels, err := h.gateway.ListLostParcels(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, parcels)
}

// ParcelStatusRequest is the HTTP request for a parcel status update.
type ParcelStatusRequest struct {
	Status domain.ParcelStatus `json:"status"`
}

// UpdateLostParcel handles PATCH /v1/ntc/lost-parcels/:id
func (h *BookingHandler) UpdateLostParcel(c *gin.Context) {
	parcelID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid parcel id"})
		return
	}

	var req ParcelStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.gateway.UpdateLostParcel(c.Request.Context(), parcelID, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBookings handles GET /v1/ntc/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.gateway.ListBookings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, bookings)
}

// BookingStatusRequest is the HTTP request for a booking status update.
type BookingStatusRequest struct {
	BookingStatus domain.BookingStatus `json:"bookingStatus"`
}

// UpdateBookingStatus handles PATCH /v1/ntc/bookings/:id/booking-status
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid booking id"})
		return
	}

	var req BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.gateway.UpdateBookingStatus(c.Request.Context(), bookingID, req.BookingStatus); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
