package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busriya/internal/domain"
	"busriya/internal/service"
)

// ReservationHandler exposes the reservation workflow. Each workflow
// instance lives in the registry between submissions and is discarded
// on completion or abandonment.
type ReservationHandler struct {
	reservations *service.ReservationService
	workflows    *service.Registry[*service.ReservationWorkflow]
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(reservations *service.ReservationService, workflows *service.Registry[*service.ReservationWorkflow]) *ReservationHandler {
	return &ReservationHandler{reservations: reservations, workflows: workflows}
}

// WorkflowResponse is the HTTP representation of a workflow instance.
type WorkflowResponse struct {
	WorkflowID     string       `json:"workflowId"`
	Step           string       `json:"step"`
	CommuterID     int          `json:"commuterId,omitempty"`
	VerificationID int          `json:"verificationId,omitempty"`
	BookingID      int          `json:"bookingId,omitempty"`
	Trip           *domain.Trip `json:"trip,omitempty"`
}

func workflowResponse(w *service.ReservationWorkflow, withTrip bool) WorkflowResponse {
	resp := WorkflowResponse{
		WorkflowID:     w.ID(),
		Step:           w.Step().String(),
		CommuterID:     w.CommuterID(),
		VerificationID: w.VerificationID(),
		BookingID:      w.BookingID(),
	}
	if withTrip {
		resp.Trip = w.Trip()
	}
	return resp
}

// StartRequest is the HTTP request for starting a workflow.
type StartRequest struct {
	TripID int `json:"tripId"`
}

// Start handles POST /v1/reservations
func (h *ReservationHandler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "tripId is required"})
		return
	}

	workflow, err := h.reservations.Start(c.Request.Context(), req.TripID)
	if err != nil {
		respondError(c, err)
		return
	}

	h.workflows.Put(workflow.ID(), workflow)
	respondJSON(c, http.StatusCreated, workflowResponse(workflow, true))
}

// Get handles GET /v1/reservations/:id
func (h *ReservationHandler) Get(c *gin.Context) {
	workflow, ok := h.workflows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrWorkflowNotFound)
		return
	}
	respondJSON(c, http.StatusOK, workflowResponse(workflow, true))
}

// CommuterRequest is the HTTP request for the commuter creation step.
type CommuterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	NIC       string `json:"nic"`
	Mobile    string `json:"mobile"`
	Email     string `json:"email"`
}

// SubmitCommuter handles POST /v1/reservations/:id/commuter
func (h *ReservationHandler) SubmitCommuter(c *gin.Context) {
	workflow, ok := h.workflows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrWorkflowNotFound)
		return
	}

	var req CommuterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	commuter := &domain.Commuter{
		Name: domain.Name{FirstName: req.FirstName, LastName: req.LastName},
		NIC:  req.NIC,
		Contact: domain.Contact{
			Mobile: req.Mobile,
			Email:  req.Email,
		},
	}

	if _, err := workflow.SubmitCommuter(commuter); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, workflowResponse(workflow, false))
}

// SeatRequest is the HTTP request for the seat selection step.
type SeatRequest struct {
	SeatNumber int `json:"seatNumber"`
}

// SelectSeat handles POST /v1/reservations/:id/seat
func (h *ReservationHandler) SelectSeat(c *gin.Context) {
	workflow, ok := h.workflows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrWorkflowNotFound)
		return
	}

	var req SeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if _, err := workflow.SelectSeat(req.SeatNumber); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, workflowResponse(workflow, false))
}

// OTPRequest is the HTTP request for an OTP submission.
type OTPRequest struct {
	OTP string `json:"otp"`
}

// SubmitOTP handles POST /v1/reservations/:id/otp
func (h *ReservationHandler) SubmitOTP(c *gin.Context) {
	workflow, ok := h.workflows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrWorkflowNotFound)
		return
	}

	var req OTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondJSON(c, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	if _, err := workflow.SubmitOTP(req.OTP); err != nil {
		respondError(c, err)
		return
	}
	respondJSON(c, http.StatusOK, workflowResponse(workflow, false))
}

// PaymentResponse is the HTTP response for a successful payment
// initiation.
type PaymentResponse struct {
	WorkflowID  string `json:"workflowId"`
	Step        string `json:"step"`
	BookingID   int    `json:"bookingId"`
	RedirectURL string `json:"redirectUrl"`
}

// InitiatePayment handles POST /v1/reservations/:id/payment
func (h *ReservationHandler) InitiatePayment(c *gin.Context) {
	workflow, ok := h.workflows.Get(c.Param("id"))
	if !ok {
		respondError(c, service.ErrWorkflowNotFound)
		return
	}

	redirectURL, err := workflow.InitiatePayment()
	if err != nil {
		respondError(c, err)
		return
	}

	// The workflow finished; drop the instance.
	response := PaymentResponse{
		WorkflowID:  workflow.ID(),
		Step:        workflow.Step().String(),
		BookingID:   workflow.BookingID(),
		RedirectURL: redirectURL,
	}
	h.workflows.Remove(workflow.ID())

	respondJSON(c, http.StatusOK, response)
}

// Abandon handles DELETE /v1/reservations/:id
func (h *ReservationHandler) Abandon(c *gin.Context) {
	if !h.workflows.Remove(c.Param("id")) {
		respondError(c, service.ErrWorkflowNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
