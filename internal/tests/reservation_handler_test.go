package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"busriya/internal/backend"
	"busriya/internal/handler"
	"busriya/internal/service"
)

// ──────────────────────────────────────────────
// 12. RESERVATION ENDPOINTS
// ──────────────────────────────────────────────

func reservationRouter(t *testing.T, bookings *MockBookingGateway, trips *MockTripGateway) (*gin.Engine, *service.Registry[*service.ReservationWorkflow]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	workflows := service.NewRegistry[*service.ReservationWorkflow](time.Minute, func(w *service.ReservationWorkflow) { w.Close() })
	t.Cleanup(workflows.Close)

	reservations := service.NewReservationService(bookings, trips)
	h := handler.NewReservationHandler(reservations, workflows)

	router := gin.New()
	group := router.Group("/v1/reservations")
	group.POST("", h.Start)
	group.GET("/:id", h.Get)
	group.POST("/:id/commuter", h.SubmitCommuter)
	group.POST("/:id/seat", h.SelectSeat)
	group.POST("/:id/otp", h.SubmitOTP)
	group.POST("/:id/payment", h.InitiatePayment)
	group.DELETE("/:id", h.Abandon)
	return router, workflows
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func decodeWorkflow(t *testing.T, recorder *httptest.ResponseRecorder) handler.WorkflowResponse {
	t.Helper()
	var resp handler.WorkflowResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestReservationEndpoints_FullRun(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.CommuterID = 42
	bookings.VerificationID = 77
	bookings.BookingID = 501
	bookings.RedirectURL = "https://pay.example.com/session/abc"
	trips := NewMockTripGateway(testTrip(40))
	router, workflows := reservationRouter(t, bookings, trips)

	recorder := doJSON(t, router, http.MethodPost, "/v1/reservations", `{"tripId":9}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}
	started := decodeWorkflow(t, recorder)
	if started.WorkflowID == "" || started.Step != "CREATING_COMMUTER" {
		t.Fatalf("unexpected start response %+v", started)
	}
	if started.Trip == nil || started.Trip.Capacity() != 40 {
		t.Fatalf("expected trip context in start response, got %+v", started.Trip)
	}

	base := "/v1/reservations/" + started.WorkflowID

	recorder = doJSON(t, router, http.MethodPost, base+"/commuter",
		`{"firstName":"Nimal","lastName":"Perera","nic":"123456789V","mobile":"+94771234567","email":"nimal@example.com"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if resp := decodeWorkflow(t, recorder); resp.Step != "SELECTING_SEAT" || resp.CommuterID != 42 {
		t.Fatalf("unexpected commuter response %+v", resp)
	}

	recorder = doJSON(t, router, http.MethodPost, base+"/seat", `{"seatNumber":5}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if resp := decodeWorkflow(t, recorder); resp.Step != "VERIFYING_OTP" || resp.VerificationID != 77 {
		t.Fatalf("unexpected seat response %+v", resp)
	}

	recorder = doJSON(t, router, http.MethodPost, base+"/otp", `{"otp":"1234"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	if resp := decodeWorkflow(t, recorder); resp.Step != "AWAITING_PAYMENT" || resp.BookingID != 501 {
		t.Fatalf("unexpected otp response %+v", resp)
	}

	recorder = doJSON(t, router, http.MethodPost, base+"/payment", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var payment handler.PaymentResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &payment); err != nil {
		t.Fatalf("failed to decode payment response: %v", err)
	}
	if payment.Step != "COMPLETED" || payment.RedirectURL == "" {
		t.Fatalf("unexpected payment response %+v", payment)
	}

	// The completed instance is gone.
	if workflows.Len() != 0 {
		t.Errorf("expected instance dropped after completion, got %d", workflows.Len())
	}
	recorder = doJSON(t, router, http.MethodGet, base, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404 after completion, got %d", recorder.Code)
	}
}

func TestReservationEndpoints_ErrorStatuses(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	bookings.CommuterID = 42
	trips := NewMockTripGateway(testTrip(40))
	router, _ := reservationRouter(t, bookings, trips)

	recorder := doJSON(t, router, http.MethodPost, "/v1/reservations", `{"tripId":9}`)
	started := decodeWorkflow(t, recorder)
	base := "/v1/reservations/" + started.WorkflowID

	// Unknown instance.
	recorder = doJSON(t, router, http.MethodGet, "/v1/reservations/nope", "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown workflow, got %d", recorder.Code)
	}

	// Validation failure.
	recorder = doJSON(t, router, http.MethodPost, base+"/commuter",
		`{"firstName":"","lastName":"Perera","nic":"123456789V","mobile":"+94771234567","email":"nimal@example.com"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for validation failure, got %d", recorder.Code)
	}

	// Out-of-order submission.
	recorder = doJSON(t, router, http.MethodPost, base+"/otp", `{"otp":"1234"}`)
	if recorder.Code != http.StatusConflict {
		t.Errorf("expected 409 for out-of-order submission, got %d", recorder.Code)
	}

	// Backend rejection passes through with its own status and message.
	bookings.CreateBookingError = &backend.StatusError{StatusCode: http.StatusConflict, Message: "Seat already taken"}
	recorder = doJSON(t, router, http.MethodPost, base+"/commuter",
		`{"firstName":"Nimal","lastName":"Perera","nic":"123456789V","mobile":"+94771234567","email":"nimal@example.com"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	recorder = doJSON(t, router, http.MethodPost, base+"/seat", `{"seatNumber":5}`)
	if recorder.Code != http.StatusConflict {
		t.Errorf("expected 409 from backend rejection, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Seat already taken") {
		t.Errorf("expected backend message surfaced, got %s", recorder.Body.String())
	}
}

func TestReservationEndpoints_AbandonClosesWorkflow(t *testing.T) {
	t.Parallel()

	bookings := NewMockBookingGateway()
	trips := NewMockTripGateway(testTrip(40))
	router, workflows := reservationRouter(t, bookings, trips)

	recorder := doJSON(t, router, http.MethodPost, "/v1/reservations", `{"tripId":9}`)
	started := decodeWorkflow(t, recorder)

	workflow, ok := workflows.Get(started.WorkflowID)
	if !ok {
		t.Fatal("expected workflow registered")
	}

	recorder = doJSON(t, router, http.MethodDelete, "/v1/reservations/"+started.WorkflowID, "")
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}

	// The eviction hook closed the instance.
	if _, err := workflow.SubmitCommuter(validCommuter()); !errors.Is(err, service.ErrWorkflowClosed) {
		t.Errorf("expected ErrWorkflowClosed after abandon, got %v", err)
	}

	recorder = doJSON(t, router, http.MethodDelete, "/v1/reservations/"+started.WorkflowID, "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeat abandon, got %d", recorder.Code)
	}
}
