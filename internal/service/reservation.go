package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"busriya/internal/backend"
	"busriya/internal/domain"
)

// ReservationStep is the step pointer of the reservation workflow. The
// workflow is strictly linear: no step may be skipped and there is no
// backward transition.
type ReservationStep int

const (
	StepCreatingCommuter ReservationStep = iota
	StepSelectingSeat
	StepVerifyingOTP
	StepAwaitingPayment
	StepCompleted
)

// String returns the step name for responses and logs.
func (s ReservationStep) String() string {
	switch s {
	case StepCreatingCommuter:
		return "CREATING_COMMUTER"
	case StepSelectingSeat:
		return "SELECTING_SEAT"
	case StepVerifyingOTP:
		return "VERIFYING_OTP"
	case StepAwaitingPayment:
		return "AWAITING_PAYMENT"
	case StepCompleted:
		return "COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// ReservationService starts reservation workflows.
type ReservationService struct {
	bookings backend.BookingGateway
	trips    backend.TripGateway
}

// NewReservationService creates a new ReservationService.
func NewReservationService(bookings backend.BookingGateway, trips backend.TripGateway) *ReservationService {
	return &ReservationService{bookings: bookings, trips: trips}
}

// Start fetches the trip eagerly and creates a workflow instance for
// it. The trip is read-only context for all later steps; a trip that
// cannot be fetched fails the start rather than a later step.
func (s *ReservationService) Start(ctx context.Context, tripID int) (*ReservationWorkflow, error) {
	trip, err := s.trips.Get(ctx, tripID)
	if err != nil {
		return nil, err
	}

	// The workflow owns its context: abandoning the instance cancels
	// any in-flight request, and late responses are discarded.
	wctx, cancel := context.WithCancel(context.Background())
	return &ReservationWorkflow{
		id:       uuid.New().String(),
		bookings: s.bookings,
		trip:     trip,
		ctx:      wctx,
		cancel:   cancel,
	}, nil
}

// ReservationWorkflow drives one commuter through commuter creation,
// seat selection, OTP verification and payment initiation. Every
// transition is triggered by an explicit submission; each submission
// sets a busy flag for its duration so a duplicate submission of the
// same step never issues a second request.
type ReservationWorkflow struct {
	id       string
	bookings backend.BookingGateway

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.Mutex
	busy   bool
	closed bool

	step           ReservationStep
	trip           *domain.Trip
	commuter       domain.Commuter
	commuterID     int
	verificationID int
	bookingID      int
}

// begin validates that a submission for step may proceed and sets the
// busy flag. The flag is set synchronously, before any network call,
// so at most one request per step can be outstanding.
func (w *ReservationWorkflow) begin(step ReservationStep) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrWorkflowClosed
	}
	if w.step != step {
		return ErrInvalidStep
	}
	if w.busy {
		return ErrSubmissionInFlight
	}
	w.busy = true
	return nil
}

// finish clears the busy flag. Deferred on every submission so the
// flag is released on success and failure alike.
func (w *ReservationWorkflow) finish() {
	w.mu.Lock()
	w.busy = false
	w.mu.Unlock()
}

// SubmitCommuter performs CREATING_COMMUTER -> SELECTING_SEAT. Field
// validation happens before the busy flag is taken and before any
// request is issued; on validation or server failure the step is
// unchanged and the commuter may correct and resubmit.
func (w *ReservationWorkflow) SubmitCommuter(commuter *domain.Commuter) (int, error) {
	if err := ValidateCommuter(commuter); err != nil {
		return 0, err
	}
	if err := w.begin(StepCreatingCommuter); err != nil {
		return 0, err
	}
	defer w.finish()

	commuterID, err := w.bookings.CreateCommuter(w.ctx, commuter)
	if err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		// Late response after abandonment: discard.
		return 0, ErrWorkflowClosed
	}
	w.commuter = *commuter
	w.commuterID = commuterID
	w.step = StepSelectingSeat
	return commuterID, nil
}

// SelectSeat performs SELECTING_SEAT -> VERIFYING_OTP. The booking
// service answers with the verificationId of the OTP challenge it
// mailed to the commuter. A taken seat surfaces as a server rejection
// and leaves the step unchanged.
func (w *ReservationWorkflow) SelectSeat(seatNumber int) (int, error) {
	if err := ValidateSeat(seatNumber, w.trip.Capacity()); err != nil {
		return 0, err
	}
	if err := w.begin(StepSelectingSeat); err != nil {
		return 0, err
	}
	defer w.finish()

	verificationID, err := w.bookings.CreateBooking(w.ctx, w.commuterID, w.trip.TripID, seatNumber)
	if err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, ErrWorkflowClosed
	}
	w.verificationID = verificationID
	w.step = StepVerifyingOTP
	return verificationID, nil
}

// SubmitOTP performs VERIFYING_OTP -> AWAITING_PAYMENT. Codes shorter
// than four digits are rejected before any request is issued. Once the
// challenge is satisfied the workflow never submits it again.
func (w *ReservationWorkflow) SubmitOTP(otp string) (int, error) {
	code, err := ValidateOTP(otp)
	if err != nil {
		return 0, err
	}
	if err := w.begin(StepVerifyingOTP); err != nil {
		return 0, err
	}
	defer w.finish()

	bookingID, err := w.bookings.SubmitOTP(w.ctx, w.verificationID, code)
	if err != nil {
		return 0, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, ErrWorkflowClosed
	}
	w.bookingID = bookingID
	w.step = StepAwaitingPayment
	return bookingID, nil
}

// InitiatePayment performs AWAITING_PAYMENT -> COMPLETED and returns
// the payment provider's redirect URL. Unlike the earlier steps, which
// mutate server state additively and are not retried, payment
// initiation may be retried: on failure the workflow stays in
// AWAITING_PAYMENT.
func (w *ReservationWorkflow) InitiatePayment() (string, error) {
	if err := w.begin(StepAwaitingPayment); err != nil {
		return "", err
	}
	defer w.finish()

	redirectURL, err := w.bookings.InitiatePayment(w.ctx, w.bookingID)
	if err != nil {
		return "", err
	}
	if redirectURL == "" {
		return "", ErrRedirectUnavailable
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return "", ErrWorkflowClosed
	}
	w.step = StepCompleted
	return redirectURL, nil
}

// Close abandons the workflow, cancelling any in-flight request. A
// closed workflow accepts no further submissions.
func (w *ReservationWorkflow) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	w.cancel()
}

// ID returns the workflow instance identifier.
func (w *ReservationWorkflow) ID() string { return w.id }

// Trip returns the trip context fetched at workflow entry.
func (w *ReservationWorkflow) Trip() *domain.Trip { return w.trip }

// Step returns the current step pointer.
func (w *ReservationWorkflow) Step() ReservationStep {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

// CommuterID returns the server-assigned commuter identifier, zero
// until the first step succeeds.
func (w *ReservationWorkflow) CommuterID() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.commuterID
}

// VerificationID returns the pending OTP challenge identifier, zero
// until seat selection succeeds.
func (w *ReservationWorkflow) VerificationID() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.verificationID
}

// BookingID returns the booking identifier, zero until verification
// succeeds.
func (w *ReservationWorkflow) BookingID() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bookingID
}
